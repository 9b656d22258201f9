package service

import (
	"context"
	"testing"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/dto"
	"github.com/inkwellapp/journal-service/pkg/code"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- Mocks ---

type tagMockTagRepo struct {
	domain.TagRepository
	tags   map[int64]*domain.Tag
	nextID int64
}

func newTagMockTagRepo(tags ...*domain.Tag) *tagMockTagRepo {
	m := &tagMockTagRepo{tags: make(map[int64]*domain.Tag), nextID: 1}
	for _, tag := range tags {
		m.tags[tag.ID] = tag
		if tag.ID >= m.nextID {
			m.nextID = tag.ID + 1
		}
	}
	return m
}

func (m *tagMockTagRepo) GetByID(ctx context.Context, id, uid int64) (*domain.Tag, error) {
	tag, ok := m.tags[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tag, nil
}

func (m *tagMockTagRepo) GetByName(ctx context.Context, name string, uid int64) (*domain.Tag, error) {
	for _, tag := range m.tags {
		if tag.Name == name {
			return tag, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *tagMockTagRepo) Create(ctx context.Context, tag *domain.Tag, uid int64) (*domain.Tag, error) {
	dup := *tag
	dup.ID = m.nextID
	dup.UID = uid
	m.nextID++
	m.tags[dup.ID] = &dup
	return &dup, nil
}

func (m *tagMockTagRepo) UpdateActive(ctx context.Context, active bool, id, uid int64) error {
	if tag, ok := m.tags[id]; ok {
		tag.IsActive = active
	}
	return nil
}

func (m *tagMockTagRepo) Delete(ctx context.Context, id, uid int64) error {
	delete(m.tags, id)
	return nil
}

type tagMockEntryRepo struct {
	domain.EntryRepository
	detachedTagIDs []int64
}

func (m *tagMockEntryRepo) DetachTag(ctx context.Context, tagID, uid int64) error {
	m.detachedTagIDs = append(m.detachedTagIDs, tagID)
	return nil
}

// --- Tests ---

func TestTagArchiveDetachesFromEntries(t *testing.T) {
	ctx := context.Background()
	tagRepo := newTagMockTagRepo(&domain.Tag{ID: 5, UID: 1, Name: "work", IsActive: true})
	entryRepo := &tagMockEntryRepo{}
	svc := NewTagService(tagRepo, entryRepo, zap.NewNop())

	if err := svc.Archive(ctx, 1, 5); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}

	if tagRepo.tags[5].IsActive {
		t.Error("tag still active after archive")
	}
	if len(entryRepo.detachedTagIDs) != 1 || entryRepo.detachedTagIDs[0] != 5 {
		t.Errorf("detached tag IDs = %v, want [5]", entryRepo.detachedTagIDs)
	}

	// 重新启用不会重新挂接
	if err := svc.Unarchive(ctx, 1, 5); err != nil {
		t.Fatalf("Unarchive failed: %v", err)
	}
	if !tagRepo.tags[5].IsActive {
		t.Error("tag not active after unarchive")
	}
	if len(entryRepo.detachedTagIDs) != 1 {
		t.Errorf("unexpected detach on unarchive: %v", entryRepo.detachedTagIDs)
	}
}

func TestTagDeleteDetachesFromEntries(t *testing.T) {
	ctx := context.Background()
	tagRepo := newTagMockTagRepo(&domain.Tag{ID: 7, UID: 1, Name: "travel", IsActive: true})
	entryRepo := &tagMockEntryRepo{}
	svc := NewTagService(tagRepo, entryRepo, zap.NewNop())

	if err := svc.Delete(ctx, 1, 7); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := tagRepo.tags[7]; ok {
		t.Error("tag still present after delete")
	}
	if len(entryRepo.detachedTagIDs) != 1 || entryRepo.detachedTagIDs[0] != 7 {
		t.Errorf("detached tag IDs = %v, want [7]", entryRepo.detachedTagIDs)
	}
}

func TestTagCreateValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		params  *dto.TagCreateRequest
		wantErr *code.Code
	}{
		{
			name:    "blank name",
			params:  &dto.TagCreateRequest{Name: "   "},
			wantErr: code.ErrorInvalidParams,
		},
		{
			name:    "duplicate name",
			params:  &dto.TagCreateRequest{Name: "work"},
			wantErr: code.ErrorTagNameExists,
		},
		{
			name:    "color out of palette",
			params:  &dto.TagCreateRequest{Name: "new", Color: intPtr(domain.ColorCount)},
			wantErr: code.ErrorInvalidColor,
		},
		{
			name:    "negative color",
			params:  &dto.TagCreateRequest{Name: "new", Color: intPtr(-1)},
			wantErr: code.ErrorInvalidColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tagRepo := newTagMockTagRepo(&domain.Tag{ID: 1, UID: 1, Name: "work", IsActive: true})
			svc := NewTagService(tagRepo, &tagMockEntryRepo{}, zap.NewNop())

			_, err := svc.Create(ctx, 1, tt.params)
			codeErr, ok := err.(*code.Code)
			if !ok || codeErr.Code() != tt.wantErr.Code() {
				t.Fatalf("err = %v, want code %d", err, tt.wantErr.Code())
			}
		})
	}
}

func TestTagCreateAssignsColor(t *testing.T) {
	ctx := context.Background()
	tagRepo := newTagMockTagRepo()
	svc := NewTagService(tagRepo, &tagMockEntryRepo{}, zap.NewNop())

	created, err := svc.Create(ctx, 1, &dto.TagCreateRequest{Name: "ideas"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !domain.ValidColor(domain.Color(created.Color)) {
		t.Errorf("assigned color %d outside palette", created.Color)
	}
	if created.ColorName == "" {
		t.Error("color name is empty")
	}
}

func TestTagGetOrCreate(t *testing.T) {
	ctx := context.Background()
	tagRepo := newTagMockTagRepo(&domain.Tag{ID: 3, UID: 1, Name: "existing", IsActive: true})
	svc := NewTagService(tagRepo, &tagMockEntryRepo{}, zap.NewNop())

	got, err := svc.GetOrCreate(ctx, 1, "existing")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if got.ID != 3 {
		t.Errorf("got ID %d, want 3", got.ID)
	}

	created, err := svc.GetOrCreate(ctx, 1, "fresh")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if created.ID == 3 || created.Name != "fresh" {
		t.Errorf("unexpected created tag: %+v", created)
	}
	if !created.IsActive {
		t.Error("created tag should be active")
	}
}

func intPtr(v int) *int {
	return &v
}
