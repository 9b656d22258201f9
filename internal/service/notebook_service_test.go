package service

import (
	"context"
	"sort"
	"testing"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/dto"
	"github.com/inkwellapp/journal-service/pkg/code"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- Mocks ---

type nbMockNotebookRepo struct {
	domain.NotebookRepository
	notebooks map[int64]*domain.Notebook
	nextID    int64
}

func newNbMockNotebookRepo(notebooks ...*domain.Notebook) *nbMockNotebookRepo {
	m := &nbMockNotebookRepo{notebooks: make(map[int64]*domain.Notebook), nextID: 1}
	for _, nb := range notebooks {
		m.notebooks[nb.ID] = nb
		if nb.ID >= m.nextID {
			m.nextID = nb.ID + 1
		}
	}
	return m
}

func (m *nbMockNotebookRepo) GetByID(ctx context.Context, id, uid int64) (*domain.Notebook, error) {
	nb, ok := m.notebooks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return nb, nil
}

func (m *nbMockNotebookRepo) GetByName(ctx context.Context, name string, uid int64) (*domain.Notebook, error) {
	for _, nb := range m.notebooks {
		if nb.Name == name {
			return nb, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *nbMockNotebookRepo) Create(ctx context.Context, notebook *domain.Notebook, uid int64) (*domain.Notebook, error) {
	dup := *notebook
	dup.ID = m.nextID
	dup.UID = uid
	m.nextID++
	m.notebooks[dup.ID] = &dup
	return &dup, nil
}

func (m *nbMockNotebookRepo) UpdateActive(ctx context.Context, active bool, id, uid int64) error {
	if nb, ok := m.notebooks[id]; ok {
		nb.IsActive = active
	}
	return nil
}

func (m *nbMockNotebookRepo) Delete(ctx context.Context, id, uid int64) error {
	delete(m.notebooks, id)
	return nil
}

// List 模拟 sequence 升序、name 升序的仓储排序
func (m *nbMockNotebookRepo) List(ctx context.Context, uid int64, includeInactive bool) ([]*domain.Notebook, error) {
	out := make([]*domain.Notebook, 0, len(m.notebooks))
	for _, nb := range m.notebooks {
		if !includeInactive && !nb.IsActive {
			continue
		}
		out = append(out, nb)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sequence != out[j].Sequence {
			return out[i].Sequence < out[j].Sequence
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

type nbMockEntryRepo struct {
	domain.EntryRepository
	countByNotebook  map[int64]int64
	deletedNotebooks []int64
}

func (m *nbMockEntryRepo) CountByNotebook(ctx context.Context, notebookID, uid int64) (int64, error) {
	return m.countByNotebook[notebookID], nil
}

func (m *nbMockEntryRepo) DeleteByNotebook(ctx context.Context, notebookID, uid int64) error {
	m.deletedNotebooks = append(m.deletedNotebooks, notebookID)
	m.countByNotebook[notebookID] = 0
	return nil
}

// --- Tests ---

func TestNotebookListOrdering(t *testing.T) {
	ctx := context.Background()
	repo := newNbMockNotebookRepo(
		&domain.Notebook{ID: 1, Name: "B", Sequence: 10, IsActive: true},
		&domain.Notebook{ID: 2, Name: "A", Sequence: 10, IsActive: true},
		&domain.Notebook{ID: 3, Name: "Z", Sequence: 5, IsActive: true},
	)
	svc := NewNotebookService(repo, &nbMockEntryRepo{countByNotebook: map[int64]int64{}}, zap.NewNop())

	notebooks, err := svc.List(ctx, 1, false)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"Z", "A", "B"}
	if len(notebooks) != len(want) {
		t.Fatalf("got %d notebooks, want %d", len(notebooks), len(want))
	}
	for i, name := range want {
		if notebooks[i].Name != name {
			t.Errorf("notebooks[%d] = %s, want %s", i, notebooks[i].Name, name)
		}
	}
}

func TestNotebookListExcludesInactive(t *testing.T) {
	ctx := context.Background()
	repo := newNbMockNotebookRepo(
		&domain.Notebook{ID: 1, Name: "Active", Sequence: 10, IsActive: true},
		&domain.Notebook{ID: 2, Name: "Archived", Sequence: 10, IsActive: false},
	)
	svc := NewNotebookService(repo, &nbMockEntryRepo{countByNotebook: map[int64]int64{}}, zap.NewNop())

	notebooks, err := svc.List(ctx, 1, false)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(notebooks) != 1 || notebooks[0].Name != "Active" {
		t.Fatalf("unexpected list: %+v", notebooks)
	}

	all, err := svc.List(ctx, 1, true)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d notebooks with includeInactive, want 2", len(all))
	}
}

func TestNotebookDeleteConfirmGate(t *testing.T) {
	ctx := context.Background()
	repo := newNbMockNotebookRepo(&domain.Notebook{ID: 1, Name: "Full", IsActive: true})
	entryRepo := &nbMockEntryRepo{countByNotebook: map[int64]int64{1: 4}}
	svc := NewNotebookService(repo, entryRepo, zap.NewNop())

	// 未确认时拒绝，并附带条目数量
	err := svc.Delete(ctx, 1, 1, false)
	codeErr, ok := err.(*code.Code)
	if !ok || codeErr.Code() != code.ErrorNotebookHasEntries.Code() {
		t.Fatalf("err = %v, want ErrorNotebookHasEntries", err)
	}
	data, ok := codeErr.Data().(map[string]int64)
	if !ok || data["entryCount"] != 4 {
		t.Errorf("error data = %v, want entryCount 4", codeErr.Data())
	}
	if len(entryRepo.deletedNotebooks) != 0 {
		t.Error("entries cascaded without confirm")
	}

	// 确认后级联删除
	if err := svc.Delete(ctx, 1, 1, true); err != nil {
		t.Fatalf("confirmed Delete failed: %v", err)
	}
	if len(entryRepo.deletedNotebooks) != 1 || entryRepo.deletedNotebooks[0] != 1 {
		t.Errorf("cascaded notebooks = %v, want [1]", entryRepo.deletedNotebooks)
	}
	if _, ok := repo.notebooks[1]; ok {
		t.Error("notebook still present after delete")
	}
}

func TestNotebookDeleteEmptyNoConfirmNeeded(t *testing.T) {
	ctx := context.Background()
	repo := newNbMockNotebookRepo(&domain.Notebook{ID: 2, Name: "Empty", IsActive: true})
	entryRepo := &nbMockEntryRepo{countByNotebook: map[int64]int64{}}
	svc := NewNotebookService(repo, entryRepo, zap.NewNop())

	if err := svc.Delete(ctx, 1, 2, false); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(entryRepo.deletedNotebooks) != 0 {
		t.Error("unexpected cascade on empty notebook")
	}
}

func TestNotebookCreateValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		params  *dto.NotebookCreateRequest
		wantErr *code.Code
	}{
		{
			name:    "blank name",
			params:  &dto.NotebookCreateRequest{Name: "  "},
			wantErr: code.ErrorInvalidParams,
		},
		{
			name:    "duplicate name",
			params:  &dto.NotebookCreateRequest{Name: "Journal"},
			wantErr: code.ErrorNotebookNameExists,
		},
		{
			name:    "color out of palette",
			params:  &dto.NotebookCreateRequest{Name: "New", Color: intPtr(domain.ColorCount)},
			wantErr: code.ErrorInvalidColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newNbMockNotebookRepo(&domain.Notebook{ID: 1, Name: "Journal", IsActive: true})
			svc := NewNotebookService(repo, &nbMockEntryRepo{countByNotebook: map[int64]int64{}}, zap.NewNop())

			_, err := svc.Create(ctx, 1, tt.params)
			codeErr, ok := err.(*code.Code)
			if !ok || codeErr.Code() != tt.wantErr.Code() {
				t.Fatalf("err = %v, want code %d", err, tt.wantErr.Code())
			}
		})
	}
}

func TestNotebookCreateDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newNbMockNotebookRepo()
	svc := NewNotebookService(repo, &nbMockEntryRepo{countByNotebook: map[int64]int64{}}, zap.NewNop())

	created, err := svc.Create(ctx, 1, &dto.NotebookCreateRequest{Name: "  Daily  "})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Name != "Daily" {
		t.Errorf("name = %q, want trimmed %q", created.Name, "Daily")
	}
	if created.Sequence != defaultNotebookSequence {
		t.Errorf("sequence = %d, want %d", created.Sequence, defaultNotebookSequence)
	}
	if !domain.ValidColor(domain.Color(created.Color)) {
		t.Errorf("assigned color %d outside palette", created.Color)
	}
	if !created.IsActive {
		t.Error("new notebook should be active")
	}
}

func TestNotebookGetOrCreate(t *testing.T) {
	ctx := context.Background()
	repo := newNbMockNotebookRepo(&domain.Notebook{ID: 1, Name: "Journal", IsActive: true})
	svc := NewNotebookService(repo, &nbMockEntryRepo{countByNotebook: map[int64]int64{}}, zap.NewNop())

	got, err := svc.GetOrCreate(ctx, 1, "Journal")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if got.ID != 1 {
		t.Errorf("got ID %d, want 1", got.ID)
	}

	created, err := svc.GetOrCreate(ctx, 1, "Travel")
	if err != nil {
		t.Fatalf("GetOrCreate failed: %v", err)
	}
	if created.Name != "Travel" || created.ID == 1 {
		t.Errorf("unexpected created notebook: %+v", created)
	}
	if created.Sequence != defaultNotebookSequence || !created.IsActive {
		t.Errorf("created notebook defaults wrong: %+v", created)
	}
}
