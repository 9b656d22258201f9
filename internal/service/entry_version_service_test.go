package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/dto"
	"github.com/inkwellapp/journal-service/pkg/app"
	"github.com/inkwellapp/journal-service/pkg/code"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- Mocks ---

type versionMockVersionRepo struct {
	domain.EntryVersionRepository
	versions []*domain.EntryVersion
}

func (m *versionMockVersionRepo) GetBySequence(ctx context.Context, entryID, sequence, uid int64) (*domain.EntryVersion, error) {
	for _, v := range m.versions {
		if v.EntryID == entryID && v.Sequence == sequence {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *versionMockVersionRepo) List(ctx context.Context, entryID, uid int64, page, pageSize int) ([]*domain.EntryVersion, error) {
	var out []*domain.EntryVersion
	for _, v := range m.versions {
		if v.EntryID == entryID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *versionMockVersionRepo) ListCount(ctx context.Context, entryID, uid int64) (int64, error) {
	var n int64
	for _, v := range m.versions {
		if v.EntryID == entryID {
			n++
		}
	}
	return n, nil
}

type versionMockEntryRepo struct {
	domain.EntryRepository
	entry *domain.Entry
}

func (m *versionMockEntryRepo) GetByID(ctx context.Context, id, uid int64) (*domain.Entry, error) {
	if m.entry == nil || m.entry.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return m.entry, nil
}

// --- Tests ---

func TestVersionListAscending(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	versionRepo := &versionMockVersionRepo{versions: []*domain.EntryVersion{
		{ID: 1, EntryID: 10, Sequence: 1, Title: "Day one", Content: "<p>first</p>", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 2, EntryID: 10, Sequence: 2, Title: "Day one", Content: "<p>second</p>", CreatedAt: now.Add(-time.Hour)},
		{ID: 3, EntryID: 99, Sequence: 1, Title: "Other", Content: "<p>other</p>", CreatedAt: now},
	}}
	entryRepo := &versionMockEntryRepo{entry: &domain.Entry{ID: 10, UID: 1}}
	svc := NewEntryVersionService(versionRepo, entryRepo, zap.NewNop())

	out, count, err := svc.List(ctx, 1, &dto.EntryVersionListRequest{EntryID: 10}, &app.Pager{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if count != 2 || len(out) != 2 {
		t.Fatalf("got %d/%d versions, want 2/2", len(out), count)
	}
	if out[0].Sequence != 1 || out[1].Sequence != 2 {
		t.Errorf("sequences = %d,%d, want 1,2", out[0].Sequence, out[1].Sequence)
	}
	if out[0].Preview != "first" {
		t.Errorf("preview = %q, want %q", out[0].Preview, "first")
	}
	if out[0].Age == "" {
		t.Error("age is empty")
	}
}

func TestVersionListEntryNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewEntryVersionService(&versionMockVersionRepo{}, &versionMockEntryRepo{}, zap.NewNop())

	_, _, err := svc.List(ctx, 1, &dto.EntryVersionListRequest{EntryID: 404}, &app.Pager{Page: 1, PageSize: 10})
	codeErr, ok := err.(*code.Code)
	if !ok || codeErr.Code() != code.ErrorEntryNotFound.Code() {
		t.Fatalf("err = %v, want ErrorEntryNotFound", err)
	}
}

func TestVersionGetBySequence(t *testing.T) {
	ctx := context.Background()
	versionRepo := &versionMockVersionRepo{versions: []*domain.EntryVersion{
		{ID: 1, EntryID: 10, Sequence: 3, Title: "Snap", Content: "<p>content</p>", WordCount: 1},
	}}
	svc := NewEntryVersionService(versionRepo, &versionMockEntryRepo{}, zap.NewNop())

	got, err := svc.Get(ctx, 1, &dto.EntryVersionGetRequest{EntryID: 10, Sequence: 3})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Sequence != 3 || got.Content != "<p>content</p>" {
		t.Errorf("unexpected version: %+v", got)
	}

	_, err = svc.Get(ctx, 1, &dto.EntryVersionGetRequest{EntryID: 10, Sequence: 9})
	codeErr, ok := err.(*code.Code)
	if !ok || codeErr.Code() != code.ErrorVersionNotFound.Code() {
		t.Fatalf("err = %v, want ErrorVersionNotFound", err)
	}
}

func TestVersionDiff(t *testing.T) {
	ctx := context.Background()
	versionRepo := &versionMockVersionRepo{versions: []*domain.EntryVersion{
		{ID: 1, EntryID: 10, Sequence: 1, Content: "hello world"},
		{ID: 2, EntryID: 10, Sequence: 2, Content: "hello brave world"},
	}}
	entryRepo := &versionMockEntryRepo{entry: &domain.Entry{ID: 10, UID: 1, Content: "hello new world"}}
	svc := NewEntryVersionService(versionRepo, entryRepo, zap.NewNop())

	out, err := svc.Diff(ctx, 1, &dto.EntryVersionDiffRequest{EntryID: 10, FromSequence: 1, ToSequence: 2})
	if err != nil {
		t.Fatalf("Diff failed: %v", err)
	}
	var inserted strings.Builder
	for _, seg := range out.Segments {
		if seg.Op == "insert" {
			inserted.WriteString(seg.Text)
		}
		if seg.Op != "equal" && seg.Op != "insert" && seg.Op != "delete" {
			t.Errorf("unknown op %q", seg.Op)
		}
	}
	if !strings.Contains(inserted.String(), "brave") {
		t.Errorf("inserted text %q missing %q", inserted.String(), "brave")
	}

	// toSequence 为 0 时与当前正文对比
	out, err = svc.Diff(ctx, 1, &dto.EntryVersionDiffRequest{EntryID: 10, FromSequence: 1})
	if err != nil {
		t.Fatalf("Diff against current failed: %v", err)
	}
	if out.ToSequence != 0 {
		t.Errorf("to sequence = %d, want 0", out.ToSequence)
	}
	inserted.Reset()
	for _, seg := range out.Segments {
		if seg.Op == "insert" {
			inserted.WriteString(seg.Text)
		}
	}
	if !strings.Contains(inserted.String(), "new") {
		t.Errorf("inserted text %q missing %q", inserted.String(), "new")
	}
}

func TestPreviewText(t *testing.T) {
	long := strings.Repeat("字", versionPreviewRunes+10)
	got := previewText("<p>" + long + "</p>")
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long preview should be truncated, got %d runes", len([]rune(got)))
	}
	if len([]rune(got)) != versionPreviewRunes+3 {
		t.Errorf("preview rune length = %d, want %d", len([]rune(got)), versionPreviewRunes+3)
	}

	if got := previewText("<p>short</p>"); got != "short" {
		t.Errorf("short preview = %q, want %q", got, "short")
	}
}

func TestRelativeAge(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"hours", now.Add(-3 * time.Hour), "3 hours ago"},
		{"days", now.Add(-49 * time.Hour), "2 days ago"},
		{"date", now.AddDate(0, -2, 0), now.AddDate(0, -2, 0).Format("2006-01-02")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeAge(tt.at, now); got != tt.want {
				t.Errorf("relativeAge = %q, want %q", got, tt.want)
			}
		})
	}
}
