package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/inkwellapp/journal-service/internal/dto"
	"github.com/inkwellapp/journal-service/pkg/code"
	"github.com/inkwellapp/journal-service/pkg/timex"

	"go.uber.org/zap"
)

// --- Mocks ---

type exportMockEntryService struct {
	EntryService
	entry *dto.EntryDTO
}

func (m *exportMockEntryService) Get(ctx context.Context, uid int64, id int64) (*dto.EntryDTO, error) {
	if m.entry == nil || m.entry.ID != id {
		return nil, code.ErrorEntryNotFound
	}
	return m.entry, nil
}

func exportTestEntry() *dto.EntryDTO {
	return &dto.EntryDTO{
		ID:           1,
		NotebookName: "Journal",
		Title:        "A quiet morning",
		Content:      "<p>Coffee on the <strong>balcony</strong>.</p>",
		EntryDate:    timex.Time(time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)),
		State:        "published",
		Mood:         "peaceful",
		MoodLabel:    "Peaceful",
		IsFavorite:   true,
		WordCount:    4,
		CharCount:    22,
		Tags: []*dto.TagDTO{
			{ID: 1, Name: "morning"},
			{ID: 2, Name: "coffee"},
		},
		CurrentVersion: 3,
	}
}

// --- Tests ---

func TestExportMarkdown(t *testing.T) {
	ctx := context.Background()
	svc := NewExportService(&exportMockEntryService{entry: exportTestEntry()}, zap.NewNop())

	out, err := svc.Markdown(ctx, 1, 1)
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if out.FileName != "journal_entry_A_quiet_morning_2026-08-30.md" {
		t.Errorf("file name = %q", out.FileName)
	}
	for _, want := range []string{
		"# A quiet morning",
		"- **Date**: 2026-08-30",
		"- **Notebook**: Journal",
		"- **Tags**: morning, coffee",
		"- **Mood**: Peaceful",
		"- **Status**: published",
		"- **Favorite**: ★",
		"- **Words**: 4",
		"- **Version**: 3",
		"**balcony**",
	} {
		if !strings.Contains(out.Markdown, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestExportMarkdownEmptyContent(t *testing.T) {
	ctx := context.Background()
	entry := exportTestEntry()
	entry.Content = ""
	entry.Mood = ""
	entry.Tags = nil
	entry.CurrentVersion = 0
	svc := NewExportService(&exportMockEntryService{entry: entry}, zap.NewNop())

	// 正文为空时仍导出带元数据的文档
	out, err := svc.Markdown(ctx, 1, 1)
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if !strings.Contains(out.Markdown, "# A quiet morning") {
		t.Error("markdown missing title")
	}
	if strings.Contains(out.Markdown, "- **Mood**") {
		t.Error("moodless entry should not render a mood line")
	}
	if strings.Contains(out.Markdown, "- **Tags**") {
		t.Error("untagged entry should not render a tags line")
	}
	if strings.Contains(out.Markdown, "- **Version**") {
		t.Error("unversioned entry should not render a version line")
	}
}

func TestExportMarkdownNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewExportService(&exportMockEntryService{}, zap.NewNop())

	_, err := svc.Markdown(ctx, 1, 404)
	codeErr, ok := err.(*code.Code)
	if !ok || codeErr.Code() != code.ErrorEntryNotFound.Code() {
		t.Fatalf("err = %v, want ErrorEntryNotFound", err)
	}
}

func TestExportPrintHTML(t *testing.T) {
	ctx := context.Background()
	entry := exportTestEntry()
	entry.Content = `<p>Hello</p><script>alert("x")</script><p>World</p>`
	svc := NewExportService(&exportMockEntryService{entry: entry}, zap.NewNop())

	out, err := svc.PrintHTML(ctx, 1, 1)
	if err != nil {
		t.Fatalf("PrintHTML failed: %v", err)
	}
	if out.FileName != "journal_entry_A_quiet_morning_2026-08-30.html" {
		t.Errorf("file name = %q", out.FileName)
	}
	if strings.Contains(out.HTML, "<script") {
		t.Error("script tag not stripped")
	}
	for _, want := range []string{
		"<title>A quiet morning</title>",
		"<p>Hello</p>",
		"<p>World</p>",
		"<td>morning, coffee</td>",
		"<td>Peaceful</td>",
		"<td>published</td>",
	} {
		if !strings.Contains(out.HTML, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestExportFileName(t *testing.T) {
	date := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "Morning walk", "journal_entry_Morning_walk_2026-08-30.md"},
		{"unsafe runs collapse", `a/b\c: d?`, "journal_entry_a_b_c_d_2026-08-30.md"},
		{"blank", "   ", "journal_entry_untitled_2026-08-30.md"},
		{"punctuation only", "!!!", "journal_entry_untitled_2026-08-30.md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exportFileName(tt.title, date, "md"); got != tt.want {
				t.Errorf("exportFileName(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
