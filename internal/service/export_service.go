package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/inkwellapp/journal-service/internal/dto"
	"github.com/inkwellapp/journal-service/pkg/code"
	"go.uber.org/zap"
)

// ExportService 定义条目导出业务服务接口
// 导出为只读操作，不改变条目状态
type ExportService interface {
	// Markdown 将条目导出为 Markdown 文档
	Markdown(ctx context.Context, uid int64, id int64) (*dto.ExportMarkdownDTO, error)

	// PrintHTML 将条目导出为可打印的自包含 HTML 文档
	PrintHTML(ctx context.Context, uid int64, id int64) (*dto.ExportPrintHTMLDTO, error)
}

// exportService 实现 ExportService 接口
type exportService struct {
	entryService EntryService
	logger       *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(entrySvc EntryService, logger *zap.Logger) ExportService {
	return &exportService{
		entryService: entrySvc,
		logger:       logger,
	}
}

// fileNameUnsafe 文件名中需要替换的字符
var fileNameUnsafe = regexp.MustCompile(`[^\w\-]+`)

// exportFileName 生成导出文件名 journal_entry_<title>_<date>.<ext>
func exportFileName(title string, entryDate time.Time, ext string) string {
	safe := fileNameUnsafe.ReplaceAllString(strings.TrimSpace(title), "_")
	safe = strings.Trim(safe, "_")
	if safe == "" {
		safe = "untitled"
	}
	return fmt.Sprintf("journal_entry_%s_%s.%s", safe, entryDate.Format("2006-01-02"), ext)
}

// Markdown 将条目导出为 Markdown 文档
func (s *exportService) Markdown(ctx context.Context, uid int64, id int64) (*dto.ExportMarkdownDTO, error) {
	entry, err := s.entryService.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}

	body := ""
	if entry.Content != "" {
		body, err = htmltomarkdown.ConvertString(entry.Content)
		if err != nil {
			return nil, code.ErrorExportFailed.WithDetails(err.Error())
		}
		body = strings.TrimSpace(body)
	}

	var b strings.Builder
	b.WriteString("# " + entry.Title + "\n\n")
	b.WriteString("- **Date**: " + time.Time(entry.EntryDate).Format("2006-01-02") + "\n")
	b.WriteString("- **Notebook**: " + entry.NotebookName + "\n")
	if len(entry.Tags) > 0 {
		names := make([]string, 0, len(entry.Tags))
		for _, t := range entry.Tags {
			names = append(names, t.Name)
		}
		b.WriteString("- **Tags**: " + strings.Join(names, ", ") + "\n")
	}
	if entry.Mood != "" {
		b.WriteString("- **Mood**: " + entry.MoodLabel + "\n")
	}
	b.WriteString("- **Status**: " + entry.State + "\n")
	if entry.IsFavorite {
		b.WriteString("- **Favorite**: ★\n")
	}
	b.WriteString(fmt.Sprintf("- **Words**: %d\n", entry.WordCount))
	b.WriteString(fmt.Sprintf("- **Characters**: %d\n", entry.CharCount))
	if entry.CurrentVersion > 0 {
		b.WriteString(fmt.Sprintf("- **Version**: %d\n", entry.CurrentVersion))
	}
	b.WriteString("\n---\n\n")
	if body != "" {
		b.WriteString(body + "\n")
	}
	b.WriteString("\n---\n\n")
	b.WriteString("*Exported at " + time.Now().Format("2006-01-02 15:04:05") + "*\n")

	return &dto.ExportMarkdownDTO{
		FileName: exportFileName(entry.Title, time.Time(entry.EntryDate), "md"),
		Markdown: b.String(),
	}, nil
}

// printTemplate 可打印 HTML 的页面模板，A4 版式
var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 20mm; }
body { font-family: Georgia, "Times New Roman", serif; color: #222; max-width: 170mm; margin: 0 auto; line-height: 1.6; }
header { border-bottom: 2px solid #444; margin-bottom: 16px; padding-bottom: 8px; }
header h1 { margin: 0 0 4px 0; font-size: 24pt; }
table.meta { border-collapse: collapse; font-size: 10pt; margin-bottom: 24px; }
table.meta td { padding: 2px 12px 2px 0; vertical-align: top; }
table.meta td.k { color: #666; white-space: nowrap; }
main { font-size: 11pt; }
footer { margin-top: 32px; border-top: 1px solid #ccc; padding-top: 8px; font-size: 9pt; color: #888; }
</style>
</head>
<body>
<header>
<h1>{{.Title}}</h1>
</header>
<table class="meta">
<tr><td class="k">Date</td><td>{{.Date}}</td></tr>
<tr><td class="k">Notebook</td><td>{{.Notebook}}</td></tr>
{{if .Tags}}<tr><td class="k">Tags</td><td>{{.Tags}}</td></tr>{{end}}
{{if .Mood}}<tr><td class="k">Mood</td><td>{{.Mood}}</td></tr>{{end}}
<tr><td class="k">Status</td><td>{{.Status}}</td></tr>
{{if .Favorite}}<tr><td class="k">Favorite</td><td>★</td></tr>{{end}}
<tr><td class="k">Words</td><td>{{.Words}}</td></tr>
<tr><td class="k">Characters</td><td>{{.Chars}}</td></tr>
</table>
<main>{{.Content}}</main>
<footer>Exported at {{.ExportedAt}}</footer>
</body>
</html>
`))

// printData 模板渲染数据
type printData struct {
	Title      string
	Date       string
	Notebook   string
	Tags       string
	Mood       string
	Status     string
	Favorite   bool
	Words      int
	Chars      int
	Content    template.HTML
	ExportedAt string
}

// PrintHTML 将条目导出为可打印的自包含 HTML 文档
// 正文为空时仍导出带元数据的文档
func (s *exportService) PrintHTML(ctx context.Context, uid int64, id int64) (*dto.ExportPrintHTMLDTO, error) {
	entry, err := s.entryService.Get(ctx, uid, id)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entry.Tags))
	for _, t := range entry.Tags {
		names = append(names, t.Name)
	}
	data := printData{
		Title:      entry.Title,
		Date:       time.Time(entry.EntryDate).Format("2006-01-02"),
		Notebook:   entry.NotebookName,
		Tags:       strings.Join(names, ", "),
		Mood:       entry.MoodLabel,
		Status:     entry.State,
		Favorite:   entry.IsFavorite,
		Words:      entry.WordCount,
		Chars:      entry.CharCount,
		Content:    sanitizedHTML(entry.Content),
		ExportedAt: time.Now().Format("2006-01-02 15:04:05"),
	}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, data); err != nil {
		return nil, code.ErrorExportFailed.WithDetails(err.Error())
	}
	return &dto.ExportPrintHTMLDTO{
		FileName: exportFileName(entry.Title, time.Time(entry.EntryDate), "html"),
		HTML:     buf.String(),
	}, nil
}

// scriptTagRe 导出前移除脚本标签
var scriptTagRe = regexp.MustCompile(`(?is)<script.*?</script>`)

// sanitizedHTML 移除正文中的脚本后作为可信 HTML 嵌入
func sanitizedHTML(content string) template.HTML {
	return template.HTML(scriptTagRe.ReplaceAllString(content, ""))
}
