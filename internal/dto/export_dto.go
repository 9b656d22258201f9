package dto

// ExportRequest Parameters for exporting a single entry
// 导出单个条目的参数
type ExportRequest struct {
	ID int64 `json:"id" form:"id" binding:"required"`
}

// ExportMarkdownDTO Markdown export result
// Markdown 导出结果
type ExportMarkdownDTO struct {
	FileName string `json:"fileName" form:"fileName"`
	Markdown string `json:"markdown" form:"markdown"`
}

// ExportPrintHTMLDTO Print ready HTML export result, handed to a PDF renderer
// 可打印 HTML 导出结果，交给 PDF 渲染器处理
type ExportPrintHTMLDTO struct {
	FileName string `json:"fileName" form:"fileName"`
	HTML     string `json:"html" form:"html"`
}
