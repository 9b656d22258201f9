package logger

// 统一的日志字段命名常量
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldUID 用户 ID 字段
	FieldUID = "uid"

	// FieldAction 操作类型字段
	FieldAction = "action"

	// FieldEntryID 条目 ID 字段
	FieldEntryID = "entryId"

	// FieldNotebookID 笔记本 ID 字段
	FieldNotebookID = "notebookId"

	// FieldTagID 标签 ID 字段
	FieldTagID = "tagId"

	// FieldVersion 版本序号字段
	FieldVersion = "version"

	// FieldState 条目状态字段
	FieldState = "state"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldError 错误信息字段
	FieldError = "error"

	// FieldCount 数量字段
	FieldCount = "count"
)
