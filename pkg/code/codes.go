package code

// Common codes // 通用状态码
var (
	Success              = NewSuss(1, lang{en: "Success", zh_cn: "成功"})
	Failed               = NewError(0, lang{en: "Failed", zh_cn: "失败"})
	ErrorInvalidParams   = NewError(10000001, lang{en: "Invalid params", zh_cn: "入参错误"})
	ErrorNotFoundAPI     = NewError(10000002, lang{en: "Not found API", zh_cn: "找不到 API"})
	ErrorServerInternal  = NewError(10000003, lang{en: "Server internal error", zh_cn: "服务内部错误"})
	ErrorRequestTimeout  = NewError(10000004, lang{en: "Request timeout", zh_cn: "请求超时"})
	ErrorDBQuery         = NewError(10000005, lang{en: "Database query error", zh_cn: "数据库查询错误"})
	ErrorTooManyRequests = NewError(10000006, lang{en: "Too many requests", zh_cn: "请求过多"})
)

// User and auth codes // 用户与鉴权状态码
var (
	ErrorUserRegisterFailed       = NewError(20100001, lang{en: "User register failed", zh_cn: "用户注册失败"})
	ErrorUserEmailExists          = NewError(20100002, lang{en: "Email is already registered", zh_cn: "邮箱已被注册"})
	ErrorUserLoginFailed          = NewError(20100003, lang{en: "Incorrect email or password", zh_cn: "邮箱或密码错误"})
	ErrorUserNotFound             = NewError(20100004, lang{en: "User not found", zh_cn: "用户不存在"})
	ErrorUserDisabled             = NewError(20100005, lang{en: "User is disabled", zh_cn: "用户已被禁用"})
	ErrorNotUserAuthToken         = NewError(20100006, lang{en: "Missing user auth token", zh_cn: "缺少用户授权令牌"})
	ErrorInvalidUserAuthToken     = NewError(20100007, lang{en: "Invalid user auth token", zh_cn: "用户授权令牌无效"})
	ErrorUserAuthTokenGenerate    = NewError(20100008, lang{en: "Generate user auth token failed", zh_cn: "用户授权令牌生成失败"})
	ErrorUserChangePasswordFailed = NewError(20100009, lang{en: "Change password failed", zh_cn: "修改密码失败"})
	ErrorUserDeactivateFailed     = NewError(20100010, lang{en: "Account deactivation failed", zh_cn: "账号注销失败"})
)

// Journal entry codes // 日记条目状态码
var (
	ErrorEntryNotFound          = NewError(20200001, lang{en: "Entry not found", zh_cn: "条目不存在"})
	ErrorEntryCreateFailed      = NewError(20200002, lang{en: "Entry create failed", zh_cn: "条目创建失败"})
	ErrorEntryUpdateFailed      = NewError(20200003, lang{en: "Entry update failed", zh_cn: "条目更新失败"})
	ErrorEntryDeleteFailed      = NewError(20200004, lang{en: "Entry delete failed", zh_cn: "条目删除失败"})
	ErrorEntryTitleTooShort     = NewError(20200005, lang{en: "Entry title must be at least 2 characters", zh_cn: "条目标题至少需要 2 个字符"})
	ErrorEntryDateInFuture      = NewError(20200006, lang{en: "Entry date cannot be in the future", zh_cn: "条目日期不能晚于当前时间"})
	ErrorInvalidStateTransition = NewError(20200007, lang{en: "Invalid entry state transition", zh_cn: "非法的条目状态流转"})
	ErrorInvalidMood            = NewError(20200008, lang{en: "Invalid mood value", zh_cn: "心情取值非法"})
)

// Notebook codes // 笔记本状态码
var (
	ErrorNotebookNotFound     = NewError(20300001, lang{en: "Notebook not found", zh_cn: "笔记本不存在"})
	ErrorNotebookCreateFailed = NewError(20300002, lang{en: "Notebook create failed", zh_cn: "笔记本创建失败"})
	ErrorNotebookUpdateFailed = NewError(20300003, lang{en: "Notebook update failed", zh_cn: "笔记本更新失败"})
	ErrorNotebookDeleteFailed = NewError(20300004, lang{en: "Notebook delete failed", zh_cn: "笔记本删除失败"})
	ErrorNotebookNameExists   = NewError(20300005, lang{en: "Notebook name already exists", zh_cn: "笔记本名称已存在"})
	ErrorNotebookHasEntries   = NewError(20300006, lang{en: "Notebook still contains entries, confirm cascade delete", zh_cn: "笔记本仍包含条目，请确认级联删除"})
	ErrorInvalidColor         = NewError(20300007, lang{en: "Invalid color index", zh_cn: "颜色索引非法"})
)

// Tag codes // 标签状态码
var (
	ErrorTagNotFound     = NewError(20400001, lang{en: "Tag not found", zh_cn: "标签不存在"})
	ErrorTagCreateFailed = NewError(20400002, lang{en: "Tag create failed", zh_cn: "标签创建失败"})
	ErrorTagUpdateFailed = NewError(20400003, lang{en: "Tag update failed", zh_cn: "标签更新失败"})
	ErrorTagDeleteFailed = NewError(20400004, lang{en: "Tag delete failed", zh_cn: "标签删除失败"})
	ErrorTagNameExists   = NewError(20400005, lang{en: "Tag name already exists", zh_cn: "标签名称已存在"})
)

// Version history codes // 版本历史状态码
var (
	ErrorVersionNotFound   = NewError(20500001, lang{en: "Version not found", zh_cn: "版本不存在"})
	ErrorVersionListFailed = NewError(20500002, lang{en: "Version list failed", zh_cn: "版本列表获取失败"})
	ErrorVersionDiffFailed = NewError(20500003, lang{en: "Version diff failed", zh_cn: "版本对比失败"})
)

// Export codes // 导出状态码
var (
	ErrorExportFailed = NewError(20600001, lang{en: "Export failed", zh_cn: "导出失败"})
)
