package dto

// SearchRequest Full text search parameters, filters composable
// 全文搜索请求参数，过滤条件可组合
type SearchRequest struct {
	Keyword         string `json:"keyword" form:"keyword"`
	FullText        bool   `json:"fullText" form:"fullText"`
	NotebookID      int64  `json:"notebookId" form:"notebookId"`
	State           string `json:"state" form:"state" binding:"omitempty,oneof=draft published archived"`
	Mood            string `json:"mood" form:"mood"`
	HasMood         bool   `json:"hasMood" form:"hasMood"`
	Favorite        *bool  `json:"favorite" form:"favorite"`
	IncludeArchived bool   `json:"includeArchived" form:"includeArchived"`
	DateFrom        string `json:"dateFrom" form:"dateFrom"`
	DateTo          string `json:"dateTo" form:"dateTo"`
}

// MoodStatRequest Mood distribution query parameters
// 心情分布查询参数
type MoodStatRequest struct {
	Period          string `json:"period" form:"period" binding:"omitempty,oneof=all week month year"`
	IncludeArchived bool   `json:"includeArchived" form:"includeArchived"`
}

// MoodStatDTO Aggregated count for a single mood
// 单个心情的聚合数量
type MoodStatDTO struct {
	Mood       string  `json:"mood" form:"mood"`
	MoodLabel  string  `json:"moodLabel" form:"moodLabel"`
	Count      int64   `json:"count" form:"count"`
	Percentage float64 `json:"percentage" form:"percentage"`
}

// NotebookMoodStatDTO Per notebook mood breakdown
// 按笔记本划分的心情统计
type NotebookMoodStatDTO struct {
	NotebookID   int64          `json:"notebookId" form:"notebookId"`
	NotebookName string         `json:"notebookName" form:"notebookName"`
	Total        int64          `json:"total" form:"total"`
	Items        []*MoodStatDTO `json:"items" form:"items"`
}

// MoodTrendDTO Mood count comparison between the recent and previous week
// 最近一周与前一周的心情数量对比
type MoodTrendDTO struct {
	Mood           string  `json:"mood" form:"mood"`
	MoodLabel      string  `json:"moodLabel" form:"moodLabel"`
	RecentCount    int64   `json:"recentCount" form:"recentCount"`
	PreviousCount  int64   `json:"previousCount" form:"previousCount"`
	TrendPercent   float64 `json:"trendPercent" form:"trendPercent"`
	TrendDirection string  `json:"trendDirection" form:"trendDirection"` // up / down / stable
}

// MoodDistributionDTO Mood distribution over a period
// 一段时间内的心情分布
type MoodDistributionDTO struct {
	Total           int64                  `json:"total" form:"total"`
	MostCommonMood  string                 `json:"mostCommonMood" form:"mostCommonMood"`
	MostCommonLabel string                 `json:"mostCommonLabel" form:"mostCommonLabel"`
	Items           []*MoodStatDTO         `json:"items" form:"items"`
	Notebooks       []*NotebookMoodStatDTO `json:"notebooks" form:"notebooks"`
	Trends          []*MoodTrendDTO        `json:"trends" form:"trends"`
}

// PivotRequest Pivot query parameters
// 透视查询参数
type PivotRequest struct {
	Rows            string `json:"rows" form:"rows" binding:"omitempty,oneof=mood notebook mood_notebook"`
	IncludeArchived bool   `json:"includeArchived" form:"includeArchived"`
	DateFrom        string `json:"dateFrom" form:"dateFrom"`
	DateTo          string `json:"dateTo" form:"dateTo"`
}

// PivotCellDTO A single month bucket within a pivot row
// 透视行内的单个月份格子
type PivotCellDTO struct {
	Month   string  `json:"month" form:"month"` // YYYY-MM
	Count   int64   `json:"count" form:"count"`
	WordSum int64   `json:"wordSum" form:"wordSum"`
	WordAvg float64 `json:"wordAvg" form:"wordAvg"`
}

// PivotRowDTO A pivot row keyed by mood and/or notebook
// 以心情和/或笔记本为键的透视行
type PivotRowDTO struct {
	Mood         string          `json:"mood,omitempty" form:"mood"`
	MoodLabel    string          `json:"moodLabel,omitempty" form:"moodLabel"`
	NotebookID   int64           `json:"notebookId,omitempty" form:"notebookId"`
	NotebookName string          `json:"notebookName,omitempty" form:"notebookName"`
	Cells        []*PivotCellDTO `json:"cells" form:"cells"`
	TotalCount   int64           `json:"totalCount" form:"totalCount"`
	TotalWords   int64           `json:"totalWords" form:"totalWords"`
}

// PivotDTO Pivot result, months ascending
// 透视结果，月份升序
type PivotDTO struct {
	Months []string       `json:"months" form:"months"`
	Rows   []*PivotRowDTO `json:"rows" form:"rows"`
}

// MoodTimelineRequest Mood timeline query parameters
// 心情时间线查询参数
type MoodTimelineRequest struct {
	Days int `json:"days" form:"days" binding:"omitempty,min=1,max=366"`
}

// MoodTimelinePointDTO A single day on the mood timeline
// 心情时间线上的单日数据
type MoodTimelinePointDTO struct {
	Date       string           `json:"date" form:"date"` // YYYY-MM-DD
	MoodCounts map[string]int64 `json:"moodCounts" form:"moodCounts"`
	EntryCount int64            `json:"entryCount" form:"entryCount"`
	WordCount  int64            `json:"wordCount" form:"wordCount"`
}

// MoodTimelineDTO Mood timeline with a consistency score
// 心情时间线，附心情稳定度评分
type MoodTimelineDTO struct {
	Days             int                     `json:"days" form:"days"`
	Points           []*MoodTimelinePointDTO `json:"points" form:"points"`
	MostCommonMood   string                  `json:"mostCommonMood" form:"mostCommonMood"`
	MoodChanges      int64                   `json:"moodChanges" form:"moodChanges"`
	ConsistencyScore float64                 `json:"consistencyScore" form:"consistencyScore"`
	ConsistencyLevel string                  `json:"consistencyLevel" form:"consistencyLevel"` // high / medium / low
}

// MoodCalendarRequest Mood calendar query parameters
// 心情日历查询参数
type MoodCalendarRequest struct {
	Year  int `json:"year" form:"year" binding:"required"`
	Month int `json:"month" form:"month" binding:"required,min=1,max=12"`
}

// MoodCalendarDayDTO A single day cell of the mood calendar
// 心情日历的单日格子
type MoodCalendarDayDTO struct {
	Date       string   `json:"date" form:"date"` // YYYY-MM-DD
	Mood       string   `json:"mood" form:"mood"` // primary mood of the day
	MoodLabel  string   `json:"moodLabel" form:"moodLabel"`
	Moods      []string `json:"moods" form:"moods"`
	EntryCount int64    `json:"entryCount" form:"entryCount"`
}
