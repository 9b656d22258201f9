package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/dto"
	"github.com/inkwellapp/journal-service/pkg/app"
	"github.com/inkwellapp/journal-service/pkg/code"
	"github.com/inkwellapp/journal-service/pkg/util"
	"go.uber.org/zap"
)

// defaultTimelineDays 心情时间线默认回溯天数
const defaultTimelineDays = 30

// AnalyticsService 定义检索与统计业务服务接口
// 全部为只读投影，聚合在服务层完成
type AnalyticsService interface {
	// Search 组合条件检索条目，默认不含已归档条目
	Search(ctx context.Context, uid int64, params *dto.SearchRequest, pager *app.Pager) ([]*dto.EntryNoContentDTO, int64, error)

	// MoodDistribution 统计一段时间内的心情分布
	MoodDistribution(ctx context.Context, uid int64, params *dto.MoodStatRequest) (*dto.MoodDistributionDTO, error)

	// Pivot 以心情和/或笔记本为行、月份为列的透视统计
	Pivot(ctx context.Context, uid int64, params *dto.PivotRequest) (*dto.PivotDTO, error)

	// MoodTimeline 最近若干天的心情时间线，附稳定度评分
	MoodTimeline(ctx context.Context, uid int64, params *dto.MoodTimelineRequest) (*dto.MoodTimelineDTO, error)

	// MoodCalendar 指定月份的心情日历，每天给出主要心情
	MoodCalendar(ctx context.Context, uid int64, params *dto.MoodCalendarRequest) ([]*dto.MoodCalendarDayDTO, error)
}

// analyticsService 实现 AnalyticsService 接口
type analyticsService struct {
	entryRepo    domain.EntryRepository
	notebookRepo domain.NotebookRepository
	logger       *zap.Logger
}

// NewAnalyticsService 创建 AnalyticsService 实例
func NewAnalyticsService(entryRepo domain.EntryRepository, notebookRepo domain.NotebookRepository, logger *zap.Logger) AnalyticsService {
	return &analyticsService{
		entryRepo:    entryRepo,
		notebookRepo: notebookRepo,
		logger:       logger,
	}
}

// round1 保留一位小数
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// notebookNames 获取笔记本ID到名称的映射
func (s *analyticsService) notebookNames(ctx context.Context, uid int64) (map[int64]string, error) {
	notebooks, err := s.notebookRepo.List(ctx, uid, true)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	names := make(map[int64]string, len(notebooks))
	for _, nb := range notebooks {
		names[nb.ID] = nb.Name
	}
	return names, nil
}

// Search 组合条件检索条目
func (s *analyticsService) Search(ctx context.Context, uid int64, params *dto.SearchRequest, pager *app.Pager) ([]*dto.EntryNoContentDTO, int64, error) {
	filter := &domain.EntryFilter{
		NotebookID:      params.NotebookID,
		State:           domain.EntryState(params.State),
		Mood:            domain.Mood(params.Mood),
		HasMood:         params.HasMood,
		Favorite:        params.Favorite,
		Keyword:         params.Keyword,
		FullText:        params.FullText,
		IncludeArchived: params.IncludeArchived,
	}
	from, err := parseEntryDate(params.DateFrom)
	if err != nil {
		return nil, 0, code.ErrorInvalidParams.WithDetails(err.Error())
	}
	filter.DateFrom = from
	to, err := parseEntryDate(params.DateTo)
	if err != nil {
		return nil, 0, code.ErrorInvalidParams.WithDetails(err.Error())
	}
	if to != nil {
		end := util.GetEndTime(*to)
		filter.DateTo = &end
	}

	entries, err := s.entryRepo.List(ctx, *filter, pager.Page, pager.PageSize, uid)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}
	count, err := s.entryRepo.ListCount(ctx, *filter, uid)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}
	names, err := s.notebookNames(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.EntryNoContentDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entryToNoContentDTO(entry, names[entry.NotebookID]))
	}
	return out, count, nil
}

// periodRange 将统计周期转换为时间范围，all 返回 nil
func periodRange(period string, now time.Time) *time.Time {
	var from time.Time
	switch period {
	case "week":
		from = util.GetZeroTime(now.AddDate(0, 0, -6))
	case "month":
		from = util.GetZeroTime(now.AddDate(0, -1, 0))
	case "year":
		from = util.GetZeroTime(now.AddDate(-1, 0, 0))
	default:
		return nil
	}
	return &from
}

// moodStats 将心情计数转换为带占比的 DTO 列表，按心情枚举顺序
func moodStats(counts map[domain.Mood]int64, total int64) []*dto.MoodStatDTO {
	out := make([]*dto.MoodStatDTO, 0, len(counts))
	for _, mood := range domain.Moods() {
		n, ok := counts[mood]
		if !ok {
			continue
		}
		stat := &dto.MoodStatDTO{
			Mood:      string(mood),
			MoodLabel: mood.Label(),
			Count:     n,
		}
		if total > 0 {
			stat.Percentage = round1(float64(n) / float64(total) * 100)
		}
		out = append(out, stat)
	}
	return out
}

// MoodDistribution 统计一段时间内的心情分布
func (s *analyticsService) MoodDistribution(ctx context.Context, uid int64, params *dto.MoodStatRequest) (*dto.MoodDistributionDTO, error) {
	now := time.Now()
	from := periodRange(params.Period, now)

	results, err := s.entryRepo.MoodCounts(ctx, uid, from, nil, params.IncludeArchived)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	counts := make(map[domain.Mood]int64, len(results))
	var total int64
	for _, r := range results {
		counts[r.Mood] = r.Count
		total += r.Count
	}

	out := &dto.MoodDistributionDTO{
		Total: total,
		Items: moodStats(counts, total),
	}
	var best int64
	for _, mood := range domain.Moods() {
		if counts[mood] > best {
			best = counts[mood]
			out.MostCommonMood = string(mood)
			out.MostCommonLabel = mood.Label()
		}
	}

	// 按笔记本的心情分布
	stats, err := s.entryRepo.ListStats(ctx, uid, from, nil, params.IncludeArchived)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	names, err := s.notebookNames(ctx, uid)
	if err != nil {
		return nil, err
	}
	byNotebook := make(map[int64]map[domain.Mood]int64)
	nbTotals := make(map[int64]int64)
	for _, st := range stats {
		if st.Mood == "" {
			continue
		}
		if byNotebook[st.NotebookID] == nil {
			byNotebook[st.NotebookID] = make(map[domain.Mood]int64)
		}
		byNotebook[st.NotebookID][st.Mood]++
		nbTotals[st.NotebookID]++
	}
	nbIDs := make([]int64, 0, len(byNotebook))
	for id := range byNotebook {
		nbIDs = append(nbIDs, id)
	}
	sort.Slice(nbIDs, func(i, j int) bool { return nbIDs[i] < nbIDs[j] })
	for _, id := range nbIDs {
		out.Notebooks = append(out.Notebooks, &dto.NotebookMoodStatDTO{
			NotebookID:   id,
			NotebookName: names[id],
			Total:        nbTotals[id],
			Items:        moodStats(byNotebook[id], nbTotals[id]),
		})
	}

	trends, err := s.moodTrends(ctx, uid, now, params.IncludeArchived)
	if err != nil {
		return nil, err
	}
	out.Trends = trends
	return out, nil
}

// moodTrends 对比最近一周与前一周的心情数量变化
func (s *analyticsService) moodTrends(ctx context.Context, uid int64, now time.Time, includeArchived bool) ([]*dto.MoodTrendDTO, error) {
	recentStart := util.GetZeroTime(now.AddDate(0, 0, -7))
	previousStart := util.GetZeroTime(now.AddDate(0, 0, -14))
	previousEnd := recentStart.Add(-time.Second)

	recentRows, err := s.entryRepo.MoodCounts(ctx, uid, &recentStart, &now, includeArchived)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	previousRows, err := s.entryRepo.MoodCounts(ctx, uid, &previousStart, &previousEnd, includeArchived)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	recent := make(map[domain.Mood]int64, len(recentRows))
	for _, r := range recentRows {
		recent[r.Mood] = r.Count
	}
	previous := make(map[domain.Mood]int64, len(previousRows))
	for _, r := range previousRows {
		previous[r.Mood] = r.Count
	}

	out := make([]*dto.MoodTrendDTO, 0, len(recent))
	for _, mood := range domain.Moods() {
		rc, pc := recent[mood], previous[mood]
		if rc == 0 && pc == 0 {
			continue
		}
		var trend float64
		if pc == 0 {
			if rc > 0 {
				trend = 100
			}
		} else {
			trend = float64(rc-pc) / float64(pc) * 100
		}
		direction := "stable"
		if trend > 0 {
			direction = "up"
		} else if trend < 0 {
			direction = "down"
		}
		out = append(out, &dto.MoodTrendDTO{
			Mood:           string(mood),
			MoodLabel:      mood.Label(),
			RecentCount:    rc,
			PreviousCount:  pc,
			TrendPercent:   round1(trend),
			TrendDirection: direction,
		})
	}
	return out, nil
}

// pivotKey 透视行的分组键
type pivotKey struct {
	Mood       domain.Mood
	NotebookID int64
}

// Pivot 以心情和/或笔记本为行、月份为列的透视统计
func (s *analyticsService) Pivot(ctx context.Context, uid int64, params *dto.PivotRequest) (*dto.PivotDTO, error) {
	rows := params.Rows
	if rows == "" {
		rows = "notebook"
	}
	from, err := parseEntryDate(params.DateFrom)
	if err != nil {
		return nil, code.ErrorInvalidParams.WithDetails(err.Error())
	}
	to, err := parseEntryDate(params.DateTo)
	if err != nil {
		return nil, code.ErrorInvalidParams.WithDetails(err.Error())
	}
	if to != nil {
		end := util.GetEndTime(*to)
		to = &end
	}

	stats, err := s.entryRepo.ListStats(ctx, uid, from, to, params.IncludeArchived)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	names, err := s.notebookNames(ctx, uid)
	if err != nil {
		return nil, err
	}

	type cell struct {
		count   int64
		wordSum int64
	}
	monthSet := make(map[string]bool)
	cells := make(map[pivotKey]map[string]*cell)
	for _, st := range stats {
		key := pivotKey{}
		if rows == "mood" || rows == "mood_notebook" {
			key.Mood = st.Mood
		}
		if rows == "notebook" || rows == "mood_notebook" {
			key.NotebookID = st.NotebookID
		}
		month := st.EntryDate.Format("2006-01")
		monthSet[month] = true
		if cells[key] == nil {
			cells[key] = make(map[string]*cell)
		}
		if cells[key][month] == nil {
			cells[key][month] = &cell{}
		}
		cells[key][month].count++
		cells[key][month].wordSum += st.WordCount
	}

	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Strings(months)

	keys := make([]pivotKey, 0, len(cells))
	for k := range cells {
		keys = append(keys, k)
	}
	moodIndex := make(map[domain.Mood]int, len(domain.Moods()))
	for i, m := range domain.Moods() {
		moodIndex[m] = i + 1
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].NotebookID != keys[j].NotebookID {
			return keys[i].NotebookID < keys[j].NotebookID
		}
		return moodIndex[keys[i].Mood] < moodIndex[keys[j].Mood]
	})

	out := &dto.PivotDTO{Months: months}
	for _, k := range keys {
		row := &dto.PivotRowDTO{
			Mood:       string(k.Mood),
			MoodLabel:  k.Mood.Label(),
			NotebookID: k.NotebookID,
		}
		if k.NotebookID > 0 {
			row.NotebookName = names[k.NotebookID]
		}
		for _, month := range months {
			c := cells[k][month]
			if c == nil {
				row.Cells = append(row.Cells, &dto.PivotCellDTO{Month: month})
				continue
			}
			row.Cells = append(row.Cells, &dto.PivotCellDTO{
				Month:   month,
				Count:   c.count,
				WordSum: c.wordSum,
				WordAvg: round1(float64(c.wordSum) / float64(c.count)),
			})
			row.TotalCount += c.count
			row.TotalWords += c.wordSum
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// moodConsistency 按日期顺序统计相邻条目间的心情变化次数
// 变化越少评分越高，满分 100
func moodConsistency(stats []*domain.EntryStat) (changes int64, score float64, level string) {
	ordered := make([]*domain.EntryStat, 0, len(stats))
	for _, st := range stats {
		if st.Mood != "" {
			ordered = append(ordered, st)
		}
	}
	if len(ordered) == 0 {
		return 0, 0, "stable"
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].EntryDate.Equal(ordered[j].EntryDate) {
			return ordered[i].EntryDate.Before(ordered[j].EntryDate)
		}
		return ordered[i].ID < ordered[j].ID
	})
	prev := domain.Mood("")
	for _, st := range ordered {
		if prev != "" && st.Mood != prev {
			changes++
		}
		prev = st.Mood
	}
	span := int64(len(ordered) - 1)
	if span < 1 {
		span = 1
	}
	score = 100 - float64(changes)/float64(span)*100
	if score < 0 {
		score = 0
	}
	score = round1(score)
	switch {
	case score > 70:
		level = "high"
	case score > 40:
		level = "medium"
	default:
		level = "low"
	}
	return changes, score, level
}

// MoodTimeline 最近若干天的心情时间线
// 稳定度评分基于心情变化次数，心情保持不变时评分为 100
func (s *analyticsService) MoodTimeline(ctx context.Context, uid int64, params *dto.MoodTimelineRequest) (*dto.MoodTimelineDTO, error) {
	days := params.Days
	if days <= 0 {
		days = defaultTimelineDays
	}
	now := time.Now()
	from := util.GetZeroTime(now.AddDate(0, 0, -(days - 1)))

	stats, err := s.entryRepo.ListStats(ctx, uid, &from, &now, false)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	byDay := make(map[string]*dto.MoodTimelinePointDTO)
	moodTotals := make(map[domain.Mood]int64)
	var moodEntries int64
	for _, st := range stats {
		day := st.EntryDate.Format("2006-01-02")
		point := byDay[day]
		if point == nil {
			point = &dto.MoodTimelinePointDTO{
				Date:       day,
				MoodCounts: make(map[string]int64),
			}
			byDay[day] = point
		}
		point.EntryCount++
		point.WordCount += st.WordCount
		if st.Mood != "" {
			point.MoodCounts[string(st.Mood)]++
			moodTotals[st.Mood]++
			moodEntries++
		}
	}

	dayKeys := make([]string, 0, len(byDay))
	for day := range byDay {
		dayKeys = append(dayKeys, day)
	}
	sort.Strings(dayKeys)

	out := &dto.MoodTimelineDTO{Days: days}
	for _, day := range dayKeys {
		out.Points = append(out.Points, byDay[day])
	}
	var best int64
	for _, mood := range domain.Moods() {
		if moodTotals[mood] > best {
			best = moodTotals[mood]
			out.MostCommonMood = string(mood)
		}
	}
	if moodEntries > 0 {
		out.MoodChanges, out.ConsistencyScore, out.ConsistencyLevel = moodConsistency(stats)
	}
	return out, nil
}

// MoodCalendar 指定月份的心情日历
func (s *analyticsService) MoodCalendar(ctx context.Context, uid int64, params *dto.MoodCalendarRequest) ([]*dto.MoodCalendarDayDTO, error) {
	first := time.Date(params.Year, time.Month(params.Month), 1, 0, 0, 0, 0, time.Local)
	last := util.GetEndTime(util.GetLastDateOfMonth(first))

	stats, err := s.entryRepo.ListStats(ctx, uid, &first, &last, false)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	type dayAgg struct {
		counts  map[domain.Mood]int64
		entries int64
	}
	byDay := make(map[string]*dayAgg)
	for _, st := range stats {
		day := st.EntryDate.Format("2006-01-02")
		agg := byDay[day]
		if agg == nil {
			agg = &dayAgg{counts: make(map[domain.Mood]int64)}
			byDay[day] = agg
		}
		agg.entries++
		if st.Mood != "" {
			agg.counts[st.Mood]++
		}
	}

	dayKeys := make([]string, 0, len(byDay))
	for day := range byDay {
		dayKeys = append(dayKeys, day)
	}
	sort.Strings(dayKeys)

	out := make([]*dto.MoodCalendarDayDTO, 0, len(dayKeys))
	for _, day := range dayKeys {
		agg := byDay[day]
		cell := &dto.MoodCalendarDayDTO{
			Date:       day,
			EntryCount: agg.entries,
		}
		var best int64
		for _, mood := range domain.Moods() {
			n := agg.counts[mood]
			if n == 0 {
				continue
			}
			cell.Moods = append(cell.Moods, string(mood))
			if n > best {
				best = n
				cell.Mood = string(mood)
				cell.MoodLabel = domain.Mood(cell.Mood).Label()
			}
		}
		out = append(out, cell)
	}
	return out, nil
}
