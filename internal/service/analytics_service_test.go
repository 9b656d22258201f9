package service

import (
	"context"
	"testing"
	"time"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/dto"

	"go.uber.org/zap"
)

// --- Mocks ---

type analyticsMockEntryRepo struct {
	domain.EntryRepository
	moodCounts   []*domain.MoodCountResult
	moodCountsFn func(from, to *time.Time) []*domain.MoodCountResult
	stats        []*domain.EntryStat
}

func (m *analyticsMockEntryRepo) MoodCounts(ctx context.Context, uid int64, from, to *time.Time, includeArchived bool) ([]*domain.MoodCountResult, error) {
	if m.moodCountsFn != nil {
		return m.moodCountsFn(from, to), nil
	}
	return m.moodCounts, nil
}

func (m *analyticsMockEntryRepo) ListStats(ctx context.Context, uid int64, from, to *time.Time, includeArchived bool) ([]*domain.EntryStat, error) {
	return m.stats, nil
}

type analyticsMockNotebookRepo struct {
	domain.NotebookRepository
	notebooks []*domain.Notebook
}

func (m *analyticsMockNotebookRepo) List(ctx context.Context, uid int64, includeInactive bool) ([]*domain.Notebook, error) {
	return m.notebooks, nil
}

func newAnalyticsService(entryRepo *analyticsMockEntryRepo, notebooks ...*domain.Notebook) AnalyticsService {
	return NewAnalyticsService(entryRepo, &analyticsMockNotebookRepo{notebooks: notebooks}, zap.NewNop())
}

func statOn(date string, notebookID int64, mood domain.Mood, words int64) *domain.EntryStat {
	d, _ := time.ParseInLocation("2006-01-02", date, time.Local)
	return &domain.EntryStat{
		NotebookID: notebookID,
		State:      domain.EntryStatePublished,
		Mood:       mood,
		EntryDate:  d,
		WordCount:  words,
	}
}

// --- Tests ---

func TestMoodDistributionPercentages(t *testing.T) {
	ctx := context.Background()
	entryRepo := &analyticsMockEntryRepo{
		moodCounts: []*domain.MoodCountResult{
			{Mood: domain.MoodHappy, Count: 3},
			{Mood: domain.MoodSad, Count: 1},
		},
		stats: []*domain.EntryStat{
			statOn("2026-08-01", 1, domain.MoodHappy, 100),
			statOn("2026-08-02", 1, domain.MoodHappy, 100),
			statOn("2026-08-03", 1, domain.MoodHappy, 100),
			statOn("2026-08-04", 1, domain.MoodSad, 100),
		},
	}
	svc := newAnalyticsService(entryRepo, &domain.Notebook{ID: 1, Name: "Journal"})

	out, err := svc.MoodDistribution(ctx, 1, &dto.MoodStatRequest{Period: "all"})
	if err != nil {
		t.Fatalf("MoodDistribution failed: %v", err)
	}

	if out.Total != 4 {
		t.Errorf("total = %d, want 4", out.Total)
	}
	if out.MostCommonMood != string(domain.MoodHappy) {
		t.Errorf("most common mood = %s, want happy", out.MostCommonMood)
	}
	if len(out.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(out.Items))
	}
	// 枚举顺序稳定: happy 在 sad 之前
	if out.Items[0].Mood != "happy" || out.Items[0].Percentage != 75.0 {
		t.Errorf("items[0] = %+v, want happy 75%%", out.Items[0])
	}
	if out.Items[1].Mood != "sad" || out.Items[1].Percentage != 25.0 {
		t.Errorf("items[1] = %+v, want sad 25%%", out.Items[1])
	}
	if len(out.Notebooks) != 1 || out.Notebooks[0].NotebookName != "Journal" {
		t.Fatalf("unexpected notebook breakdown: %+v", out.Notebooks)
	}
	if out.Notebooks[0].Total != 4 {
		t.Errorf("notebook total = %d, want 4", out.Notebooks[0].Total)
	}
}

func TestMoodDistributionEmpty(t *testing.T) {
	ctx := context.Background()
	svc := newAnalyticsService(&analyticsMockEntryRepo{})

	out, err := svc.MoodDistribution(ctx, 1, &dto.MoodStatRequest{})
	if err != nil {
		t.Fatalf("MoodDistribution failed: %v", err)
	}
	if out.Total != 0 || len(out.Items) != 0 || out.MostCommonMood != "" {
		t.Errorf("unexpected empty distribution: %+v", out)
	}
}

func TestMoodDistributionTrends(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Now().AddDate(0, 0, -10)
	entryRepo := &analyticsMockEntryRepo{
		moodCountsFn: func(from, to *time.Time) []*domain.MoodCountResult {
			if from == nil {
				// 整体分布
				return []*domain.MoodCountResult{
					{Mood: domain.MoodHappy, Count: 6},
					{Mood: domain.MoodSad, Count: 3},
					{Mood: domain.MoodTired, Count: 1},
				}
			}
			if from.After(cutoff) {
				// 最近一周
				return []*domain.MoodCountResult{
					{Mood: domain.MoodHappy, Count: 4},
					{Mood: domain.MoodSad, Count: 1},
				}
			}
			// 前一周
			return []*domain.MoodCountResult{
				{Mood: domain.MoodHappy, Count: 2},
				{Mood: domain.MoodSad, Count: 2},
				{Mood: domain.MoodTired, Count: 1},
			}
		},
	}
	svc := newAnalyticsService(entryRepo)

	out, err := svc.MoodDistribution(ctx, 1, &dto.MoodStatRequest{Period: "all"})
	if err != nil {
		t.Fatalf("MoodDistribution failed: %v", err)
	}
	if len(out.Trends) != 3 {
		t.Fatalf("got %d trends, want 3", len(out.Trends))
	}

	happy := out.Trends[0]
	if happy.Mood != "happy" || happy.RecentCount != 4 || happy.PreviousCount != 2 {
		t.Errorf("happy trend = %+v", happy)
	}
	if happy.TrendPercent != 100.0 || happy.TrendDirection != "up" {
		t.Errorf("happy trend = %v %s, want +100 up", happy.TrendPercent, happy.TrendDirection)
	}

	sad := out.Trends[1]
	if sad.TrendPercent != -50.0 || sad.TrendDirection != "down" {
		t.Errorf("sad trend = %v %s, want -50 down", sad.TrendPercent, sad.TrendDirection)
	}

	// 本周未出现的心情也要给出下降趋势
	tired := out.Trends[2]
	if tired.Mood != "tired" || tired.RecentCount != 0 || tired.TrendPercent != -100.0 || tired.TrendDirection != "down" {
		t.Errorf("tired trend = %+v", tired)
	}
}

func TestPivotByNotebook(t *testing.T) {
	ctx := context.Background()
	entryRepo := &analyticsMockEntryRepo{
		stats: []*domain.EntryStat{
			statOn("2026-07-10", 1, domain.MoodHappy, 100),
			statOn("2026-07-20", 1, domain.MoodSad, 50),
			statOn("2026-08-05", 1, domain.MoodHappy, 200),
			statOn("2026-08-06", 2, domain.MoodTired, 80),
		},
	}
	svc := newAnalyticsService(entryRepo,
		&domain.Notebook{ID: 1, Name: "Daily"},
		&domain.Notebook{ID: 2, Name: "Work"},
	)

	out, err := svc.Pivot(ctx, 1, &dto.PivotRequest{Rows: "notebook"})
	if err != nil {
		t.Fatalf("Pivot failed: %v", err)
	}

	wantMonths := []string{"2026-07", "2026-08"}
	if len(out.Months) != 2 || out.Months[0] != wantMonths[0] || out.Months[1] != wantMonths[1] {
		t.Fatalf("months = %v, want %v", out.Months, wantMonths)
	}
	if len(out.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(out.Rows))
	}

	daily := out.Rows[0]
	if daily.NotebookName != "Daily" || daily.TotalCount != 3 || daily.TotalWords != 350 {
		t.Errorf("daily row = %+v", daily)
	}
	// 2026-07: 两条共 150 词，均值 75
	if daily.Cells[0].Count != 2 || daily.Cells[0].WordSum != 150 || daily.Cells[0].WordAvg != 75.0 {
		t.Errorf("daily 2026-07 cell = %+v", daily.Cells[0])
	}

	work := out.Rows[1]
	if work.NotebookName != "Work" || work.TotalCount != 1 {
		t.Errorf("work row = %+v", work)
	}
	// 行在缺数据的月份有空格子
	if work.Cells[0].Count != 0 || work.Cells[1].Count != 1 {
		t.Errorf("work cells = %+v, %+v", work.Cells[0], work.Cells[1])
	}
}

func TestPivotByMood(t *testing.T) {
	ctx := context.Background()
	entryRepo := &analyticsMockEntryRepo{
		stats: []*domain.EntryStat{
			statOn("2026-08-01", 1, domain.MoodSad, 10),
			statOn("2026-08-02", 2, domain.MoodHappy, 20),
			statOn("2026-08-03", 1, domain.MoodHappy, 30),
		},
	}
	svc := newAnalyticsService(entryRepo, &domain.Notebook{ID: 1, Name: "Daily"})

	out, err := svc.Pivot(ctx, 1, &dto.PivotRequest{Rows: "mood"})
	if err != nil {
		t.Fatalf("Pivot failed: %v", err)
	}
	if len(out.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(out.Rows))
	}
	// 行按心情枚举顺序: happy 在 sad 之前，笔记本维度折叠
	if out.Rows[0].Mood != "happy" || out.Rows[0].TotalCount != 2 {
		t.Errorf("rows[0] = %+v", out.Rows[0])
	}
	if out.Rows[1].Mood != "sad" || out.Rows[1].TotalCount != 1 {
		t.Errorf("rows[1] = %+v", out.Rows[1])
	}
}

func TestMoodTimelineConsistency(t *testing.T) {
	ctx := context.Background()
	entryRepo := &analyticsMockEntryRepo{
		stats: []*domain.EntryStat{
			statOn("2026-08-28", 1, domain.MoodHappy, 120),
			statOn("2026-08-28", 1, domain.MoodHappy, 80),
			statOn("2026-08-29", 1, domain.MoodAnxious, 60),
			statOn("2026-08-30", 1, "", 40),
		},
	}
	svc := newAnalyticsService(entryRepo)

	out, err := svc.MoodTimeline(ctx, 1, &dto.MoodTimelineRequest{Days: 7})
	if err != nil {
		t.Fatalf("MoodTimeline failed: %v", err)
	}

	if out.Days != 7 {
		t.Errorf("days = %d, want 7", out.Days)
	}
	if len(out.Points) != 3 {
		t.Fatalf("got %d points, want 3", len(out.Points))
	}
	first := out.Points[0]
	if first.Date != "2026-08-28" || first.EntryCount != 2 || first.WordCount != 200 {
		t.Errorf("points[0] = %+v", first)
	}
	if first.MoodCounts["happy"] != 2 {
		t.Errorf("mood counts = %v", first.MoodCounts)
	}
	// 无心情的条目计入条目数但不参与稳定度
	if out.MostCommonMood != "happy" {
		t.Errorf("most common mood = %s, want happy", out.MostCommonMood)
	}
	// happy, happy, anxious: 2 个间隔中变化 1 次
	if out.MoodChanges != 1 {
		t.Errorf("mood changes = %d, want 1", out.MoodChanges)
	}
	if out.ConsistencyScore != 50.0 {
		t.Errorf("consistency score = %v, want 50.0", out.ConsistencyScore)
	}
	if out.ConsistencyLevel != "medium" {
		t.Errorf("consistency level = %s, want medium", out.ConsistencyLevel)
	}
}

func TestMoodTimelineStableMood(t *testing.T) {
	ctx := context.Background()
	entryRepo := &analyticsMockEntryRepo{
		stats: []*domain.EntryStat{
			statOn("2026-08-27", 1, domain.MoodPeaceful, 50),
			statOn("2026-08-28", 1, domain.MoodPeaceful, 50),
			statOn("2026-08-29", 1, domain.MoodPeaceful, 50),
		},
	}
	svc := newAnalyticsService(entryRepo)

	out, err := svc.MoodTimeline(ctx, 1, &dto.MoodTimelineRequest{Days: 7})
	if err != nil {
		t.Fatalf("MoodTimeline failed: %v", err)
	}
	if out.MoodChanges != 0 || out.ConsistencyScore != 100.0 {
		t.Errorf("changes = %d score = %v, want 0 and 100", out.MoodChanges, out.ConsistencyScore)
	}
	if out.ConsistencyLevel != "high" {
		t.Errorf("consistency level = %s, want high", out.ConsistencyLevel)
	}
}

func TestMoodTimelineDefaultDays(t *testing.T) {
	ctx := context.Background()
	svc := newAnalyticsService(&analyticsMockEntryRepo{})

	out, err := svc.MoodTimeline(ctx, 1, &dto.MoodTimelineRequest{})
	if err != nil {
		t.Fatalf("MoodTimeline failed: %v", err)
	}
	if out.Days != defaultTimelineDays {
		t.Errorf("days = %d, want %d", out.Days, defaultTimelineDays)
	}
}

func TestMoodCalendarPrimaryMood(t *testing.T) {
	ctx := context.Background()
	entryRepo := &analyticsMockEntryRepo{
		stats: []*domain.EntryStat{
			statOn("2026-08-10", 1, domain.MoodHappy, 10),
			statOn("2026-08-10", 1, domain.MoodHappy, 10),
			statOn("2026-08-10", 1, domain.MoodTired, 10),
			statOn("2026-08-15", 1, "", 10),
		},
	}
	svc := newAnalyticsService(entryRepo)

	out, err := svc.MoodCalendar(ctx, 1, &dto.MoodCalendarRequest{Year: 2026, Month: 8})
	if err != nil {
		t.Fatalf("MoodCalendar failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d days, want 2", len(out))
	}

	day := out[0]
	if day.Date != "2026-08-10" || day.EntryCount != 3 {
		t.Errorf("day = %+v", day)
	}
	if day.Mood != "happy" {
		t.Errorf("primary mood = %s, want happy", day.Mood)
	}
	if len(day.Moods) != 2 {
		t.Errorf("moods = %v, want happy and tired", day.Moods)
	}

	// 无心情的日子仍出现在日历上
	blank := out[1]
	if blank.Date != "2026-08-15" || blank.Mood != "" || blank.EntryCount != 1 {
		t.Errorf("blank day = %+v", blank)
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{66.666, 66.7},
		{25.0, 25.0},
		{33.333, 33.3},
		{0, 0},
	}
	for _, tt := range tests {
		if got := round1(tt.in); got != tt.want {
			t.Errorf("round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
