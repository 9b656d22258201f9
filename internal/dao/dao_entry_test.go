package dao

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/inkwellapp/journal-service/internal/domain"

	"github.com/gookit/goutil/dump"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// newTestDao 在临时目录创建 sqlite 数据库并自动建表
func newTestDao(t *testing.T) *Dao {
	t.Helper()

	db, err := NewDBEngineWithConfig(DatabaseConfig{
		Type:         "sqlite",
		Path:         filepath.Join(t.TempDir(), "db.sqlite3"),
		TablePrefix:  "journal_",
		AutoMigrate:  true,
		MaxIdleConns: 2,
		MaxOpenConns: 2,
	}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	return New(db)
}

func seedNotebook(t *testing.T, d *Dao, uid int64, name string) *domain.Notebook {
	t.Helper()

	nb, err := NewNotebookRepository(d).Create(context.Background(), &domain.Notebook{
		Name:     name,
		Sequence: 10,
		Color:    domain.Color(1),
		IsActive: true,
	}, uid)
	if err != nil {
		t.Fatal(err)
	}
	return nb
}

func TestEntryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	uid := int64(1)
	nb := seedNotebook(t, d, uid, "Journal")

	entryRepo := NewEntryRepository(d)
	tagRepo := NewTagRepository(d)

	tag, err := tagRepo.Create(ctx, &domain.Tag{Name: "travel", Color: domain.Color(2), IsActive: true}, uid)
	assert.Nil(t, err)

	// 准备测试数据
	params := &domain.Entry{
		NotebookID:   nb.ID,
		Title:        "First day",
		Content:      "<p>hello world</p>",
		EntryDate:    time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
		State:        domain.EntryStateDraft,
		Mood:         domain.MoodHappy,
		WordCount:    2,
		CharCount:    11,
		SearchVector: "first day hello world",
	}

	created, err := entryRepo.Create(ctx, params, uid)

	dump.P(created)

	assert.Nil(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, params.Title, created.Title)
	assert.Equal(t, params.Content, created.Content)
	assert.Equal(t, domain.EntryStateDraft, created.State)
	assert.Equal(t, domain.MoodHappy, created.Mood)

	err = entryRepo.SetTags(ctx, created.ID, []int64{tag.ID}, uid)
	assert.Nil(t, err)

	got, err := entryRepo.GetByID(ctx, created.ID, uid)
	assert.Nil(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Len(t, got.Tags, 1)
	assert.Equal(t, "travel", got.Tags[0].Name)

	// 其他用户不可见
	_, err = entryRepo.GetByID(ctx, created.ID, uid+1)
	assert.NotNil(t, err)
}

func TestEntryListFilter(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	uid := int64(1)
	nb := seedNotebook(t, d, uid, "Journal")

	entryRepo := NewEntryRepository(d)

	seed := []*domain.Entry{
		{NotebookID: nb.ID, Title: "Beach walk", State: domain.EntryStatePublished, Mood: domain.MoodHappy, IsFavorite: true, SearchVector: "beach walk sand"},
		{NotebookID: nb.ID, Title: "Rainy day", State: domain.EntryStateDraft, Mood: domain.MoodSad, SearchVector: "rainy day umbrella"},
		{NotebookID: nb.ID, Title: "Old note", State: domain.EntryStateArchived, SearchVector: "old note"},
	}
	for i, e := range seed {
		e.EntryDate = time.Date(2026, 8, 20+i, 0, 0, 0, 0, time.Local)
		_, err := entryRepo.Create(ctx, e, uid)
		assert.Nil(t, err)
	}

	// 默认不含归档
	list, err := entryRepo.List(ctx, domain.EntryFilter{}, 1, 10, uid)
	assert.Nil(t, err)
	assert.Len(t, list, 2)

	count, err := entryRepo.ListCount(ctx, domain.EntryFilter{IncludeArchived: true}, uid)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), count)

	// 按心情筛选
	list, err = entryRepo.List(ctx, domain.EntryFilter{Mood: domain.MoodSad}, 1, 10, uid)
	assert.Nil(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Rainy day", list[0].Title)

	// 收藏筛选
	fav := true
	list, err = entryRepo.List(ctx, domain.EntryFilter{Favorite: &fav}, 1, 10, uid)
	assert.Nil(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Beach walk", list[0].Title)

	// 全文关键字命中正文索引
	list, err = entryRepo.List(ctx, domain.EntryFilter{Keyword: "umbrella", FullText: true}, 1, 10, uid)
	assert.Nil(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Rainy day", list[0].Title)

	// 仅标题匹配时命中不了正文
	list, err = entryRepo.List(ctx, domain.EntryFilter{Keyword: "umbrella"}, 1, 10, uid)
	assert.Nil(t, err)
	assert.Len(t, list, 0)
}

func TestEntryVersionRetention(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	uid := int64(1)
	nb := seedNotebook(t, d, uid, "Journal")

	entryRepo := NewEntryRepository(d)
	versionRepo := NewEntryVersionRepository(d)

	entry, err := entryRepo.Create(ctx, &domain.Entry{
		NotebookID: nb.ID,
		Title:      "Versioned",
		EntryDate:  time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
		State:      domain.EntryStateDraft,
	}, uid)
	assert.Nil(t, err)

	for seq := int64(1); seq <= 5; seq++ {
		_, err := versionRepo.Create(ctx, &domain.EntryVersion{
			EntryID:  entry.ID,
			Sequence: seq,
			Title:    "Versioned",
			Content:  "<p>draft</p>",
		}, uid)
		assert.Nil(t, err)
	}

	maxSeq, err := versionRepo.MaxSequence(ctx, entry.ID, uid)
	assert.Nil(t, err)
	assert.Equal(t, int64(5), maxSeq)

	deleted, err := versionRepo.DeleteExcess(ctx, entry.ID, uid, 3)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), deleted)

	versions, err := versionRepo.List(ctx, entry.ID, uid, 1, 10)
	assert.Nil(t, err)
	assert.Len(t, versions, 3)
	assert.Equal(t, int64(3), versions[0].Sequence)
	assert.Equal(t, int64(5), versions[2].Sequence)
}

func TestEntryDeleteByNotebook(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	uid := int64(1)
	nb := seedNotebook(t, d, uid, "Journal")
	other := seedNotebook(t, d, uid, "Work")

	entryRepo := NewEntryRepository(d)
	versionRepo := NewEntryVersionRepository(d)

	entry, err := entryRepo.Create(ctx, &domain.Entry{
		NotebookID: nb.ID,
		Title:      "Doomed",
		EntryDate:  time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
		State:      domain.EntryStateDraft,
	}, uid)
	assert.Nil(t, err)
	_, err = versionRepo.Create(ctx, &domain.EntryVersion{EntryID: entry.ID, Sequence: 1}, uid)
	assert.Nil(t, err)

	kept, err := entryRepo.Create(ctx, &domain.Entry{
		NotebookID: other.ID,
		Title:      "Survivor",
		EntryDate:  time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
		State:      domain.EntryStateDraft,
	}, uid)
	assert.Nil(t, err)

	err = entryRepo.DeleteByNotebook(ctx, nb.ID, uid)
	assert.Nil(t, err)

	_, err = entryRepo.GetByID(ctx, entry.ID, uid)
	assert.NotNil(t, err)

	versionCount, err := versionRepo.ListCount(ctx, entry.ID, uid)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), versionCount)

	// 其他笔记本的条目不受影响
	_, err = entryRepo.GetByID(ctx, kept.ID, uid)
	assert.Nil(t, err)
}
