package dao

import (
	"context"
	"strings"
	"time"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/model"
	"github.com/inkwellapp/journal-service/pkg/app"
	"github.com/inkwellapp/journal-service/pkg/timex"

	"gorm.io/gorm"
)

// entryRepository 实现 domain.EntryRepository 接口
type entryRepository struct {
	dao *Dao
}

// NewEntryRepository 创建 EntryRepository 实例
func NewEntryRepository(dao *Dao) domain.EntryRepository {
	return &entryRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型，标签单独填充
func (r *entryRepository) toDomain(m *model.Entry) *domain.Entry {
	if m == nil {
		return nil
	}
	return &domain.Entry{
		ID:           m.ID,
		UID:          m.UID,
		NotebookID:   m.NotebookID,
		Title:        m.Title,
		Content:      m.Content,
		EntryDate:    time.Time(m.EntryDate),
		State:        domain.EntryState(m.State),
		Mood:         domain.Mood(m.Mood),
		IsFavorite:   m.IsFavorite,
		WordCount:    m.WordCount,
		CharCount:    m.CharCount,
		ContentHash:  m.ContentHash,
		SearchVector: m.SearchVector,
		LastEditedAt: time.Time(m.LastEditedAt),
		CreatedAt:    time.Time(m.CreatedAt),
		UpdatedAt:    time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *entryRepository) toModel(e *domain.Entry) *model.Entry {
	if e == nil {
		return nil
	}
	return &model.Entry{
		ID:           e.ID,
		UID:          e.UID,
		NotebookID:   e.NotebookID,
		Title:        e.Title,
		Content:      e.Content,
		EntryDate:    timex.Time(e.EntryDate),
		State:        string(e.State),
		Mood:         string(e.Mood),
		IsFavorite:   e.IsFavorite,
		WordCount:    e.WordCount,
		CharCount:    e.CharCount,
		ContentHash:  e.ContentHash,
		SearchVector: e.SearchVector,
		LastEditedAt: timex.Time(e.LastEditedAt),
		CreatedAt:    timex.Time(e.CreatedAt),
		UpdatedAt:    timex.Time(e.UpdatedAt),
	}
}

// fillTags 批量填充条目标签
func (r *entryRepository) fillTags(ctx context.Context, entries []*domain.Entry, uid int64) error {
	if len(entries) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}

	var rels []*model.EntryTag
	if err := r.dao.Db.WithContext(ctx).
		Where("entry_id IN ? AND uid = ?", ids, uid).
		Find(&rels).Error; err != nil {
		return err
	}
	if len(rels) == 0 {
		return nil
	}

	tagIDs := make([]int64, 0, len(rels))
	for _, rel := range rels {
		tagIDs = append(tagIDs, rel.TagID)
	}
	var tags []*model.Tag
	if err := r.dao.Db.WithContext(ctx).
		Where("id IN ? AND uid = ?", tagIDs, uid).
		Find(&tags).Error; err != nil {
		return err
	}
	tagByID := make(map[int64]*domain.Tag, len(tags))
	for _, t := range tags {
		tagByID[t.ID] = &domain.Tag{
			ID:        t.ID,
			UID:       t.UID,
			Name:      t.Name,
			Color:     domain.Color(t.Color),
			IsActive:  t.IsActive,
			CreatedAt: time.Time(t.CreatedAt),
			UpdatedAt: time.Time(t.UpdatedAt),
		}
	}

	byEntry := make(map[int64][]*domain.Tag)
	for _, rel := range rels {
		if t, ok := tagByID[rel.TagID]; ok {
			byEntry[rel.EntryID] = append(byEntry[rel.EntryID], t)
		}
	}
	for _, e := range entries {
		e.Tags = byEntry[e.ID]
	}
	return nil
}

// GetByID 根据ID获取条目
func (r *entryRepository) GetByID(ctx context.Context, id, uid int64) (*domain.Entry, error) {
	var m model.Entry
	if err := r.dao.Db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		First(&m).Error; err != nil {
		return nil, err
	}
	entry := r.toDomain(&m)
	if err := r.fillTags(ctx, []*domain.Entry{entry}, uid); err != nil {
		return nil, err
	}
	return entry, nil
}

// Create 创建条目
func (r *entryRepository) Create(ctx context.Context, entry *domain.Entry, uid int64) (*domain.Entry, error) {
	m := r.toModel(entry)
	m.UID = uid
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()
	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	out := r.toDomain(m)
	out.Tags = entry.Tags
	return out, nil
}

// Update 更新条目
func (r *entryRepository) Update(ctx context.Context, entry *domain.Entry, uid int64) (*domain.Entry, error) {
	m := r.toModel(entry)
	m.UID = uid
	m.UpdatedAt = timex.Now()
	if err := r.dao.Db.WithContext(ctx).
		Where("id = ? AND uid = ?", m.ID, uid).
		Select("notebook_id", "title", "content", "entry_date", "state", "mood", "is_favorite",
			"word_count", "char_count", "content_hash", "search_vector", "last_edited_at", "updated_at").
		Updates(m).Error; err != nil {
		return nil, err
	}
	out := r.toDomain(m)
	out.Tags = entry.Tags
	return out, nil
}

// UpdateState 更新条目状态
func (r *entryRepository) UpdateState(ctx context.Context, state domain.EntryState, id, uid int64) error {
	return r.dao.Db.WithContext(ctx).Model(&model.Entry{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]interface{}{
			"state":      string(state),
			"updated_at": timex.Now(),
		}).Error
}

// UpdateFavorite 更新条目收藏标记
func (r *entryRepository) UpdateFavorite(ctx context.Context, favorite bool, id, uid int64) error {
	return r.dao.Db.WithContext(ctx).Model(&model.Entry{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]interface{}{
			"is_favorite": favorite,
			"updated_at":  timex.Now(),
		}).Error
}

// Delete 物理删除条目及其标签关联
func (r *entryRepository) Delete(ctx context.Context, id, uid int64) error {
	if err := r.dao.Db.WithContext(ctx).
		Where("entry_id = ? AND uid = ?", id, uid).
		Delete(&model.EntryTag{}).Error; err != nil {
		return err
	}
	return r.dao.Db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&model.Entry{}).Error
}

// applyFilter 将筛选条件翻译为查询条件
func (r *entryRepository) applyFilter(ctx context.Context, filter domain.EntryFilter, uid int64) *gorm.DB {
	q := r.dao.Db.WithContext(ctx).Model(&model.Entry{}).Where("uid = ?", uid)

	if filter.NotebookID > 0 {
		q = q.Where("notebook_id = ?", filter.NotebookID)
	}
	if filter.State != "" {
		q = q.Where("state = ?", string(filter.State))
	} else if !filter.IncludeArchived {
		q = q.Where("state <> ?", string(domain.EntryStateArchived))
	}
	if filter.Mood != "" {
		q = q.Where("mood = ?", string(filter.Mood))
	} else if filter.HasMood {
		q = q.Where("mood <> ''")
	}
	if filter.Favorite != nil {
		q = q.Where("is_favorite = ?", *filter.Favorite)
	}
	if filter.TagID > 0 {
		sub := r.dao.Db.Model(&model.EntryTag{}).
			Select("entry_id").
			Where("tag_id = ? AND uid = ?", filter.TagID, uid)
		q = q.Where("id IN (?)", sub)
	}
	if filter.Keyword != "" {
		kw := "%" + strings.ToLower(filter.Keyword) + "%"
		if filter.FullText {
			q = q.Where("lower(title) LIKE ? OR search_vector LIKE ?", kw, kw)
		} else {
			q = q.Where("lower(title) LIKE ?", kw)
		}
	}
	if filter.DateFrom != nil {
		q = q.Where("entry_date >= ?", timex.Time(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		q = q.Where("entry_date <= ?", timex.Time(*filter.DateTo))
	}
	return q
}

// List 分页获取条目列表
func (r *entryRepository) List(ctx context.Context, filter domain.EntryFilter, page, pageSize int, uid int64) ([]*domain.Entry, error) {
	var ms []*model.Entry
	err := r.applyFilter(ctx, filter, uid).
		Order("entry_date DESC, id DESC").
		Offset(app.GetPageOffset(page, pageSize)).
		Limit(pageSize).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	entries := make([]*domain.Entry, 0, len(ms))
	for _, m := range ms {
		entries = append(entries, r.toDomain(m))
	}
	if err := r.fillTags(ctx, entries, uid); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListCount 获取条目数量
func (r *entryRepository) ListCount(ctx context.Context, filter domain.EntryFilter, uid int64) (int64, error) {
	var count int64
	err := r.applyFilter(ctx, filter, uid).Count(&count).Error
	return count, err
}

// SetTags 重建条目的标签关联
func (r *entryRepository) SetTags(ctx context.Context, entryID int64, tagIDs []int64, uid int64) error {
	if err := r.dao.Db.WithContext(ctx).
		Where("entry_id = ? AND uid = ?", entryID, uid).
		Delete(&model.EntryTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	rels := make([]*model.EntryTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rels = append(rels, &model.EntryTag{
			UID:     uid,
			EntryID: entryID,
			TagID:   tagID,
		})
	}
	return r.dao.Db.WithContext(ctx).Create(&rels).Error
}

// ClearTags 清空条目的标签关联
func (r *entryRepository) ClearTags(ctx context.Context, entryID, uid int64) error {
	return r.dao.Db.WithContext(ctx).
		Where("entry_id = ? AND uid = ?", entryID, uid).
		Delete(&model.EntryTag{}).Error
}

// DetachTag 将标签从所有条目上摘除
func (r *entryRepository) DetachTag(ctx context.Context, tagID, uid int64) error {
	return r.dao.Db.WithContext(ctx).
		Where("tag_id = ? AND uid = ?", tagID, uid).
		Delete(&model.EntryTag{}).Error
}

// CountByNotebook 统计笔记本下的条目数量
func (r *entryRepository) CountByNotebook(ctx context.Context, notebookID, uid int64) (int64, error) {
	var count int64
	err := r.dao.Db.WithContext(ctx).Model(&model.Entry{}).
		Where("notebook_id = ? AND uid = ?", notebookID, uid).
		Count(&count).Error
	return count, err
}

// DeleteByNotebook 删除笔记本下的全部条目、标签关联与版本
func (r *entryRepository) DeleteByNotebook(ctx context.Context, notebookID, uid int64) error {
	sub := r.dao.Db.Model(&model.Entry{}).
		Select("id").
		Where("notebook_id = ? AND uid = ?", notebookID, uid)

	if err := r.dao.Db.WithContext(ctx).
		Where("entry_id IN (?) AND uid = ?", sub, uid).
		Delete(&model.EntryTag{}).Error; err != nil {
		return err
	}
	if err := r.dao.Db.WithContext(ctx).
		Where("entry_id IN (?) AND uid = ?", sub, uid).
		Delete(&model.EntryVersion{}).Error; err != nil {
		return err
	}
	return r.dao.Db.WithContext(ctx).
		Where("notebook_id = ? AND uid = ?", notebookID, uid).
		Delete(&model.Entry{}).Error
}

// MoodCounts 按心情聚合条目数量
func (r *entryRepository) MoodCounts(ctx context.Context, uid int64, from, to *time.Time, includeArchived bool) ([]*domain.MoodCountResult, error) {
	type row struct {
		Mood  string
		Count int64
	}
	q := r.dao.Db.WithContext(ctx).Model(&model.Entry{}).
		Select("mood, count(*) as count").
		Where("uid = ? AND mood <> ''", uid)
	if !includeArchived {
		q = q.Where("state <> ?", string(domain.EntryStateArchived))
	}
	if from != nil {
		q = q.Where("entry_date >= ?", timex.Time(*from))
	}
	if to != nil {
		q = q.Where("entry_date <= ?", timex.Time(*to))
	}
	var rows []row
	if err := q.Group("mood").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.MoodCountResult, 0, len(rows))
	for _, rw := range rows {
		out = append(out, &domain.MoodCountResult{
			Mood:  domain.Mood(rw.Mood),
			Count: rw.Count,
		})
	}
	return out, nil
}

// ListStats 获取统计用的轻量条目行
func (r *entryRepository) ListStats(ctx context.Context, uid int64, from, to *time.Time, includeArchived bool) ([]*domain.EntryStat, error) {
	type row struct {
		ID         int64
		NotebookID int64
		State      string
		Mood       string
		EntryDate  timex.Time
		WordCount  int64
	}
	q := r.dao.Db.WithContext(ctx).Model(&model.Entry{}).
		Select("id, notebook_id, state, mood, entry_date, word_count").
		Where("uid = ?", uid)
	if !includeArchived {
		q = q.Where("state <> ?", string(domain.EntryStateArchived))
	}
	if from != nil {
		q = q.Where("entry_date >= ?", timex.Time(*from))
	}
	if to != nil {
		q = q.Where("entry_date <= ?", timex.Time(*to))
	}
	var rows []row
	if err := q.Order("entry_date ASC, id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.EntryStat, 0, len(rows))
	for _, rw := range rows {
		out = append(out, &domain.EntryStat{
			ID:         rw.ID,
			NotebookID: rw.NotebookID,
			State:      domain.EntryState(rw.State),
			Mood:       domain.Mood(rw.Mood),
			EntryDate:  time.Time(rw.EntryDate),
			WordCount:  rw.WordCount,
		})
	}
	return out, nil
}
