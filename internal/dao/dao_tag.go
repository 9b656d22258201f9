package dao

import (
	"context"
	"time"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/model"
	"github.com/inkwellapp/journal-service/pkg/timex"
)

// tagRepository 实现 domain.TagRepository 接口
type tagRepository struct {
	dao *Dao
}

// NewTagRepository 创建 TagRepository 实例
func NewTagRepository(dao *Dao) domain.TagRepository {
	return &tagRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *tagRepository) toDomain(m *model.Tag) *domain.Tag {
	if m == nil {
		return nil
	}
	return &domain.Tag{
		ID:        m.ID,
		UID:       m.UID,
		Name:      m.Name,
		Color:     domain.Color(m.Color),
		IsActive:  m.IsActive,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *tagRepository) toModel(t *domain.Tag) *model.Tag {
	if t == nil {
		return nil
	}
	return &model.Tag{
		ID:        t.ID,
		UID:       t.UID,
		Name:      t.Name,
		Color:     int(t.Color),
		IsActive:  t.IsActive,
		CreatedAt: timex.Time(t.CreatedAt),
		UpdatedAt: timex.Time(t.UpdatedAt),
	}
}

// GetByID 根据ID获取标签
func (r *tagRepository) GetByID(ctx context.Context, id, uid int64) (*domain.Tag, error) {
	var m model.Tag
	if err := r.dao.Db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		First(&m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByName 根据名称获取标签
func (r *tagRepository) GetByName(ctx context.Context, name string, uid int64) (*domain.Tag, error) {
	var m model.Tag
	if err := r.dao.Db.WithContext(ctx).
		Where("name = ? AND uid = ?", name, uid).
		First(&m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建标签
func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag, uid int64) (*domain.Tag, error) {
	m := r.toModel(tag)
	m.UID = uid
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()
	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Update 更新标签
func (r *tagRepository) Update(ctx context.Context, tag *domain.Tag, uid int64) (*domain.Tag, error) {
	m := r.toModel(tag)
	m.UID = uid
	m.UpdatedAt = timex.Now()
	if err := r.dao.Db.WithContext(ctx).
		Where("id = ? AND uid = ?", m.ID, uid).
		Select("name", "color", "updated_at").
		Updates(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// UpdateActive 更新标签的启用标记
func (r *tagRepository) UpdateActive(ctx context.Context, active bool, id, uid int64) error {
	return r.dao.Db.WithContext(ctx).Model(&model.Tag{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]interface{}{
			"is_active":  active,
			"updated_at": timex.Now(),
		}).Error
}

// Delete 删除标签
func (r *tagRepository) Delete(ctx context.Context, id, uid int64) error {
	return r.dao.Db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&model.Tag{}).Error
}

// List 获取标签列表，按名称升序，附带使用数量
func (r *tagRepository) List(ctx context.Context, uid int64, includeInactive bool) ([]*domain.Tag, error) {
	q := r.dao.Db.WithContext(ctx).Where("uid = ?", uid)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var ms []*model.Tag
	if err := q.Order("name ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	type row struct {
		TagID int64
		Count int64
	}
	var rows []row
	if err := r.dao.Db.WithContext(ctx).Model(&model.EntryTag{}).
		Select("tag_id, count(*) as count").
		Where("uid = ?", uid).
		Group("tag_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[int64]int64, len(rows))
	for _, rw := range rows {
		counts[rw.TagID] = rw.Count
	}

	out := make([]*domain.Tag, 0, len(ms))
	for _, m := range ms {
		t := r.toDomain(m)
		t.UsageCount = counts[t.ID]
		out = append(out, t)
	}
	return out, nil
}

// ListByIDs 根据ID集合获取标签
func (r *tagRepository) ListByIDs(ctx context.Context, ids []int64, uid int64) ([]*domain.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var ms []*model.Tag
	if err := r.dao.Db.WithContext(ctx).
		Where("id IN ? AND uid = ?", ids, uid).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Tag, 0, len(ms))
	for _, m := range ms {
		out = append(out, r.toDomain(m))
	}
	return out, nil
}

// ListInactiveBefore 获取所有用户在指定时间前停用的标签
func (r *tagRepository) ListInactiveBefore(ctx context.Context, before time.Time) ([]*domain.Tag, error) {
	var ms []*model.Tag
	if err := r.dao.Db.WithContext(ctx).
		Where("is_active = ? AND updated_at < ?", false, timex.Time(before)).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Tag, 0, len(ms))
	for _, m := range ms {
		out = append(out, r.toDomain(m))
	}
	return out, nil
}
