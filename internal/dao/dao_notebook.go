package dao

import (
	"context"
	"sort"
	"time"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/model"
	"github.com/inkwellapp/journal-service/pkg/timex"
)

// notebookRepository 实现 domain.NotebookRepository 接口
type notebookRepository struct {
	dao *Dao
}

// NewNotebookRepository 创建 NotebookRepository 实例
func NewNotebookRepository(dao *Dao) domain.NotebookRepository {
	return &notebookRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *notebookRepository) toDomain(m *model.Notebook) *domain.Notebook {
	if m == nil {
		return nil
	}
	return &domain.Notebook{
		ID:          m.ID,
		UID:         m.UID,
		Name:        m.Name,
		Description: m.Description,
		Sequence:    m.Sequence,
		Color:       domain.Color(m.Color),
		IsActive:    m.IsActive,
		CreatedAt:   time.Time(m.CreatedAt),
		UpdatedAt:   time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *notebookRepository) toModel(n *domain.Notebook) *model.Notebook {
	if n == nil {
		return nil
	}
	return &model.Notebook{
		ID:          n.ID,
		UID:         n.UID,
		Name:        n.Name,
		Description: n.Description,
		Sequence:    n.Sequence,
		Color:       int(n.Color),
		IsActive:    n.IsActive,
		CreatedAt:   timex.Time(n.CreatedAt),
		UpdatedAt:   timex.Time(n.UpdatedAt),
	}
}

// GetByID 根据ID获取笔记本
func (r *notebookRepository) GetByID(ctx context.Context, id, uid int64) (*domain.Notebook, error) {
	var m model.Notebook
	if err := r.dao.Db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		First(&m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByName 根据名称获取笔记本
func (r *notebookRepository) GetByName(ctx context.Context, name string, uid int64) (*domain.Notebook, error) {
	var m model.Notebook
	if err := r.dao.Db.WithContext(ctx).
		Where("name = ? AND uid = ?", name, uid).
		First(&m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建笔记本
func (r *notebookRepository) Create(ctx context.Context, notebook *domain.Notebook, uid int64) (*domain.Notebook, error) {
	m := r.toModel(notebook)
	m.UID = uid
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()
	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Update 更新笔记本
func (r *notebookRepository) Update(ctx context.Context, notebook *domain.Notebook, uid int64) (*domain.Notebook, error) {
	m := r.toModel(notebook)
	m.UID = uid
	m.UpdatedAt = timex.Now()
	if err := r.dao.Db.WithContext(ctx).
		Where("id = ? AND uid = ?", m.ID, uid).
		Select("name", "description", "sequence", "color", "updated_at").
		Updates(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// UpdateActive 更新笔记本的启用标记
func (r *notebookRepository) UpdateActive(ctx context.Context, active bool, id, uid int64) error {
	return r.dao.Db.WithContext(ctx).Model(&model.Notebook{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]interface{}{
			"is_active":  active,
			"updated_at": timex.Now(),
		}).Error
}

// Delete 删除笔记本
func (r *notebookRepository) Delete(ctx context.Context, id, uid int64) error {
	return r.dao.Db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&model.Notebook{}).Error
}

// List 获取笔记本列表，按 sequence 升序、name 升序，附带条目数量与最近条目日期
func (r *notebookRepository) List(ctx context.Context, uid int64, includeInactive bool) ([]*domain.Notebook, error) {
	q := r.dao.Db.WithContext(ctx).Where("uid = ?", uid)
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	var ms []*model.Notebook
	if err := q.Find(&ms).Error; err != nil {
		return nil, err
	}

	type row struct {
		NotebookID int64
		Count      int64
		LastDate   timex.Time
	}
	var rows []row
	if err := r.dao.Db.WithContext(ctx).Model(&model.Entry{}).
		Select("notebook_id, count(*) as count, max(entry_date) as last_date").
		Where("uid = ?", uid).
		Group("notebook_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[int64]int64, len(rows))
	lastDates := make(map[int64]time.Time, len(rows))
	for _, rw := range rows {
		counts[rw.NotebookID] = rw.Count
		lastDates[rw.NotebookID] = time.Time(rw.LastDate)
	}

	out := make([]*domain.Notebook, 0, len(ms))
	for _, m := range ms {
		nb := r.toDomain(m)
		nb.EntryCount = counts[nb.ID]
		if last, ok := lastDates[nb.ID]; ok && !last.IsZero() {
			nb.LastEntryAt = &last
		}
		out = append(out, nb)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Sequence != out[j].Sequence {
			return out[i].Sequence < out[j].Sequence
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// ListInactiveBefore 获取所有用户在指定时间前停用的笔记本
func (r *notebookRepository) ListInactiveBefore(ctx context.Context, before time.Time) ([]*domain.Notebook, error) {
	var ms []*model.Notebook
	if err := r.dao.Db.WithContext(ctx).
		Where("is_active = ? AND updated_at < ?", false, timex.Time(before)).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*domain.Notebook, 0, len(ms))
	for _, m := range ms {
		out = append(out, r.toDomain(m))
	}
	return out, nil
}
