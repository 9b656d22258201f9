package dao

import (
	"context"
	"time"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/model"
	"github.com/inkwellapp/journal-service/pkg/app"
	"github.com/inkwellapp/journal-service/pkg/timex"
)

// entryVersionRepository 实现 domain.EntryVersionRepository 接口
type entryVersionRepository struct {
	dao *Dao
}

// NewEntryVersionRepository 创建 EntryVersionRepository 实例
func NewEntryVersionRepository(dao *Dao) domain.EntryVersionRepository {
	return &entryVersionRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *entryVersionRepository) toDomain(m *model.EntryVersion) *domain.EntryVersion {
	if m == nil {
		return nil
	}
	return &domain.EntryVersion{
		ID:        m.ID,
		UID:       m.UID,
		EntryID:   m.EntryID,
		Sequence:  m.Sequence,
		Title:     m.Title,
		Content:   m.Content,
		WordCount: m.WordCount,
		CharCount: m.CharCount,
		CreatedAt: time.Time(m.CreatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *entryVersionRepository) toModel(v *domain.EntryVersion) *model.EntryVersion {
	if v == nil {
		return nil
	}
	return &model.EntryVersion{
		ID:        v.ID,
		UID:       v.UID,
		EntryID:   v.EntryID,
		Sequence:  v.Sequence,
		Title:     v.Title,
		Content:   v.Content,
		WordCount: v.WordCount,
		CharCount: v.CharCount,
		CreatedAt: timex.Time(v.CreatedAt),
	}
}

// Create 写入一个版本快照
func (r *entryVersionRepository) Create(ctx context.Context, version *domain.EntryVersion, uid int64) (*domain.EntryVersion, error) {
	m := r.toModel(version)
	m.UID = uid
	m.CreatedAt = timex.Now()
	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// GetByID 根据ID获取版本
func (r *entryVersionRepository) GetByID(ctx context.Context, id, uid int64) (*domain.EntryVersion, error) {
	var m model.EntryVersion
	if err := r.dao.Db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		First(&m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetBySequence 根据条目与序号获取版本
func (r *entryVersionRepository) GetBySequence(ctx context.Context, entryID, sequence, uid int64) (*domain.EntryVersion, error) {
	var m model.EntryVersion
	if err := r.dao.Db.WithContext(ctx).
		Where("entry_id = ? AND sequence = ? AND uid = ?", entryID, sequence, uid).
		First(&m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// MaxSequence 获取条目当前最大版本序号，无版本时返回 0
func (r *entryVersionRepository) MaxSequence(ctx context.Context, entryID, uid int64) (int64, error) {
	var maxSeq int64
	err := r.dao.Db.WithContext(ctx).Model(&model.EntryVersion{}).
		Select("COALESCE(MAX(sequence), 0)").
		Where("entry_id = ? AND uid = ?", entryID, uid).
		Scan(&maxSeq).Error
	return maxSeq, err
}

// List 分页获取条目的版本列表，序号升序即时间顺序
func (r *entryVersionRepository) List(ctx context.Context, entryID, uid int64, page, pageSize int) ([]*domain.EntryVersion, error) {
	var ms []*model.EntryVersion
	err := r.dao.Db.WithContext(ctx).
		Where("entry_id = ? AND uid = ?", entryID, uid).
		Order("sequence ASC").
		Offset(app.GetPageOffset(page, pageSize)).
		Limit(pageSize).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]*domain.EntryVersion, 0, len(ms))
	for _, m := range ms {
		out = append(out, r.toDomain(m))
	}
	return out, nil
}

// ListCount 获取条目的版本数量
func (r *entryVersionRepository) ListCount(ctx context.Context, entryID, uid int64) (int64, error) {
	var count int64
	err := r.dao.Db.WithContext(ctx).Model(&model.EntryVersion{}).
		Where("entry_id = ? AND uid = ?", entryID, uid).
		Count(&count).Error
	return count, err
}

// DeleteExcess 删除条目超出保留数量的最旧版本，返回删除数量
func (r *entryVersionRepository) DeleteExcess(ctx context.Context, entryID, uid int64, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}

	var seqs []int64
	err := r.dao.Db.WithContext(ctx).Model(&model.EntryVersion{}).
		Select("sequence").
		Where("entry_id = ? AND uid = ?", entryID, uid).
		Order("sequence DESC").
		Offset(keep).
		Scan(&seqs).Error
	if err != nil {
		return 0, err
	}
	if len(seqs) == 0 {
		return 0, nil
	}

	res := r.dao.Db.WithContext(ctx).
		Where("entry_id = ? AND uid = ? AND sequence IN ?", entryID, uid, seqs).
		Delete(&model.EntryVersion{})
	return res.RowsAffected, res.Error
}

// DeleteExcessAll 对所有条目执行保留数量清理，返回删除数量
func (r *entryVersionRepository) DeleteExcessAll(ctx context.Context, keep int) (int64, error) {
	if keep <= 0 {
		return 0, nil
	}

	type group struct {
		EntryID int64
		UID     int64
	}
	var groups []group
	err := r.dao.Db.WithContext(ctx).Model(&model.EntryVersion{}).
		Select("entry_id, uid, count(*) as cnt").
		Group("entry_id, uid").
		Having("count(*) > ?", keep).
		Scan(&groups).Error
	if err != nil {
		return 0, err
	}

	var total int64
	for _, g := range groups {
		n, err := r.DeleteExcess(ctx, g.EntryID, g.UID, keep)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DeleteByEntry 删除条目的全部版本
func (r *entryVersionRepository) DeleteByEntry(ctx context.Context, entryID, uid int64) error {
	return r.dao.Db.WithContext(ctx).
		Where("entry_id = ? AND uid = ?", entryID, uid).
		Delete(&model.EntryVersion{}).Error
}
