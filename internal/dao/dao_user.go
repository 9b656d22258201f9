package dao

import (
	"context"
	"time"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/model"
	"github.com/inkwellapp/journal-service/pkg/timex"
)

// userRepository 实现 domain.UserRepository 接口
type userRepository struct {
	dao *Dao
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(dao *Dao) domain.UserRepository {
	return &userRepository{dao: dao}
}

// toDomain 将数据库模型转换为领域模型
func (r *userRepository) toDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:        m.ID,
		Email:     m.Email,
		Nickname:  m.Nickname,
		Password:  m.Password,
		Salt:      m.Salt,
		Avatar:    m.Avatar,
		IsDeleted: m.IsDeleted,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *userRepository) toModel(u *domain.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		ID:        u.ID,
		Email:     u.Email,
		Nickname:  u.Nickname,
		Password:  u.Password,
		Salt:      u.Salt,
		Avatar:    u.Avatar,
		IsDeleted: u.IsDeleted,
		CreatedAt: timex.Time(u.CreatedAt),
		UpdatedAt: timex.Time(u.UpdatedAt),
	}
}

// GetByID 根据ID获取用户
func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m model.User
	if err := r.dao.Db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// GetByEmail 根据邮箱获取用户
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m model.User
	if err := r.dao.Db.WithContext(ctx).
		Where("email = ? AND is_deleted = ?", email, false).
		First(&m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := r.toModel(user)
	m.CreatedAt = timex.Now()
	m.UpdatedAt = timex.Now()
	if err := r.dao.Db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Update 更新用户
func (r *userRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := r.toModel(user)
	m.UpdatedAt = timex.Now()
	if err := r.dao.Db.WithContext(ctx).
		Where("id = ?", m.ID).
		Select("nickname", "avatar", "is_deleted", "updated_at").
		Updates(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// UpdatePassword 更新用户密码
func (r *userRepository) UpdatePassword(ctx context.Context, id int64, password, salt string) error {
	return r.dao.Db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"password":   password,
			"salt":       salt,
			"updated_at": timex.Now(),
		}).Error
}

// DeleteSoftDeletedBefore 物理删除在指定时间前软删除的用户
func (r *userRepository) DeleteSoftDeletedBefore(ctx context.Context, before time.Time) (int64, error) {
	res := r.dao.Db.WithContext(ctx).
		Where("is_deleted = ? AND updated_at < ?", true, timex.Time(before)).
		Delete(&model.User{})
	return res.RowsAffected, res.Error
}
