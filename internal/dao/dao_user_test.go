package dao

import (
	"context"
	"testing"
	"time"

	"github.com/inkwellapp/journal-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserSoftDeleteAndPurge(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	userRepo := NewUserRepository(d)

	created, err := userRepo.Create(ctx, &domain.User{
		Email:    "ada@example.com",
		Nickname: "ada",
		Password: "hash",
		Salt:     "salt",
	})
	assert.Nil(t, err)
	assert.NotZero(t, created.ID)

	// 软删除后查询层不可见
	created.IsDeleted = true
	_, err = userRepo.Update(ctx, created)
	assert.Nil(t, err)

	_, err = userRepo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = userRepo.GetByEmail(ctx, "ada@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// 截止时间之前软删除的用户被物理删除
	purged, err := userRepo.DeleteSoftDeletedBefore(ctx, time.Now().Add(time.Hour))
	assert.Nil(t, err)
	assert.Equal(t, int64(1), purged)

	purged, err = userRepo.DeleteSoftDeletedBefore(ctx, time.Now().Add(time.Hour))
	assert.Nil(t, err)
	assert.Zero(t, purged)
}

func TestUserPurgeSkipsActive(t *testing.T) {
	ctx := context.Background()
	d := newTestDao(t)
	userRepo := NewUserRepository(d)

	active, err := userRepo.Create(ctx, &domain.User{
		Email:    "bob@example.com",
		Nickname: "bob",
		Password: "hash",
		Salt:     "salt",
	})
	assert.Nil(t, err)

	purged, err := userRepo.DeleteSoftDeletedBefore(ctx, time.Now().Add(time.Hour))
	assert.Nil(t, err)
	assert.Zero(t, purged)

	got, err := userRepo.GetByID(ctx, active.ID)
	assert.Nil(t, err)
	assert.Equal(t, "bob@example.com", got.Email)
}
