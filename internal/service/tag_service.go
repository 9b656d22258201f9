package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/dto"
	"github.com/inkwellapp/journal-service/pkg/code"
	"github.com/inkwellapp/journal-service/pkg/timex"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// TagService 定义标签业务服务接口
// 提供标签的增删改查、停用与按名称创建
type TagService interface {
	// Create 创建标签，未指定颜色时随机分配
	Create(ctx context.Context, uid int64, params *dto.TagCreateRequest) (*dto.TagDTO, error)

	// Update 更新标签
	Update(ctx context.Context, uid int64, params *dto.TagUpdateRequest) (*dto.TagDTO, error)

	// Get 根据 ID 获取标签
	Get(ctx context.Context, uid int64, id int64) (*dto.TagDTO, error)

	// List 获取标签列表，默认不含已停用标签
	List(ctx context.Context, uid int64, includeInactive bool) ([]*dto.TagDTO, error)

	// Archive 停用标签并将其从所有条目上摘除
	Archive(ctx context.Context, uid int64, id int64) error

	// Unarchive 重新启用标签
	Unarchive(ctx context.Context, uid int64, id int64) error

	// Delete 删除标签并将其从所有条目上摘除
	Delete(ctx context.Context, uid int64, id int64) error

	// GetOrCreate 按名称获取或创建标签，使用 Singleflight 合并并发请求
	GetOrCreate(ctx context.Context, uid int64, name string) (*domain.Tag, error)

	// ListByIDs 根据 ID 集合获取标签
	ListByIDs(ctx context.Context, uid int64, ids []int64) ([]*domain.Tag, error)
}

// tagService 实现 TagService 接口
type tagService struct {
	tagRepo   domain.TagRepository
	entryRepo domain.EntryRepository
	sf        *singleflight.Group
	logger    *zap.Logger
}

// NewTagService 创建 TagService 实例
func NewTagService(tagRepo domain.TagRepository, entryRepo domain.EntryRepository, logger *zap.Logger) TagService {
	return &tagService{
		tagRepo:   tagRepo,
		entryRepo: entryRepo,
		sf:        &singleflight.Group{},
		logger:    logger,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *tagService) domainToDTO(tag *domain.Tag) *dto.TagDTO {
	if tag == nil {
		return nil
	}
	return &dto.TagDTO{
		ID:         tag.ID,
		Name:       tag.Name,
		Color:      int(tag.Color),
		ColorName:  tag.Color.Name(),
		IsActive:   tag.IsActive,
		UsageCount: tag.UsageCount,
		CreatedAt:  timex.Time(tag.CreatedAt),
		UpdatedAt:  timex.Time(tag.UpdatedAt),
	}
}

// getTag 获取标签并转换未找到错误
func (s *tagService) getTag(ctx context.Context, uid, id int64) (*domain.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorTagNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return tag, nil
}

// resolveColor 校验颜色参数，未指定时随机分配
func resolveColor(c *int) (domain.Color, error) {
	if c == nil {
		return domain.RandomColor(), nil
	}
	color := domain.Color(*c)
	if !domain.ValidColor(color) {
		return 0, code.ErrorInvalidColor
	}
	return color, nil
}

// Create 创建标签
func (s *tagService) Create(ctx context.Context, uid int64, params *dto.TagCreateRequest) (*dto.TagDTO, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, code.ErrorInvalidParams.WithDetails("tag name is blank")
	}
	color, err := resolveColor(params.Color)
	if err != nil {
		return nil, err
	}
	if _, err := s.tagRepo.GetByName(ctx, name, uid); err == nil {
		return nil, code.ErrorTagNameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	tag := &domain.Tag{
		Name:     name,
		Color:    color,
		IsActive: true,
	}
	created, err := s.tagRepo.Create(ctx, tag, uid)
	if err != nil {
		return nil, code.ErrorTagCreateFailed.WithDetails(err.Error())
	}
	return s.domainToDTO(created), nil
}

// Update 更新标签
func (s *tagService) Update(ctx context.Context, uid int64, params *dto.TagUpdateRequest) (*dto.TagDTO, error) {
	tag, err := s.getTag(ctx, uid, params.ID)
	if err != nil {
		return nil, err
	}
	if params.Name != "" {
		name := strings.TrimSpace(params.Name)
		if name == "" {
			return nil, code.ErrorInvalidParams.WithDetails("tag name is blank")
		}
		if name != tag.Name {
			if _, err := s.tagRepo.GetByName(ctx, name, uid); err == nil {
				return nil, code.ErrorTagNameExists
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, code.ErrorDBQuery.WithDetails(err.Error())
			}
		}
		tag.Name = name
	}
	if params.Color != nil {
		color := domain.Color(*params.Color)
		if !domain.ValidColor(color) {
			return nil, code.ErrorInvalidColor
		}
		tag.Color = color
	}
	updated, err := s.tagRepo.Update(ctx, tag, uid)
	if err != nil {
		return nil, code.ErrorTagUpdateFailed.WithDetails(err.Error())
	}
	return s.domainToDTO(updated), nil
}

// Get 根据 ID 获取标签
func (s *tagService) Get(ctx context.Context, uid int64, id int64) (*dto.TagDTO, error) {
	tag, err := s.getTag(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(tag), nil
}

// List 获取标签列表
func (s *tagService) List(ctx context.Context, uid int64, includeInactive bool) ([]*dto.TagDTO, error) {
	tags, err := s.tagRepo.List(ctx, uid, includeInactive)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	out := make([]*dto.TagDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, s.domainToDTO(t))
	}
	return out, nil
}

// Archive 停用标签并将其从所有条目上摘除
func (s *tagService) Archive(ctx context.Context, uid int64, id int64) error {
	if _, err := s.getTag(ctx, uid, id); err != nil {
		return err
	}
	if err := s.entryRepo.DetachTag(ctx, id, uid); err != nil {
		return code.ErrorTagUpdateFailed.WithDetails(err.Error())
	}
	if err := s.tagRepo.UpdateActive(ctx, false, id, uid); err != nil {
		return code.ErrorTagUpdateFailed.WithDetails(err.Error())
	}
	s.logger.Info("tag archived", zap.Int64("uid", uid), zap.Int64("tagId", id))
	return nil
}

// Unarchive 重新启用标签
func (s *tagService) Unarchive(ctx context.Context, uid int64, id int64) error {
	if _, err := s.getTag(ctx, uid, id); err != nil {
		return err
	}
	if err := s.tagRepo.UpdateActive(ctx, true, id, uid); err != nil {
		return code.ErrorTagUpdateFailed.WithDetails(err.Error())
	}
	return nil
}

// Delete 删除标签并将其从所有条目上摘除，条目本身保持不变
func (s *tagService) Delete(ctx context.Context, uid int64, id int64) error {
	if _, err := s.getTag(ctx, uid, id); err != nil {
		return err
	}
	if err := s.entryRepo.DetachTag(ctx, id, uid); err != nil {
		return code.ErrorTagDeleteFailed.WithDetails(err.Error())
	}
	if err := s.tagRepo.Delete(ctx, id, uid); err != nil {
		return code.ErrorTagDeleteFailed.WithDetails(err.Error())
	}
	s.logger.Info("tag deleted", zap.Int64("uid", uid), zap.Int64("tagId", id))
	return nil
}

// GetOrCreate 按名称获取或创建标签
// 使用 Singleflight 合并并发请求，避免重复创建
func (s *tagService) GetOrCreate(ctx context.Context, uid int64, name string) (*domain.Tag, error) {
	key := fmt.Sprintf("tag_get_or_create_%d_%s", uid, name)

	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		tag, err := s.tagRepo.GetByName(ctx, name, uid)
		if err == nil {
			return tag, nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created, err := s.tagRepo.Create(ctx, &domain.Tag{
				Name:     name,
				Color:    domain.RandomColor(),
				IsActive: true,
			}, uid)
			if err != nil {
				return nil, code.ErrorTagCreateFailed.WithDetails(err.Error())
			}
			return created, nil
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Tag), nil
}

// ListByIDs 根据 ID 集合获取标签
func (s *tagService) ListByIDs(ctx context.Context, uid int64, ids []int64) ([]*domain.Tag, error) {
	tags, err := s.tagRepo.ListByIDs(ctx, ids, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return tags, nil
}
