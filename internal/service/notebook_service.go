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

// defaultNotebookSequence 新建笔记本的默认排序值
const defaultNotebookSequence = 10

// NotebookService 定义笔记本业务服务接口
// 提供笔记本的增删改查、停用与级联删除
type NotebookService interface {
	// Create 创建笔记本，未指定颜色时随机分配
	Create(ctx context.Context, uid int64, params *dto.NotebookCreateRequest) (*dto.NotebookDTO, error)

	// Update 更新笔记本
	Update(ctx context.Context, uid int64, params *dto.NotebookUpdateRequest) (*dto.NotebookDTO, error)

	// Get 根据 ID 获取笔记本
	Get(ctx context.Context, uid int64, id int64) (*dto.NotebookDTO, error)

	// List 获取笔记本列表，按 sequence 升序、name 升序
	List(ctx context.Context, uid int64, includeInactive bool) ([]*dto.NotebookDTO, error)

	// Archive 停用笔记本
	Archive(ctx context.Context, uid int64, id int64) error

	// Unarchive 重新启用笔记本
	Unarchive(ctx context.Context, uid int64, id int64) error

	// Delete 删除笔记本，包含条目时必须显式确认级联删除
	Delete(ctx context.Context, uid int64, id int64, confirm bool) error

	// GetOrCreate 按名称获取或创建笔记本，使用 Singleflight 合并并发请求
	GetOrCreate(ctx context.Context, uid int64, name string) (*domain.Notebook, error)
}

// notebookService 实现 NotebookService 接口
type notebookService struct {
	notebookRepo domain.NotebookRepository
	entryRepo    domain.EntryRepository
	sf           *singleflight.Group
	logger       *zap.Logger
}

// NewNotebookService 创建 NotebookService 实例
func NewNotebookService(notebookRepo domain.NotebookRepository, entryRepo domain.EntryRepository, logger *zap.Logger) NotebookService {
	return &notebookService{
		notebookRepo: notebookRepo,
		entryRepo:    entryRepo,
		sf:           &singleflight.Group{},
		logger:       logger,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *notebookService) domainToDTO(nb *domain.Notebook) *dto.NotebookDTO {
	if nb == nil {
		return nil
	}
	out := &dto.NotebookDTO{
		ID:          nb.ID,
		Name:        nb.Name,
		Description: nb.Description,
		Sequence:    nb.Sequence,
		Color:       int(nb.Color),
		ColorName:   nb.Color.Name(),
		IsActive:    nb.IsActive,
		EntryCount:  nb.EntryCount,
		CreatedAt:   timex.Time(nb.CreatedAt),
		UpdatedAt:   timex.Time(nb.UpdatedAt),
	}
	if nb.LastEntryAt != nil {
		last := timex.Time(*nb.LastEntryAt)
		out.LastEntryAt = &last
	}
	return out
}

// getNotebook 获取笔记本并转换未找到错误
func (s *notebookService) getNotebook(ctx context.Context, uid, id int64) (*domain.Notebook, error) {
	nb, err := s.notebookRepo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNotebookNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return nb, nil
}

// Create 创建笔记本
func (s *notebookService) Create(ctx context.Context, uid int64, params *dto.NotebookCreateRequest) (*dto.NotebookDTO, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, code.ErrorInvalidParams.WithDetails("notebook name is blank")
	}
	color, err := resolveColor(params.Color)
	if err != nil {
		return nil, err
	}
	if _, err := s.notebookRepo.GetByName(ctx, name, uid); err == nil {
		return nil, code.ErrorNotebookNameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	sequence := defaultNotebookSequence
	if params.Sequence != nil {
		sequence = *params.Sequence
	}
	nb := &domain.Notebook{
		Name:        name,
		Description: params.Description,
		Sequence:    sequence,
		Color:       color,
		IsActive:    true,
	}
	created, err := s.notebookRepo.Create(ctx, nb, uid)
	if err != nil {
		return nil, code.ErrorNotebookCreateFailed.WithDetails(err.Error())
	}
	return s.domainToDTO(created), nil
}

// Update 更新笔记本
func (s *notebookService) Update(ctx context.Context, uid int64, params *dto.NotebookUpdateRequest) (*dto.NotebookDTO, error) {
	nb, err := s.getNotebook(ctx, uid, params.ID)
	if err != nil {
		return nil, err
	}
	if params.Name != "" {
		name := strings.TrimSpace(params.Name)
		if name == "" {
			return nil, code.ErrorInvalidParams.WithDetails("notebook name is blank")
		}
		if name != nb.Name {
			if _, err := s.notebookRepo.GetByName(ctx, name, uid); err == nil {
				return nil, code.ErrorNotebookNameExists
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, code.ErrorDBQuery.WithDetails(err.Error())
			}
		}
		nb.Name = name
	}
	if params.Description != nil {
		nb.Description = *params.Description
	}
	if params.Sequence != nil {
		nb.Sequence = *params.Sequence
	}
	if params.Color != nil {
		color := domain.Color(*params.Color)
		if !domain.ValidColor(color) {
			return nil, code.ErrorInvalidColor
		}
		nb.Color = color
	}
	updated, err := s.notebookRepo.Update(ctx, nb, uid)
	if err != nil {
		return nil, code.ErrorNotebookUpdateFailed.WithDetails(err.Error())
	}
	return s.domainToDTO(updated), nil
}

// Get 根据 ID 获取笔记本
func (s *notebookService) Get(ctx context.Context, uid int64, id int64) (*dto.NotebookDTO, error) {
	nb, err := s.getNotebook(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	count, err := s.entryRepo.CountByNotebook(ctx, id, uid)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	nb.EntryCount = count
	return s.domainToDTO(nb), nil
}

// List 获取笔记本列表
func (s *notebookService) List(ctx context.Context, uid int64, includeInactive bool) ([]*dto.NotebookDTO, error) {
	notebooks, err := s.notebookRepo.List(ctx, uid, includeInactive)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	out := make([]*dto.NotebookDTO, 0, len(notebooks))
	for _, nb := range notebooks {
		out = append(out, s.domainToDTO(nb))
	}
	return out, nil
}

// Archive 停用笔记本
func (s *notebookService) Archive(ctx context.Context, uid int64, id int64) error {
	if _, err := s.getNotebook(ctx, uid, id); err != nil {
		return err
	}
	if err := s.notebookRepo.UpdateActive(ctx, false, id, uid); err != nil {
		return code.ErrorNotebookUpdateFailed.WithDetails(err.Error())
	}
	s.logger.Info("notebook archived", zap.Int64("uid", uid), zap.Int64("notebookId", id))
	return nil
}

// Unarchive 重新启用笔记本
func (s *notebookService) Unarchive(ctx context.Context, uid int64, id int64) error {
	if _, err := s.getNotebook(ctx, uid, id); err != nil {
		return err
	}
	if err := s.notebookRepo.UpdateActive(ctx, true, id, uid); err != nil {
		return code.ErrorNotebookUpdateFailed.WithDetails(err.Error())
	}
	return nil
}

// Delete 删除笔记本
// 包含条目时必须 confirm，级联删除条目及其标签关联与版本
func (s *notebookService) Delete(ctx context.Context, uid int64, id int64, confirm bool) error {
	if _, err := s.getNotebook(ctx, uid, id); err != nil {
		return err
	}
	count, err := s.entryRepo.CountByNotebook(ctx, id, uid)
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if count > 0 {
		if !confirm {
			return code.ErrorNotebookHasEntries.WithData(map[string]int64{"entryCount": count})
		}
		if err := s.entryRepo.DeleteByNotebook(ctx, id, uid); err != nil {
			return code.ErrorNotebookDeleteFailed.WithDetails(err.Error())
		}
	}
	if err := s.notebookRepo.Delete(ctx, id, uid); err != nil {
		return code.ErrorNotebookDeleteFailed.WithDetails(err.Error())
	}
	s.logger.Info("notebook deleted",
		zap.Int64("uid", uid),
		zap.Int64("notebookId", id),
		zap.Int64("cascadedEntries", count))
	return nil
}

// GetOrCreate 按名称获取或创建笔记本
// 使用 Singleflight 合并并发请求，避免重复创建
func (s *notebookService) GetOrCreate(ctx context.Context, uid int64, name string) (*domain.Notebook, error) {
	key := fmt.Sprintf("notebook_get_or_create_%d_%s", uid, name)

	result, err, _ := s.sf.Do(key, func() (interface{}, error) {
		nb, err := s.notebookRepo.GetByName(ctx, name, uid)
		if err == nil {
			return nb, nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created, err := s.notebookRepo.Create(ctx, &domain.Notebook{
				Name:     name,
				Sequence: defaultNotebookSequence,
				Color:    domain.RandomColor(),
				IsActive: true,
			}, uid)
			if err != nil {
				return nil, code.ErrorNotebookCreateFailed.WithDetails(err.Error())
			}
			return created, nil
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Notebook), nil
}
