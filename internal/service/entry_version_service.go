package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/dto"
	"github.com/inkwellapp/journal-service/pkg/app"
	"github.com/inkwellapp/journal-service/pkg/code"
	"github.com/inkwellapp/journal-service/pkg/htmltext"
	"github.com/inkwellapp/journal-service/pkg/timex"
	"github.com/sergi/go-diff/diffmatchpatch"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// versionPreviewRunes 列表预览保留的纯文本字符数
const versionPreviewRunes = 100

// EntryVersionService 定义条目版本业务服务接口
// 版本历史只读，不提供回滚
type EntryVersionService interface {
	// List 分页获取条目的版本列表，序号升序
	List(ctx context.Context, uid int64, params *dto.EntryVersionListRequest, pager *app.Pager) ([]*dto.EntryVersionNoContentDTO, int64, error)

	// Get 获取指定序号的版本全文
	Get(ctx context.Context, uid int64, params *dto.EntryVersionGetRequest) (*dto.EntryVersionDTO, error)

	// Diff 对比两个版本，toSequence 为 0 时与当前正文对比
	Diff(ctx context.Context, uid int64, params *dto.EntryVersionDiffRequest) (*dto.EntryVersionDiffDTO, error)
}

// entryVersionService 实现 EntryVersionService 接口
type entryVersionService struct {
	versionRepo domain.EntryVersionRepository
	entryRepo   domain.EntryRepository
	logger      *zap.Logger
}

// NewEntryVersionService 创建 EntryVersionService 实例
func NewEntryVersionService(versionRepo domain.EntryVersionRepository, entryRepo domain.EntryRepository, logger *zap.Logger) EntryVersionService {
	return &entryVersionService{
		versionRepo: versionRepo,
		entryRepo:   entryRepo,
		logger:      logger,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *entryVersionService) domainToDTO(v *domain.EntryVersion) *dto.EntryVersionDTO {
	if v == nil {
		return nil
	}
	return &dto.EntryVersionDTO{
		ID:        v.ID,
		EntryID:   v.EntryID,
		Sequence:  v.Sequence,
		Title:     v.Title,
		Content:   v.Content,
		WordCount: v.WordCount,
		CharCount: v.CharCount,
		CreatedAt: timex.Time(v.CreatedAt),
	}
}

// domainToNoContentDTO 将领域模型转换为列表 DTO，附纯文本预览与相对时间
func (s *entryVersionService) domainToNoContentDTO(v *domain.EntryVersion, now time.Time) *dto.EntryVersionNoContentDTO {
	if v == nil {
		return nil
	}
	return &dto.EntryVersionNoContentDTO{
		ID:        v.ID,
		EntryID:   v.EntryID,
		Sequence:  v.Sequence,
		Title:     v.Title,
		Preview:   previewText(v.Content),
		Age:       relativeAge(v.CreatedAt, now),
		WordCount: v.WordCount,
		CharCount: v.CharCount,
		CreatedAt: timex.Time(v.CreatedAt),
	}
}

// previewText 提取正文纯文本的前若干字符
func previewText(content string) string {
	text := []rune(htmltext.Render(content))
	if len(text) <= versionPreviewRunes {
		return string(text)
	}
	return string(text[:versionPreviewRunes]) + "..."
}

// relativeAge 生成相对时间描述
func relativeAge(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

// checkEntry 校验条目是否存在
func (s *entryVersionService) checkEntry(ctx context.Context, uid, entryID int64) (*domain.Entry, error) {
	entry, err := s.entryRepo.GetByID(ctx, entryID, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorEntryNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return entry, nil
}

// List 分页获取条目的版本列表
func (s *entryVersionService) List(ctx context.Context, uid int64, params *dto.EntryVersionListRequest, pager *app.Pager) ([]*dto.EntryVersionNoContentDTO, int64, error) {
	if _, err := s.checkEntry(ctx, uid, params.EntryID); err != nil {
		return nil, 0, err
	}
	versions, err := s.versionRepo.List(ctx, params.EntryID, uid, pager.Page, pager.PageSize)
	if err != nil {
		return nil, 0, code.ErrorVersionListFailed.WithDetails(err.Error())
	}
	count, err := s.versionRepo.ListCount(ctx, params.EntryID, uid)
	if err != nil {
		return nil, 0, code.ErrorVersionListFailed.WithDetails(err.Error())
	}
	now := time.Now()
	out := make([]*dto.EntryVersionNoContentDTO, 0, len(versions))
	for _, v := range versions {
		out = append(out, s.domainToNoContentDTO(v, now))
	}
	return out, count, nil
}

// Get 获取指定序号的版本全文
func (s *entryVersionService) Get(ctx context.Context, uid int64, params *dto.EntryVersionGetRequest) (*dto.EntryVersionDTO, error) {
	version, err := s.versionRepo.GetBySequence(ctx, params.EntryID, params.Sequence, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorVersionNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(version), nil
}

// Diff 对比两个版本的正文
// toSequence 为 0 时与条目当前正文对比
func (s *entryVersionService) Diff(ctx context.Context, uid int64, params *dto.EntryVersionDiffRequest) (*dto.EntryVersionDiffDTO, error) {
	from, err := s.versionRepo.GetBySequence(ctx, params.EntryID, params.FromSequence, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorVersionNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	var toContent string
	toSequence := params.ToSequence
	if toSequence == 0 {
		entry, err := s.checkEntry(ctx, uid, params.EntryID)
		if err != nil {
			return nil, err
		}
		toContent = entry.Content
	} else {
		to, err := s.versionRepo.GetBySequence(ctx, params.EntryID, toSequence, uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, code.ErrorVersionNotFound
			}
			return nil, code.ErrorDBQuery.WithDetails(err.Error())
		}
		toContent = to.Content
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(from.Content, toContent, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	segments := make([]*dto.DiffSegment, 0, len(diffs))
	for _, d := range diffs {
		op := "equal"
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = "insert"
		case diffmatchpatch.DiffDelete:
			op = "delete"
		}
		segments = append(segments, &dto.DiffSegment{Op: op, Text: d.Text})
	}
	return &dto.EntryVersionDiffDTO{
		EntryID:      params.EntryID,
		FromSequence: params.FromSequence,
		ToSequence:   toSequence,
		Segments:     segments,
	}, nil
}
