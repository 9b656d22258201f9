package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/dto"
	"github.com/inkwellapp/journal-service/pkg/app"
	"github.com/inkwellapp/journal-service/pkg/code"
	"github.com/inkwellapp/journal-service/pkg/htmltext"
	"github.com/inkwellapp/journal-service/pkg/timex"
	"github.com/inkwellapp/journal-service/pkg/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// entryDateLayout 条目日期的请求格式
const entryDateLayout = "2006-01-02"

// defaultVersionKeepCount 未配置时每篇条目保留的版本数
const defaultVersionKeepCount = 20

// EntryService 定义日记条目业务服务接口
// 提供条目的增删改查、生命周期流转与版本记录
type EntryService interface {
	// Create 创建条目，初始状态为草稿，正文非空时记录首个版本
	Create(ctx context.Context, uid int64, params *dto.EntryCreateRequest) (*dto.EntryDTO, error)

	// Update 更新条目，正文变更时追加版本快照并按保留数量裁剪
	Update(ctx context.Context, uid int64, params *dto.EntryUpdateRequest) (*dto.EntryDTO, error)

	// Get 获取单条条目
	Get(ctx context.Context, uid int64, id int64) (*dto.EntryDTO, error)

	// List 分页获取条目列表，默认不含已归档条目
	List(ctx context.Context, uid int64, params *dto.EntryListRequest, pager *app.Pager) ([]*dto.EntryNoContentDTO, int64, error)

	// Publish 发布草稿条目
	Publish(ctx context.Context, uid int64, id int64) (*dto.EntryDTO, error)

	// Unpublish 将已发布条目退回草稿
	Unpublish(ctx context.Context, uid int64, id int64) (*dto.EntryDTO, error)

	// Archive 归档条目，不影响版本历史
	Archive(ctx context.Context, uid int64, id int64) (*dto.EntryDTO, error)

	// Restore 将已归档条目恢复到指定状态
	Restore(ctx context.Context, uid int64, id int64, target string) (*dto.EntryDTO, error)

	// ToggleFavorite 切换收藏标记，不记录版本
	ToggleFavorite(ctx context.Context, uid int64, id int64) (*dto.EntryDTO, error)

	// Duplicate 复制条目，副本为草稿且版本历史从头开始
	Duplicate(ctx context.Context, uid int64, id int64) (*dto.EntryDTO, error)

	// Delete 删除条目及其全部版本
	Delete(ctx context.Context, uid int64, id int64) error
}

// entryService 实现 EntryService 接口
type entryService struct {
	entryRepo    domain.EntryRepository
	versionRepo  domain.EntryVersionRepository
	notebookRepo domain.NotebookRepository
	tagService   TagService
	logger       *zap.Logger
	config       *AppServiceConfig
}

// NewEntryService 创建 EntryService 实例
func NewEntryService(entryRepo domain.EntryRepository, versionRepo domain.EntryVersionRepository, notebookRepo domain.NotebookRepository, tagSvc TagService, logger *zap.Logger, config *AppServiceConfig) EntryService {
	if config == nil {
		config = &AppServiceConfig{VersionKeepCount: defaultVersionKeepCount}
	}
	if config.VersionKeepCount <= 0 {
		config.VersionKeepCount = defaultVersionKeepCount
	}
	return &entryService{
		entryRepo:    entryRepo,
		versionRepo:  versionRepo,
		notebookRepo: notebookRepo,
		tagService:   tagSvc,
		logger:       logger,
		config:       config,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *entryService) domainToDTO(entry *domain.Entry, notebookName string, currentVersion, versionCount int64) *dto.EntryDTO {
	if entry == nil {
		return nil
	}
	return &dto.EntryDTO{
		ID:             entry.ID,
		NotebookID:     entry.NotebookID,
		NotebookName:   notebookName,
		Title:          entry.Title,
		Content:        entry.Content,
		EntryDate:      timex.Time(entry.EntryDate),
		State:          string(entry.State),
		Mood:           string(entry.Mood),
		MoodLabel:      entry.Mood.Label(),
		IsFavorite:     entry.IsFavorite,
		WordCount:      entry.WordCount,
		CharCount:      entry.CharCount,
		Tags:           tagsToDTO(entry.Tags),
		CurrentVersion: currentVersion,
		VersionCount:   versionCount,
		LastEditedAt:   timex.Time(entry.LastEditedAt),
		CreatedAt:      timex.Time(entry.CreatedAt),
		UpdatedAt:      timex.Time(entry.UpdatedAt),
	}
}

// entryToNoContentDTO 将领域模型转换为不含正文的列表 DTO
// 条目列表与搜索结果共用
func entryToNoContentDTO(entry *domain.Entry, notebookName string) *dto.EntryNoContentDTO {
	if entry == nil {
		return nil
	}
	return &dto.EntryNoContentDTO{
		ID:           entry.ID,
		NotebookID:   entry.NotebookID,
		NotebookName: notebookName,
		Title:        entry.Title,
		EntryDate:    timex.Time(entry.EntryDate),
		State:        string(entry.State),
		Mood:         string(entry.Mood),
		MoodLabel:    entry.Mood.Label(),
		IsFavorite:   entry.IsFavorite,
		WordCount:    entry.WordCount,
		CharCount:    entry.CharCount,
		Tags:         tagsToDTO(entry.Tags),
		LastEditedAt: timex.Time(entry.LastEditedAt),
	}
}

// tagsToDTO 将标签领域模型列表转换为 DTO 列表
func tagsToDTO(tags []*domain.Tag) []*dto.TagDTO {
	out := make([]*dto.TagDTO, 0, len(tags))
	for _, t := range tags {
		out = append(out, &dto.TagDTO{
			ID:        t.ID,
			Name:      t.Name,
			Color:     int(t.Color),
			ColorName: t.Color.Name(),
			IsActive:  t.IsActive,
			CreatedAt: timex.Time(t.CreatedAt),
			UpdatedAt: timex.Time(t.UpdatedAt),
		})
	}
	return out
}

// buildSearchVector 构建小写的全文搜索向量
// 标题、正文纯文本、标签名、笔记本名与心情标签都参与匹配
func buildSearchVector(entry *domain.Entry, notebookName string) string {
	parts := []string{
		entry.Title,
		htmltext.Render(entry.Content),
		notebookName,
		entry.Mood.Label(),
	}
	parts = append(parts, entry.TagNames()...)
	return strings.ToLower(strings.Join(parts, " "))
}

// parseEntryDate 解析条目日期参数，空值返回 nil
func parseEntryDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(entryDateLayout, s, time.Local)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// validateTitle 校验标题，去除首尾空白后至少 2 个字符
func validateTitle(title string) error {
	if len([]rune(strings.TrimSpace(title))) < 2 {
		return code.ErrorEntryTitleTooShort
	}
	return nil
}

// getNotebook 获取笔记本并转换未找到错误
func (s *entryService) getNotebook(ctx context.Context, uid, id int64) (*domain.Notebook, error) {
	nb, err := s.notebookRepo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorNotebookNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return nb, nil
}

// getEntry 获取条目并转换未找到错误
func (s *entryService) getEntry(ctx context.Context, uid, id int64) (*domain.Entry, error) {
	entry, err := s.entryRepo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorEntryNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return entry, nil
}

// resolveTags 将标签ID与标签名解析为标签列表，名称不存在时按需创建
func (s *entryService) resolveTags(ctx context.Context, uid int64, tagIDs []int64, tagNames []string) ([]*domain.Tag, error) {
	tags := make([]*domain.Tag, 0, len(tagIDs)+len(tagNames))
	if len(tagIDs) > 0 {
		found, err := s.tagService.ListByIDs(ctx, uid, tagIDs)
		if err != nil {
			return nil, err
		}
		if len(found) != len(util.ArrayUniqueInt64(tagIDs)) {
			return nil, code.ErrorTagNotFound
		}
		tags = append(tags, found...)
	}
	for _, name := range util.ArrayUnique(tagNames) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, err := s.tagService.GetOrCreate(ctx, uid, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	// 同一标签可能同时出现在 ID 与名称里
	seen := make(map[int64]bool, len(tags))
	out := make([]*domain.Tag, 0, len(tags))
	for _, t := range tags {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out, nil
}

// recordVersion 追加版本快照并裁剪超出保留数量的最旧版本
func (s *entryService) recordVersion(ctx context.Context, uid int64, entry *domain.Entry) error {
	seq, err := s.versionRepo.MaxSequence(ctx, entry.ID, uid)
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	version := &domain.EntryVersion{
		EntryID:   entry.ID,
		Sequence:  seq + 1,
		Title:     entry.Title,
		Content:   entry.Content,
		WordCount: entry.WordCount,
		CharCount: entry.CharCount,
	}
	if _, err := s.versionRepo.Create(ctx, version, uid); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	pruned, err := s.versionRepo.DeleteExcess(ctx, entry.ID, uid, s.config.VersionKeepCount)
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if pruned > 0 {
		s.logger.Debug("pruned entry versions",
			zap.Int64("entryId", entry.ID),
			zap.Int64("pruned", pruned))
	}
	return nil
}

// versionStats 获取条目的当前版本号与版本数量
func (s *entryService) versionStats(ctx context.Context, uid, entryID int64) (int64, int64, error) {
	current, err := s.versionRepo.MaxSequence(ctx, entryID, uid)
	if err != nil {
		return 0, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}
	count, err := s.versionRepo.ListCount(ctx, entryID, uid)
	if err != nil {
		return 0, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return current, count, nil
}

// Create 创建条目
func (s *entryService) Create(ctx context.Context, uid int64, params *dto.EntryCreateRequest) (*dto.EntryDTO, error) {
	if err := validateTitle(params.Title); err != nil {
		return nil, err
	}
	entryDate, err := parseEntryDate(params.EntryDate)
	if err != nil {
		return nil, code.ErrorInvalidParams.WithDetails(err.Error())
	}
	now := time.Now()
	if entryDate == nil {
		entryDate = &now
	}
	if entryDate.After(util.GetEndTime(now)) {
		return nil, code.ErrorEntryDateInFuture
	}
	mood := domain.Mood(params.Mood)
	if !domain.ValidMood(mood) {
		return nil, code.ErrorInvalidMood
	}
	notebook, err := s.getNotebook(ctx, uid, params.NotebookID)
	if err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(ctx, uid, params.TagIDs, params.TagNames)
	if err != nil {
		return nil, err
	}

	words, chars := htmltext.Counts(params.Content)
	entry := &domain.Entry{
		NotebookID:   notebook.ID,
		Title:        strings.TrimSpace(params.Title),
		Content:      params.Content,
		EntryDate:    *entryDate,
		State:        domain.EntryStateDraft,
		Mood:         mood,
		WordCount:    words,
		CharCount:    chars,
		ContentHash:  util.EncodeMD5(params.Content),
		Tags:         tags,
		LastEditedAt: now,
	}
	entry.SearchVector = buildSearchVector(entry, notebook.Name)

	created, err := s.entryRepo.Create(ctx, entry, uid)
	if err != nil {
		return nil, code.ErrorEntryCreateFailed.WithDetails(err.Error())
	}
	if len(tags) > 0 {
		ids := make([]int64, 0, len(tags))
		for _, t := range tags {
			ids = append(ids, t.ID)
		}
		if err := s.entryRepo.SetTags(ctx, created.ID, ids, uid); err != nil {
			return nil, code.ErrorEntryCreateFailed.WithDetails(err.Error())
		}
	}
	if params.Content != "" {
		if err := s.recordVersion(ctx, uid, created); err != nil {
			return nil, err
		}
	}
	s.logger.Info("entry created",
		zap.Int64("uid", uid),
		zap.Int64("entryId", created.ID),
		zap.Int64("notebookId", notebook.ID))

	current, count, err := s.versionStats(ctx, uid, created.ID)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(created, notebook.Name, current, count), nil
}

// Update 更新条目
func (s *entryService) Update(ctx context.Context, uid int64, params *dto.EntryUpdateRequest) (*dto.EntryDTO, error) {
	entry, err := s.getEntry(ctx, uid, params.ID)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	if params.Title != "" {
		if err := validateTitle(params.Title); err != nil {
			return nil, err
		}
		entry.Title = strings.TrimSpace(params.Title)
	}
	if params.EntryDate != "" {
		entryDate, err := parseEntryDate(params.EntryDate)
		if err != nil {
			return nil, code.ErrorInvalidParams.WithDetails(err.Error())
		}
		if entryDate.After(util.GetEndTime(now)) {
			return nil, code.ErrorEntryDateInFuture
		}
		entry.EntryDate = *entryDate
	}
	if params.Mood != nil {
		mood := domain.Mood(*params.Mood)
		if !domain.ValidMood(mood) {
			return nil, code.ErrorInvalidMood
		}
		entry.Mood = mood
	}

	notebook, err := s.getNotebook(ctx, uid, entry.NotebookID)
	if err != nil {
		return nil, err
	}
	if params.NotebookID > 0 && params.NotebookID != entry.NotebookID {
		notebook, err = s.getNotebook(ctx, uid, params.NotebookID)
		if err != nil {
			return nil, err
		}
		entry.NotebookID = notebook.ID
	}

	tagsProvided := params.TagIDs != nil || params.TagNames != nil
	if tagsProvided {
		tags, err := s.resolveTags(ctx, uid, params.TagIDs, params.TagNames)
		if err != nil {
			return nil, err
		}
		entry.Tags = tags
	}

	contentChanged := false
	if params.Content != nil {
		newHash := util.EncodeMD5(*params.Content)
		contentChanged = newHash != entry.ContentHash
		entry.Content = *params.Content
		entry.ContentHash = newHash
		entry.WordCount, entry.CharCount = htmltext.Counts(*params.Content)
		if contentChanged {
			entry.LastEditedAt = now
		}
	}
	entry.SearchVector = buildSearchVector(entry, notebook.Name)

	updated, err := s.entryRepo.Update(ctx, entry, uid)
	if err != nil {
		return nil, code.ErrorEntryUpdateFailed.WithDetails(err.Error())
	}
	if tagsProvided {
		ids := make([]int64, 0, len(entry.Tags))
		for _, t := range entry.Tags {
			ids = append(ids, t.ID)
		}
		if err := s.entryRepo.SetTags(ctx, entry.ID, ids, uid); err != nil {
			return nil, code.ErrorEntryUpdateFailed.WithDetails(err.Error())
		}
	}
	if contentChanged {
		if err := s.recordVersion(ctx, uid, updated); err != nil {
			return nil, err
		}
	}

	current, count, err := s.versionStats(ctx, uid, entry.ID)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(updated, notebook.Name, current, count), nil
}

// Get 获取单条条目
func (s *entryService) Get(ctx context.Context, uid int64, id int64) (*dto.EntryDTO, error) {
	entry, err := s.getEntry(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	notebook, err := s.getNotebook(ctx, uid, entry.NotebookID)
	if err != nil {
		return nil, err
	}
	current, count, err := s.versionStats(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(entry, notebook.Name, current, count), nil
}

// List 分页获取条目列表
func (s *entryService) List(ctx context.Context, uid int64, params *dto.EntryListRequest, pager *app.Pager) ([]*dto.EntryNoContentDTO, int64, error) {
	filter, err := listRequestToFilter(params)
	if err != nil {
		return nil, 0, err
	}
	entries, err := s.entryRepo.List(ctx, *filter, pager.Page, pager.PageSize, uid)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}
	count, err := s.entryRepo.ListCount(ctx, *filter, uid)
	if err != nil {
		return nil, 0, code.ErrorDBQuery.WithDetails(err.Error())
	}

	names, err := s.notebookNames(ctx, uid)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.EntryNoContentDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entryToNoContentDTO(entry, names[entry.NotebookID]))
	}
	return out, count, nil
}

// notebookNames 获取笔记本ID到名称的映射
func (s *entryService) notebookNames(ctx context.Context, uid int64) (map[int64]string, error) {
	notebooks, err := s.notebookRepo.List(ctx, uid, true)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	names := make(map[int64]string, len(notebooks))
	for _, nb := range notebooks {
		names[nb.ID] = nb.Name
	}
	return names, nil
}

// listRequestToFilter 将列表请求转换为仓储筛选条件
func listRequestToFilter(params *dto.EntryListRequest) (*domain.EntryFilter, error) {
	filter := &domain.EntryFilter{
		NotebookID:      params.NotebookID,
		State:           domain.EntryState(params.State),
		Mood:            domain.Mood(params.Mood),
		HasMood:         params.HasMood,
		TagID:           params.TagID,
		Favorite:        params.Favorite,
		Keyword:         params.Keyword,
		FullText:        true,
		IncludeArchived: params.IncludeArchived,
	}
	from, err := parseEntryDate(params.DateFrom)
	if err != nil {
		return nil, code.ErrorInvalidParams.WithDetails(err.Error())
	}
	filter.DateFrom = from
	to, err := parseEntryDate(params.DateTo)
	if err != nil {
		return nil, code.ErrorInvalidParams.WithDetails(err.Error())
	}
	if to != nil {
		end := util.GetEndTime(*to)
		filter.DateTo = &end
	}
	return filter, nil
}

// changeState 执行生命周期流转
func (s *entryService) changeState(ctx context.Context, uid, id int64, target domain.EntryState) (*dto.EntryDTO, error) {
	entry, err := s.getEntry(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(entry.State, target) {
		return nil, code.ErrorInvalidStateTransition.WithDetails(
			string(entry.State) + " -> " + string(target))
	}
	if err := s.entryRepo.UpdateState(ctx, target, id, uid); err != nil {
		return nil, code.ErrorEntryUpdateFailed.WithDetails(err.Error())
	}
	s.logger.Info("entry state changed",
		zap.Int64("uid", uid),
		zap.Int64("entryId", id),
		zap.String("from", string(entry.State)),
		zap.String("to", string(target)))
	return s.Get(ctx, uid, id)
}

// changeStateFrom 校验来源状态后执行生命周期流转
// 已归档条目不走这里，只能通过 Restore 离开归档态
func (s *entryService) changeStateFrom(ctx context.Context, uid, id int64, from, target domain.EntryState) (*dto.EntryDTO, error) {
	entry, err := s.getEntry(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	if entry.State != from {
		return nil, code.ErrorInvalidStateTransition.WithDetails(
			string(entry.State) + " -> " + string(target))
	}
	return s.changeState(ctx, uid, id, target)
}

// Publish 发布草稿条目
func (s *entryService) Publish(ctx context.Context, uid int64, id int64) (*dto.EntryDTO, error) {
	return s.changeStateFrom(ctx, uid, id, domain.EntryStateDraft, domain.EntryStatePublished)
}

// Unpublish 将已发布条目退回草稿
func (s *entryService) Unpublish(ctx context.Context, uid int64, id int64) (*dto.EntryDTO, error) {
	return s.changeStateFrom(ctx, uid, id, domain.EntryStatePublished, domain.EntryStateDraft)
}

// Archive 归档条目
func (s *entryService) Archive(ctx context.Context, uid int64, id int64) (*dto.EntryDTO, error) {
	return s.changeState(ctx, uid, id, domain.EntryStateArchived)
}

// Restore 将已归档条目恢复到指定状态
func (s *entryService) Restore(ctx context.Context, uid int64, id int64, target string) (*dto.EntryDTO, error) {
	state := domain.EntryState(target)
	if state != domain.EntryStateDraft && state != domain.EntryStatePublished {
		return nil, code.ErrorInvalidStateTransition.WithDetails("restore target " + target)
	}
	entry, err := s.getEntry(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	if !entry.IsArchived() {
		return nil, code.ErrorInvalidStateTransition.WithDetails(
			string(entry.State) + " -> " + target)
	}
	return s.changeState(ctx, uid, id, state)
}

// ToggleFavorite 切换收藏标记
func (s *entryService) ToggleFavorite(ctx context.Context, uid int64, id int64) (*dto.EntryDTO, error) {
	entry, err := s.getEntry(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	if err := s.entryRepo.UpdateFavorite(ctx, !entry.IsFavorite, id, uid); err != nil {
		return nil, code.ErrorEntryUpdateFailed.WithDetails(err.Error())
	}
	return s.Get(ctx, uid, id)
}

// Duplicate 复制条目，副本为草稿且版本历史从头开始
func (s *entryService) Duplicate(ctx context.Context, uid int64, id int64) (*dto.EntryDTO, error) {
	src, err := s.getEntry(ctx, uid, id)
	if err != nil {
		return nil, err
	}
	notebook, err := s.getNotebook(ctx, uid, src.NotebookID)
	if err != nil {
		return nil, err
	}

	dup := &domain.Entry{
		NotebookID:   src.NotebookID,
		Title:        src.Title + " (Copy)",
		Content:      src.Content,
		EntryDate:    src.EntryDate,
		State:        domain.EntryStateDraft,
		Mood:         src.Mood,
		WordCount:    src.WordCount,
		CharCount:    src.CharCount,
		ContentHash:  src.ContentHash,
		Tags:         src.Tags,
		LastEditedAt: time.Now(),
	}
	dup.SearchVector = buildSearchVector(dup, notebook.Name)

	created, err := s.entryRepo.Create(ctx, dup, uid)
	if err != nil {
		return nil, code.ErrorEntryCreateFailed.WithDetails(err.Error())
	}
	if len(src.Tags) > 0 {
		ids := make([]int64, 0, len(src.Tags))
		for _, t := range src.Tags {
			ids = append(ids, t.ID)
		}
		if err := s.entryRepo.SetTags(ctx, created.ID, ids, uid); err != nil {
			return nil, code.ErrorEntryCreateFailed.WithDetails(err.Error())
		}
	}
	if created.Content != "" {
		if err := s.recordVersion(ctx, uid, created); err != nil {
			return nil, err
		}
	}

	current, count, err := s.versionStats(ctx, uid, created.ID)
	if err != nil {
		return nil, err
	}
	return s.domainToDTO(created, notebook.Name, current, count), nil
}

// Delete 删除条目及其全部版本
func (s *entryService) Delete(ctx context.Context, uid int64, id int64) error {
	if _, err := s.getEntry(ctx, uid, id); err != nil {
		return err
	}
	if err := s.versionRepo.DeleteByEntry(ctx, id, uid); err != nil {
		return code.ErrorEntryDeleteFailed.WithDetails(err.Error())
	}
	if err := s.entryRepo.Delete(ctx, id, uid); err != nil {
		return code.ErrorEntryDeleteFailed.WithDetails(err.Error())
	}
	s.logger.Info("entry deleted",
		zap.Int64("uid", uid),
		zap.Int64("entryId", id))
	return nil
}
