package service

import (
	"context"
	"errors"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/dto"
	"github.com/inkwellapp/journal-service/pkg/app"
	"github.com/inkwellapp/journal-service/pkg/code"
	"github.com/inkwellapp/journal-service/pkg/timex"
	"github.com/inkwellapp/journal-service/pkg/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService 定义用户业务服务接口
// 为所有条目数据提供按 uid 隔离的身份
type UserService interface {
	// Register 用户注册
	Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error)

	// Login 用户登录，签发 Token
	Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserDTO, error)

	// ChangePassword 修改密码
	ChangePassword(ctx context.Context, uid int64, params *dto.UserChangePasswordRequest) error

	// GetInfo 获取用户信息
	GetInfo(ctx context.Context, uid int64) (*dto.UserDTO, error)

	// Deactivate 注销账号，标记删除后由清理任务物理删除
	Deactivate(ctx context.Context, uid int64, params *dto.UserDeactivateRequest) error
}

// userService 实现 UserService 接口
type userService struct {
	userRepo     domain.UserRepository
	tokenManager app.TokenManager
	logger       *zap.Logger
	config       *ServiceConfig
}

// NewUserService 创建 UserService 实例
func NewUserService(userRepo domain.UserRepository, tokenManager app.TokenManager, logger *zap.Logger, config *ServiceConfig) UserService {
	return &userService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
		logger:       logger,
		config:       config,
	}
}

// domainToDTO 将领域模型转换为 DTO
func (s *userService) domainToDTO(user *domain.User) *dto.UserDTO {
	if user == nil {
		return nil
	}
	return &dto.UserDTO{
		UID:       user.ID,
		Email:     user.Email,
		Nickname:  user.Nickname,
		Avatar:    user.Avatar,
		UpdatedAt: timex.Time(user.UpdatedAt),
		CreatedAt: timex.Time(user.CreatedAt),
	}
}

// Register 用户注册
func (s *userService) Register(ctx context.Context, params *dto.UserCreateRequest) (*dto.UserDTO, error) {
	if s.config == nil || !s.config.User.RegisterIsEnable {
		return nil, code.ErrorUserRegisterFailed.WithDetails("registration is disabled")
	}
	if !util.IsValidEmail(params.Email) {
		return nil, code.ErrorInvalidParams.WithDetails("invalid email address")
	}
	if params.Password != params.ConfirmPassword {
		return nil, code.ErrorInvalidParams.WithDetails("password confirmation does not match")
	}

	existing, err := s.userRepo.GetByEmail(ctx, params.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	if existing != nil {
		return nil, code.ErrorUserEmailExists
	}

	password, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return nil, code.ErrorUserRegisterFailed.WithDetails(err.Error())
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Email:    params.Email,
		Nickname: params.Nickname,
		Password: password,
		Salt:     util.GetRandomString(16),
	})
	if err != nil {
		return nil, code.ErrorUserRegisterFailed.WithDetails(err.Error())
	}
	s.logger.Info("user registered", zap.Int64("uid", user.ID))

	token, err := s.tokenManager.Generate(user.ID, user.Nickname, "")
	if err != nil {
		return nil, code.ErrorUserAuthTokenGenerate.WithDetails(err.Error())
	}
	out := s.domainToDTO(user)
	out.Token = token
	return out, nil
}

// Login 用户登录
func (s *userService) Login(ctx context.Context, params *dto.UserLoginRequest, clientIP string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByEmail(ctx, params.Email)
	if err != nil {
		// 不暴露用户是否存在，统一返回邮箱或密码错误
		return nil, code.ErrorUserLoginFailed
	}
	if !util.CheckPasswordHash(user.Password, params.Password) {
		return nil, code.ErrorUserLoginFailed
	}

	token, err := s.tokenManager.Generate(user.ID, user.Nickname, clientIP)
	if err != nil {
		return nil, code.ErrorUserAuthTokenGenerate.WithDetails(err.Error())
	}
	out := s.domainToDTO(user)
	out.Token = token
	return out, nil
}

// ChangePassword 修改密码
func (s *userService) ChangePassword(ctx context.Context, uid int64, params *dto.UserChangePasswordRequest) error {
	if params.Password != params.ConfirmPassword {
		return code.ErrorInvalidParams.WithDetails("password confirmation does not match")
	}
	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorUserNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if !util.CheckPasswordHash(user.Password, params.OldPassword) {
		return code.ErrorUserChangePasswordFailed.WithDetails("old password is incorrect")
	}
	password, err := util.GeneratePasswordHash(params.Password)
	if err != nil {
		return code.ErrorUserChangePasswordFailed.WithDetails(err.Error())
	}
	if err := s.userRepo.UpdatePassword(ctx, uid, password, util.GetRandomString(16)); err != nil {
		return code.ErrorUserChangePasswordFailed.WithDetails(err.Error())
	}
	s.logger.Info("user password changed", zap.Int64("uid", uid))
	return nil
}

// GetInfo 获取用户信息
func (s *userService) GetInfo(ctx context.Context, uid int64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, code.ErrorUserNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return s.domainToDTO(user), nil
}

// Deactivate 注销账号
// 仅打软删除标记，旧 Token 随即失效于查询层，物理删除交给清理任务
func (s *userService) Deactivate(ctx context.Context, uid int64, params *dto.UserDeactivateRequest) error {
	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code.ErrorUserNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if !util.CheckPasswordHash(user.Password, params.Password) {
		return code.ErrorUserDeactivateFailed.WithDetails("password is incorrect")
	}
	user.IsDeleted = true
	if _, err := s.userRepo.Update(ctx, user); err != nil {
		return code.ErrorUserDeactivateFailed.WithDetails(err.Error())
	}
	s.logger.Info("user deactivated", zap.Int64("uid", uid))
	return nil
}
