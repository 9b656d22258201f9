package service

import (
	"context"
	"testing"

	"github.com/inkwellapp/journal-service/internal/domain"
	"github.com/inkwellapp/journal-service/internal/dto"
	"github.com/inkwellapp/journal-service/pkg/app"
	"github.com/inkwellapp/journal-service/pkg/code"
	"github.com/inkwellapp/journal-service/pkg/util"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- Mocks ---

type userMockUserRepo struct {
	domain.UserRepository
	users  map[int64]*domain.User
	nextID int64
}

func newUserMockUserRepo() *userMockUserRepo {
	return &userMockUserRepo{users: map[int64]*domain.User{}}
}

func (m *userMockUserRepo) GetByID(ctx context.Context, uid int64) (*domain.User, error) {
	if u, ok := m.users[uid]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *userMockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *userMockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.nextID++
	out := *user
	out.ID = m.nextID
	m.users[out.ID] = &out
	return &out, nil
}

func (m *userMockUserRepo) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := m.users[user.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *user
	m.users[user.ID] = &out
	return &out, nil
}

func (m *userMockUserRepo) UpdatePassword(ctx context.Context, uid int64, password, salt string) error {
	u, ok := m.users[uid]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Password = password
	u.Salt = salt
	return nil
}

func newTestUserService(registerEnabled bool) (UserService, *userMockUserRepo) {
	repo := newUserMockUserRepo()
	tm := app.NewTokenManager(app.TokenConfig{SecretKey: "test-secret"})
	svc := NewUserService(repo, tm, zap.NewNop(), &ServiceConfig{
		User: UserServiceConfig{RegisterIsEnable: registerEnabled},
	})
	return svc, repo
}

// --- Tests ---

func TestUserRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestUserService(true)

	out, err := svc.Register(ctx, &dto.UserCreateRequest{
		Email:           "ada@example.com",
		Nickname:        "ada",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if out.Token == "" {
		t.Error("register should issue a token")
	}
	stored := repo.users[out.UID]
	if stored.Password == "secret123" {
		t.Error("password stored in plain text")
	}
	if !util.CheckPasswordHash(stored.Password, "secret123") {
		t.Error("stored hash does not verify")
	}

	logged, err := svc.Login(ctx, &dto.UserLoginRequest{Email: "ada@example.com", Password: "secret123"}, "127.0.0.1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if logged.UID != out.UID || logged.Token == "" {
		t.Errorf("unexpected login result: %+v", logged)
	}
}

func TestUserRegisterValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		enabled  bool
		params   *dto.UserCreateRequest
		wantCode *code.Code
	}{
		{
			name:     "registration disabled",
			enabled:  false,
			params:   &dto.UserCreateRequest{Email: "a@b.com", Password: "x", ConfirmPassword: "x"},
			wantCode: code.ErrorUserRegisterFailed,
		},
		{
			name:     "invalid email",
			enabled:  true,
			params:   &dto.UserCreateRequest{Email: "not-an-email", Password: "x", ConfirmPassword: "x"},
			wantCode: code.ErrorInvalidParams,
		},
		{
			name:     "confirmation mismatch",
			enabled:  true,
			params:   &dto.UserCreateRequest{Email: "a@b.com", Password: "x", ConfirmPassword: "y"},
			wantCode: code.ErrorInvalidParams,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestUserService(tt.enabled)
			_, err := svc.Register(ctx, tt.params)
			codeErr, ok := err.(*code.Code)
			if !ok || codeErr.Code() != tt.wantCode.Code() {
				t.Fatalf("err = %v, want code %d", err, tt.wantCode.Code())
			}
		})
	}
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUserService(true)

	params := &dto.UserCreateRequest{
		Email:           "dup@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
	if _, err := svc.Register(ctx, params); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(ctx, params)
	codeErr, ok := err.(*code.Code)
	if !ok || codeErr.Code() != code.ErrorUserEmailExists.Code() {
		t.Fatalf("err = %v, want ErrorUserEmailExists", err)
	}
}

func TestUserLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUserService(true)

	if _, err := svc.Register(ctx, &dto.UserCreateRequest{
		Email:           "ada@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// 密码错误与用户不存在返回同一错误
	for _, email := range []string{"ada@example.com", "ghost@example.com"} {
		_, err := svc.Login(ctx, &dto.UserLoginRequest{Email: email, Password: "wrong"}, "")
		codeErr, ok := err.(*code.Code)
		if !ok || codeErr.Code() != code.ErrorUserLoginFailed.Code() {
			t.Fatalf("err = %v, want ErrorUserLoginFailed", err)
		}
	}
}

func TestUserChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestUserService(true)

	out, err := svc.Register(ctx, &dto.UserCreateRequest{
		Email:           "ada@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	err = svc.ChangePassword(ctx, out.UID, &dto.UserChangePasswordRequest{
		OldPassword:     "wrong",
		Password:        "newpass456",
		ConfirmPassword: "newpass456",
	})
	codeErr, ok := err.(*code.Code)
	if !ok || codeErr.Code() != code.ErrorUserChangePasswordFailed.Code() {
		t.Fatalf("err = %v, want ErrorUserChangePasswordFailed", err)
	}

	if err := svc.ChangePassword(ctx, out.UID, &dto.UserChangePasswordRequest{
		OldPassword:     "secret123",
		Password:        "newpass456",
		ConfirmPassword: "newpass456",
	}); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}
	if !util.CheckPasswordHash(repo.users[out.UID].Password, "newpass456") {
		t.Error("new password hash does not verify")
	}
}

func TestUserDeactivate(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestUserService(true)

	out, err := svc.Register(ctx, &dto.UserCreateRequest{
		Email:           "ada@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// 密码不对不能注销
	err = svc.Deactivate(ctx, out.UID, &dto.UserDeactivateRequest{Password: "wrong"})
	codeErr, ok := err.(*code.Code)
	if !ok || codeErr.Code() != code.ErrorUserDeactivateFailed.Code() {
		t.Fatalf("err = %v, want ErrorUserDeactivateFailed", err)
	}
	if repo.users[out.UID].IsDeleted {
		t.Fatal("user marked deleted after failed deactivation")
	}

	if err := svc.Deactivate(ctx, out.UID, &dto.UserDeactivateRequest{Password: "secret123"}); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}
	if !repo.users[out.UID].IsDeleted {
		t.Error("user not marked deleted after deactivation")
	}

	// 不存在的用户
	err = svc.Deactivate(ctx, 999, &dto.UserDeactivateRequest{Password: "secret123"})
	codeErr, ok = err.(*code.Code)
	if !ok || codeErr.Code() != code.ErrorUserNotFound.Code() {
		t.Fatalf("err = %v, want ErrorUserNotFound", err)
	}
}
