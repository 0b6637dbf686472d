package usecase

import (
	"context"
	"testing"

	"limo-booking/internal/data/entity"
	"limo-booking/internal/dto/request"
	"limo-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockSessionRepo struct {
	createFn func(ctx context.Context, session *entity.Session) error
	revokeFn func(ctx context.Context, token string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}
func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	return nil, nil
}
func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, token)
	}
	return nil
}

type mockUserRepoWithEmail struct {
	mockUserRepo
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	createUserFn  func(ctx context.Context, user *entity.User) error
}

func (m *mockUserRepoWithEmail) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}
func (m *mockUserRepoWithEmail) Create(ctx context.Context, user *entity.User) error {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return nil
}

func authTestService(repoSetup func(r *mockUserRepoWithEmail)) AuthService {
	userRepo := &mockUserRepoWithEmail{}
	if repoSetup != nil {
		repoSetup(userRepo)
	}
	repo := testRepo()
	repo.User = userRepo
	repo.Session = &mockSessionRepo{}
	return NewAuthService(repo, utils.SessionConfig{ExpiryHours: 24}, zap.NewNop())
}

func TestRegister_Success(t *testing.T) {
	var created *entity.User
	svc := authTestService(func(r *mockUserRepoWithEmail) {
		r.createUserFn = func(ctx context.Context, user *entity.User) error {
			created = user
			return nil
		}
	})

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Maria Lopez",
		Email:    "maria@example.com",
		Password: "correct horse",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "customer", resp.User.Role)
	assert.True(t, created.IsActive)
	assert.NotEqual(t, "correct horse", created.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := authTestService(func(r *mockUserRepoWithEmail) {
		r.findByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{Email: email}, nil
		}
	})

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Maria Lopez",
		Email:    "maria@example.com",
		Password: "correct horse",
	})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, _ := utils.HashPassword("right password")
	svc := authTestService(func(r *mockUserRepoWithEmail) {
		r.findByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{Email: email, PasswordHash: hash, IsActive: true}, nil
		}
	})

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "maria@example.com",
		Password: "wrong password",
	})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLogin_Success(t *testing.T) {
	hash, _ := utils.HashPassword("right password")
	svc := authTestService(func(r *mockUserRepoWithEmail) {
		r.findByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{Email: email, PasswordHash: hash, IsActive: true}, nil
		}
	})

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "maria@example.com",
		Password: "right password",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_DisabledAccount(t *testing.T) {
	hash, _ := utils.HashPassword("right password")
	svc := authTestService(func(r *mockUserRepoWithEmail) {
		r.findByEmailFn = func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{Email: email, PasswordHash: hash, IsActive: false}, nil
		}
	})

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "maria@example.com",
		Password: "right password",
	})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
