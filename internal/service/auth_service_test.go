package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"lekha/internal/config"
	"lekha/internal/domain"
	"lekha/internal/service"
	"lekha/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-not-for-production",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Issuer:             "lekha",
	}
}

func authFixtures(t *testing.T, password string) (*domain.User, *domain.Company) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	company := &domain.Company{ID: uuid.New(), Name: "Lekha Traders", IsActive: true}
	user := &domain.User{
		ID:           uuid.New(),
		CompanyID:    company.ID,
		Email:        "admin@lekha.in",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	return user, company
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	user, company := authFixtures(t, "password123")
	userRepo.On("GetByEmail", mock.Anything, "admin@lekha.in").Return(user, nil)
	companyRepo.On("GetByID", mock.Anything, company.ID).Return(company, nil)

	tokens, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "admin@lekha.in",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	claims, err := svc.ValidateToken(tokens.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, company.ID, claims.CompanyID)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	user, company := authFixtures(t, "password123")
	userRepo.On("GetByEmail", mock.Anything, "admin@lekha.in").Return(user, nil)
	companyRepo.On("GetByID", mock.Anything, company.ID).Return(company, nil)

	tokens, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "admin@lekha.in",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, tokens)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "nobody@lekha.in").Return(nil, domain.ErrNotFound)

	tokens, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@lekha.in",
		Password: "password123",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, tokens)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	user, _ := authFixtures(t, "password123")
	user.IsActive = false
	userRepo.On("GetByEmail", mock.Anything, "admin@lekha.in").Return(user, nil)

	tokens, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "admin@lekha.in",
		Password: "password123",
	})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
	assert.Nil(t, tokens)
}

func TestAuthService_Login_InactiveCompany(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	user, company := authFixtures(t, "password123")
	company.IsActive = false
	userRepo.On("GetByEmail", mock.Anything, "admin@lekha.in").Return(user, nil)
	companyRepo.On("GetByID", mock.Anything, company.ID).Return(company, nil)

	tokens, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "admin@lekha.in",
		Password: "password123",
	})

	assert.ErrorIs(t, err, domain.ErrCompanyInactive)
	assert.Nil(t, tokens)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	user, company := authFixtures(t, "password123")
	userRepo.On("GetByEmail", mock.Anything, "admin@lekha.in").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, company.ID, user.ID).Return(user, nil)
	companyRepo.On("GetByID", mock.Anything, company.ID).Return(company, nil)

	tokens, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "admin@lekha.in",
		Password: "password123",
	})
	assert.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthService_ValidateToken_RejectsRefreshAudience(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	user, company := authFixtures(t, "password123")
	userRepo.On("GetByEmail", mock.Anything, "admin@lekha.in").Return(user, nil)
	companyRepo.On("GetByID", mock.Anything, company.ID).Return(company, nil)

	tokens, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "admin@lekha.in",
		Password: "password123",
	})
	assert.NoError(t, err)

	// A refresh token must never pass as an access token.
	claims, err := svc.ValidateToken(tokens.RefreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	companyRepo := new(mocks.MockCompanyRepo)
	svc := service.NewAuthService(userRepo, companyRepo, testJWTConfig())

	claims, err := svc.ValidateToken("not.a.token")

	assert.Error(t, err)
	assert.Nil(t, claims)
}
