package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/xihu-next/internal/config"
	"github.com/xihu-next/internal/constants"
	"github.com/xihu-next/internal/models"
	"github.com/xihu-next/internal/repository"
)

func setupUserAuthServiceTest(t *testing.T) *UserAuthService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-secret"
	cfg.UserJWT.ExpireHours = 1
	return NewUserAuthService(cfg, repository.NewUserRepository(db))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupUserAuthServiceTest(t)

	user, err := svc.Register(RegisterInput{Username: "zhangsan", Password: "secret123", Nickname: "张三"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("password must be hashed")
	}

	if _, err := svc.Register(RegisterInput{Username: "zhangsan", Password: "another1"}); !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Username: "short", Password: "123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("short password should be rejected, got %v", err)
	}

	result, err := svc.Login("zhangsan", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("login should issue a token")
	}

	claims, err := svc.ParseUserJWT(result.Token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "zhangsan" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentialsAndDisabled(t *testing.T) {
	svc := setupUserAuthServiceTest(t)

	user, err := svc.Register(RegisterInput{Username: "lisi", Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Login("lisi", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("nobody", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}

	user.Status = constants.UserStatusDisabled
	if err := svc.userRepo.Update(user); err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	if _, err := svc.Login("lisi", "secret123"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected ErrUserDisabled, got %v", err)
	}
}

func TestParseUserJWTRejectsTampering(t *testing.T) {
	svc := setupUserAuthServiceTest(t)
	user, err := svc.Register(RegisterInput{Username: "wangwu", Password: "secret123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	token, _, err := svc.GenerateUserJWT(user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	if _, err := svc.ParseUserJWT(token + "x"); err == nil {
		t.Fatalf("tampered token must be rejected")
	}
}
