package service

import (
	"context"
	"errors"
	"testing"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/repository"
)

func TestAuthService_Login(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	if err := svc.EnsureAdmin(context.Background(), "admin", "secret123"); err != nil {
		t.Fatalf("EnsureAdmin() error = %v", err)
	}
	// 第二次是幂等的，不会重复建号
	if err := svc.EnsureAdmin(context.Background(), "admin", "other"); err != nil {
		t.Fatalf("第二次 EnsureAdmin() error = %v", err)
	}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("登录后 token 不能为空")
	}
	if resp.User.Username != "admin" {
		t.Errorf("username = %s", resp.User.Username)
	}
}

func TestAuthService_Login_Invalid(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	if err := svc.EnsureAdmin(context.Background(), "admin", "secret123"); err != nil {
		t.Fatalf("EnsureAdmin() error = %v", err)
	}

	// 密码错
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
	// 用户不存在
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "x"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))

	if err := svc.EnsureAdmin(context.Background(), "admin", "secret123"); err != nil {
		t.Fatalf("EnsureAdmin() error = %v", err)
	}
	login, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "admin", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	resp, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	if err != nil {
		t.Fatalf("RefreshToken() error = %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("刷新后 access token 不能为空")
	}

	// access token 不能当 refresh token 用
	if _, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: login.AccessToken}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("RefreshToken() error = %v, want ErrInvalidToken", err)
	}
}
