package auth_test

import (
	"testing"

	"terminal-terrace/blog/config"
	authPkg "terminal-terrace/blog/internal/auth"
	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/model/user"
	"terminal-terrace/blog/internal/testutils"
	"terminal-terrace/blog/pkg/response"
)

// authFixture 共享测试数据
type authFixture struct {
	Admin   *user.User
	Regular *user.User
}

// setupAuthService 创建 AuthService 实例用于测试，Redis 不可用时跳过
func setupAuthService(t *testing.T) (*authPkg.AuthService, *authFixture) {
	t.Helper()

	old := config.Conf
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: 1, RefreshTTL: 24 * 7},
	}
	t.Cleanup(func() { config.Conf = old })

	db := testutils.SetupTestDB(t)
	rdb := testutils.SetupTestRedis(t)
	if rdb == nil {
		t.Skip("Redis not available")
	}

	service := authPkg.NewAuthService(db, authPkg.NewRefreshTokenRepository(rdb))

	admin := testutils.CreateTestUser(db, testutils.WithPassword("correct-password"))
	regular := testutils.CreateTestUser(db,
		testutils.WithPassword("correct-password"),
		testutils.WithAdmin(false),
	)

	return service, &authFixture{Admin: admin, Regular: regular}
}

func TestLogin_Integration(t *testing.T) {
	service, fixture := setupAuthService(t)

	result, bizErr := service.Login(dto.LoginRequest{
		Username: fixture.Admin.Username,
		Password: "correct-password",
	})
	if bizErr != nil {
		t.Fatalf("Login: %v", bizErr.Msg)
	}

	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatal("login must issue both tokens")
	}

	claims, err := authPkg.ParseAccessToken(result.AccessToken)
	if err != nil {
		t.Fatalf("access token should parse: %v", err)
	}
	if claims.UserID != fixture.Admin.ID || !claims.IsAdmin {
		t.Errorf("claims = %+v, want admin identity", claims)
	}
}

func TestLogin_Rejections(t *testing.T) {
	service, fixture := setupAuthService(t)

	tests := []struct {
		name     string
		username string
		password string
		wantCode response.ResponseCode
	}{
		{name: "unknown user", username: "nobody", password: "x", wantCode: response.Unauthorized},
		{name: "wrong password", username: fixture.Admin.Username, password: "wrong", wantCode: response.Unauthorized},
		{name: "non-admin user", username: fixture.Regular.Username, password: "correct-password", wantCode: response.Forbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bizErr := service.Login(dto.LoginRequest{Username: tt.username, Password: tt.password})
			if bizErr == nil {
				t.Fatal("login should be rejected")
			}
			if bizErr.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", bizErr.Code, tt.wantCode)
			}
		})
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	service, fixture := setupAuthService(t)

	login, bizErr := service.Login(dto.LoginRequest{
		Username: fixture.Admin.Username,
		Password: "correct-password",
	})
	if bizErr != nil {
		t.Fatalf("Login: %v", bizErr.Msg)
	}

	refreshed, bizErr := service.Refresh(login.RefreshToken)
	if bizErr != nil {
		t.Fatalf("Refresh: %v", bizErr.Msg)
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Error("refresh token must rotate")
	}

	// 旧令牌一次性使用
	if _, bizErr := service.Refresh(login.RefreshToken); bizErr == nil {
		t.Error("used refresh token must be rejected")
	}

	// 新令牌可以继续用
	if _, bizErr := service.Refresh(refreshed.RefreshToken); bizErr != nil {
		t.Errorf("rotated token should work: %v", bizErr.Msg)
	}
}

func TestLogout_RevokesToken(t *testing.T) {
	service, fixture := setupAuthService(t)

	login, bizErr := service.Login(dto.LoginRequest{
		Username: fixture.Admin.Username,
		Password: "correct-password",
	})
	if bizErr != nil {
		t.Fatalf("Login: %v", bizErr.Msg)
	}

	service.Logout(login.RefreshToken)

	if _, bizErr := service.Refresh(login.RefreshToken); bizErr == nil {
		t.Error("refresh token must be revoked after logout")
	}
}

func TestChangePassword_Integration(t *testing.T) {
	service, fixture := setupAuthService(t)

	// 当前密码错误
	bizErr := service.ChangePassword(fixture.Admin.ID, dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})
	if bizErr == nil {
		t.Fatal("wrong current password must be rejected")
	}

	// 两次输入不一致
	bizErr = service.ChangePassword(fixture.Admin.ID, dto.ChangePasswordRequest{
		CurrentPassword: "correct-password",
		NewPassword:     "new-password",
		ConfirmPassword: "different",
	})
	if bizErr == nil {
		t.Fatal("mismatched confirmation must be rejected")
	}

	// 修改成功后新密码可登录
	bizErr = service.ChangePassword(fixture.Admin.ID, dto.ChangePasswordRequest{
		CurrentPassword: "correct-password",
		NewPassword:     "new-password",
		ConfirmPassword: "new-password",
	})
	if bizErr != nil {
		t.Fatalf("ChangePassword: %v", bizErr.Msg)
	}

	if _, bizErr := service.Login(dto.LoginRequest{
		Username: fixture.Admin.Username,
		Password: "new-password",
	}); bizErr != nil {
		t.Errorf("login with new password failed: %v", bizErr.Msg)
	}
	if _, bizErr := service.Login(dto.LoginRequest{
		Username: fixture.Admin.Username,
		Password: "correct-password",
	}); bizErr == nil {
		t.Error("old password must stop working")
	}
}
