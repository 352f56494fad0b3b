package auth

import (
	"time"

	"gorm.io/gorm"

	"terminal-terrace/blog/config"
	"terminal-terrace/blog/internal/dto"
	"terminal-terrace/blog/internal/model/user"
	"terminal-terrace/blog/pkg/response"
)

type AuthService struct {
	db          *gorm.DB
	refreshRepo *RefreshTokenRepository
}

func NewAuthService(db *gorm.DB, refreshRepo *RefreshTokenRepository) *AuthService {
	return &AuthService{
		db:          db,
		refreshRepo: refreshRepo,
	}
}

// loginResult 登录结果（token 仅内部传递，由 handler 写入 cookie）
type loginResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	RefreshTTL   time.Duration
}

// Login 账号密码登录，仅管理员可登录后台
func (s *AuthService) Login(req dto.LoginRequest) (*loginResult, *response.BusinessError) {
	// 1. 查找用户
	var u user.User
	if err := s.db.Where("username = ?", req.Username).First(&u).Error; err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("用户名或密码错误"),
		)
	}

	// 2. 校验密码
	if !CheckPassword(u.PasswordHash, req.Password) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("用户名或密码错误"),
		)
	}

	// 3. 仅管理员可进入后台
	if !u.IsAdmin {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("需要管理员权限"),
		)
	}

	// 4. 生成 access token
	accessToken, err := GenerateAccessToken(u.ID, u.Username, u.IsAdmin)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成访问令牌失败"),
		)
	}

	// 5. 生成并存储 refresh token（记住我 → 使用配置的较长 TTL）
	refreshToken, err := GenerateRandomToken()
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成刷新令牌失败"),
		)
	}

	ttl := 24 * time.Hour
	if req.Remember {
		ttl = time.Duration(config.Conf.JWT.RefreshTTL) * time.Hour
	}

	if err := s.refreshRepo.Create(refreshToken, RefreshTokenData{
		UserID:   u.ID,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	}, ttl); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("存储刷新令牌失败"),
		)
	}

	return &loginResult{
		User:         &u,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		RefreshTTL:   ttl,
	}, nil
}

// refreshResult 刷新结果
type refreshResult struct {
	AccessToken  string
	RefreshToken string
}

// Refresh 刷新访问令牌，旧 refresh token 一次性使用
func (s *AuthService) Refresh(token string) (*refreshResult, *response.BusinessError) {
	// 1. 验证 refresh token
	data, err := s.refreshRepo.Get(token)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("刷新令牌无效或已过期"),
		)
	}

	// 2. 撤销旧的 refresh token
	if err := s.refreshRepo.Delete(token); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("撤销旧令牌失败"),
		)
	}

	// 3. 生成新的 access token
	accessToken, err := GenerateAccessToken(data.UserID, data.Username, data.IsAdmin)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成访问令牌失败"),
		)
	}

	// 4. 轮换 refresh token
	newToken, err := GenerateRandomToken()
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("生成刷新令牌失败"),
		)
	}

	ttl := time.Duration(config.Conf.JWT.RefreshTTL) * time.Hour
	if err := s.refreshRepo.Create(newToken, *data, ttl); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("存储刷新令牌失败"),
		)
	}

	return &refreshResult{
		AccessToken:  accessToken,
		RefreshToken: newToken,
	}, nil
}

// Logout 撤销 refresh token
func (s *AuthService) Logout(token string) {
	if token == "" {
		return
	}
	// 撤销失败不影响登出语义
	_ = s.refreshRepo.Delete(token)
}

// ChangePassword 修改密码，需先校验当前密码
func (s *AuthService) ChangePassword(userID uint, req dto.ChangePasswordRequest) *response.BusinessError {
	var u user.User
	if err := s.db.First(&u, userID).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.NotFound),
			response.WithErrorMessage("用户不存在"),
		)
	}

	if !CheckPassword(u.PasswordHash, req.CurrentPassword) {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("当前密码不正确"),
		)
	}

	if req.NewPassword != req.ConfirmPassword {
		return response.NewBusinessError(
			response.WithErrorCode(response.InvalidParameter),
			response.WithErrorMessage("两次输入的新密码不一致"),
		)
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("密码加密失败"),
		)
	}

	if err := s.db.Model(&u).Update("password_hash", hash).Error; err != nil {
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("保存密码失败"),
		)
	}

	return nil
}
