package dto

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	// 记住我：延长 refresh token 有效期
	Remember bool `json:"remember"`
}

// LoginResponse 登录结果
type LoginResponse struct {
	Username    string `json:"username"`
	RedirectURL string `json:"redirect_url"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}
