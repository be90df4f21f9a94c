package dto

// LoginInput là input để đăng nhập admin
type LoginInput struct {
	Username string `json:"username" validate:"required"` // Tên đăng nhập
	Password string `json:"password" validate:"required"` // Mật khẩu
}

// AdminUser là thông tin principal admin trả về cho client
type AdminUser struct {
	ID       string `json:"id"`       // Luôn là "admin-fixed"
	Username string `json:"username"` // Tên đăng nhập admin
	Role     string `json:"role"`     // Luôn là "admin"
}

// LoginResult là kết quả đăng nhập thành công
type LoginResult struct {
	AccessToken string    `json:"access_token"` // JWT HS256, hạn 24h
	TokenType   string    `json:"token_type"`   // Luôn là "bearer"
	User        AdminUser `json:"user"`         // Thông tin admin
}
