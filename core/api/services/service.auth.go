package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gameshop_commerce/config"
	"gameshop_commerce/core/api/dto"
	"gameshop_commerce/core/common"
)

// AdminUserID là ID cố định của principal admin duy nhất trong hệ thống.
// Không có user collection: thông tin đăng nhập lấy từ cấu hình.
const AdminUserID = "admin-fixed"

// AuthService xử lý đăng nhập admin và cấp/kiểm tra JWT
type AuthService struct {
	cfg *config.Configuration
}

// NewAuthService tạo mới AuthService
func NewAuthService(cfg *config.Configuration) *AuthService {
	return &AuthService{cfg: cfg}
}

// Login kiểm tra thông tin đăng nhập admin và cấp access token
func (s *AuthService) Login(input *dto.LoginInput) (*dto.LoginResult, error) {
	if input.Username != s.cfg.AdminUsername || input.Password != s.cfg.AdminPassword {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.CreateToken(AdminUserID)
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	return &dto.LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		User: dto.AdminUser{
			ID:       AdminUserID,
			Username: s.cfg.AdminUsername,
			Role:     "admin",
		},
	}, nil
}

// CreateToken tạo JWT HS256 với claims {user_id, exp}, hạn 24 giờ
func (s *AuthService) CreateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JwtSecret))
}

// VerifyToken kiểm tra JWT và trả về user_id trong claims
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", common.ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", common.ErrTokenInvalid
	}

	return userID, nil
}

// CurrentAdmin trả về thông tin principal admin cố định
func (s *AuthService) CurrentAdmin() dto.AdminUser {
	return dto.AdminUser{
		ID:       AdminUserID,
		Username: s.cfg.AdminUsername,
		Role:     "admin",
	}
}
