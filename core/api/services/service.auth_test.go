package services

import (
	"testing"
	"time"

	"gameshop_commerce/config"
	"gameshop_commerce/core/api/dto"
	"gameshop_commerce/core/common"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() *AuthService {
	return NewAuthService(&config.Configuration{
		JwtSecret:     "test-secret",
		AdminUsername: "gsnadmin",
		AdminPassword: "gsnadmin",
	})
}

func TestLogin_Success(t *testing.T) {
	svc := newAuthService()

	result, err := svc.Login(&dto.LoginInput{Username: "gsnadmin", Password: "gsnadmin"})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "bearer", result.TokenType)
	assert.Equal(t, AdminUserID, result.User.ID)
	assert.Equal(t, "gsnadmin", result.User.Username)
	assert.Equal(t, "admin", result.User.Role)

	// Token cấp ra phải verify được và trỏ về đúng principal
	userID, err := svc.VerifyToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, AdminUserID, userID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newAuthService()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"sai mật khẩu", "gsnadmin", "wrong"},
		{"sai tên đăng nhập", "someone", "gsnadmin"},
		{"rỗng cả hai", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := svc.Login(&dto.LoginInput{Username: tc.username, Password: tc.password})
			assert.Nil(t, result)
			assert.ErrorIs(t, err, common.ErrInvalidCredentials)
		})
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	svc := newAuthService()

	claims := jwt.MapClaims{
		"user_id": AdminUserID,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestVerifyToken_Invalid(t *testing.T) {
	svc := newAuthService()

	_, err := svc.VerifyToken("not-a-jwt")
	assert.ErrorIs(t, err, common.ErrTokenInvalid)

	// Token ký bằng secret khác bị từ chối
	other := NewAuthService(&config.Configuration{JwtSecret: "other-secret"})
	token, err := other.CreateToken(AdminUserID)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestVerifyToken_MissingUserID(t *testing.T) {
	svc := newAuthService()

	claims := jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}
