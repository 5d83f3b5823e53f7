package jwt

import (
	"errors"
	"time"

	"sculpture_shop/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// NewToken issues a signed HS256 token for an admin user. The token stays
// valid until exp regardless of later server-side state changes.
func NewToken(admin models.AdminUser, secret string, duration time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["id"] = admin.ID
	claims["username"] = admin.Username
	claims["full_name"] = admin.FullName
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(duration).Unix()

	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the decoded admin
// identity. The caller gets the same generic error for a bad signature and
// a malformed token; expiry is distinguished for logging only.
func ParseToken(tokenString, secret string) (*models.AdminIdentity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	identity := &models.AdminIdentity{ID: int64(id)}
	if username, ok := claims["username"].(string); ok {
		identity.Username = username
	}
	if fullName, ok := claims["full_name"].(string); ok {
		identity.FullName = fullName
	}

	return identity, nil
}
