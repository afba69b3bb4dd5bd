package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	PrincipalVendor   = "vendor"
	PrincipalCustomer = "customer"
)

var (
	JWTSecret []byte
	jwtTTL    = 24 * time.Hour
)

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Default secret for development only
		secret = "MarketplaceSecretAUTH2026"
	}
	JWTSecret = []byte(secret)

	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			jwtTTL = time.Duration(hours) * time.Hour
		}
	}
}

// AuthClaims carries the principal identity. Type is either
// PrincipalVendor or PrincipalCustomer and decides which protected
// routes the token may reach.
type AuthClaims struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

func GenerateToken(id uint, email, principalType string) (string, error) {
	claims := &AuthClaims{
		ID:    id,
		Email: email,
		Type:  principalType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "MarketplaceApp",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

// ParseToken validates signature and expiry. There is no revocation
// list; a token stays valid until it expires.
func ParseToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return nil, NewUnauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok {
		return nil, NewUnauthorized("Invalid or expired token")
	}

	return claims, nil
}
