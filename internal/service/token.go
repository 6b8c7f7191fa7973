package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenScheme issues bearer tokens and resolves them back to user ids.
// Token issuance is decoupled from the lifecycle operations so the scheme
// can be swapped without touching GoalService.
type TokenScheme interface {
	Issue(userID int64) (string, error)
	Resolve(token string) (int64, error)
}

// PlainTokenScheme uses the decimal user id as the token. It carries no
// cryptographic guarantee and exists for compatibility with clients of the
// legacy API.
type PlainTokenScheme struct{}

func NewPlainTokenScheme() *PlainTokenScheme {
	return &PlainTokenScheme{}
}

func (s *PlainTokenScheme) Issue(userID int64) (string, error) {
	return strconv.FormatInt(userID, 10), nil
}

func (s *PlainTokenScheme) Resolve(token string) (int64, error) {
	userID, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

// JWTTokenScheme issues signed, expiring HS256 tokens carrying the user id.
type JWTTokenScheme struct {
	secret string
	expiry time.Duration
}

func NewJWTTokenScheme(secret string, expiry time.Duration) *JWTTokenScheme {
	return &JWTTokenScheme{secret: secret, expiry: expiry}
}

func (s *JWTTokenScheme) Issue(userID int64) (string, error) {
	claims := jwt.MapClaims{
		"user_id": strconv.FormatInt(userID, 10),
		"exp":     time.Now().Add(s.expiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *JWTTokenScheme) Resolve(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	id, ok := claims["user_id"].(string)
	if !ok {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return userID, nil
}
