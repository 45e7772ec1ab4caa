package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"leadpilot/lead-intent-api/internal/models"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")
)

type TokenClaims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

type TokenService interface {
	IssueToken(account *models.Account) (string, error)
	ValidateToken(token string) (uuid.UUID, error)
}

type tokenService struct {
	secret   []byte
	tokenTTL time.Duration
	issuer   string
}

func NewTokenService(secret string, tokenTTL time.Duration, issuer string) (TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}

	return &tokenService{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		issuer:   issuer,
	}, nil
}

// IssueToken implements TokenService.
func (t *tokenService) IssueToken(account *models.Account) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		AccountID: account.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.tokenTTL)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken implements TokenService.
func (t *tokenService) ValidateToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return uuid.Nil, ErrTokenInvalid
	}

	accountID, err := uuid.Parse(claims.AccountID)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return accountID, nil
}
