package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/avoronova/go-fintrack/internal/pkg/log"
)

// Вид токена хранится в клейме "type". Оба токена — самодостаточные JWT
// с одним секретом; различаются только TTL и видом. Refresh-токены нигде
// не хранятся и не ротируются: повторное использование валидного refresh
// допустимо до его истечения.
const (
	tokenKindAccess  = "access"
	tokenKindRefresh = "refresh"
)

type tokenClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// generateToken выпускает подписанный JWT заданного вида.
func (s *Service) generateToken(ctx context.Context, userID uuid.UUID, kind string, now time.Time, ttl time.Duration) (string, error) {
	const op = "service.token.generateToken"

	claims := tokenClaims{
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.cfg.Issuer,
			Subject:   userID.String(),
			Audience:  jwt.ClaimStrings(s.cfg.Audience),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		log.From(ctx).Error("token_sign_failed",
			slog.String("op", op),
			slog.String("kind", kind),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// validateToken проверяет подпись/срок/issuer/audience и вид токена.
// Возвращает ID пользователя из клейма sub.
//
// Разделение ошибок намеренное: битый или просроченный токен — это
// ErrInvalidToken/ErrTokenExpired (401), а криптографически валидный токен
// не того вида — ErrWrongTokenKind (422).
func (s *Service) validateToken(tokenStr, wantKind string) (uuid.UUID, error) {
	const op = "service.token.validateToken"

	token, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Issuer),
		jwt.WithAudience(s.cfg.Audience...),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	if claims.TokenType != wantKind {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrWrongTokenKind)
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return uid, nil
}

// ValidateAccessToken проверяет access-токен и возвращает ID пользователя.
// Используется middleware авторизации.
func (s *Service) ValidateAccessToken(ctx context.Context, accessToken string) (uuid.UUID, error) {
	const op = "service.token.ValidateAccessToken"

	uid, err := s.validateToken(accessToken, tokenKindAccess)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return uid, nil
}
