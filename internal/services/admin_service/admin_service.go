package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"evermore_gallery/internal/lib/logger/sl"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassword = errors.New("invalid admin password")

// AdminService authenticates the studio operator. There is a single
// admin identity: a bcrypt hash from config compared against the
// submitted password, exchanged for a short-lived JWT.
type AdminService struct {
	log          *slog.Logger
	passwordHash string
	jwtSecret    []byte
	tokenTTL     time.Duration
}

func NewAdminService(log *slog.Logger, passwordHash, jwtSecret string, tokenTTL time.Duration) *AdminService {
	return &AdminService{
		log:          log,
		passwordHash: passwordHash,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
	}
}

// Login exchanges the admin password for a signed token.
func (s *AdminService) Login(ctx context.Context, password string) (string, error) {
	const op = "service.AdminService.Login"

	log := s.log.With(slog.String("op", op))

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		log.Warn("admin login rejected")
		return "", ErrInvalidPassword
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		log.Error("failed to sign token", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin logged in")
	return signed, nil
}

// ValidateToken parses and verifies an admin token.
func (s *AdminService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errors.New("invalid token")
	}

	return nil
}
