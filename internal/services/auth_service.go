package services

import (
	"errors"
	"fmt"

	"seedgen/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrInvalidCredentials = errors.New("invalid operator name or password")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// LoginRequest is the credential payload for the review API.
type LoginRequest struct {
	Operator string `json:"operator" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthService authenticates review-API operators. Generated seed data is
// reviewed by a single operator account configured through the environment;
// there is no user store behind it.
type AuthService interface {
	Login(req LoginRequest) (string, error)
}

type authService struct {
	operator     string
	passwordHash []byte
}

// NewAuthService builds the operator account from the environment.
// SEEDGEN_OPERATOR_PASSWORD_HASH takes precedence; otherwise the plaintext
// SEEDGEN_OPERATOR_PASSWORD is hashed at startup.
func NewAuthService() (AuthService, error) {
	operator := utils.Getenv("SEEDGEN_OPERATOR", "operator")

	if hash := utils.Getenv("SEEDGEN_OPERATOR_PASSWORD_HASH", ""); hash != "" {
		return &authService{operator: operator, passwordHash: []byte(hash)}, nil
	}

	password := utils.Getenv("SEEDGEN_OPERATOR_PASSWORD", "changeme")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing operator password: %w", err)
	}
	return &authService{operator: operator, passwordHash: hash}, nil
}

func (s *authService) Login(req LoginRequest) (string, error) {
	if req.Operator != s.operator {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := utils.GenerateAccessToken(s.operator)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return token, nil
}
