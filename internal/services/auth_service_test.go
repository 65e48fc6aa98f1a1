package services

import (
	"errors"
	"testing"

	"seedgen/pkg/utils"
)

func TestLoginWithConfiguredPassword(t *testing.T) {
	t.Setenv("SEEDGEN_OPERATOR", "reviewer")
	t.Setenv("SEEDGEN_OPERATOR_PASSWORD", "s3cret")
	t.Setenv("SEEDGEN_OPERATOR_PASSWORD_HASH", "")

	svc, err := NewAuthService()
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	token, err := svc.Login(LoginRequest{Operator: "reviewer", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Operator != "reviewer" {
		t.Errorf("operator claim = %q", claims.Operator)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Setenv("SEEDGEN_OPERATOR", "reviewer")
	t.Setenv("SEEDGEN_OPERATOR_PASSWORD", "s3cret")
	t.Setenv("SEEDGEN_OPERATOR_PASSWORD_HASH", "")

	svc, err := NewAuthService()
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	if _, err := svc.Login(LoginRequest{Operator: "reviewer", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v", err)
	}
	if _, err := svc.Login(LoginRequest{Operator: "intruder", Password: "s3cret"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong operator: err = %v", err)
	}
}
