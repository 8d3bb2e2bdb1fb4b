package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/2403A51L17/SESD-Project/internal/app/models"
)

func newTestSessionService(duration time.Duration) *SessionService {
	return NewSessionService(SessionConfig{
		SecretKey: "test-secret-key",
		Duration:  duration,
		Issuer:    "mentorship.test",
	})
}

func TestSessionIssueAndValidate(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	token, err := svc.Issue(42, "alice", models.RoleStudent)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("Username = %q, want %q", claims.Username, "alice")
	}
	if claims.Role != models.RoleStudent {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleStudent)
	}
	if claims.Issuer != "mentorship.test" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "mentorship.test")
	}
}

func TestSessionValidateRejectsTampering(t *testing.T) {
	svc := newTestSessionService(time.Hour)

	token, err := svc.Issue(1, "bob", models.RoleMentor)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tampered := token + "xx"
	if _, err := svc.Validate(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Validate(tampered) error = %v, want ErrInvalidToken", err)
	}
}

func TestSessionValidateRejectsWrongKey(t *testing.T) {
	issuer := newTestSessionService(time.Hour)
	verifier := NewSessionService(SessionConfig{
		SecretKey: "a-different-secret",
		Duration:  time.Hour,
		Issuer:    "mentorship.test",
	})

	token, err := issuer.Issue(1, "bob", models.RoleMentor)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Validate with wrong key error = %v, want ErrInvalidToken", err)
	}
}

func TestSessionValidateExpired(t *testing.T) {
	svc := newTestSessionService(-time.Minute)

	token, err := svc.Issue(7, "carol", models.RoleStudent)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("Validate(expired) error = %v, want ErrExpiredToken", err)
	}
}

func TestSessionValidateEmptyToken(t *testing.T) {
	svc := newTestSessionService(time.Hour)
	if _, err := svc.Validate(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Validate(\"\") error = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("empty header error = %v, want ErrInvalidFormat", err)
	}

	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Fatalf("ExtractBearerToken = %q, %v", token, err)
	}

	// A bare token without the Bearer prefix is passed through
	token, err = ExtractBearerToken("abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Fatalf("ExtractBearerToken bare = %q, %v", token, err)
	}
}
