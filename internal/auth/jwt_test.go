package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "this-is-a-very-long-jwt-secret-for-testing-32+"

func TestJWTManager_RoundTrip(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "animemo", time.Hour)
	userID := uuid.New()

	token, err := m.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	got, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got != userID {
		t.Errorf("user id = %v, want %v", got, userID)
	}
}

func TestJWTManager_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "animemo", -time.Minute)

	token, err := m.GenerateAccessToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := m.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "animemo", time.Hour)
	other := NewJWTManager("another-very-long-secret-for-testing-32-chars!", "animemo", time.Hour)

	token, err := m.GenerateAccessToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestJWTManager_WrongIssuer(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "animemo", time.Hour)
	other := NewJWTManager(testSecret, "someone-else", time.Hour)

	token, err := m.GenerateAccessToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Fatal("expected error for wrong issuer")
	}
}

func TestJWTManager_EmptyToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager(testSecret, "animemo", time.Hour)
	if _, err := m.ValidateAccessToken(""); err == nil {
		t.Fatal("expected error for empty token")
	}
}
