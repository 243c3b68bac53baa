package auth

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tm := NewTokenManager("test-secret", "jobboard")

	before := time.Now()
	token, err := tm.GenerateToken("admin@gmail.com", TokenTTL)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	after := time.Now()

	claims, err := tm.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.Username != "admin@gmail.com" {
		t.Fatalf("expected username claim, got %q", claims.Username)
	}

	// Expiry is exactly one hour after issuance
	exp := claims.ExpiresAt.Time
	if exp.Before(before.Add(TokenTTL).Truncate(time.Second)) || exp.After(after.Add(TokenTTL).Add(time.Second)) {
		t.Fatalf("expiry %v not within 1h of issuance window [%v, %v]", exp, before, after)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != TokenTTL {
		t.Fatalf("expected ttl %v, got %v", TokenTTL, got)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", "").GenerateToken("admin", TokenTTL)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := NewTokenManager("secret-b", "").ValidateToken(token); err == nil {
		t.Fatal("expected validation failure with wrong secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", "")
	token, err := tm.GenerateToken("admin", -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := tm.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestValidateTokenTampered(t *testing.T) {
	tm := NewTokenManager("test-secret", "")
	token, err := tm.GenerateToken("admin", TokenTTL)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + ".eyJ1c2VybmFtZSI6ImV2aWwifQ." + parts[2]

	if _, err := tm.ValidateToken(tampered); err == nil {
		t.Fatal("expected tampered token to fail validation")
	}
}

func TestExtractToken(t *testing.T) {
	if tok, err := ExtractToken("Bearer abc.def.ghi"); err != nil || tok != "abc.def.ghi" {
		t.Fatalf("expected token, got %q err %v", tok, err)
	}
	for _, header := range []string{"", "abc.def.ghi", "Basic abc", "Bearer"} {
		if _, err := ExtractToken(header); err == nil {
			t.Fatalf("expected error for header %q", header)
		}
	}
}
