package auth

import (
	"testing"
	"time"
)

func TestIssueAndParse(t *testing.T) {
	token, exp, err := Issue("user-1", "student", "campus-attendance", "test-key", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Error("expiry must be in the future")
	}

	claims, err := Parse(token, "test-key", "campus-attendance")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q, want user-1", claims.Subject)
	}
	if claims.Role != "student" {
		t.Errorf("role = %q, want student", claims.Role)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	token, _, err := Issue("user-1", "student", "campus-attendance", "test-key", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(token, "other-key", "campus-attendance"); err == nil {
		t.Error("expected error for wrong signing key")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	token, _, err := Issue("user-1", "student", "someone-else", "test-key", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(token, "test-key", "campus-attendance"); err == nil {
		t.Error("expected error for issuer mismatch")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	token, _, err := Issue("user-1", "student", "campus-attendance", "test-key", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(token, "test-key", "campus-attendance"); err == nil {
		t.Error("expected error for expired token")
	}
}
