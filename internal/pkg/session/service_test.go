package session

import (
	"errors"
	"testing"
	"time"
)

func newTestService(now time.Time) *HMACService {
	s := NewHMACService("test-secret", time.Hour)
	s.now = func() time.Time { return now }
	return s
}

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newTestService(now)

	tok, err := s.Issue(42, "jdoe")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := s.Verify(tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.PersonID != 42 || claims.Username != "jdoe" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyExpired(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newTestService(issued)

	tok, err := s.Issue(42, "jdoe")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// One hour and a second later the token must be rejected as expired.
	s.now = func() time.Time { return issued.Add(time.Hour + time.Second) }
	if _, err := s.Verify(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newTestService(now)

	tok, err := s.Issue(42, "jdoe")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewHMACService("other-secret", time.Hour)
	other.now = s.now
	if _, err := other.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	s := newTestService(time.Now())
	if _, err := s.Verify("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
