package validate

import (
	"errors"
	"regexp"
	"testing"
)

func TestLengthInRange(t *testing.T) {
	if err := LengthInRange("abc", 3, 30, "username"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := LengthInRange("ab", 3, 30, "username"); err == nil {
		t.Fatalf("expected error for too-short value")
	}

	var ve *Error
	err := LengthInRange("", 1, 5, "name")
	if !errors.As(err, &ve) {
		t.Fatalf("expected *validate.Error, got %T", err)
	}
	if ve.Field != "name" {
		t.Fatalf("unexpected field: %q", ve.Field)
	}
}

func TestPositiveInt(t *testing.T) {
	if err := PositiveInt(1, "id"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, v := range []int64{0, -1} {
		if err := PositiveInt(v, "id"); err == nil {
			t.Fatalf("expected error for %d", v)
		}
	}
}

func TestAlphanumeric(t *testing.T) {
	if err := Alphanumeric("user123", "username"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, v := range []string{"", "user name", "user_1", "u!"} {
		if err := Alphanumeric(v, "username"); err == nil {
			t.Fatalf("expected error for %q", v)
		}
	}
}

func TestAlphabetic(t *testing.T) {
	if err := Alphabetic("Svensson", "surname"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := Alphabetic("Svensson1", "surname"); err == nil {
		t.Fatalf("expected error for digit in name")
	}
}

func TestEmail(t *testing.T) {
	if err := Email("a.b@example.com", "email"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, v := range []string{"", "nope", "a@", "Name <a@example.com>"} {
		if err := Email(v, "email"); err == nil {
			t.Fatalf("expected error for %q", v)
		}
	}
}

func TestMatchesPattern(t *testing.T) {
	statusRe := regexp.MustCompile(`^(unhandled|rejected|accepted)$`)
	for _, v := range []string{"unhandled", "rejected", "accepted"} {
		if err := MatchesPattern(v, statusRe, "status"); err != nil {
			t.Fatalf("unexpected err for %q: %v", v, err)
		}
	}
	for _, v := range []string{"cancelled", "Accepted", ""} {
		if err := MatchesPattern(v, statusRe, "status"); err == nil {
			t.Fatalf("expected error for %q", v)
		}
	}
}

func TestNumberInRange(t *testing.T) {
	if err := NumberInRange(2.5, 0, 50, "years_of_experience"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, v := range []float64{-0.1, 50.1} {
		if err := NumberInRange(v, 0, 50, "years_of_experience"); err == nil {
			t.Fatalf("expected error for %g", v)
		}
	}
}

func TestNotEmptySlice(t *testing.T) {
	if err := NotEmptySlice([]int{1}, "expertise"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := NotEmptySlice([]int{}, "expertise"); err == nil {
		t.Fatalf("expected error for empty slice")
	}
}

func TestDigits(t *testing.T) {
	if err := Digits("199001011234", 12, "pnr"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for _, v := range []string{"19900101123", "1990010112345", "19900101123a"} {
		if err := Digits(v, 12, "pnr"); err == nil {
			t.Fatalf("expected error for %q", v)
		}
	}
}
