package application

import "testing"

func TestParseStatusAcceptsEnumValues(t *testing.T) {
	cases := map[string]Status{
		"unhandled": StatusUnhandled,
		"rejected":  StatusRejected,
		"accepted":  StatusAccepted,
	}
	for raw, want := range cases {
		got, ok := ParseStatus(raw)
		if !ok || got != want {
			t.Fatalf("ParseStatus(%q) = (%q, %v), want (%q, true)", raw, got, ok, want)
		}
	}
}

func TestParseStatusMatchesExactly(t *testing.T) {
	for _, raw := range []string{"Accepted", " accepted ", "ACCEPTED", "cancelled", ""} {
		if got, ok := ParseStatus(raw); ok {
			t.Fatalf("ParseStatus(%q) = (%q, true), want rejection", raw, got)
		}
	}
}
