package validate

import (
	"testing"
	"time"
)

func TestIndianMobile(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"5876543210", false}, // must start 6-9
		{"987654321", false},  // too short
		{"98765432100", false},
		{"98765abc10", false},
		{"", false},
	}

	for _, c := range cases {
		ferrs := FieldErrors{}
		ferrs.IndianMobile("phone", c.value)
		if got := !ferrs.Any(); got != c.ok {
			t.Errorf("IndianMobile(%q): valid=%v, want %v", c.value, got, c.ok)
		}
	}
}

func TestEmail(t *testing.T) {
	ferrs := FieldErrors{}
	ferrs.Email("email", "ravi@example.com")
	if ferrs.Any() {
		t.Fatalf("valid email rejected: %v", ferrs)
	}

	ferrs = FieldErrors{}
	ferrs.Email("email", "not-an-email")
	if !ferrs.Any() {
		t.Fatal("invalid email accepted")
	}
}

func TestDateNotPast(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)

	ferrs := FieldErrors{}
	d := ferrs.DateNotPast("date", "2025-03-15", now)
	if ferrs.Any() {
		t.Fatalf("same-day date rejected: %v", ferrs)
	}
	if d.IsZero() {
		t.Fatal("expected parsed date, got zero")
	}

	ferrs = FieldErrors{}
	ferrs.DateNotPast("date", "2025-03-14", now)
	if !ferrs.Any() {
		t.Fatal("past date accepted")
	}

	ferrs = FieldErrors{}
	ferrs.DateNotPast("date", "15/03/2025", now)
	if !ferrs.Any() {
		t.Fatal("malformed date accepted")
	}
}

func TestIntRange(t *testing.T) {
	ferrs := FieldErrors{}
	ferrs.IntRange("people", 1, 1, 20)
	ferrs.IntRange("people", 20, 1, 20)
	if ferrs.Any() {
		t.Fatalf("boundary values rejected: %v", ferrs)
	}

	ferrs = FieldErrors{}
	ferrs.IntRange("people", 0, 1, 20)
	if !ferrs.Any() {
		t.Fatal("below-range value accepted")
	}

	ferrs = FieldErrors{}
	ferrs.IntRange("people", 21, 1, 20)
	if !ferrs.Any() {
		t.Fatal("above-range value accepted")
	}
}

func TestErrorJoinsSorted(t *testing.T) {
	ferrs := FieldErrors{}
	ferrs.Require("name", "")
	ferrs.Require("phone", "")
	msg := ferrs.Error()
	if msg == "" {
		t.Fatal("expected non-empty message")
	}
	if len(ferrs) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(ferrs))
	}
}
