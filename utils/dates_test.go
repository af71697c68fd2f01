package utils

import "testing"

func TestDisplayDateRoundTrip(t *testing.T) {
	cases := []string{"15/06/2025", "01/01/2000", "29/02/2024", "31/12/1999"}
	for _, s := range cases {
		if !IsValidDisplayDate(s) {
			t.Fatalf("expected %q to be a valid display date", s)
		}
		if got := ToDisplayDate(ToISODate(s)); got != s {
			t.Fatalf("round trip of %q gave %q", s, got)
		}
	}
}

func TestToDisplayDate(t *testing.T) {
	if got := ToDisplayDate("2025-06-15"); got != "15/06/2025" {
		t.Fatalf("got %q", got)
	}
	if got := ToDisplayDate(""); got != "" {
		t.Fatalf("empty input should give empty output, got %q", got)
	}
	if got := ToDisplayDate("garbage"); got != "" {
		t.Fatalf("malformed input should give empty output, got %q", got)
	}
}

func TestToISODate(t *testing.T) {
	if got := ToISODate("15/06/2025"); got != "2025-06-15" {
		t.Fatalf("got %q", got)
	}
	if got := ToISODate(""); got != "" {
		t.Fatalf("empty input should give empty output, got %q", got)
	}
	if got := ToISODate("no-separators"); got != "" {
		t.Fatalf("malformed input should give empty output, got %q", got)
	}
}

func TestIsValidDisplayDate(t *testing.T) {
	valid := []string{"15/06/2025", "29/02/2024", "01/01/1970"}
	for _, s := range valid {
		if !IsValidDisplayDate(s) {
			t.Errorf("expected %q valid", s)
		}
	}
	invalid := []string{
		"31/02/2024", // shape ok, not a real date
		"29/02/2023", // not a leap year
		"00/01/2024",
		"15/13/2024",
		"15-06-2025",
		"1/6/2025",
		"15/06/25",
		"",
	}
	for _, s := range invalid {
		if IsValidDisplayDate(s) {
			t.Errorf("expected %q invalid", s)
		}
	}
}
