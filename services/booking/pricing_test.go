package booking

import (
	"testing"

	"chaletbook/models"
)

func TestNights(t *testing.T) {
	if n := Nights("10/06/2025", "12/06/2025"); n != 2 {
		t.Fatalf("expected 2 nights, got %d", n)
	}
	if n := Nights("10/06/2025", "11/06/2025"); n != 1 {
		t.Fatalf("expected 1 night, got %d", n)
	}
	if n := Nights("31/12/2025", "02/01/2026"); n != 2 {
		t.Fatalf("expected 2 nights across year boundary, got %d", n)
	}
	if n := Nights("", "12/06/2025"); n != 0 {
		t.Fatalf("missing date should yield 0 nights, got %d", n)
	}
	if n := Nights("12/06/2025", "10/06/2025"); n != 0 {
		t.Fatalf("inverted range should yield 0 nights, got %d", n)
	}
}

func TestQuoteStay(t *testing.T) {
	chalet := &models.Chalet{ID: 1, PricePerNight: 250}
	q := QuoteStay(chalet, "10/06/2025", "12/06/2025")
	if q.Nights != 2 {
		t.Fatalf("expected 2 nights, got %d", q.Nights)
	}
	if q.Total != 500 {
		t.Fatalf("expected total 500, got %.2f", q.Total)
	}
}

func TestMinCheckOut(t *testing.T) {
	if got := MinCheckOut("2025-06-10"); got != "2025-06-11" {
		t.Fatalf("expected next day, got %q", got)
	}
	if got := MinCheckOut("garbage"); got != "" {
		t.Fatalf("malformed input should give empty result, got %q", got)
	}
}
