package search

import (
	"context"
	"testing"

	"chaletbook/models"
	"chaletbook/utils"
)

func TestSearchParamsSessionMemory(t *testing.T) {
	ctx := context.Background()
	svc := &Service{Params: utils.NewMemoryStore()}

	got, err := svc.LastParams(ctx, "session-1")
	if err != nil {
		t.Fatalf("LastParams: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no remembered params, got %+v", got)
	}

	params := models.SearchParams{SkiArea: "Les Arcs", CheckInDisplay: "10/06/2025", Nights: 2, Guests: 4}
	if err := svc.RememberParams(ctx, "session-1", params); err != nil {
		t.Fatalf("RememberParams: %v", err)
	}

	got, err = svc.LastParams(ctx, "session-1")
	if err != nil {
		t.Fatalf("LastParams: %v", err)
	}
	if got == nil || *got != params {
		t.Fatalf("remembered params mismatch: %+v", got)
	}

	// Sessions do not share memory.
	other, err := svc.LastParams(ctx, "session-2")
	if err != nil {
		t.Fatalf("LastParams: %v", err)
	}
	if other != nil {
		t.Fatalf("expected no params for another session, got %+v", other)
	}

	if err := svc.ClearParams(ctx, "session-1"); err != nil {
		t.Fatalf("ClearParams: %v", err)
	}
	got, err = svc.LastParams(ctx, "session-1")
	if err != nil {
		t.Fatalf("LastParams: %v", err)
	}
	if got != nil {
		t.Fatalf("expected cleared params, got %+v", got)
	}
}
