package rates

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shipfare/shipfare/internal/pricing"
)

func testZoneRates() []pricing.ZoneRate {
	return []pricing.ZoneRate{
		{OriginZone: "110001", DestinationZone: "700001", UpTo1kg: 10000, UpTo5kg: 18000, Above5kg: 30000},
		{OriginZone: "400001", DestinationZone: "560001", UpTo1kg: 12000, UpTo5kg: 20000, Above5kg: 35000},
	}
}

func TestService_Load(t *testing.T) {
	repo := NewInMemoryRepository(testZoneRates())
	svc := NewService(ServiceConfig{Repository: repo, Logger: zerolog.Nop()})

	if svc.Table().Len() != 0 {
		t.Fatalf("expected empty table before load, got %d pairs", svc.Table().Len())
	}
	if !svc.LoadedAt().IsZero() {
		t.Fatal("expected zero LoadedAt before load")
	}

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	table := svc.Table()
	if table.Len() != 2 {
		t.Fatalf("expected 2 zone pairs, got %d", table.Len())
	}
	rate, ok := table.Lookup("110001", "700001")
	if !ok {
		t.Fatal("expected rate for 110001-700001")
	}
	if rate.UpTo5kg != 18000 {
		t.Errorf("UpTo5kg = %d, want 18000", rate.UpTo5kg)
	}
	if svc.LoadedAt().IsZero() {
		t.Error("expected non-zero LoadedAt after load")
	}
}

func TestService_LoadKeepsPreviousTableOnFailure(t *testing.T) {
	repo := NewInMemoryRepository(testZoneRates())
	svc := NewService(ServiceConfig{Repository: repo, Logger: zerolog.Nop()})

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("initial Load failed: %v", err)
	}
	before := svc.Table()

	repo.SetZoneRates(nil)
	err := svc.Load(context.Background())
	if err == nil {
		t.Fatal("expected error when repository is empty")
	}
	if !errors.Is(err, ErrNoRates) {
		t.Errorf("expected ErrNoRates, got %v", err)
	}

	if svc.Table() != before {
		t.Error("expected table snapshot to survive a failed reload")
	}
	if svc.Table().Len() != 2 {
		t.Errorf("expected 2 zone pairs after failed reload, got %d", svc.Table().Len())
	}
}

func TestService_LoadSwapsTable(t *testing.T) {
	repo := NewInMemoryRepository(testZoneRates())
	svc := NewService(ServiceConfig{Repository: repo, Logger: zerolog.Nop()})

	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	before := svc.Table()

	repo.SetZoneRates([]pricing.ZoneRate{
		{OriginZone: "110001", DestinationZone: "700001", UpTo1kg: 11000, UpTo5kg: 19000, Above5kg: 31000},
	})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	// The old snapshot is untouched; callers holding it keep pricing
	// against the rates they started with.
	oldRate, ok := before.Lookup("110001", "700001")
	if !ok || oldRate.UpTo5kg != 18000 {
		t.Errorf("old snapshot changed: %+v ok=%v", oldRate, ok)
	}

	newRate, ok := svc.Table().Lookup("110001", "700001")
	if !ok || newRate.UpTo5kg != 19000 {
		t.Errorf("new snapshot wrong: %+v ok=%v", newRate, ok)
	}
	if svc.Table().Len() != 1 {
		t.Errorf("expected 1 zone pair after reload, got %d", svc.Table().Len())
	}
}

func TestInMemoryRepository_Empty(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	_, err := repo.ListZoneRates(context.Background())
	if !errors.Is(err, ErrNoRates) {
		t.Errorf("expected ErrNoRates, got %v", err)
	}
}
