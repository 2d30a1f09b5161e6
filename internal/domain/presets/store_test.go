package presets

import (
	"errors"
	"testing"

	"paycalc/internal/domain/payroll"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore()

	created := store.Create(Preset{Name: "Asha", MonthlyGross: 40000})
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	got, ok := store.Get(created.ID)
	if !ok {
		t.Fatal("expected preset to exist")
	}
	if got.Name != "Asha" || got.MonthlyGross != 40000 {
		t.Fatalf("unexpected preset: %+v", got)
	}
}

func TestStoreListKeepsInsertionOrder(t *testing.T) {
	store := NewStore()
	store.Create(Preset{Name: "first"})
	store.Create(Preset{Name: "second"})
	store.Create(Preset{Name: "third"})

	list := store.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 presets, got %d", len(list))
	}
	if list[0].Name != "first" || list[2].Name != "third" {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore()
	created := store.Create(Preset{Name: "Asha", MonthlyGross: 40000})

	updated, err := store.Update(created.ID, Preset{
		Name:         "Asha Rao",
		MonthlyGross: 45000,
		Allowances:   payroll.FixedAllowances{Conveyance: 1600},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("update must keep the id, got %q", updated.ID)
	}
	if updated.MonthlyGross != 45000 {
		t.Fatalf("unexpected preset: %+v", updated)
	}

	if _, err := store.Update("missing", Preset{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	created := store.Create(Preset{Name: "Asha"})

	if err := store.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := store.Get(created.ID); ok {
		t.Fatal("expected preset to be gone")
	}
	if err := store.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreSeedAssignsIDs(t *testing.T) {
	store := NewStore()
	store.Seed([]Preset{
		{Name: "seeded", MonthlyGross: 30000},
		{ID: "fixed-id", Name: "pinned"},
	})

	list := store.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(list))
	}
	if list[0].ID == "" {
		t.Fatal("expected seed to assign an id")
	}
	if _, ok := store.Get("fixed-id"); !ok {
		t.Fatal("expected pinned id to be kept")
	}
}
