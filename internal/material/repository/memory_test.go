package repository

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/atelierlabs/workroom/internal/material/domain"
)

func seedRepo() *MemoryMaterialRepository {
	return NewMemoryMaterialRepository(
		[]string{"Fabric", "Accessories", "Thread"},
		[]string{"pcs", "yards"},
	)
}

func fabric(id, name string, quantity int) *domain.Material {
	return &domain.Material{
		ID:          id,
		Name:        name,
		Category:    "Fabric",
		Quantity:    quantity,
		Unit:        "yards",
		BuyingPrice: decimal.NewFromInt(5),
		Threshold:   10,
		Supplier:    "Acme Textiles",
		Status:      domain.DeriveStatus(quantity, 10),
	}
}

func TestMemoryMaterialRepository_CreateAndFind(t *testing.T) {
	repo := seedRepo()

	m := fabric("MAT-1", "Black Cotton", 25)
	if err := repo.Create(m); err != nil {
		t.Fatalf("Failed to create material: %v", err)
	}

	got, err := repo.FindByID("MAT-1")
	if err != nil {
		t.Fatalf("Failed to find material: %v", err)
	}
	if got.Name != "Black Cotton" {
		t.Errorf("Expected name Black Cotton, got %q", got.Name)
	}
	if got.Status != domain.StatusInStock {
		t.Errorf("Expected status %q, got %q", domain.StatusInStock, got.Status)
	}

	if _, err := repo.FindByID("MAT-missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestMemoryMaterialRepository_FindByIDReturnsCopy(t *testing.T) {
	repo := seedRepo()
	if err := repo.Create(fabric("MAT-1", "Black Cotton", 25)); err != nil {
		t.Fatalf("Failed to create material: %v", err)
	}

	first, _ := repo.FindByID("MAT-1")
	first.Quantity = 0

	second, _ := repo.FindByID("MAT-1")
	if second.Quantity != 25 {
		t.Errorf("Stored material mutated through returned pointer: quantity %d", second.Quantity)
	}
}

func TestMemoryMaterialRepository_Search(t *testing.T) {
	repo := seedRepo()
	repo.Create(fabric("MAT-1", "Black Cotton", 25))
	repo.Create(fabric("MAT-2", "White Cotton", 5))
	thread := fabric("MAT-3", "Black Thread", 100)
	thread.Category = "Thread"
	repo.Create(thread)

	tests := []struct {
		name     string
		search   string
		category string
		wantIDs  []string
	}{
		{name: "name_substring", search: "cotton", wantIDs: []string{"MAT-1", "MAT-2"}},
		{name: "case_insensitive", search: "BLACK", wantIDs: []string{"MAT-1", "MAT-3"}},
		{name: "category_exact", category: "Thread", wantIDs: []string{"MAT-3"}},
		{name: "both_filters", search: "black", category: "Fabric", wantIDs: []string{"MAT-1"}},
		{name: "no_match", search: "silk", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(tt.search, tt.category, 10, 0)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Expected %d results, got %d", len(tt.wantIDs), len(got))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("Result %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestMemoryMaterialRepository_Pagination(t *testing.T) {
	repo := seedRepo()
	for _, id := range []string{"MAT-1", "MAT-2", "MAT-3", "MAT-4", "MAT-5"} {
		repo.Create(fabric(id, "Cotton "+id, 25))
	}

	page1, err := repo.FindAll(2, 0)
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(page1) != 2 || page1[0].ID != "MAT-1" {
		t.Errorf("Unexpected first page: %v", page1)
	}

	page3, _ := repo.FindAll(2, 4)
	if len(page3) != 1 || page3[0].ID != "MAT-5" {
		t.Errorf("Unexpected last page: %v", page3)
	}

	empty, _ := repo.FindAll(2, 10)
	if len(empty) != 0 {
		t.Errorf("Expected empty page past the end, got %v", empty)
	}
}

func TestMemoryMaterialRepository_RegistryGrowth(t *testing.T) {
	repo := seedRepo()

	m := fabric("MAT-1", "Elastic Band", 40)
	m.Category = "Trims"
	m.Unit = "meters"
	if err := repo.Create(m); err != nil {
		t.Fatalf("Failed to create material: %v", err)
	}

	categories, _ := repo.Categories()
	if len(categories) != 4 || categories[3] != "Trims" {
		t.Errorf("Expected Trims appended to categories, got %v", categories)
	}

	units, _ := repo.Units()
	if len(units) != 3 || units[2] != "meters" {
		t.Errorf("Expected meters appended to units, got %v", units)
	}

	suppliers, _ := repo.Suppliers()
	if len(suppliers) != 1 || suppliers[0] != "Acme Textiles" {
		t.Errorf("Expected Acme Textiles in suppliers, got %v", suppliers)
	}

	// Re-creating with the same values must not duplicate registry entries.
	repo.Create(fabric("MAT-2", "Elastic Band 2", 40))
	suppliers, _ = repo.Suppliers()
	if len(suppliers) != 1 {
		t.Errorf("Expected registry to stay distinct, got %v", suppliers)
	}
}

func TestMemoryMaterialRepository_UpdateAndDelete(t *testing.T) {
	repo := seedRepo()
	repo.Create(fabric("MAT-1", "Black Cotton", 25))

	updated := fabric("MAT-1", "Black Cotton Twill", 30)
	if err := repo.Update(updated); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, _ := repo.FindByID("MAT-1")
	if got.Name != "Black Cotton Twill" {
		t.Errorf("Expected updated name, got %q", got.Name)
	}

	if err := repo.Update(fabric("MAT-missing", "Ghost", 1)); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on update, got %v", err)
	}

	if err := repo.Delete("MAT-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.FindByID("MAT-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected material gone after delete, got %v", err)
	}
	if err := repo.Delete("MAT-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}

	count, _ := repo.Count()
	if count != 0 {
		t.Errorf("Expected count 0, got %d", count)
	}
}
