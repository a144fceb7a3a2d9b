package command

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/atelierlabs/workroom/internal/order/csvio"
	"github.com/atelierlabs/workroom/internal/order/domain"
	"github.com/atelierlabs/workroom/internal/order/repository"
	"github.com/atelierlabs/workroom/internal/validation"
)

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("Failed to parse date %q: %v", s, err)
	}
	return d
}

func TestCreateOrderHandler(t *testing.T) {
	repo := repository.NewMemoryOrderRepository()
	handler := NewCreateOrderHandler(repo)

	order, err := handler.Handle(CreateOrderCommand{
		Name:    "Hoodie",
		Variant: "Black M",
		Qty:     5,
		Price:   decimal.RequireFromString("45.00"),
		Date:    mustDate(t, "2024-10-28"),
	})
	if err != nil {
		t.Fatalf("Failed to create order: %v", err)
	}

	if !strings.HasPrefix(order.ID, "ORD-") {
		t.Errorf("Expected ORD- prefixed id, got %q", order.ID)
	}

	stored, err := repo.FindByID(order.ID)
	if err != nil {
		t.Fatalf("Order not persisted: %v", err)
	}
	if stored.Variant != "Black M" || stored.Qty != 5 {
		t.Errorf("Unexpected stored order: %+v", stored)
	}
}

func TestCreateOrderHandler_Validation(t *testing.T) {
	handler := NewCreateOrderHandler(repository.NewMemoryOrderRepository())

	_, err := handler.Handle(CreateOrderCommand{
		Qty:   0,
		Price: decimal.NewFromInt(-1),
	})
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("Expected validation.Error, got %T", err)
	}
	if len(verr.Fields) != 5 {
		t.Errorf("Expected 5 rejected fields, got %v", verr.Fields)
	}
}

func TestDeleteOrderHandler(t *testing.T) {
	repo := repository.NewMemoryOrderRepository()
	created, _ := NewCreateOrderHandler(repo).Handle(CreateOrderCommand{
		Name:    "Hoodie",
		Variant: "Black M",
		Qty:     5,
		Price:   decimal.NewFromInt(45),
		Date:    mustDate(t, "2024-10-28"),
	})
	handler := NewDeleteOrderHandler(repo)

	// No confirmation step for orders.
	if err := handler.Handle(DeleteOrderCommand{ID: created.ID}); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.FindByID(created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected order gone, got %v", err)
	}
	if err := handler.Handle(DeleteOrderCommand{ID: created.ID}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestImportOrdersHandler_Sample(t *testing.T) {
	repo := repository.NewMemoryOrderRepository()
	handler := NewImportOrdersHandler(repo)

	report, err := handler.Handle(ImportOrdersCommand{Reader: strings.NewReader(csvio.Sample)})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if report.Imported != 4 {
		t.Errorf("Expected 4 imported, got %d", report.Imported)
	}
	if len(report.Errors) != 0 {
		t.Errorf("Expected no row errors, got %v", report.Errors)
	}

	count, _ := repo.Count()
	if count != 4 {
		t.Errorf("Expected 4 stored orders, got %d", count)
	}

	for _, o := range report.Orders {
		if !strings.HasPrefix(o.ID, "ORD-") {
			t.Errorf("Expected ORD- prefixed id, got %q", o.ID)
		}
	}
}

func TestImportOrdersHandler_PartialRows(t *testing.T) {
	repo := repository.NewMemoryOrderRepository()
	handler := NewImportOrdersHandler(repo)

	input := "name,variant,qty,price,date\n" +
		"Hoodie,Black M,5,45.00,2024-10-28\n" +
		"Hoodie,Black L,bad,45.00,2024-10-28\n"

	report, err := handler.Handle(ImportOrdersCommand{Reader: strings.NewReader(input)})
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if report.Imported != 1 {
		t.Errorf("Expected 1 imported, got %d", report.Imported)
	}
	if len(report.Errors) != 1 || report.Errors[0].Line != 3 {
		t.Errorf("Expected one error on line 3, got %v", report.Errors)
	}
}

func TestImportOrdersHandler_BadHeader(t *testing.T) {
	handler := NewImportOrdersHandler(repository.NewMemoryOrderRepository())

	_, err := handler.Handle(ImportOrdersCommand{Reader: strings.NewReader("id,name\n1,x\n")})
	if err == nil {
		t.Fatal("Expected header error, got nil")
	}
}
