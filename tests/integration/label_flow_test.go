package integration

import (
	"net/http"
	"testing"
)

func TestLabelFlow_CategoryLifecycle(t *testing.T) {
	app := setupApp(t)

	// Create two categories
	foodID := app.createCategory(t, "Food")
	app.createCategory(t, "Home")

	// List returns both
	rec := app.request("GET", "/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := len(dataList(t, rec)); got != 2 {
		t.Errorf("expected 2 categories, got %d", got)
	}

	// Rename one
	rec = app.request("PUT", "/categories/"+foodID, `{"name":"Groceries"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if renamed := data(t, rec); renamed["name"] != "Groceries" {
		t.Errorf("expected Groceries, got %v", renamed["name"])
	}

	// The rename sticks
	rec = app.request("GET", "/categories/"+foodID, "")
	if fetched := data(t, rec); fetched["name"] != "Groceries" {
		t.Errorf("expected Groceries after reload, got %v", fetched["name"])
	}

	// Delete it and it disappears
	rec = app.request("DELETE", "/categories/"+foodID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/categories/"+foodID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
	rec = app.request("GET", "/categories", "")
	if got := len(dataList(t, rec)); got != 1 {
		t.Errorf("expected 1 category after delete, got %d", got)
	}
}

func TestLabelFlow_BillingTypeLifecycle(t *testing.T) {
	app := setupApp(t)

	cardID := app.createBillingType(t, "Credit Card")

	// Blank names are rejected
	rec := app.request("POST", "/billingTypes", `{"name":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank name, got %d: %s", rec.Code, rec.Body.String())
	}

	// Rename and reload
	rec = app.request("PUT", "/billingTypes/"+cardID, `{"name":"Debit Card"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/billingTypes/"+cardID, "")
	if fetched := data(t, rec); fetched["name"] != "Debit Card" {
		t.Errorf("expected Debit Card, got %v", fetched["name"])
	}

	// Creating an invoice against a deleted billing type fails
	categoryID := app.createCategory(t, "Misc")
	rec = app.request("DELETE", "/billingTypes/"+cardID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = app.request("POST", "/invoices",
		`{"name":"Chair","purchaseDate":"2024-05-01","price":150,"categoryId":"`+categoryID+`","billingTypeId":"`+cardID+`"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for deleted billing type, got %d: %s", rec.Code, rec.Body.String())
	}
}
