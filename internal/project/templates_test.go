package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/profilecut/internal/model"
)

func TestSaveAndLoadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	store := model.NewTemplateStore()
	store.Add(model.NewJobTemplate("window frames", "standard run",
		[]model.StockBar{model.NewStockBar("Steel 6m", 6.0, 3)},
		model.Demand{Length: 1.2, Quantity: 10}))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}
	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	tmpl := loaded.Templates[0]
	if tmpl.Name != "window frames" || tmpl.Demand.Quantity != 10 {
		t.Errorf("unexpected template: %+v", tmpl)
	}
	if len(tmpl.Stocks) != 1 || tmpl.Stocks[0].Length != 6.0 {
		t.Errorf("unexpected stocks: %+v", tmpl.Stocks)
	}
}

func TestLoadTemplatesMissingFileReturnsEmptyStore(t *testing.T) {
	store, err := LoadTemplates(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}
	if store.Templates == nil {
		t.Error("Templates should be an empty slice, not nil")
	}
	if len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %d templates", len(store.Templates))
	}
}

func TestLoadTemplatesFixesNilSlice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")
	if err := os.WriteFile(path, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}
	if store.Templates == nil {
		t.Error("Templates should be an empty slice, not nil")
	}
}
