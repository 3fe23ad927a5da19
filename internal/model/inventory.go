package model

import "github.com/google/uuid"

// BarPreset represents a reusable stock bar definition.
type BarPreset struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Length      float64 `json:"length"` // meters
	Material    string  `json:"material"`
	PricePerBar float64 `json:"price_per_bar"`
}

// NewBarPreset creates a new BarPreset with a generated ID.
func NewBarPreset(name string, length float64, material string, price float64) BarPreset {
	return BarPreset{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Length:      length,
		Material:    material,
		PricePerBar: price,
	}
}

// ToStockBar converts a BarPreset into a StockBar with the given quantity.
func (bp BarPreset) ToStockBar(qty int) StockBar {
	bar := NewStockBar(bp.Name, bp.Length, qty)
	bar.PricePerBar = bp.PricePerBar
	return bar
}

// Inventory holds the user's saved bar presets.
type Inventory struct {
	Bars []BarPreset `json:"bars"`
}

// DefaultInventory returns an inventory populated with common profile lengths.
func DefaultInventory() Inventory {
	return Inventory{
		Bars: []BarPreset{
			NewBarPreset("Steel profile 6m", 6.0, "Steel", 14.50),
			NewBarPreset("Steel profile 12m", 12.0, "Steel", 27.00),
			NewBarPreset("Aluminium profile 4m", 4.0, "Aluminium", 11.20),
			NewBarPreset("Aluminium profile 6m", 6.0, "Aluminium", 16.40),
			NewBarPreset("PVC profile 6.5m", 6.5, "PVC", 8.90),
		},
	}
}

// FindBarByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindBarByID(id string) *BarPreset {
	for i := range inv.Bars {
		if inv.Bars[i].ID == id {
			return &inv.Bars[i]
		}
	}
	return nil
}

// FindBarByName returns a pointer to the first preset with the given name, or nil.
func (inv *Inventory) FindBarByName(name string) *BarPreset {
	for i := range inv.Bars {
		if inv.Bars[i].Name == name {
			return &inv.Bars[i]
		}
	}
	return nil
}

// BarNames returns a list of preset names for listings and completion.
func (inv *Inventory) BarNames() []string {
	names := make([]string, len(inv.Bars))
	for i, b := range inv.Bars {
		names[i] = b.Name
	}
	return names
}

// Remove deletes the preset with the given ID. Returns true if found.
func (inv *Inventory) Remove(id string) bool {
	for i := range inv.Bars {
		if inv.Bars[i].ID == id {
			inv.Bars = append(inv.Bars[:i], inv.Bars[i+1:]...)
			return true
		}
	}
	return false
}
