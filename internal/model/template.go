package model

import (
	"time"

	"github.com/google/uuid"
)

// JobTemplate is a reusable job definition: a stock set and a demand, but no
// solution. Solutions are never persisted.
type JobTemplate struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
	Stocks      []StockBar `json:"stocks"`
	Demand      Demand     `json:"demand"`
}

// NewJobTemplate creates a template from the given job data.
func NewJobTemplate(name, description string, stocks []StockBar, demand Demand) JobTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return JobTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Stocks:      copyStocks(stocks),
		Demand:      demand,
	}
}

// ToJob creates a fresh Job from this template. Stock entries get new IDs so
// they are independent of the template.
func (t JobTemplate) ToJob(name string) Job {
	stocks := make([]StockBar, len(t.Stocks))
	for i, s := range t.Stocks {
		stocks[i] = NewStockBar(s.Label, s.Length, s.Quantity)
		stocks[i].PricePerBar = s.PricePerBar
	}
	return Job{
		Name:   name,
		Stocks: stocks,
		Demand: t.Demand,
	}
}

// TemplateStore holds a collection of job templates.
type TemplateStore struct {
	Templates []JobTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []JobTemplate{}}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t JobTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *JobTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *JobTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for listings.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// copyStocks creates a copy of a stock slice.
func copyStocks(stocks []StockBar) []StockBar {
	if stocks == nil {
		return []StockBar{}
	}
	cp := make([]StockBar, len(stocks))
	copy(cp, stocks)
	return cp
}
