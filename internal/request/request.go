// Package request turns raw key/value request data into typed stock and
// demand records and validates their domain.
//
// The input contract is a flat string map with keys len<i>/qty<i> (stock
// entries paired by index) and demand_len/demand_qty (exactly one demand
// pair). All values are decimal strings.
package request

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/piwi3910/profilecut/internal/model"
)

// ValidationError reports malformed or out-of-domain input. It is detected
// before any optimization work and never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Parse normalizes a raw form map into a Job. Stock entries are ordered by
// their numeric key index; that order defines the index space used by the
// solvers and the formatted output.
//
// Rules:
//   - any negative length or quantity is rejected;
//   - zero-quantity stock entries are dropped;
//   - the stock list must be non-empty after dropping;
//   - demand length and quantity must be positive.
func Parse(form map[string]string) (model.Job, error) {
	var job model.Job

	indices, err := stockIndices(form)
	if err != nil {
		return job, err
	}

	for _, idx := range indices {
		lenKey := "len" + idx
		qtyKey := "qty" + idx

		length, err := parseFloat(lenKey, form[lenKey])
		if err != nil {
			return job, err
		}
		qty, err := parseInt(qtyKey, form[qtyKey])
		if err != nil {
			return job, err
		}

		if length < 0 {
			return job, validationf("stock length must not be negative, got %v for %s", length, lenKey)
		}
		if qty < 0 {
			return job, validationf("stock quantity must not be negative, got %d for %s", qty, qtyKey)
		}
		// Zero quantity means the entry does not exist in stock.
		if qty == 0 {
			continue
		}
		if length == 0 {
			return job, validationf("stock entry %s has quantity %d but zero length", idx, qty)
		}

		job.Stocks = append(job.Stocks, model.NewStockBar(fmt.Sprintf("Stock %s", formatLength(length)), length, qty))
	}

	if len(job.Stocks) == 0 {
		return job, validationf("stock is empty: enter at least one quantity greater than zero")
	}

	demandLen, err := parseFloat("demand_len", form["demand_len"])
	if err != nil {
		return job, err
	}
	demandQty, err := parseInt("demand_qty", form["demand_qty"])
	if err != nil {
		return job, err
	}
	if demandLen < 0 || demandQty < 0 {
		return job, validationf("demand must not be negative")
	}
	if demandLen == 0 || demandQty == 0 {
		return job, validationf("demand is empty: enter a length and quantity greater than zero")
	}

	job.Demand = model.Demand{Length: demandLen, Quantity: demandQty}
	return job, nil
}

// stockIndices collects the index suffixes of all len<i>/qty<i> pairs,
// sorted numerically. A length without a matching quantity (or vice versa)
// is a validation error.
func stockIndices(form map[string]string) ([]string, error) {
	seen := map[string]bool{}
	var indices []string
	for key := range form {
		var idx string
		switch {
		case strings.HasPrefix(key, "demand_"):
			continue
		case strings.HasPrefix(key, "len"):
			idx = key[len("len"):]
		case strings.HasPrefix(key, "qty"):
			idx = key[len("qty"):]
		default:
			continue
		}
		if !seen[idx] {
			seen[idx] = true
			indices = append(indices, idx)
		}
	}

	for _, idx := range indices {
		if _, ok := form["len"+idx]; !ok {
			return nil, validationf("stock entry %s has a quantity but no length", idx)
		}
		if _, ok := form["qty"+idx]; !ok {
			return nil, validationf("stock entry %s has a length but no quantity", idx)
		}
	}

	sort.Slice(indices, func(i, j int) bool {
		a, aerr := strconv.Atoi(indices[i])
		b, berr := strconv.Atoi(indices[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		return indices[i] < indices[j]
	})
	return indices, nil
}

func parseFloat(key, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, validationf("%s: %q is not a number", key, value)
	}
	return v, nil
}

func parseInt(key, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, validationf("%s: %q is not a whole number", key, value)
	}
	return v, nil
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " m"
}
