// Package importer provides CSV and Excel import functionality for stock
// bar lists. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/piwi3910/profilecut/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Stocks   []model.StockBar
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// A value of -1 means the column is absent.
type ColumnMapping struct {
	Label    int
	Length   int
	Quantity int
	Price    int
}

// headerAliases maps canonical column names to their accepted aliases (all
// lowercase).
var headerAliases = map[string][]string{
	"label":    {"label", "name", "bar", "stock", "profile", "description", "desc"},
	"length":   {"length", "len", "l", "size", "bar length", "length m", "length (m)"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "bars"},
	"price":    {"price", "cost", "price per bar", "unit price"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter
// producing the most consistent multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping. Matching
// is case-insensitive against known aliases. Returns the mapping and true
// if a header was detected, or a positional default (length, quantity,
// label, price) and false otherwise.
func DetectColumns(header []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Length: -1, Quantity: -1, Price: -1}
	matched := false

	for idx, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if name != alias {
					continue
				}
				matched = true
				switch role {
				case "label":
					mapping.Label = idx
				case "length":
					mapping.Length = idx
				case "quantity":
					mapping.Quantity = idx
				case "price":
					mapping.Price = idx
				}
			}
		}
	}

	if !matched || mapping.Length < 0 || mapping.Quantity < 0 {
		return ColumnMapping{Label: -1, Length: 0, Quantity: 1, Price: -1}, false
	}
	return mapping, true
}

// ImportFile imports stock bars from a CSV or XLSX file, chosen by
// extension.
func ImportFile(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ImportXLSX(path)
	default:
		return ImportCSV(path)
	}
}

// ImportCSV imports stock bars from a CSV file with delimiter and header
// auto-detection.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read file: %v", err))
		return result
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot parse CSV: %v", err))
		return result
	}
	return importRows(records)
}

// ImportXLSX imports stock bars from the first sheet of an Excel workbook.
func ImportXLSX(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open workbook: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Workbook contains no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read sheet %q: %v", sheets[0], err))
		return result
	}
	return importRows(rows)
}

// importRows converts raw rows into stock bars, skipping and reporting bad
// rows individually so one typo does not sink the whole file.
func importRows(rows [][]string) ImportResult {
	result := ImportResult{}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File contains no rows")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		length, err := cellFloat(row, mapping.Length)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Row %d: bad length: %v", i+1, err))
			continue
		}
		qty, err := cellInt(row, mapping.Quantity)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Row %d: bad quantity: %v", i+1, err))
			continue
		}
		if length <= 0 || qty <= 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Row %d: skipped (non-positive length or quantity)", i+1))
			continue
		}

		label := fmt.Sprintf("Stock %s m", strconv.FormatFloat(length, 'f', -1, 64))
		if mapping.Label >= 0 && mapping.Label < len(row) && strings.TrimSpace(row[mapping.Label]) != "" {
			label = strings.TrimSpace(row[mapping.Label])
		}

		bar := model.NewStockBar(label, length, qty)
		if mapping.Price >= 0 {
			if price, err := cellFloat(row, mapping.Price); err == nil && price > 0 {
				bar.PricePerBar = price
			}
		}
		result.Stocks = append(result.Stocks, bar)
	}

	if len(result.Stocks) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No usable stock rows found")
	}
	return result
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellFloat(row []string, idx int) (float64, error) {
	if idx < 0 || idx >= len(row) {
		return 0, fmt.Errorf("column %d missing", idx)
	}
	raw := strings.TrimSpace(strings.ReplaceAll(row[idx], ",", "."))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", row[idx])
	}
	return v, nil
}

func cellInt(row []string, idx int) (int, error) {
	if idx < 0 || idx >= len(row) {
		return 0, fmt.Errorf("column %d missing", idx)
	}
	v, err := strconv.Atoi(strings.TrimSpace(row[idx]))
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", row[idx])
	}
	return v, nil
}
