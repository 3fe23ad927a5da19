package importer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestDetectCSVDelimiter(t *testing.T) {
	cases := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "length,qty\n5,3\n4,2\n", ','},
		{"semicolon", "length;qty\n5;3\n4;2\n", ';'},
		{"tab", "length\tqty\n5\t3\n", '\t'},
		{"pipe", "length|qty\n5|3\n", '|'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectCSVDelimiter([]byte(tc.data)); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDetectColumnsWithHeader(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"Name", "Length (m)", "Qty", "Price"})
	if !hasHeader {
		t.Fatal("expected header detection")
	}
	if mapping.Label != 0 || mapping.Length != 1 || mapping.Quantity != 2 || mapping.Price != 3 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumnsWithoutHeader(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"5", "3"})
	if hasHeader {
		t.Fatal("numeric row should not count as a header")
	}
	if mapping.Length != 0 || mapping.Quantity != 1 {
		t.Errorf("expected positional default, got %+v", mapping)
	}
	if mapping.Label != -1 || mapping.Price != -1 {
		t.Errorf("expected absent label/price, got %+v", mapping)
	}
}

func TestImportCSVWithHeader(t *testing.T) {
	path := writeTempCSV(t, "name,length,qty,price\nSteel 5m,5,3,14.50\nSteel 4m,4,2,11\n")

	res := ImportCSV(path)
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Stocks) != 2 {
		t.Fatalf("expected 2 stocks, got %d", len(res.Stocks))
	}
	if res.Stocks[0].Label != "Steel 5m" || res.Stocks[0].Length != 5 || res.Stocks[0].Quantity != 3 {
		t.Errorf("unexpected first stock: %+v", res.Stocks[0])
	}
	if res.Stocks[0].PricePerBar != 14.50 {
		t.Errorf("expected price 14.50, got %v", res.Stocks[0].PricePerBar)
	}
}

func TestImportCSVWithoutHeader(t *testing.T) {
	path := writeTempCSV(t, "5,3\n4,2\n")

	res := ImportCSV(path)
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Stocks) != 2 {
		t.Fatalf("expected 2 stocks, got %d", len(res.Stocks))
	}
	if res.Stocks[0].Label != "Stock 5 m" {
		t.Errorf("expected generated label, got %q", res.Stocks[0].Label)
	}
}

func TestImportCSVDecimalComma(t *testing.T) {
	path := writeTempCSV(t, "length;qty\n6,5;2\n")

	res := ImportCSV(path)
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Stocks) != 1 || res.Stocks[0].Length != 6.5 {
		t.Errorf("expected 6.5 m stock, got %+v", res.Stocks)
	}
}

func TestImportCSVSkipsBadRowsWithWarnings(t *testing.T) {
	path := writeTempCSV(t, "length,qty\n5,3\nabc,2\n4,xyz\n-1,2\n0,0\n\n6,1\n")

	res := ImportCSV(path)
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(res.Stocks) != 2 {
		t.Errorf("expected 2 usable stocks, got %d", len(res.Stocks))
	}
	if len(res.Warnings) != 4 {
		t.Errorf("expected 4 warnings, got %d: %v", len(res.Warnings), res.Warnings)
	}
}

func TestImportCSVNoUsableRows(t *testing.T) {
	path := writeTempCSV(t, "length,qty\nabc,def\n")

	res := ImportCSV(path)
	if len(res.Errors) == 0 {
		t.Error("expected an error for a file without usable rows")
	}
}

func TestImportCSVMissingFile(t *testing.T) {
	res := ImportCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if len(res.Errors) == 0 {
		t.Error("expected an error for a missing file")
	}
}

func TestImportFileDispatchesByExtension(t *testing.T) {
	path := writeTempCSV(t, "5,3\n")
	res := ImportFile(path)
	if len(res.Stocks) != 1 {
		t.Errorf("expected CSV dispatch to import 1 stock, got %+v", res)
	}

	res = ImportFile(filepath.Join(t.TempDir(), "missing.xlsx"))
	if len(res.Errors) == 0 {
		t.Error("expected an error for a missing workbook")
	}
}
