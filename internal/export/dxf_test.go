package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/profilecut/internal/model"
)

func TestExportDXF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.dxf")

	if err := ExportDXF(path, buildTestSolution()); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "BARS") {
		t.Error("DXF missing BARS layer")
	}
	if !strings.Contains(content, "CUTS") {
		t.Error("DXF missing CUTS layer")
	}
	if !strings.Contains(content, "LINE") {
		t.Error("DXF missing line entities")
	}
}

func TestExportDXF_EmptySolution(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.dxf")

	if err := ExportDXF(path, model.Solution{}); err == nil {
		t.Fatal("expected error for empty solution, got nil")
	}
}
