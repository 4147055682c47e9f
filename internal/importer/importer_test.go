package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Label,Run Length,Centres\nKitchen,2321,500\nHall,1490,500\n")
	if got := DetectCSVDelimiter(data); got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Label;Run Length;Centres\nKitchen;2321;500\nHall;1490;500\n")
	if got := DetectCSVDelimiter(data); got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Label\tRun Length\tCentres\nKitchen\t2321\t500\n")
	if got := DetectCSVDelimiter(data); got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Label|Run Length|Centres\nKitchen|2321|500\n")
	if got := DetectCSVDelimiter(data); got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Label", "Run Length", "Centres", "Max Length"})

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.RunLength != 1 {
		t.Errorf("expected RunLength at 1, got %d", mapping.RunLength)
	}
	if mapping.Centres != 2 {
		t.Errorf("expected Centres at 2, got %d", mapping.Centres)
	}
	if mapping.MaxLength != 3 {
		t.Errorf("expected MaxLength at 3, got %d", mapping.MaxLength)
	}
}

func TestDetectColumns_CaseInsensitiveAliases(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"WALL", "TOTAL", "BCC", "STOCK"})

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 || mapping.RunLength != 1 || mapping.Centres != 2 || mapping.MaxLength != 3 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_HeaderlessNumericRow(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"2321", "500"})

	if isHeader {
		t.Error("numeric row must not count as a header")
	}
	if mapping.Label != -1 {
		t.Errorf("expected no label column, got %d", mapping.Label)
	}
	if mapping.RunLength != 0 || mapping.Centres != 1 {
		t.Errorf("unexpected positional mapping: %+v", mapping)
	}
}

func TestDetectColumns_HeaderlessLabelledRow(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Kitchen", "2321", "500"})

	if isHeader {
		t.Error("data row must not count as a header")
	}
	if mapping.Label != 0 || mapping.RunLength != 1 || mapping.Centres != 2 {
		t.Errorf("unexpected positional mapping: %+v", mapping)
	}
}

// ─── ImportCSV Tests ───────────────────────────────────────

func TestImportCSV_WithHeader(t *testing.T) {
	data := []byte("Label,Run Length,Centres,Max Length\nKitchen,2321,500,\nGarage,5072.5,300,1190\n")

	result := ImportCSV(data)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(result.Runs))
	}

	first := result.Runs[0]
	if first.Label != "Kitchen" {
		t.Errorf("expected label Kitchen, got %q", first.Label)
	}
	if first.Request.TotalRunLength != 2321 {
		t.Errorf("expected run length 2321, got %.1f", first.Request.TotalRunLength)
	}
	if first.Request.BracketCentres != 500 {
		t.Errorf("expected centres 500, got %.1f", first.Request.BracketCentres)
	}
	if first.Request.MaxAngleLength != 1490 {
		t.Errorf("blank max length must default to 1490, got %.1f", first.Request.MaxAngleLength)
	}

	second := result.Runs[1]
	if second.Request.TotalRunLength != 5072.5 {
		t.Errorf("expected fractional run length 5072.5, got %.2f", second.Request.TotalRunLength)
	}
	if second.Request.MaxAngleLength != 1190 {
		t.Errorf("expected max length 1190, got %.1f", second.Request.MaxAngleLength)
	}
}

func TestImportCSV_HeaderlessNumeric(t *testing.T) {
	data := []byte("2321,500\n1490,500\n")

	result := ImportCSV(data)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(result.Runs))
	}

	// Auto-generated labels carry a warning each.
	if result.Runs[0].Label != "Run 1" {
		t.Errorf("expected auto label Run 1, got %q", result.Runs[0].Label)
	}
	if len(result.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %d: %v", len(result.Warnings), result.Warnings)
	}
}

func TestImportCSV_DecimalComma(t *testing.T) {
	data := []byte("Label;Run Length;Centres\nTerrace;5072,5;300\n")

	result := ImportCSV(data)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(result.Runs))
	}
	if result.Runs[0].Request.TotalRunLength != 5072.5 {
		t.Errorf("decimal comma not parsed: got %.2f", result.Runs[0].Request.TotalRunLength)
	}
}

func TestImportCSV_BadRowsCollectErrors(t *testing.T) {
	data := []byte("Label,Run Length,Centres\nGood,1490,500\nBad,not-a-number,500\nWorse,1000,-5\n")

	result := ImportCSV(data)
	if len(result.Runs) != 1 {
		t.Fatalf("expected 1 good run, got %d", len(result.Runs))
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if !strings.Contains(result.Errors[0], "row 3") {
		t.Errorf("error should name the row: %q", result.Errors[0])
	}
}

func TestImportCSV_SkipsBlankRows(t *testing.T) {
	data := []byte("Label,Run Length,Centres\nKitchen,2321,500\n,,\n\nHall,1490,500\n")

	result := ImportCSV(data)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(result.Runs))
	}
}

func TestImportCSV_Empty(t *testing.T) {
	result := ImportCSV([]byte(""))
	if len(result.Errors) == 0 {
		t.Fatal("expected an error for empty input")
	}
}

// ─── ImportFile / ImportExcel Tests ────────────────────────

func TestImportFile_CSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.csv")
	content := "Label,Run Length,Centres\nKitchen,2321,500\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportFile(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(result.Runs))
	}
}

func TestImportFile_Excel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Label", "Run Length", "Centres"},
		{"Kitchen", 2321, 500},
		{"Garage", 5072.5, 300},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	result := ImportFile(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(result.Runs))
	}
	if result.Runs[1].Request.TotalRunLength != 5072.5 {
		t.Errorf("expected 5072.5, got %.2f", result.Runs[1].Request.TotalRunLength)
	}
}

func TestImportFile_UnsupportedExtension(t *testing.T) {
	result := ImportFile("runs.pdf")
	if len(result.Errors) == 0 {
		t.Fatal("expected an error for unsupported file type")
	}
}

func TestImportFile_Missing(t *testing.T) {
	result := ImportFile(filepath.Join(t.TempDir(), "nope.csv"))
	if len(result.Errors) == 0 {
		t.Fatal("expected an error for a missing file")
	}
}
