// Package importer provides CSV and Excel import functionality for batch
// run lists. It supports automatic delimiter detection, flexible column
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

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/AngleCut/internal/model"
)

// ImportedRun is one row of a run list: a labelled run to plan.
type ImportedRun struct {
	Label   string
	Request model.RunRequest
}

// ImportResult holds the results of an import operation. Rows that cannot
// be parsed land in Errors; recoverable oddities land in Warnings.
type ImportResult struct {
	Runs     []ImportedRun
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
// A value of -1 means the column is absent.
type ColumnMapping struct {
	Label     int
	RunLength int
	Centres   int
	MaxLength int
}

// headerAliases maps canonical column names to their accepted aliases (all
// lowercase).
var headerAliases = map[string][]string{
	"label":     {"label", "name", "run", "run name", "description", "desc", "wall", "zone"},
	"runlength": {"run length", "runlength", "length", "total", "total length", "l"},
	"centres":   {"centres", "centers", "bracket centres", "bracket centers", "bcc", "spacing", "c"},
	"maxlength": {"max length", "maxlength", "max angle", "max piece", "stock", "max stock"},
}

// DetectCSVDelimiter reads the file content and determines the most likely
// CSV delimiter. It tries comma, semicolon, tab, and pipe; the delimiter
// that produces the most consistent multi-column split wins.
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

// DetectColumns examines a header row and returns a ColumnMapping. It
// performs case-insensitive matching against known aliases for each column
// role. Returns the mapping and true if a header was detected, or a default
// positional mapping (label, run length, centres, max length) and false if
// no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, RunLength: -1, Centres: -1, MaxLength: -1}
	found := false

	for idx, cell := range row {
		name := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if name != alias {
					continue
				}
				found = true
				switch role {
				case "label":
					mapping.Label = idx
				case "runlength":
					mapping.RunLength = idx
				case "centres":
					mapping.Centres = idx
				case "maxlength":
					mapping.MaxLength = idx
				}
			}
		}
	}

	if !found || mapping.RunLength < 0 || mapping.Centres < 0 {
		// Headerless files: a leading numeric cell means the label column
		// is absent and the row starts with the run length.
		if len(row) > 0 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64); err == nil {
				return ColumnMapping{Label: -1, RunLength: 0, Centres: 1, MaxLength: 2}, false
			}
		}
		return ColumnMapping{Label: 0, RunLength: 1, Centres: 2, MaxLength: 3}, false
	}
	return mapping, true
}

// ImportCSV parses a run list from CSV data.
func ImportCSV(data []byte) ImportResult {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectCSVDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("failed to parse CSV: %v", err)}}
	}
	return importRows(records)
}

// ImportExcel parses a run list from the first sheet of an Excel workbook.
func ImportExcel(path string) ImportResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("failed to open workbook: %v", err)}}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ImportResult{Errors: []string{"workbook has no sheets"}}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("failed to read sheet %q: %v", sheets[0], err)}}
	}
	return importRows(rows)
}

// ImportFile dispatches on the file extension: .csv/.txt go through the CSV
// path, .xlsx/.xlsm through excelize.
func ImportFile(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ImportExcel(path)
	case ".csv", ".txt", "":
		data, err := os.ReadFile(path)
		if err != nil {
			return ImportResult{Errors: []string{fmt.Sprintf("failed to read %s: %v", path, err)}}
		}
		return ImportCSV(data)
	default:
		return ImportResult{Errors: []string{fmt.Sprintf("unsupported file type %q", filepath.Ext(path))}}
	}
}

// importRows converts raw rows into run requests, skipping the header row
// when one is detected.
func importRows(rows [][]string) ImportResult {
	var result ImportResult
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "file contains no rows")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}

		run, err := parseRun(row, mapping)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if run.Label == "" {
			run.Label = fmt.Sprintf("Run %d", len(result.Runs)+1)
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: no label, using %q", i+1, run.Label))
		}
		result.Runs = append(result.Runs, run)
	}

	if len(result.Runs) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "no runs found in file")
	}
	return result
}

func parseRun(row []string, mapping ColumnMapping) (ImportedRun, error) {
	length, err := cellFloat(row, mapping.RunLength)
	if err != nil {
		return ImportedRun{}, fmt.Errorf("run length: %w", err)
	}
	centres, err := cellFloat(row, mapping.Centres)
	if err != nil {
		return ImportedRun{}, fmt.Errorf("bracket centres: %w", err)
	}

	req := model.NewRunRequest(length, centres)
	if mapping.MaxLength >= 0 && mapping.MaxLength < len(row) && strings.TrimSpace(row[mapping.MaxLength]) != "" {
		maxLen, err := cellFloat(row, mapping.MaxLength)
		if err != nil {
			return ImportedRun{}, fmt.Errorf("max length: %w", err)
		}
		req.MaxAngleLength = maxLen
	}
	if err := req.Validate(); err != nil {
		return ImportedRun{}, err
	}

	run := ImportedRun{Request: req}
	if mapping.Label >= 0 && mapping.Label < len(row) {
		run.Label = strings.TrimSpace(row[mapping.Label])
	}
	return run, nil
}

// cellFloat parses a millimeter value from a row cell, accepting both
// decimal comma and decimal point.
func cellFloat(row []string, idx int) (float64, error) {
	if idx < 0 || idx >= len(row) {
		return 0, fmt.Errorf("column %d missing", idx+1)
	}
	raw := strings.TrimSpace(row[idx])
	if raw == "" {
		return 0, fmt.Errorf("empty value")
	}
	normalized := strings.ReplaceAll(raw, ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return v, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
