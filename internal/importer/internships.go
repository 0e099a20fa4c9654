// Package importer reads internship listings from spreadsheet workbooks.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go-internship-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

// Columns is the header row of an internship workbook, in template order.
var Columns = []string{"title", "company", "sector", "location_city", "location_state", "stipend", "skills_required"}

var headerAliases = map[string]string{
	"city":   "location_city",
	"state":  "location_state",
	"skills": "skills_required",
}

// RowError points at the offending spreadsheet row (1-based, header is row 1).
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ReadInternships parses a workbook. sheet may be empty to use the first sheet.
// Blank cells become NULL columns; fully blank rows are skipped.
func ReadInternships(r io.Reader, sheet string) ([]domain.Internship, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	index := headerIndex(rows[0])
	if _, ok := index["stipend"]; !ok {
		return nil, fmt.Errorf("sheet %q has no stipend column", sheet)
	}

	internships := make([]domain.Internship, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		cell := func(col string) *string {
			idx, ok := index[col]
			if !ok || idx >= len(row) {
				return nil
			}
			v := strings.TrimSpace(row[idx])
			if v == "" {
				return nil
			}
			return &v
		}

		stipend, err := parseStipend(cell("stipend"))
		if err != nil {
			return nil, &RowError{Row: i + 2, Err: err}
		}

		internships = append(internships, domain.Internship{
			Title:          cell("title"),
			Company:        cell("company"),
			Sector:         cell("sector"),
			City:           cell("location_city"),
			State:          cell("location_state"),
			Stipend:        stipend,
			SkillsRequired: cell("skills_required"),
		})
	}

	return internships, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		name = strings.ReplaceAll(name, " ", "_")
		if alias, ok := headerAliases[name]; ok {
			name = alias
		}
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	return index
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseStipend accepts plain or formatted amounts like "15,000" or "₹ 8000".
func parseStipend(v *string) (int, error) {
	if v == nil {
		return 0, nil
	}
	cleaned := strings.NewReplacer(",", "", "₹", "", "Rs.", "", "Rs", "", " ", "").Replace(*v)
	if cleaned == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid stipend %q", *v)
	}
	return int(n), nil
}

// WriteTemplate writes an empty workbook with the expected header row.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Internships"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(Columns))
	for i, col := range Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	endCell, _ := excelize.CoordinatesToCellName(len(Columns), 1)
	if err := f.SetCellStyle(sheetName, "A1", endCell, headerStyle); err != nil {
		return err
	}

	for i := range Columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, colName, colName, 20)
	}

	_, err = f.WriteTo(w)
	return err
}
