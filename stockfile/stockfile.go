// Package stockfile builds and parses the xlsx files used by the bulk stock
// update: a downloadable template, an upload built from rows, and a parser
// that tolerates the header spellings sellers actually type.
package stockfile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// Row is one article line of a bulk stock file.
type Row struct {
	Article           string
	AvailableQuantity int
}

// Header aliases accepted by Parse, lowercased. Russian spellings are in the
// list because most uploaded files come from seller exports.
var (
	articleAliases  = []string{"article", "артикул", "арт", "art", "sku"}
	quantityAliases = []string{"available_quantity", "available", "quantity", "количество", "остаток"}
)

// BuildTemplate writes an empty two-column file with one example row.
func BuildTemplate(w io.Writer) error {
	return write(w, []Row{{Article: "ART-00001", AvailableQuantity: 100}})
}

// BuildUpload writes the rows as an upload-ready file.
func BuildUpload(w io.Writer, rows []Row) error {
	return write(w, rows)
}

func write(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue(sheetName, "A1", "article")
	f.SetCellValue(sheetName, "B1", "available_quantity")
	for i, row := range rows {
		f.SetCellValue(sheetName, "A"+fmt.Sprint(i+2), row.Article)
		f.SetCellValue(sheetName, "B"+fmt.Sprint(i+2), row.AvailableQuantity)
	}
	return f.Write(w)
}

// ParseResult separates the usable rows from the per-row problems; a file
// with some bad rows still yields its good ones.
type ParseResult struct {
	Rows   []Row
	Errors []string
}

// Parse reads an uploaded xlsx. The first row must carry recognizable
// article and quantity headers (aliases allowed, any column order); blank
// rows are skipped, rows with a bad article or quantity are reported in
// Errors with their 1-based row number.
func Parse(r io.Reader) (*ParseResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read xlsx file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	articleCol, quantityCol, err := locateColumns(rows[0])
	if err != nil {
		return nil, err
	}

	result := &ParseResult{}
	for i, row := range rows[1:] {
		rowNo := i + 2
		article := cell(row, articleCol)
		rawQuantity := cell(row, quantityCol)
		if article == "" && rawQuantity == "" {
			continue
		}
		if article == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing article", rowNo))
			continue
		}
		quantity, err := parseQuantityCell(rawQuantity)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNo, err))
			continue
		}
		result.Rows = append(result.Rows, Row{Article: article, AvailableQuantity: quantity})
	}
	return result, nil
}

func locateColumns(header []string) (articleCol, quantityCol int, err error) {
	articleCol, quantityCol = -1, -1
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if articleCol < 0 && contains(articleAliases, name) {
			articleCol = i
		}
		if quantityCol < 0 && contains(quantityAliases, name) {
			quantityCol = i
		}
	}
	if articleCol < 0 {
		return 0, 0, fmt.Errorf("no article column found (expected one of: %s)", strings.Join(articleAliases, ", "))
	}
	if quantityCol < 0 {
		return 0, 0, fmt.Errorf("no quantity column found (expected one of: %s)", strings.Join(quantityAliases, ", "))
	}
	return articleCol, quantityCol, nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// parseQuantityCell accepts integers and the float spellings spreadsheet
// apps produce for them ("15.0"). Negative quantities are rejected.
func parseQuantityCell(raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("missing quantity")
	}
	raw = strings.ReplaceAll(raw, ",", ".")
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		val, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return 0, fmt.Errorf("invalid quantity %q", raw)
		}
		quantity = int(val)
	}
	if quantity < 0 {
		return 0, fmt.Errorf("quantity must not be negative")
	}
	return quantity, nil
}
