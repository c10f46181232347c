package sheet

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellDecoder turns raw cell text into typed values using the cell type and
// number format stored in the workbook.
type cellDecoder struct {
	f          *excelize.File
	sheet      string
	date1904   bool
	dateStyles map[int]bool
}

func newCellDecoder(f *excelize.File, sheet string) *cellDecoder {
	d := &cellDecoder{f: f, sheet: sheet, dateStyles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		d.date1904 = *props.Date1904
	}
	return d
}

// decode returns nil for empty cells, bool for boolean cells, time.Time for
// numeric cells carrying a date format, and cleaned text for everything else.
func (d *cellDecoder) decode(col, row int, raw string) any {
	if raw == "" {
		return nil
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return cleanText(raw)
	}

	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return cleanText(raw)
	}

	cellType, err := d.f.GetCellType(d.sheet, axis)
	if err != nil {
		return cleanText(raw)
	}

	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if !d.isDateCell(axis) {
			return cleanText(raw)
		}
		t, err := excelize.ExcelDateToTime(serial, d.date1904)
		if err != nil {
			return cleanText(raw)
		}
		return t
	default:
		return cleanText(raw)
	}
}

func (d *cellDecoder) isDateCell(axis string) bool {
	styleID, err := d.f.GetCellStyle(d.sheet, axis)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := d.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := d.f.GetStyle(styleID); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = isBuiltinDateFormat(style.NumFmt)
		}
	}
	d.dateStyles[styleID] = isDate
	return isDate
}

// isBuiltinDateFormat reports whether a built-in number format id renders a date.
func isBuiltinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code contains date tokens
// once quoted literals and bracketed sections are removed.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote, inBracket := false, false
	for _, r := range strings.ToLower(code) {
		switch {
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		default:
			b.WriteRune(r)
		}
	}
	stripped := b.String()
	if stripped == "general" {
		return false
	}
	return strings.ContainsAny(stripped, "yd")
}

func cleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, carriageReturnArtifact, ""))
}
