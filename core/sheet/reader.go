package sheet

import (
	"io"
	"sort"
	"strings"

	"task-sync/core/apperr"
	"task-sync/core/normalize"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// carriageReturnArtifact is how Excel escapes a bare CR inside shared strings.
const carriageReturnArtifact = "_x000D_"

// Row maps a trimmed column header to the cell value.
// Values are nil, string, bool or time.Time.
type Row map[string]any

// Table is the parsed content of one worksheet.
type Table struct {
	// Rows holds every row with a non-blank key, in sheet order.
	Rows []Row
	// Columns is the set of trimmed headers observed in the first row.
	Columns map[string]struct{}
	// Dropped counts rows discarded because their key cell was blank.
	Dropped int
}

// Options configures a Reader.
type Options struct {
	// Sheet is the worksheet to read. Empty selects the first sheet.
	Sheet string
	// KeyColumn is the header whose blank cells cause a row to be dropped.
	KeyColumn string
	// Required lists the headers that must all be present.
	Required []string
}

// Reader turns xlsx workbooks into header-keyed rows.
type Reader struct {
	opts   Options
	logger *zap.Logger
}

// NewReader creates a new workbook reader.
func NewReader(opts Options, logger *zap.Logger) *Reader {
	return &Reader{opts: opts, logger: logger}
}

// Read parses the workbook in r. Every failure is an apperr.KindMalformedInput error.
func (rd *Reader) Read(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &apperr.Error{Kind: apperr.KindMalformedInput, Message: "failed to open workbook", Err: err}
	}
	defer f.Close()

	sheetName, err := rd.resolveSheet(f)
	if err != nil {
		return nil, err
	}

	grid, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &apperr.Error{Kind: apperr.KindMalformedInput, Message: "failed to read sheet " + sheetName, Err: err}
	}
	if len(grid) == 0 {
		return nil, apperr.MalformedInput("sheet %q is empty", sheetName)
	}

	headers := make([]string, len(grid[0]))
	columns := make(map[string]struct{}, len(grid[0]))
	for i, h := range grid[0] {
		headers[i] = strings.TrimSpace(cleanText(h))
		if headers[i] != "" {
			columns[headers[i]] = struct{}{}
		}
	}

	if missing := missingColumns(columns, rd.opts.Required); len(missing) > 0 {
		return nil, apperr.MalformedInput("missing required columns: %s", strings.Join(missing, ", "))
	}

	cells := newCellDecoder(f, sheetName)
	table := &Table{Columns: columns}
	for i, raw := range grid[1:] {
		rowNum := i + 2
		row := make(Row, len(headers))
		for col, h := range headers {
			if h == "" {
				continue
			}
			if col >= len(raw) {
				row[h] = nil
				continue
			}
			row[h] = cells.decode(col+1, rowNum, raw[col])
		}

		if rd.opts.KeyColumn != "" && normalize.Value(row[rd.opts.KeyColumn]) == nil {
			table.Dropped++
			continue
		}
		table.Rows = append(table.Rows, row)
	}

	if table.Dropped > 0 {
		rd.logger.Warn("Dropped rows without identifier",
			zap.String("sheet", sheetName),
			zap.String("key_column", rd.opts.KeyColumn),
			zap.Int("dropped", table.Dropped),
		)
	}

	if len(table.Rows) == 0 {
		return nil, apperr.MalformedInput("sheet %q has no rows with a value in %q", sheetName, rd.opts.KeyColumn)
	}

	rd.logger.Info("Workbook parsed",
		zap.String("sheet", sheetName),
		zap.Int("rows", len(table.Rows)),
		zap.Int("columns", len(columns)),
	)

	return table, nil
}

func (rd *Reader) resolveSheet(f *excelize.File) (string, error) {
	if rd.opts.Sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return "", apperr.MalformedInput("workbook has no sheets")
		}
		return list[0], nil
	}

	idx, err := f.GetSheetIndex(rd.opts.Sheet)
	if err != nil || idx < 0 {
		return "", apperr.MalformedInput("sheet %q not found (available: %s)", rd.opts.Sheet, strings.Join(f.GetSheetList(), ", "))
	}
	return rd.opts.Sheet, nil
}

// missingColumns returns the required headers absent from columns, sorted.
func missingColumns(columns map[string]struct{}, required []string) []string {
	var missing []string
	for _, col := range required {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	sort.Strings(missing)
	return missing
}
