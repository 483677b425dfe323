package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/llpp"
	"github.com/npillmayer/llpp/table/sparse"
)

// ErrMalformedTable is returned for structural defects of table input.
var ErrMalformedTable = errors.New("malformed parse table")

// LoadError reports a defect in a row of table input.
type LoadError struct {
	Row   int // 1-based, the header is row 1; 0 if not related to a row
	Cause error
}

func (e *LoadError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("parse table: %v", e.Cause)
	}
	return fmt.Sprintf("parse table: row %d: %v", e.Row, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// --- Cells -----------------------------------------------------------------

// Cell is the outcome of a table lookup.
type Cell int8

// Lookup outcomes. Only Found carries a rule number.
const (
	Found    Cell = iota // cell holds a rule number
	Blank                // cell is defined, but empty
	NoColumn             // terminal is not part of the table's alphabet
	NoRow                // non-terminal has no row
)

func (c Cell) String() string {
	switch c {
	case Found:
		return "found"
	case Blank:
		return "blank"
	case NoColumn:
		return "no-column"
	case NoRow:
		return "no-row"
	}
	return "?"
}

// --- Table -----------------------------------------------------------------

// Table is an LL(1) parse table. It is read-only after loading and may be
// shared between goroutines.
type Table struct {
	terminals    []llpp.Symbol // column order of the header
	nonterminals []llpp.Symbol // row order
	cols         map[llpp.Symbol]int
	rows         map[llpp.Symbol]int
	matrix       *sparse.IntMatrix
}

// Load creates a parse table from a header row and data rows. The first field
// of the header is ignored, the remaining fields name the terminals. Every data
// row starts with a non-terminal, followed by one cell per terminal, holding
// either a rule number or an empty string.
//
// Errors wrap ErrMalformedTable. No table is returned in case of an error.
func Load(header []string, rows [][]string) (*Table, error) {
	if len(header) < 2 {
		return nil, &LoadError{Row: 1, Cause: fmt.Errorf("%w: header has no terminals", ErrMalformedTable)}
	}
	t := &Table{
		terminals:    make([]llpp.Symbol, 0, len(header)-1),
		nonterminals: make([]llpp.Symbol, 0, len(rows)),
		cols:         make(map[llpp.Symbol]int, len(header)-1),
		rows:         make(map[llpp.Symbol]int, len(rows)),
		matrix:       sparse.NewIntMatrix(len(rows), len(header)-1, sparse.DefaultNullValue),
	}
	for j, name := range header[1:] {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &LoadError{Row: 1, Cause: fmt.Errorf("%w: empty terminal in column %d", ErrMalformedTable, j+2)}
		}
		a := llpp.T(name)
		if _, dup := t.cols[a]; dup {
			return nil, &LoadError{Row: 1, Cause: fmt.Errorf("%w: duplicate terminal %s", ErrMalformedTable, a)}
		}
		t.cols[a] = j
		t.terminals = append(t.terminals, a)
	}
	for i, row := range rows {
		if err := t.loadRow(i, row, len(header)); err != nil {
			return nil, &LoadError{Row: i + 2, Cause: err}
		}
	}
	tracer().Infof("loaded parse table of size %d x %d with %d entries",
		len(t.nonterminals), len(t.terminals), t.matrix.ValueCount())
	t.Dump()
	return t, nil
}

func (t *Table) loadRow(i int, row []string, width int) error {
	if len(row) != width {
		return fmt.Errorf("%w: expected %d fields, have %d", ErrMalformedTable, width, len(row))
	}
	label := strings.TrimSpace(row[0])
	if label == "" {
		return fmt.Errorf("%w: missing non-terminal", ErrMalformedTable)
	}
	A := llpp.N(label)
	if _, dup := t.rows[A]; dup {
		return fmt.Errorf("%w: duplicate row for %s", ErrMalformedTable, A)
	}
	t.rows[A] = i
	t.nonterminals = append(t.nonterminals, A)
	for j, cell := range row[1:] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		n, err := strconv.ParseInt(cell, 10, 32)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: cell (%s, %s) is not a rule number: %q",
				ErrMalformedTable, A, t.terminals[j], cell)
		}
		t.matrix.Set(i, j, int32(n))
	}
	return nil
}

// ReadParseTable reads a comma-separated parse table: a header row followed by
// one row per non-terminal (see Load).
func ReadParseTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // field count is checked by Load
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, &LoadError{Cause: fmt.Errorf("cannot read table rows: %w", err)}
	}
	if len(records) == 0 {
		return nil, &LoadError{Cause: fmt.Errorf("%w: missing header", ErrMalformedTable)}
	}
	return Load(records[0], records[1:])
}

// Lookup returns the rule number for expanding non-terminal A with lookahead a.
// The rule number is valid only if the cell status is Found.
func (t *Table) Lookup(A, a llpp.Symbol) (int, Cell) {
	i, ok := t.rows[A]
	if !ok {
		return 0, NoRow
	}
	j, ok := t.cols[a]
	if !ok {
		return 0, NoColumn
	}
	v := t.matrix.Value(i, j)
	if v == t.matrix.NullValue() {
		return 0, Blank
	}
	return int(v), Found
}

// HasRow is true if the table has a row for non-terminal A.
func (t *Table) HasRow(A llpp.Symbol) bool {
	_, ok := t.rows[A]
	return ok
}

// Terminals returns the terminal alphabet in column order.
func (t *Table) Terminals() []llpp.Symbol {
	return append([]llpp.Symbol(nil), t.terminals...)
}

// NonTerminals returns the non-terminals in row order.
func (t *Table) NonTerminals() []llpp.Symbol {
	return append([]llpp.Symbol(nil), t.nonterminals...)
}

// EachCell calls f for every non-blank cell, in row-major order.
func (t *Table) EachCell(f func(A, a llpp.Symbol, rule int)) {
	t.matrix.Each(func(i, j int, v int32) {
		f(t.nonterminals[i], t.terminals[j], int(v))
	})
}

// Dump is a debugging helper, tracing all non-blank cells.
func (t *Table) Dump() {
	tracer().Debugf("--- parse table ---------------------------")
	t.EachCell(func(A, a llpp.Symbol, rule int) {
		tracer().Debugf("M[%s, %s] = %d", A, a, rule)
	})
	tracer().Debugf("-------------------------------------------")
}

// Rows returns the table in its input shape: a header row followed by one row
// per non-terminal, suitable for tabular output.
func (t *Table) Rows() [][]string {
	rows := make([][]string, 0, len(t.nonterminals)+1)
	header := make([]string, 0, len(t.terminals)+1)
	header = append(header, "")
	for _, a := range t.terminals {
		header = append(header, a.Name())
	}
	rows = append(rows, header)
	for i, A := range t.nonterminals {
		row := make([]string, 0, len(t.terminals)+1)
		row = append(row, A.Name())
		for j := range t.terminals {
			row = append(row, cellString(t.matrix.Value(i, j), t.matrix.NullValue()))
		}
		rows = append(rows, row)
	}
	return rows
}

func cellString(v int32, null int32) string {
	if v == null {
		return ""
	}
	return strconv.Itoa(int(v))
}
