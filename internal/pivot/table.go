package pivot

import (
	"errors"
	"math"
	"sort"
	"strings"

	"go-paygap/internal/paygap"
)

var ErrNoIndex = errors.New("pivot: at least one index field is required")

// Table is a pivot of mean values. Rows are keyed by the index fields,
// columns by the distinct values of Column; a cell with no records is NaN.
type Table struct {
	Index   []Field
	Column  Field
	Value   Field
	Rows    [][]string
	Columns []string
	Cells   [][]float64
}

type acc struct {
	sum   float64
	count int
}

// MeanTable groups records by the index fields and the column field and
// averages value within each group. Row and column labels come out sorted.
// A record with NULL in any of the fields involved is left out.
func MeanTable(records []paygap.CompensationRecord, index []Field, column, value Field) (Table, error) {
	if len(index) == 0 {
		return Table{}, ErrNoIndex
	}

	levels := make([]map[string]struct{}, len(index))
	for i := range levels {
		levels[i] = make(map[string]struct{})
	}
	rowSeen := make(map[string][]string)
	colSeen := make(map[string]struct{})
	cells := make(map[string]map[string]*acc)

records:
	for _, r := range records {
		key := make([]string, len(index))
		for i, f := range index {
			l, present, err := f.label(r)
			if err != nil {
				return Table{}, err
			}
			if !present {
				continue records
			}
			key[i] = l
		}
		col, present, err := column.label(r)
		if err != nil {
			return Table{}, err
		}
		if !present {
			continue
		}
		v, present, err := value.number(r)
		if err != nil {
			return Table{}, err
		}
		if !present {
			continue
		}
		for i, l := range key {
			levels[i][l] = struct{}{}
		}

		rk := strings.Join(key, "\x00")
		rowSeen[rk] = key
		colSeen[col] = struct{}{}

		byCol, ok := cells[rk]
		if !ok {
			byCol = make(map[string]*acc)
			cells[rk] = byCol
		}
		a, ok := byCol[col]
		if !ok {
			a = &acc{}
			byCol[col] = a
		}
		a.sum += v
		a.count++
	}

	orders := make([]labelOrder, len(index))
	for i, lv := range levels {
		orders[i] = orderFor(keysOf(lv))
	}

	rows := make([][]string, 0, len(rowSeen))
	for _, key := range rowSeen {
		rows = append(rows, key)
	}
	sort.Slice(rows, func(i, j int) bool {
		for lvl := range index {
			a, b := rows[i][lvl], rows[j][lvl]
			if a == b {
				continue
			}
			return orders[lvl].less(a, b)
		}
		return false
	})

	cols := keysOf(colSeen)
	sortLabels(cols)

	t := Table{
		Index:   append([]Field(nil), index...),
		Column:  column,
		Value:   value,
		Rows:    rows,
		Columns: cols,
		Cells:   make([][]float64, len(rows)),
	}
	for i, key := range rows {
		byCol := cells[strings.Join(key, "\x00")]
		t.Cells[i] = make([]float64, len(cols))
		for j, c := range cols {
			if a, ok := byCol[c]; ok {
				t.Cells[i][j] = a.sum / float64(a.count)
			} else {
				t.Cells[i][j] = math.NaN()
			}
		}
	}

	return t, nil
}

func (t Table) Empty() bool {
	return len(t.Rows) == 0 || len(t.Columns) == 0
}

// Has reports whether any record fell into cell (r, c).
func (t Table) Has(r, c int) bool {
	return !math.IsNaN(t.Cells[r][c])
}

// RowLabel joins a row's index values, e.g. "PhD-Female".
func (t Table) RowLabel(r int, sep string) string {
	return strings.Join(t.Rows[r], sep)
}

// Cell looks a value up by labels.
func (t Table) Cell(row []string, column string) (float64, bool) {
	want := strings.Join(row, "\x00")
	for i, key := range t.Rows {
		if strings.Join(key, "\x00") != want {
			continue
		}
		for j, c := range t.Columns {
			if c == column && t.Has(i, j) {
				return t.Cells[i][j], true
			}
		}
	}
	return 0, false
}

// Range returns the smallest and largest populated cells.
func (t Table) Range() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := range t.Cells {
		for j := range t.Cells[i] {
			if !t.Has(i, j) {
				continue
			}
			lo = math.Min(lo, t.Cells[i][j])
			hi = math.Max(hi, t.Cells[i][j])
			ok = true
		}
	}
	return lo, hi, ok
}

// Round returns a copy with every cell rounded half-to-even.
func (t Table) Round(places int) Table {
	out := t
	out.Cells = make([][]float64, len(t.Cells))
	for i, row := range t.Cells {
		out.Cells[i] = make([]float64, len(row))
		for j, v := range row {
			out.Cells[i][j] = RoundHalfEven(v, places)
		}
	}
	return out
}

func RoundHalfEven(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	p := math.Pow(10, float64(places))
	return math.RoundToEven(v*p) / p
}
