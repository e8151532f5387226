package pivot

import (
	"fmt"
	"strconv"

	"go-paygap/internal/paygap"
)

// Field addresses a loaded record column by its display name.
type Field string

const (
	ID          Field = paygap.ColumnID
	JobTitle    Field = paygap.ColumnJobTitle
	Gender      Field = paygap.ColumnGender
	Age         Field = paygap.ColumnAge
	AgeCategory Field = paygap.ColumnAgeCategory
	PerfEval    Field = paygap.ColumnPerfEval
	Education   Field = paygap.ColumnEducation
	Dept        Field = paygap.ColumnDept
	Seniority   Field = paygap.ColumnSeniority
	BasePay     Field = paygap.ColumnBasePay
	Bonus       Field = paygap.ColumnBonus
)

// FieldByName validates a column name coming from outside.
func FieldByName(name string) (Field, bool) {
	for _, col := range paygap.Columns() {
		if col == name {
			return Field(col), true
		}
	}
	return "", false
}

// label and number report present=false when the record holds NULL there.
func (f Field) label(r paygap.CompensationRecord) (string, bool, error) {
	v, ok := r.Field(string(f))
	if !ok {
		return "", false, fmt.Errorf("pivot: unknown field %q", f)
	}
	switch x := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return x, true, nil
	case int:
		return strconv.Itoa(x), true, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true, nil
	default:
		return fmt.Sprint(x), true, nil
	}
}

func (f Field) number(r paygap.CompensationRecord) (float64, bool, error) {
	v, ok := r.Field(string(f))
	if !ok {
		return 0, false, fmt.Errorf("pivot: unknown field %q", f)
	}
	switch x := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		return x, true, nil
	case int:
		return float64(x), true, nil
	default:
		return 0, false, fmt.Errorf("pivot: field %q is not numeric", f)
	}
}
