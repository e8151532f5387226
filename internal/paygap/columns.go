package paygap

// Display column names.
const (
	ColumnID          = "Id"
	ColumnJobTitle    = "JobTitle"
	ColumnGender      = "Gender"
	ColumnAge         = "Age"
	ColumnAgeCategory = "AgeCategory"
	ColumnPerfEval    = "PerfEval"
	ColumnEducation   = "Education"
	ColumnDept        = "Dept"
	ColumnSeniority   = "Seniority"
	ColumnBasePay     = "BasePay"
	ColumnBonus       = "Bonus"
)

// Rename pairs a raw pay_gap column with its display name.
type Rename struct {
	Raw     string
	Display string
}

var renames = []Rename{
	{Raw: "id", Display: ColumnID},
	{Raw: "jobtitle", Display: ColumnJobTitle},
	{Raw: "gender", Display: ColumnGender},
	{Raw: "age", Display: ColumnAge},
	{Raw: "perfeval", Display: ColumnPerfEval},
	{Raw: "education", Display: ColumnEducation},
	{Raw: "dept", Display: ColumnDept},
	{Raw: "seniority", Display: ColumnSeniority},
	{Raw: "basepay", Display: ColumnBasePay},
	{Raw: "bonus", Display: ColumnBonus},
}

// Renames returns the raw -> display mapping in table order.
func Renames() []Rename {
	out := make([]Rename, len(renames))
	copy(out, renames)
	return out
}

func DisplayName(raw string) (string, bool) {
	for _, r := range renames {
		if r.Raw == raw {
			return r.Display, true
		}
	}
	return "", false
}

func RawName(display string) (string, bool) {
	for _, r := range renames {
		if r.Display == display {
			return r.Raw, true
		}
	}
	return "", false
}

// Columns is the loaded schema: the renamed columns with AgeCategory
// inserted as the fourth column, ahead of Age.
func Columns() []string {
	cols := make([]string, 0, len(renames)+1)
	for _, r := range renames {
		if r.Display == ColumnAge {
			cols = append(cols, ColumnAgeCategory)
		}
		cols = append(cols, r.Display)
	}
	return cols
}
