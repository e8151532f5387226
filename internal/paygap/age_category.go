package paygap

// AgeCategory is the bucket an employee's age falls in.
type AgeCategory string

const (
	AgeUpTo20  AgeCategory = "10-20"
	Age21To30  AgeCategory = "21-30"
	Age31To40  AgeCategory = "31-40"
	Age41To60  AgeCategory = "41-60"
	AgeAbove60 AgeCategory = "Above 60"
)

var ageCategories = []AgeCategory{AgeUpTo20, Age21To30, Age31To40, Age41To60, AgeAbove60}

// CategorizeAge buckets by inclusive upper bound, so every integer age lands
// in exactly one category. Ages at or below 20 (including bad data such as
// zero or negatives) fall in the lowest bucket.
func CategorizeAge(age int) AgeCategory {
	switch {
	case age <= 20:
		return AgeUpTo20
	case age <= 30:
		return Age21To30
	case age <= 40:
		return Age31To40
	case age <= 60:
		return Age41To60
	default:
		return AgeAbove60
	}
}

// AgeCategories lists the buckets youngest first.
func AgeCategories() []AgeCategory {
	out := make([]AgeCategory, len(ageCategories))
	copy(out, ageCategories)
	return out
}
