package core

// UncategorizedName labels budget lines with a blank category.
const UncategorizedName = "(Uncategorized)"

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount float64
}

// SpendingSummary is the series behind the spending chart.
type SpendingSummary struct {
	Total      float64
	ByCategory []CategoryAmount
}

// SpendingByCategory sums budget amounts per category, keeping categories in
// the order they are first seen.
func SpendingByCategory(budgets []Budget) SpendingSummary {
	byCat := map[string]int{}
	var out SpendingSummary
	for _, b := range budgets {
		name := b.Category
		if name == "" {
			name = UncategorizedName
		}
		idx, seen := byCat[name]
		if !seen {
			idx = len(out.ByCategory)
			byCat[name] = idx
			out.ByCategory = append(out.ByCategory, CategoryAmount{Name: name})
		}
		out.ByCategory[idx].Amount += b.Amount
		out.Total += b.Amount
	}
	return out
}

// Max returns the largest category amount and its name.
func (s SpendingSummary) Max() (string, float64) {
	var (
		name    string
		largest float64
	)
	for _, c := range s.ByCategory {
		if c.Amount > largest {
			largest = c.Amount
			name = c.Name
		}
	}
	return name, largest
}
