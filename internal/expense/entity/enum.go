package entity

import "strconv"

type ExpenseStatus int16

const (
	// ExpenseStatusUnknown means the status is not known / not set.
	ExpenseStatusUnknown ExpenseStatus = 0

	// ExpenseStatusPending means the expense awaits a manager decision.
	ExpenseStatusPending ExpenseStatus = 1

	// ExpenseStatusApproved means the expense was approved, by a manager or
	// automatically through an approval rule.
	ExpenseStatusApproved ExpenseStatus = 2

	// ExpenseStatusRejected means a manager rejected the expense.
	ExpenseStatusRejected ExpenseStatus = 3
)

func (es ExpenseStatus) String() string {
	switch es {
	case ExpenseStatusPending:
		return "Pending"
	case ExpenseStatusApproved:
		return "Approved"
	case ExpenseStatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

func (es ExpenseStatus) IsUnknown() bool {
	switch es {
	case ExpenseStatusPending, ExpenseStatusApproved, ExpenseStatusRejected:
		return false
	default:
		return true
	}
}

func ParseSafeExpenseStatuses(raws []string) []ExpenseStatus {
	out := make([]ExpenseStatus, 0)
	seen := map[ExpenseStatus]struct{}{}

	for _, v := range raws {
		n, err := strconv.ParseInt(v, 10, 16)
		if err != nil {
			continue
		}

		s := ExpenseStatus(n)
		if s.IsUnknown() {
			continue
		}

		if _, ok := seen[s]; ok {
			continue
		}

		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

type Category string

const (
	CategoryUnknown   Category = ""
	CategoryTravel    Category = "travel"
	CategoryMeals     Category = "meals"
	CategoryLodging   Category = "lodging"
	CategorySupplies  Category = "supplies"
	CategoryTraining  Category = "training"
	CategorySoftware  Category = "software"
	CategoryTransport Category = "transport"
	CategoryOther     Category = "other"
)

func ParseCategory(raw string) Category {
	switch raw {
	case "travel":
		return CategoryTravel
	case "meals":
		return CategoryMeals
	case "lodging":
		return CategoryLodging
	case "supplies":
		return CategorySupplies
	case "training":
		return CategoryTraining
	case "software":
		return CategorySoftware
	case "transport":
		return CategoryTransport
	case "other":
		return CategoryOther
	default:
		return CategoryUnknown
	}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsUnknown() bool {
	return ParseCategory(string(c)) == CategoryUnknown
}

func ParseSafeCategories(raws []string) []Category {
	out := make([]Category, 0)
	seen := map[Category]struct{}{}

	for _, v := range raws {
		c := ParseCategory(v)
		if c.IsUnknown() {
			continue
		}

		if _, ok := seen[c]; ok {
			continue
		}

		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out
}
