package api

import (
	"strings" // String manipulation
	"time"    // Date bounds

	"gorm.io/gorm" // GORM ORM library
)

// CategoryAll is the sentinel meaning "no category filter"
const CategoryAll = "All"

// DashboardParams are the echoed dashboard query parameters
type DashboardParams struct {
	Category string // Exact category filter, "All" or empty means no filter
	From     string // Inclusive lower date bound, YYYY-MM-DD
	To       string // Inclusive upper date bound, YYYY-MM-DD
	Search   string // Case-insensitive substring over title and category
	Sort     string // One of the fixed sort keys
}

// FilterClause is one filter condition applied to the expense query
type FilterClause interface {
	Apply(q *gorm.DB) *gorm.DB // Add the condition to the query
}

// EqualsClause restricts a column to an exact value
type EqualsClause struct {
	Column string // Column name
	Value  any    // Required value
}

// Apply adds the equality condition to the query
func (c EqualsClause) Apply(q *gorm.DB) *gorm.DB {
	return q.Where(c.Column+" = ?", c.Value)
}

// RangeClause restricts a column to an inclusive range, either bound optional
type RangeClause struct {
	Column string     // Column name
	From   *time.Time // Inclusive lower bound, nil means unbounded below
	To     *time.Time // Inclusive upper bound, nil means unbounded above
}

// Apply adds the range conditions to the query
func (c RangeClause) Apply(q *gorm.DB) *gorm.DB {
	if c.From != nil {
		q = q.Where(c.Column+" >= ?", *c.From) // Lower bound is inclusive
	}
	if c.To != nil {
		q = q.Where(c.Column+" <= ?", *c.To) // Upper bound is inclusive
	}
	return q
}

// SubstringClause matches records where any listed column contains the term,
// case-insensitively and unanchored
type SubstringClause struct {
	Columns []string // Columns searched
	Term    string   // Substring looked for
}

// likeEscaper neutralizes LIKE metacharacters so the term only matches
// as a literal substring
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds the unanchored, lowercased, escaped LIKE pattern
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// Apply adds the OR-composed LIKE conditions to the query
func (c SubstringClause) Apply(q *gorm.DB) *gorm.DB {
	pattern := likePattern(c.Term)             // Unanchored, lowercased, escaped pattern
	conds := make([]string, 0, len(c.Columns)) // One LIKE per column
	args := make([]any, 0, len(c.Columns))     // Pattern repeated per column
	for _, col := range c.Columns {
		conds = append(conds, "LOWER("+col+") LIKE ?")
		args = append(args, pattern)
	}
	return q.Where("("+strings.Join(conds, " OR ")+")", args...)
}

// BuildExpenseFilter turns the dashboard parameters into filter clauses.
// The base user restriction is applied by the caller.
func BuildExpenseFilter(p DashboardParams) []FilterClause {
	var clauses []FilterClause
	// Category filter, "All" sentinel means no restriction
	if p.Category != "" && p.Category != CategoryAll {
		clauses = append(clauses, EqualsClause{Column: "category", Value: p.Category})
	}
	// Date range filter, missing bound leaves that side unbounded
	from, okFrom := parseDate(p.From)
	to, okTo := parseDate(p.To)
	if okFrom || okTo {
		rc := RangeClause{Column: "date"}
		if okFrom {
			rc.From = &from
		}
		if okTo {
			rc.To = &to
		}
		clauses = append(clauses, rc)
	}
	// Search filter over title and category
	if p.Search != "" {
		clauses = append(clauses, SubstringClause{Columns: []string{"title", "category"}, Term: p.Search})
	}
	return clauses
}

// ApplyFilter composes all clauses onto a query
func ApplyFilter(q *gorm.DB, clauses []FilterClause) *gorm.DB {
	for _, c := range clauses {
		q = c.Apply(q)
	}
	return q
}

// SortOrder maps the sort parameter to a SQL order expression.
// Anything unrecognized falls back to newest first.
func SortOrder(sort string) string {
	switch sort {
	case "date_asc":
		return "date ASC"
	case "amount_asc":
		return "amount ASC"
	case "amount_desc":
		return "amount DESC"
	default:
		return "date DESC" // Default: newest first
	}
}

// parseDate parses a form or query date, accepting the date input format
// and full RFC3339 timestamps
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
