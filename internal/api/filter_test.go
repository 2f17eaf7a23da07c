package api

import (
	"testing"
	"time"
)

func TestBuildExpenseFilterEmptyParams(t *testing.T) {
	clauses := BuildExpenseFilter(DashboardParams{})
	if len(clauses) != 0 {
		t.Fatalf("expected no clauses for empty params, got %d", len(clauses))
	}
}

func TestBuildExpenseFilterAllSentinel(t *testing.T) {
	// "All" means no category restriction
	clauses := BuildExpenseFilter(DashboardParams{Category: CategoryAll})
	if len(clauses) != 0 {
		t.Fatalf("expected the All sentinel to add no clause, got %d clauses", len(clauses))
	}
}

func TestBuildExpenseFilterCategory(t *testing.T) {
	clauses := BuildExpenseFilter(DashboardParams{Category: "Food"})
	if len(clauses) != 1 {
		t.Fatalf("expected one clause, got %d", len(clauses))
	}
	eq, ok := clauses[0].(EqualsClause)
	if !ok {
		t.Fatalf("expected an EqualsClause, got %T", clauses[0])
	}
	if eq.Column != "category" || eq.Value != "Food" {
		t.Fatalf("unexpected equality clause %+v", eq)
	}
}

func TestBuildExpenseFilterDateRange(t *testing.T) {
	clauses := BuildExpenseFilter(DashboardParams{From: "2026-08-01", To: "2026-08-15"})
	if len(clauses) != 1 {
		t.Fatalf("expected one clause, got %d", len(clauses))
	}
	rc, ok := clauses[0].(RangeClause)
	if !ok {
		t.Fatalf("expected a RangeClause, got %T", clauses[0])
	}
	if rc.Column != "date" || rc.From == nil || rc.To == nil {
		t.Fatalf("unexpected range clause %+v", rc)
	}
	wantFrom := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	wantTo := time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local)
	if !rc.From.Equal(wantFrom) || !rc.To.Equal(wantTo) {
		t.Fatalf("unexpected bounds from=%v to=%v", rc.From, rc.To)
	}
}

func TestBuildExpenseFilterOpenEndedRange(t *testing.T) {
	clauses := BuildExpenseFilter(DashboardParams{From: "2026-08-01"})
	rc, ok := clauses[0].(RangeClause)
	if !ok {
		t.Fatalf("expected a RangeClause, got %T", clauses[0])
	}
	if rc.From == nil || rc.To != nil {
		t.Fatalf("expected an open upper bound, got %+v", rc)
	}
}

func TestBuildExpenseFilterSearch(t *testing.T) {
	clauses := BuildExpenseFilter(DashboardParams{Search: "coffee"})
	sc, ok := clauses[0].(SubstringClause)
	if !ok {
		t.Fatalf("expected a SubstringClause, got %T", clauses[0])
	}
	if sc.Term != "coffee" {
		t.Fatalf("unexpected search term %q", sc.Term)
	}
	// Substring search spans title and category
	if len(sc.Columns) != 2 || sc.Columns[0] != "title" || sc.Columns[1] != "category" {
		t.Fatalf("unexpected search columns %v", sc.Columns)
	}
}

func TestBuildExpenseFilterCombined(t *testing.T) {
	clauses := BuildExpenseFilter(DashboardParams{
		Category: "Food",
		From:     "2026-08-01",
		Search:   "lunch",
	})
	if len(clauses) != 3 {
		t.Fatalf("expected three clauses, got %d", len(clauses))
	}
}

func TestBuildExpenseFilterIgnoresBadDates(t *testing.T) {
	clauses := BuildExpenseFilter(DashboardParams{From: "not-a-date", To: "also-bad"})
	if len(clauses) != 0 {
		t.Fatalf("expected unparseable dates to add no clause, got %d", len(clauses))
	}
}

func TestSortOrder(t *testing.T) {
	cases := []struct {
		sort string
		want string
	}{
		{"", "date DESC"},          // Default: newest first
		{"date_asc", "date ASC"},
		{"amount_asc", "amount ASC"},
		{"amount_desc", "amount DESC"},
		{"bogus", "date DESC"}, // Unknown keys fall back to default
		{"date_desc", "date DESC"},
	}
	for _, tc := range cases {
		if got := SortOrder(tc.sort); got != tc.want {
			t.Errorf("SortOrder(%q) = %q, want %q", tc.sort, got, tc.want)
		}
	}
}

func TestLikePattern(t *testing.T) {
	cases := []struct {
		term string
		want string
	}{
		{"coffee", "%coffee%"},
		{"Coffee", "%coffee%"}, // Lowercased for case-insensitive matching
		{"100%", `%100\%%`},    // Percent only matches literally
		{"a_c", `%a\_c%`},      // Underscore only matches literally
		{`back\slash`, `%back\\slash%`},
	}
	for _, tc := range cases {
		if got := likePattern(tc.term); got != tc.want {
			t.Errorf("likePattern(%q) = %q, want %q", tc.term, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	if _, ok := parseDate(""); ok {
		t.Error("empty string parsed as a date")
	}
	if _, ok := parseDate("yesterday"); ok {
		t.Error("garbage parsed as a date")
	}
	d, ok := parseDate("2026-02-28")
	if !ok {
		t.Fatal("date input format did not parse")
	}
	if d.Year() != 2026 || d.Month() != time.February || d.Day() != 28 {
		t.Fatalf("unexpected parsed date %v", d)
	}
	if _, ok := parseDate("2026-02-28T12:30:00Z"); !ok {
		t.Error("RFC3339 timestamp did not parse")
	}
}
