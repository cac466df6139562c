package diary

import (
	"slices"
	"sort"
	"time"

	"github.com/samber/lo"
)

// RecentPerYear is how many entries each year shows on the landing page.
const RecentPerYear = 3

// YearGroup is the entries of one calendar year, prepared for rendering.
type YearGroup struct {
	Year    int
	Entries []*Entry     // newest first
	Months  []MonthGroup // December first
	Recent  []*Entry     // the first RecentPerYear of Entries
}

// MonthGroup is the entries of one month of a year, newest day first.
type MonthGroup struct {
	Month   time.Month
	Name    string // capitalized, e.g. "March"
	Entries []*Entry
}

// SortByDate returns a copy of entries ordered oldest first.
func SortByDate(entries []*Entry) []*Entry {
	sorted := slices.Clone(entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// sortByDateDesc returns a copy of entries ordered newest first.
func sortByDateDesc(entries []*Entry) []*Entry {
	sorted := slices.Clone(entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// GroupByYear maps each year to its entries, in input order.
func GroupByYear(entries []*Entry) map[int][]*Entry {
	return lo.GroupBy(entries, func(e *Entry) int { return e.Year })
}

// SortedYears returns the years present in groups, oldest first.
func SortedYears(groups map[int][]*Entry) []int {
	years := lo.Keys(groups)
	slices.Sort(years)
	return years
}

// GroupByMonth groups entries by month, most recent month first, with each
// month's entries ordered by day, most recent first.
func GroupByMonth(entries []*Entry) []MonthGroup {
	byMonth := lo.GroupBy(entries, func(e *Entry) time.Month { return e.Month })

	months := lo.Keys(byMonth)
	slices.SortFunc(months, func(a, b time.Month) int { return int(b) - int(a) })

	return lo.Map(months, func(m time.Month, _ int) MonthGroup {
		monthEntries := slices.Clone(byMonth[m])
		sort.SliceStable(monthEntries, func(i, j int) bool {
			return monthEntries[i].Day > monthEntries[j].Day
		})
		return MonthGroup{Month: m, Name: m.String(), Entries: monthEntries}
	})
}

// Years groups entries by year, most recent year first.
func Years(entries []*Entry) []YearGroup {
	groups := GroupByYear(entries)
	years := SortedYears(groups)
	slices.Reverse(years)

	return lo.Map(years, func(year int, _ int) YearGroup {
		yearEntries := sortByDateDesc(groups[year])
		return YearGroup{
			Year:    year,
			Entries: yearEntries,
			Months:  GroupByMonth(yearEntries),
			Recent:  yearEntries[:min(RecentPerYear, len(yearEntries))],
		}
	})
}
