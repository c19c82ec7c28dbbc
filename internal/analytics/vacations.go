package analytics

import (
	"sort"

	"github.com/dvergara/Household-Finance-Backend/internal/model"
)

// VacationYears groups trip entries by year with their total cost. Years
// are ordered most recent first; each year's trips by cost descending.
func VacationYears(entries []model.VacationEntry) []model.VacationYear {
	byYear := make(map[int][]model.VacationEntry)
	for _, e := range entries {
		byYear[e.Year] = append(byYear[e.Year], e)
	}

	out := make([]model.VacationYear, 0, len(byYear))
	for year, trips := range byYear {
		sort.SliceStable(trips, func(i, j int) bool { return trips[i].Cost > trips[j].Cost })
		var total float64
		for _, t := range trips {
			total += t.Cost
		}
		out = append(out, model.VacationYear{Year: year, Total: total, Entries: trips})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out
}
