package report

import (
	"encoding/json"
	"io"

	"vacstat/internal"
)

type jsonBundle struct {
	Profession string                   `json:"profession"`
	Years      []internal.YearRow       `json:"years"`
	CitySalary []internal.CitySalaryRow `json:"citySalary"`
	CityShare  []internal.CityShareRow  `json:"cityShare"`
	Total      int                      `json:"total"`
	Dropped    int                      `json:"dropped"`
}

// WriteJSON dumps the statistics bundle as indented JSON. Row slices keep
// the aggregator's ordering, which plain JSON objects would not.
func WriteJSON(w io.Writer, stats *internal.Statistics) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonBundle{
		Profession: stats.Profession,
		Years:      stats.YearRows(),
		CitySalary: stats.CitySalaryRows(),
		CityShare:  stats.CityShareRows(),
		Total:      stats.Total,
		Dropped:    stats.Dropped,
	})
}
