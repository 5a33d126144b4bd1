package internal

import (
	"github.com/elliotchance/orderedmap/v2"
)

// VacancyRecord is one valid CSV row, typed and cleaned. Records are
// constructed once by the parser and never mutated afterwards.
type VacancyRecord struct {
	Name        string
	Salary      Salary
	City        string
	PublishedAt string
	Year        int
}

// Salary carries the raw bounds plus the midpoint average expressed in the
// reference currency. Average is fixed at construction time.
type Salary struct {
	From     float64
	To       float64
	Currency string
	Gross    *bool
	Average  float64
}

// Statistics is the bundle handed to presenters. All maps are
// order-preserving: year keys appear in first-seen order of the raw data,
// city keys in the sorted order of the corresponding top list. Every year
// key present in any year map is present in all four of them, so presenters
// never hit a missing key.
type Statistics struct {
	Profession string

	SalaryByYear     *orderedmap.OrderedMap[int, int]
	CountByYear      *orderedmap.OrderedMap[int, int]
	ProfSalaryByYear *orderedmap.OrderedMap[int, int]
	ProfCountByYear  *orderedmap.OrderedMap[int, int]

	SalaryByCity *orderedmap.OrderedMap[string, int]
	ShareByCity  *orderedmap.OrderedMap[string, float64]

	Total   int
	Dropped int
}

type YearRow struct {
	Year       int `json:"year"`
	Salary     int `json:"salary"`
	ProfSalary int `json:"profSalary"`
	Count      int `json:"count"`
	ProfCount  int `json:"profCount"`
}

type CitySalaryRow struct {
	City   string `json:"city"`
	Salary int    `json:"salary"`
}

type CityShareRow struct {
	City  string  `json:"city"`
	Share float64 `json:"share"`
}

func (s *Statistics) YearRows() []YearRow {
	out := make([]YearRow, 0, s.CountByYear.Len())
	for _, year := range s.CountByYear.Keys() {
		row := YearRow{Year: year}
		row.Salary, _ = s.SalaryByYear.Get(year)
		row.ProfSalary, _ = s.ProfSalaryByYear.Get(year)
		row.Count, _ = s.CountByYear.Get(year)
		row.ProfCount, _ = s.ProfCountByYear.Get(year)
		out = append(out, row)
	}
	return out
}

func (s *Statistics) CitySalaryRows() []CitySalaryRow {
	out := make([]CitySalaryRow, 0, s.SalaryByCity.Len())
	for _, city := range s.SalaryByCity.Keys() {
		salary, _ := s.SalaryByCity.Get(city)
		out = append(out, CitySalaryRow{City: city, Salary: salary})
	}
	return out
}

func (s *Statistics) CityShareRows() []CityShareRow {
	out := make([]CityShareRow, 0, s.ShareByCity.Len())
	for _, city := range s.ShareByCity.Keys() {
		share, _ := s.ShareByCity.Get(city)
		out = append(out, CityShareRow{City: city, Share: share})
	}
	return out
}
