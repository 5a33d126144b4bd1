package stats

import (
	"math"
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"vacstat/internal"
)

type accum struct {
	count int
	total float64
}

// Aggregator folds vacancy records into year and city statistics for a
// single profession query. The profession is matched as a case-sensitive
// substring of the vacancy name.
type Aggregator struct {
	profession string
	threshold  float64
	topCities  int
}

func New(profession string, threshold float64, topCities int) *Aggregator {
	return &Aggregator{profession: profession, threshold: threshold, topCities: topCities}
}

// Run builds the statistics bundle in one pass over records. Every year key
// is initialized in all four year maps on first sight, whether or not the
// current record matches the profession, so downstream presenters never hit
// a missing key. City salary averages are kept for all cities during the
// pass and reduced to the significant subset at the end.
func (a *Aggregator) Run(records []internal.VacancyRecord) *internal.Statistics {
	years := orderedmap.NewOrderedMap[int, *accum]()
	profYears := orderedmap.NewOrderedMap[int, *accum]()
	cities := orderedmap.NewOrderedMap[string, *accum]()

	for _, rec := range records {
		ya := ensure(years, rec.Year)
		pa := ensure(profYears, rec.Year)
		ca := ensure(cities, rec.City)

		ya.count++
		ya.total += rec.Salary.Average
		ca.count++
		ca.total += rec.Salary.Average
		if strings.Contains(rec.Name, a.profession) {
			pa.count++
			pa.total += rec.Salary.Average
		}
	}

	out := &internal.Statistics{
		Profession:       a.profession,
		SalaryByYear:     orderedmap.NewOrderedMap[int, int](),
		CountByYear:      orderedmap.NewOrderedMap[int, int](),
		ProfSalaryByYear: orderedmap.NewOrderedMap[int, int](),
		ProfCountByYear:  orderedmap.NewOrderedMap[int, int](),
		SalaryByCity:     orderedmap.NewOrderedMap[string, int](),
		ShareByCity:      orderedmap.NewOrderedMap[string, float64](),
		Total:            len(records),
	}

	for _, year := range years.Keys() {
		ya, _ := years.Get(year)
		pa, _ := profYears.Get(year)
		out.CountByYear.Set(year, ya.count)
		out.SalaryByYear.Set(year, floorAverage(ya))
		out.ProfCountByYear.Set(year, pa.count)
		out.ProfSalaryByYear.Set(year, floorAverage(pa))
	}

	counts := orderedmap.NewOrderedMap[string, int]()
	for _, city := range cities.Keys() {
		ca, _ := cities.Get(city)
		counts.Set(city, ca.count)
	}

	type cityStat struct {
		city   string
		count  int
		salary int
	}
	significant := SignificantCities(counts, out.Total, a.threshold)
	rows := make([]cityStat, 0, len(significant))
	for _, city := range significant {
		ca, _ := cities.Get(city)
		rows = append(rows, cityStat{city: city, count: ca.count, salary: floorAverage(ca)})
	}

	bySalary := append([]cityStat(nil), rows...)
	sort.SliceStable(bySalary, func(i, j int) bool { return bySalary[i].salary > bySalary[j].salary })
	for _, row := range capTop(bySalary, a.topCities) {
		out.SalaryByCity.Set(row.city, row.salary)
	}

	byCount := append([]cityStat(nil), rows...)
	sort.SliceStable(byCount, func(i, j int) bool { return byCount[i].count > byCount[j].count })
	for _, row := range capTop(byCount, a.topCities) {
		out.ShareByCity.Set(row.city, round4(float64(row.count)/float64(out.Total)))
	}

	return out
}

func ensure[K comparable](m *orderedmap.OrderedMap[K, *accum], key K) *accum {
	if v, ok := m.Get(key); ok {
		return v
	}
	v := &accum{}
	m.Set(key, v)
	return v
}

// floorAverage is total/count floored to an integer, 0 when the accumulator
// never fired.
func floorAverage(a *accum) int {
	if a.count == 0 {
		return 0
	}
	return int(math.Floor(a.total / float64(a.count)))
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func capTop[T any](rows []T, n int) []T {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}
