package stats

import (
	"fmt"
	"reflect"
	"testing"

	"vacstat/internal"
)

func rec(name string, average float64, city string, year int) internal.VacancyRecord {
	return internal.VacancyRecord{
		Name:        name,
		Salary:      internal.Salary{From: average, To: average, Currency: "RUR", Average: average},
		City:        city,
		PublishedAt: fmt.Sprintf("%d-01-01T00:00:00+0300", year),
		Year:        year,
	}
}

func TestRunSingleRecord(t *testing.T) {
	records := []internal.VacancyRecord{
		{
			Name:        "аналитик данных",
			Salary:      internal.Salary{From: 100000, To: 200000, Currency: "RUR", Average: 150000},
			City:        "Москва",
			PublishedAt: "2022-01-01T00:00:00+0300",
			Year:        2022,
		},
	}

	out := New("аналитик", 0.01, 10).Run(records)

	if got, _ := out.SalaryByYear.Get(2022); got != 150000 {
		t.Fatalf("salary=%d", got)
	}
	if got, _ := out.ProfSalaryByYear.Get(2022); got != 150000 {
		t.Fatalf("prof salary=%d", got)
	}
	if got, _ := out.CountByYear.Get(2022); got != 1 {
		t.Fatalf("count=%d", got)
	}
	if got, _ := out.ProfCountByYear.Get(2022); got != 1 {
		t.Fatalf("prof count=%d", got)
	}
	if got, _ := out.SalaryByCity.Get("Москва"); got != 150000 {
		t.Fatalf("city salary=%d", got)
	}
	if got, _ := out.ShareByCity.Get("Москва"); got != 1 {
		t.Fatalf("city share=%v", got)
	}
}

func TestRunProfessionMatchIsCaseSensitiveSubstring(t *testing.T) {
	records := []internal.VacancyRecord{
		rec("Senior Аналитик данных", 100, "Москва", 2022),
		rec("аналитик данных", 200, "Москва", 2022),
	}

	out := New("Аналитик", 0.01, 10).Run(records)

	if got, _ := out.ProfCountByYear.Get(2022); got != 1 {
		t.Fatalf("prof count=%d", got)
	}
	if got, _ := out.CountByYear.Get(2022); got != 2 {
		t.Fatalf("count=%d", got)
	}
}

// Years where the profession never appears still carry explicit zero
// entries in the profession maps.
func TestRunInitializesEveryYearKey(t *testing.T) {
	records := []internal.VacancyRecord{
		rec("Аналитик", 100, "Москва", 2022),
		rec("Инженер", 200, "Москва", 2023),
	}

	out := New("Аналитик", 0.01, 10).Run(records)

	if got, ok := out.ProfCountByYear.Get(2023); !ok || got != 0 {
		t.Fatalf("prof count 2023: %d ok=%v", got, ok)
	}
	if got, ok := out.ProfSalaryByYear.Get(2023); !ok || got != 0 {
		t.Fatalf("prof salary 2023: %d ok=%v", got, ok)
	}
	for _, m := range []int{out.SalaryByYear.Len(), out.CountByYear.Len(), out.ProfSalaryByYear.Len(), out.ProfCountByYear.Len()} {
		if m != 2 {
			t.Fatalf("year maps must share the key set, len=%d", m)
		}
	}
}

func TestRunYearKeysInFirstSeenOrder(t *testing.T) {
	records := []internal.VacancyRecord{
		rec("Аналитик", 100, "Москва", 2023),
		rec("Аналитик", 100, "Москва", 2021),
		rec("Аналитик", 100, "Москва", 2023),
		rec("Аналитик", 100, "Москва", 2022),
	}

	out := New("Аналитик", 0.01, 10).Run(records)

	want := []int{2023, 2021, 2022}
	if !reflect.DeepEqual(out.CountByYear.Keys(), want) {
		t.Fatalf("keys=%v", out.CountByYear.Keys())
	}
}

func TestRunFloorsAverages(t *testing.T) {
	records := []internal.VacancyRecord{
		rec("Аналитик", 100, "Москва", 2022),
		rec("Аналитик", 101, "Москва", 2022),
		rec("Аналитик", 101, "Москва", 2022),
	}

	out := New("Аналитик", 0.01, 10).Run(records)

	// 302/3 = 100.66..., floored.
	if got, _ := out.SalaryByYear.Get(2022); got != 100 {
		t.Fatalf("salary=%d", got)
	}
}

func TestRunExcludesInsignificantCity(t *testing.T) {
	records := make([]internal.VacancyRecord, 0, 200)
	for i := 0; i < 199; i++ {
		records = append(records, rec("Аналитик", 100, "Москва", 2022))
	}
	records = append(records, rec("Аналитик", 500, "Тверь", 2022))

	out := New("Аналитик", 0.01, 10).Run(records)

	if _, ok := out.SalaryByCity.Get("Тверь"); ok {
		t.Fatal("0.5% city must not appear in city salaries")
	}
	if _, ok := out.ShareByCity.Get("Тверь"); ok {
		t.Fatal("0.5% city must not appear in city shares")
	}
}

func TestRunThresholdBoundaryIsInclusive(t *testing.T) {
	records := make([]internal.VacancyRecord, 0, 200)
	for i := 0; i < 198; i++ {
		records = append(records, rec("Аналитик", 100, "Москва", 2022))
	}
	records = append(records, rec("Аналитик", 500, "Тверь", 2022))
	records = append(records, rec("Аналитик", 500, "Тверь", 2022))

	out := New("Аналитик", 0.01, 10).Run(records)

	if got, ok := out.ShareByCity.Get("Тверь"); !ok || got != 0.01 {
		t.Fatalf("share=%v ok=%v", got, ok)
	}
}

func TestRunSharesStayWithinBounds(t *testing.T) {
	records := []internal.VacancyRecord{
		rec("Аналитик", 100, "Москва", 2022),
		rec("Аналитик", 100, "Казань", 2022),
		rec("Аналитик", 100, "Казань", 2023),
	}

	out := New("Аналитик", 0.01, 10).Run(records)

	sum := 0.0
	for _, row := range out.CityShareRows() {
		if row.Share < 0 || row.Share > 1 {
			t.Fatalf("share out of bounds: %v", row.Share)
		}
		sum += row.Share
	}
	if sum > 1.0001 {
		t.Fatalf("shares sum to %v", sum)
	}
}

func TestRunCapsCityListsAtTopN(t *testing.T) {
	records := make([]internal.VacancyRecord, 0, 12)
	for i := 0; i < 12; i++ {
		records = append(records, rec("Аналитик", float64(100+i), fmt.Sprintf("Город-%d", i), 2022))
	}

	out := New("Аналитик", 0.01, 10).Run(records)

	if out.SalaryByCity.Len() != 10 {
		t.Fatalf("salary cities=%d", out.SalaryByCity.Len())
	}
	if out.ShareByCity.Len() != 10 {
		t.Fatalf("share cities=%d", out.ShareByCity.Len())
	}
	// Equal counts everywhere: the share list keeps first-seen order.
	want := []string{"Город-0", "Город-1", "Город-2", "Город-3", "Город-4", "Город-5", "Город-6", "Город-7", "Город-8", "Город-9"}
	if !reflect.DeepEqual(out.ShareByCity.Keys(), want) {
		t.Fatalf("keys=%v", out.ShareByCity.Keys())
	}
}

func TestRunSortsCitySalariesDescending(t *testing.T) {
	records := []internal.VacancyRecord{
		rec("Аналитик", 100, "Тверь", 2022),
		rec("Аналитик", 300, "Москва", 2022),
		rec("Аналитик", 200, "Казань", 2022),
	}

	out := New("Аналитик", 0.01, 10).Run(records)

	want := []string{"Москва", "Казань", "Тверь"}
	if !reflect.DeepEqual(out.SalaryByCity.Keys(), want) {
		t.Fatalf("keys=%v", out.SalaryByCity.Keys())
	}
}

func TestRunIsIdempotent(t *testing.T) {
	records := []internal.VacancyRecord{
		rec("Аналитик", 150, "Москва", 2022),
		rec("Инженер", 250, "Казань", 2022),
		rec("Аналитик", 350, "Москва", 2023),
	}

	agg := New("Аналитик", 0.01, 10)
	first := agg.Run(records)
	second := agg.Run(records)

	if !reflect.DeepEqual(first.YearRows(), second.YearRows()) {
		t.Fatal("year rows differ between runs")
	}
	if !reflect.DeepEqual(first.CitySalaryRows(), second.CitySalaryRows()) {
		t.Fatal("city salary rows differ between runs")
	}
	if !reflect.DeepEqual(first.CityShareRows(), second.CityShareRows()) {
		t.Fatal("city share rows differ between runs")
	}
}

func TestRunCountsPerYear(t *testing.T) {
	records := []internal.VacancyRecord{
		rec("Аналитик", 100, "Москва", 2021),
		rec("Аналитик", 100, "Москва", 2022),
		rec("Инженер", 100, "Москва", 2022),
	}

	out := New("Аналитик", 0.01, 10).Run(records)

	for _, year := range out.CountByYear.Keys() {
		manual := 0
		for _, r := range records {
			if r.Year == year {
				manual++
			}
		}
		if got, _ := out.CountByYear.Get(year); got != manual {
			t.Fatalf("year %d: got %d want %d", year, got, manual)
		}
	}
}

func TestRunEmptyInput(t *testing.T) {
	out := New("Аналитик", 0.01, 10).Run(nil)

	if out.Total != 0 {
		t.Fatalf("total=%d", out.Total)
	}
	if out.CountByYear.Len() != 0 || out.SalaryByCity.Len() != 0 {
		t.Fatal("maps must be empty")
	}
}
