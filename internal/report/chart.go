package report

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"

	"vacstat/internal"
)

// WriteCharts renders the four statistics charts as PNG files under dir and
// returns the written paths.
func WriteCharts(stats *internal.Statistics, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	images := []struct {
		name   string
		render func(io.Writer) error
	}{
		{"salary_by_year.png", func(w io.Writer) error {
			return yearBars(w, "Уровень зарплат по годам", stats, func(r internal.YearRow) (int, int) {
				return r.Salary, r.ProfSalary
			})
		}},
		{"count_by_year.png", func(w io.Writer) error {
			return yearBars(w, "Количество вакансий по годам", stats, func(r internal.YearRow) (int, int) {
				return r.Count, r.ProfCount
			})
		}},
		{"salary_by_city.png", func(w io.Writer) error {
			return citySalaryBars(w, stats)
		}},
		{"share_by_city.png", func(w io.Writer) error {
			return citySharePie(w, stats)
		}},
	}

	written := make([]string, 0, len(images))
	for _, img := range images {
		path := filepath.Join(dir, img.name)
		f, err := os.Create(path)
		if err != nil {
			return written, err
		}
		err = img.render(f)
		closeErr := f.Close()
		if err != nil {
			return written, err
		}
		if closeErr != nil {
			return written, closeErr
		}
		written = append(written, path)
	}
	return written, nil
}

// yearBars draws paired bars per year: the full dataset next to the
// profession-filtered subset.
func yearBars(w io.Writer, title string, stats *internal.Statistics, pick func(internal.YearRow) (int, int)) error {
	rows := stats.YearRows()
	bars := make([]chart.Value, 0, 2*len(rows))
	for _, row := range rows {
		all, prof := pick(row)
		bars = append(bars, chart.Value{Label: strconv.Itoa(row.Year), Value: float64(all)})
		bars = append(bars, chart.Value{Label: "проф", Value: float64(prof)})
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      chartWidth(len(bars)),
		Height:     512,
		BarWidth:   34,
		BarSpacing: 16,
		Bars:       bars,
	}
	return graph.Render(chart.PNG, w)
}

func citySalaryBars(w io.Writer, stats *internal.Statistics) error {
	rows := stats.CitySalaryRows()
	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		bars = append(bars, chart.Value{Label: row.City, Value: float64(row.Salary)})
	}

	graph := chart.BarChart{
		Title:      "Уровень зарплат по городам",
		Width:      chartWidth(len(bars)),
		Height:     512,
		BarWidth:   48,
		BarSpacing: 24,
		Bars:       bars,
	}
	return graph.Render(chart.PNG, w)
}

// citySharePie draws the top city shares plus a remainder slice for all
// other cities.
func citySharePie(w io.Writer, stats *internal.Statistics) error {
	rows := stats.CityShareRows()
	values := make([]chart.Value, 0, len(rows)+1)
	covered := 0.0
	for _, row := range rows {
		values = append(values, chart.Value{Label: row.City, Value: row.Share})
		covered += row.Share
	}
	if rest := 1 - covered; rest > 0 {
		values = append(values, chart.Value{Label: "Другие", Value: rest})
	}

	graph := chart.PieChart{
		Title:  "Доля вакансий по городам",
		Width:  512,
		Height: 512,
		Values: values,
	}
	return graph.Render(chart.PNG, w)
}

func chartWidth(bars int) int {
	width := bars * 64
	if width < 512 {
		return 512
	}
	return width
}
