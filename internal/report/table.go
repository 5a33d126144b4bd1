package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"vacstat/internal"
)

const maxCellRunes = 100

// WriteTables renders the six statistics mappings as console tables.
func WriteTables(w io.Writer, stats *internal.Statistics) {
	fmt.Fprintf(w, "Статистика по годам (профессия: %s)\n", stats.Profession)
	years := tablewriter.NewWriter(w)
	years.SetAutoWrapText(false)
	years.SetHeader([]string{
		"Год",
		"Средняя зарплата",
		"Средняя зарплата - " + stats.Profession,
		"Количество вакансий",
		"Количество вакансий - " + stats.Profession,
	})
	for _, row := range stats.YearRows() {
		years.Append([]string{
			strconv.Itoa(row.Year),
			strconv.Itoa(row.Salary),
			strconv.Itoa(row.ProfSalary),
			strconv.Itoa(row.Count),
			strconv.Itoa(row.ProfCount),
		})
	}
	years.Render()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Уровень зарплат по городам")
	salaries := tablewriter.NewWriter(w)
	salaries.SetAutoWrapText(false)
	salaries.SetHeader([]string{"Город", "Уровень зарплат"})
	for _, row := range stats.CitySalaryRows() {
		salaries.Append([]string{row.City, strconv.Itoa(row.Salary)})
	}
	salaries.Render()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Доля вакансий по городам")
	shares := tablewriter.NewWriter(w)
	shares.SetAutoWrapText(false)
	shares.SetHeader([]string{"Город", "Доля вакансий"})
	for _, row := range stats.CityShareRows() {
		shares.Append([]string{row.City, formatShare(row.Share)})
	}
	shares.Render()
}

// WriteVacancies renders a numbered vacancy listing. Long cells are cut to
// 100 characters, matching the source export's console view.
func WriteVacancies(w io.Writer, records []internal.VacancyRecord) {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"№", "Название", "Оклад", "Регион", "Дата публикации"})
	for i, rec := range records {
		table.Append([]string{
			strconv.Itoa(i + 1),
			truncate(rec.Name),
			truncate(formatSalaryRange(rec.Salary)),
			truncate(rec.City),
			truncate(rec.PublishedAt),
		})
	}
	table.Render()
}

func formatShare(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func formatSalaryRange(s internal.Salary) string {
	return fmt.Sprintf("%s - %s (%s)", groupDigits(s.From), groupDigits(s.To), s.Currency)
}

// groupDigits renders 1234567 as "1 234 567".
func groupDigits(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxCellRunes {
		return s
	}
	return string(runes[:maxCellRunes]) + "..."
}
