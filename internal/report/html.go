package report

import (
	"html/template"
	"os"
	"path/filepath"

	"vacstat/internal"
)

const reportTemplate = `<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>Аналитика по зарплатам и городам</title>
<style>
body { font-family: Verdana, sans-serif; margin: 24px; }
h1 { text-align: center; }
h2 { text-align: center; margin-top: 32px; }
table { border-collapse: collapse; margin: 0 auto; }
th, td { border: 1px solid #000; padding: 4px 10px; text-align: center; }
th { font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Profession}}</h1>

<h2>Статистика по годам</h2>
<table>
<tr><th>Год</th><th>Средняя зарплата</th><th>Средняя зарплата - {{.Profession}}</th><th>Количество вакансий</th><th>Количество вакансий - {{.Profession}}</th></tr>
{{range .YearRows}}<tr><td>{{.Year}}</td><td>{{.Salary}}</td><td>{{.ProfSalary}}</td><td>{{.Count}}</td><td>{{.ProfCount}}</td></tr>
{{end}}</table>

<h2>Статистика по городам</h2>
<table>
<tr><th>Город</th><th>Уровень зарплат</th></tr>
{{range .CitySalaryRows}}<tr><td>{{.City}}</td><td>{{.Salary}}</td></tr>
{{end}}</table>
<p></p>
<table>
<tr><th>Город</th><th>Доля вакансий</th></tr>
{{range .CityShareRows}}<tr><td>{{.City}}</td><td>{{share .Share}}</td></tr>
{{end}}</table>
</body>
</html>
`

// WriteHTML writes the statistics bundle as a single-page HTML report.
func WriteHTML(stats *internal.Statistics, outputPath string) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{"share": formatShare}).Parse(reportTemplate)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(f, stats); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
