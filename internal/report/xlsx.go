package report

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"vacstat/internal"
)

const (
	yearSheet = "Статистика по годам"
	citySheet = "Статистика по городам"
)

// WriteXLSX writes the statistics bundle as a two-sheet workbook.
func WriteXLSX(stats *internal.Statistics, outputPath string) error {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), yearSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(citySheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	yearHeaders := []string{
		"Год",
		"Средняя зарплата",
		"Средняя зарплата - " + stats.Profession,
		"Количество вакансий",
		"Количество вакансий - " + stats.Profession,
	}
	for i, h := range yearHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(yearSheet, cell, h)
	}
	for i, row := range stats.YearRows() {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(yearSheet, cell, value)
		}
		set(1, row.Year)
		set(2, row.Salary)
		set(3, row.ProfSalary)
		set(4, row.Count)
		set(5, row.ProfCount)
	}

	// Column C stays empty to separate the two city tables side by side.
	cityHeaders := []string{"Город", "Уровень зарплат", "", "Город", "Доля вакансий"}
	for i, h := range cityHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(citySheet, cell, h)
	}
	for i, row := range stats.CitySalaryRows() {
		r := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, r)
		_ = f.SetCellValue(citySheet, cell, row.City)
		cell, _ = excelize.CoordinatesToCellName(2, r)
		_ = f.SetCellValue(citySheet, cell, row.Salary)
	}
	for i, row := range stats.CityShareRows() {
		r := i + 2
		cell, _ := excelize.CoordinatesToCellName(4, r)
		_ = f.SetCellValue(citySheet, cell, row.City)
		cell, _ = excelize.CoordinatesToCellName(5, r)
		_ = f.SetCellValue(citySheet, cell, row.Share)
	}

	if err := f.SetCellStyle(yearSheet, "A1", "E1", bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(citySheet, "A1", "E1", bold); err != nil {
		return err
	}
	_ = f.SetColWidth(yearSheet, "A", "E", 26)
	_ = f.SetColWidth(citySheet, "A", "E", 22)

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return f.SaveAs(outputPath)
}
