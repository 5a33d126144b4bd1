package report

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-pdf/fpdf"

	"vacstat/internal"
)

// WritePDF renders the statistics bundle as a PDF with the same tables as
// the HTML report. Core fonts are latin-1 only, so Cyrillic goes through
// the cp1251 translator.
func WritePDF(stats *internal.Statistics, outputPath string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1251")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(stats.Profession), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr("Статистика по годам"), "", 1, "C", false, 0, "")
	yearWidths := []float64{20, 42, 42, 42, 42}
	pdfRow(pdf, yearWidths, true, []string{
		tr("Год"),
		tr("Средняя зарплата"),
		tr("Средняя зарплата - " + stats.Profession),
		tr("Количество вакансий"),
		tr("Количество вакансий - " + stats.Profession),
	})
	for _, row := range stats.YearRows() {
		pdfRow(pdf, yearWidths, false, []string{
			strconv.Itoa(row.Year),
			strconv.Itoa(row.Salary),
			strconv.Itoa(row.ProfSalary),
			strconv.Itoa(row.Count),
			strconv.Itoa(row.ProfCount),
		})
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr("Статистика по городам"), "", 1, "C", false, 0, "")
	cityWidths := []float64{60, 50}
	pdfRow(pdf, cityWidths, true, []string{tr("Город"), tr("Уровень зарплат")})
	for _, row := range stats.CitySalaryRows() {
		pdfRow(pdf, cityWidths, false, []string{tr(row.City), strconv.Itoa(row.Salary)})
	}
	pdf.Ln(6)

	pdfRow(pdf, cityWidths, true, []string{tr("Город"), tr("Доля вакансий")})
	for _, row := range stats.CityShareRows() {
		pdfRow(pdf, cityWidths, false, []string{tr(row.City), formatShare(row.Share)})
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return pdf.OutputFileAndClose(outputPath)
}

func pdfRow(pdf *fpdf.Fpdf, widths []float64, header bool, cells []string) {
	if header {
		pdf.SetFont("Arial", "B", 9)
	} else {
		pdf.SetFont("Arial", "", 9)
	}
	// Center the row on the page.
	total := 0.0
	for _, w := range widths {
		total += w
	}
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.SetX(left + (pageWidth-left-right-total)/2)

	for i, cell := range cells {
		pdf.CellFormat(widths[i], 7, cell, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
}
