package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/rewards-dashboard-go/internal/domain/entity"
	"github.com/diillson/rewards-dashboard-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

type table struct {
	suffix  string
	title   string
	headers []string
	widths  []float64
	rows    [][]string
}

// tables projeta o relatório nas três tabelas exportadas.
func tables(report entity.RewardsReport) []table {
	monthly := table{
		suffix:  "monthly",
		title:   "Monthly Rewards",
		headers: []string{"Customer ID", "Name", "Month", "Year", "Reward Points"},
		widths:  []float64{30, 60, 40, 25, 35},
	}
	for _, row := range report.Monthly {
		monthly.rows = append(monthly.rows, []string{
			strconv.Itoa(row.CustomerID),
			row.Name,
			row.Month,
			strconv.Itoa(row.Year),
			strconv.Itoa(row.RewardPoints),
		})
	}

	total := table{
		suffix:  "total",
		title:   "Total Rewards",
		headers: []string{"Customer Name", "Reward Points"},
		widths:  []float64{120, 70},
	}
	for _, row := range report.Total {
		total.rows = append(total.rows, []string{row.CustomerName, strconv.Itoa(row.RewardPoints)})
	}

	txns := table{
		suffix:  "transactions",
		title:   "Transactions",
		headers: []string{"ID", "Date", "Customer", "Product", "Amount", "Points"},
		widths:  []float64{15, 25, 40, 60, 25, 25},
	}
	for _, row := range report.Transactions {
		txns.rows = append(txns.rows, []string{
			strconv.Itoa(row.ID),
			row.Date,
			row.CustomerName,
			row.Product,
			formatAmount(row.Amount),
			strconv.Itoa(row.Points),
		})
	}

	return []table{monthly, total, txns}
}

func formatAmount(a entity.Amount) string {
	if d, ok := a.Decimal(); ok {
		return "$" + d.StringFixed(2)
	}
	return a.Raw()
}

// ExportToCSV gera um CSV por tabela: <base>_monthly, <base>_total e
// <base>_transactions.
func (r *ExportRepositoryImpl) ExportToCSV(report entity.RewardsReport, filename, outputDir string) ([]string, error) {
	var generatedFiles []string

	for _, t := range tables(report) {
		path, err := writeCSV(t, filename+"_"+t.suffix, outputDir)
		if err != nil {
			return generatedFiles, err
		}
		generatedFiles = append(generatedFiles, path)
	}

	return generatedFiles, nil
}

func writeCSV(t table, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}
	for _, row := range t.rows {
		if err := writer.Write(cleanRow(row)); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON grava o relatório completo num único arquivo.
func (r *ExportRepositoryImpl) ExportToJSON(report entity.RewardsReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF gera um PDF com uma seção por tabela.
func (r *ExportRepositoryImpl) ExportToPDF(report entity.RewardsReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	generatedAt := report.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by Rewards Dashboard (Go) | %s", generatedAt.Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr("  Customer Rewards Report"), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr("  "+describeFilter(report.Filter)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	for _, t := range tables(report) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(t.title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "B", 9)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for i, h := range t.headers {
			pdf.CellFormat(t.widths[i], 7, tr(h), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		if len(t.rows) == 0 {
			pdf.SetTextColor(128, 128, 128)
			pdf.CellFormat(0, 6, "No data available", "", 1, "L", false, 0, "")
			pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		}
		for _, row := range t.rows {
			for i, cell := range cleanRow(row) {
				pdf.CellFormat(t.widths[i], 6, tr(truncate(cell, t.widths[i])), "", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(8)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func describeFilter(f entity.ReportFilter) string {
	if f.IsZero() {
		return "Filters: none"
	}
	var parts []string
	if f.Name != "" {
		parts = append(parts, fmt.Sprintf("name contains %q", f.Name))
	}
	if f.StartDate != "" {
		parts = append(parts, "from "+f.StartDate)
	}
	if f.EndDate != "" {
		parts = append(parts, "to "+f.EndDate)
	}
	return "Filters: " + strings.Join(parts, ", ")
}

// truncate limita o texto à largura aproximada da coluna (Arial 9).
func truncate(s string, width float64) string {
	maxChars := int(width / 1.9)
	if len(s) <= maxChars || maxChars < 4 {
		return s
	}
	return s[:maxChars-3] + "..."
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}

func cleanRow(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = cleanRichTags(cell)
	}
	return out
}
