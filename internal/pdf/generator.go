package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/pricing"
)

const fontName = "Helvetica"

// Generator renders quote documents as A4 PDFs. Text goes through a cp1252
// translator so the core font can print Portuguese accents.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

type writer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (g *Generator) Render(doc model.QuoteDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	w := writer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetFont(fontName, "B", 14)
	w.cell(0, 10, "Orçamento de Visita Técnica", "C")
	pdf.SetFont(fontName, "", 10)
	w.cell(0, 6, fmt.Sprintf("Emitido em %s - válido até %s", formatDate(doc.IssuedAt), formatDate(doc.ValidUntil)), "C")
	pdf.Ln(4)

	w.clientBlock(doc.Client)

	for i, q := range doc.Quotes {
		pdf.Ln(4)
		w.quoteBlock(i, q)
	}

	if len(doc.Quotes) > 1 {
		pdf.Ln(4)
		pdf.SetFont(fontName, "B", 12)
		w.cell(0, 8, "Total geral: "+pricing.FormatBRL(doc.GrandTotal()), "R")
	}

	pdf.Ln(6)
	pdf.SetFont(fontName, "", 9)
	pdf.MultiCell(0, 5, w.tr(fmt.Sprintf(
		"Valores sujeitos a alteração após %s. Distâncias marcadas como estimadas não vieram do serviço de mapas.",
		formatDate(doc.ValidUntil),
	)), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w writer) cell(width, height float64, text, align string) {
	w.pdf.CellFormat(width, height, w.tr(text), "", 1, align, false, 0, "")
}

func (w writer) clientBlock(c model.ClientData) {
	w.pdf.SetFont(fontName, "B", 11)
	w.cell(0, 6, "Cliente", "L")
	w.pdf.SetFont(fontName, "", 10)
	lines := []string{
		c.Name,
		fmt.Sprintf("Documento: %s", safeValue(c.Document)),
		fmt.Sprintf("E-mail: %s", safeValue(c.Email)),
		fmt.Sprintf("Telefone: %s", safeValue(c.Phone)),
		fmt.Sprintf("Endereço: %s", safeValue(c.Address)),
	}
	for _, line := range lines {
		w.pdf.MultiCell(0, 5, w.tr(line), "", "L", false)
	}
}

func (w writer) quoteBlock(index int, q model.QuoteView) {
	bd := q.Breakdown
	w.pdf.SetFont(fontName, "B", 12)
	w.cell(0, 8, fmt.Sprintf("%d. %s", index+1, q.Label), "L")

	w.pdf.SetFont(fontName, "", 10)
	trip := "somente ida"
	if q.Route.RoundTrip {
		trip = "ida e volta"
	}
	distance := q.Route.Distance.DistanceText
	if q.Route.Distance.IsSimulated() {
		distance += " (estimada)"
	}
	w.pdf.MultiCell(0, 5, w.tr(fmt.Sprintf("%s -> %s", q.Route.Origin, q.Route.Destination)), "", "L", false)
	w.cell(0, 5, fmt.Sprintf("Distância: %s, %s. Tempo: %s", distance, trip, q.Route.Distance.DurationText), "L")
	w.pdf.Ln(2)

	widths := []float64{80, 60, 40}
	w.row([]string{"Item", "Detalhe", "Valor"}, widths, true)
	w.row([]string{"Combustível", perKm(bd.RatesPerKm.Fuel), pricing.FormatBRL(bd.Costs.Fuel)}, widths, false)
	w.row([]string{"IPVA", perKm(bd.RatesPerKm.IPVA), pricing.FormatBRL(bd.Costs.IPVA)}, widths, false)
	w.row([]string{"Seguro", perKm(bd.RatesPerKm.Insurance), pricing.FormatBRL(bd.Costs.Insurance)}, widths, false)
	w.row([]string{"Manutenção", perKm(bd.RatesPerKm.Maintenance), pricing.FormatBRL(bd.Costs.Maintenance)}, widths, false)
	w.row([]string{"Depreciação", perKm(bd.RatesPerKm.Depreciation), pricing.FormatBRL(bd.Costs.Depreciation)}, widths, false)
	if bd.TollTotal > 0 {
		w.row([]string{"Pedágios", "", pricing.FormatBRL(bd.TollTotal)}, widths, false)
	}
	if bd.VehicleMargin > 0 {
		w.row([]string{"Margem veículo", "", pricing.FormatBRL(bd.VehicleMargin)}, widths, false)
	}
	w.row([]string{"Veículo", "", pricing.FormatBRL(bd.VehicleTotal)}, widths, true)

	if q.EmployeeSet {
		detail := fmt.Sprintf("%.1f h x %s", bd.TravelHours+bd.WorkHours, pricing.FormatBRL(bd.HourlyRate))
		w.row([]string{"Mão de obra", detail, pricing.FormatBRL(bd.LaborTotal)}, widths, false)
	}
	if bd.MealTotal > 0 {
		w.row([]string{"Alimentação", "", pricing.FormatBRL(bd.MealTotal)}, widths, false)
	}
	for _, line := range bd.Services {
		detail := fmt.Sprintf("%d x %s", line.Quantity, pricing.FormatBRL(line.UnitCost))
		w.row([]string{line.Name, detail, pricing.FormatBRL(line.Total)}, widths, false)
	}
	w.row([]string{"Total", "", pricing.FormatBRL(bd.GrandTotal)}, widths, true)
}

func (w writer) row(cols []string, widths []float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	w.pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i == len(cols)-1 {
			align = "R"
		}
		w.pdf.CellFormat(widths[i], 7, w.tr(col), "1", 0, align, false, 0, "")
	}
	w.pdf.Ln(-1)
}

func perKm(rate float64) string {
	return pricing.FormatBRL(rate) + "/km"
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}
