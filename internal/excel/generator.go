package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/pricing"
)

const (
	summarySheet = "Resumo"
	maxSheetName = 31
	moneyFormat  = `"R$" #,##0.00`
)

// Generator renders a batch of quotes as a workbook: one summary sheet plus
// one detail sheet per destination.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Render(doc model.QuoteDocument) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	money, err := file.NewStyle(&excelize.Style{CustomNumFmt: strPtr(moneyFormat)})
	if err != nil {
		return nil, err
	}
	if err := g.writeSummary(file, money, doc); err != nil {
		return nil, err
	}

	usedNames := map[string]struct{}{summarySheet: {}}
	for _, q := range doc.Quotes {
		sheetName := buildSheetName(q.Label, q.SessionID, usedNames)
		usedNames[sheetName] = struct{}{}

		if _, err := file.NewSheet(sheetName); err != nil {
			return nil, err
		}
		if err := g.writeDetail(file, sheetName, money, q); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, money int, doc model.QuoteDocument) error {
	sheet := summarySheet
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Cliente")
	set("B1", doc.Client.Name)
	set("A2", "Documento")
	set("B2", doc.Client.Document)
	set("A3", "E-mail")
	set("B3", doc.Client.Email)
	set("A4", "Telefone")
	set("B4", doc.Client.Phone)
	set("A5", "Endereço")
	set("B5", doc.Client.Address)
	set("A6", "Emitido em")
	set("B6", formatDate(doc.IssuedAt))
	set("A7", "Válido até")
	set("B7", formatDate(doc.ValidUntil))

	tableRow := 9
	headers := []string{"Destino", "Distância (km)", "Veículo", "Mão de obra", "Alimentação", "Serviços", "Total"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, q := range doc.Quotes {
		row := tableRow + 1 + i
		bd := q.Breakdown
		set(fmt.Sprintf("A%d", row), q.Label)
		set(fmt.Sprintf("B%d", row), pricing.Round2(bd.DistanceKm))
		set(fmt.Sprintf("C%d", row), pricing.Round2(bd.VehicleTotal))
		set(fmt.Sprintf("D%d", row), pricing.Round2(bd.LaborTotal))
		set(fmt.Sprintf("E%d", row), pricing.Round2(bd.MealTotal))
		set(fmt.Sprintf("F%d", row), pricing.Round2(bd.ServiceTotal))
		set(fmt.Sprintf("G%d", row), pricing.Round2(bd.GrandTotal))
	}
	totalRow := tableRow + 1 + len(doc.Quotes)
	set(fmt.Sprintf("A%d", totalRow), "Total geral")
	set(fmt.Sprintf("G%d", totalRow), pricing.Round2(doc.GrandTotal()))

	if err := file.SetCellStyle(sheet, fmt.Sprintf("C%d", tableRow+1), fmt.Sprintf("G%d", totalRow), money); err != nil {
		return err
	}
	_ = file.SetColWidth(sheet, "A", "A", 40)
	_ = file.SetColWidth(sheet, "B", "G", 16)
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, money int, q model.QuoteView) error {
	bd := q.Breakdown
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Destino")
	set("B1", q.Label)
	set("A2", "Origem")
	set("B2", q.Route.Origin)
	set("A3", "Endereço")
	set("B3", q.Route.Destination)
	set("A4", "Ida e volta")
	set("B4", yesNo(q.Route.RoundTrip))
	set("A5", "Distância")
	set("B5", q.Route.Distance.DistanceText)
	set("A6", "Tempo")
	set("B6", q.Route.Distance.DurationText)
	set("A7", "Fonte")
	set("B7", string(q.Route.Distance.Source))

	tableRow := 9
	for i, header := range []string{"Item", "Custo por km", "Valor"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	type line struct {
		label string
		rate  interface{}
		value float64
	}
	lines := []line{
		{"Combustível", pricing.Round2(bd.RatesPerKm.Fuel), bd.Costs.Fuel},
		{"IPVA", pricing.Round2(bd.RatesPerKm.IPVA), bd.Costs.IPVA},
		{"Seguro", pricing.Round2(bd.RatesPerKm.Insurance), bd.Costs.Insurance},
		{"Manutenção", pricing.Round2(bd.RatesPerKm.Maintenance), bd.Costs.Maintenance},
		{"Depreciação", pricing.Round2(bd.RatesPerKm.Depreciation), bd.Costs.Depreciation},
		{"Pedágios", "", bd.TollTotal},
		{"Margem veículo", "", bd.VehicleMargin},
		{"Subtotal veículo", "", bd.VehicleTotal},
		{"Mão de obra", "", bd.LaborTotal},
		{"Alimentação", "", bd.MealTotal},
	}
	for _, svc := range bd.Services {
		lines = append(lines, line{fmt.Sprintf("%s (x%d)", svc.Name, svc.Quantity), "", svc.Total})
	}
	lines = append(lines, line{"Total", "", bd.GrandTotal})

	for i, l := range lines {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), l.label)
		set(fmt.Sprintf("B%d", row), l.rate)
		set(fmt.Sprintf("C%d", row), pricing.Round2(l.value))
	}
	lastRow := tableRow + len(lines)
	if err := file.SetCellStyle(sheet, fmt.Sprintf("C%d", tableRow+1), fmt.Sprintf("C%d", lastRow), money); err != nil {
		return err
	}

	_ = file.SetColWidth(sheet, "A", "A", 32)
	_ = file.SetColWidth(sheet, "B", "B", 40)
	_ = file.SetColWidth(sheet, "C", "C", 16)
	return nil
}

// buildSheetName derives a unique, Excel-safe sheet name from the quote label.
func buildSheetName(label string, id uuid.UUID, used map[string]struct{}) string {
	base := strings.TrimSpace(label)
	if base == "" {
		base = id.String()
	}
	base = truncate(sanitizeSheetName(base), maxSheetName)

	candidate := base
	for counter := 2; ; counter++ {
		if _, exists := used[candidate]; !exists {
			return candidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		candidate = truncate(base, maxSheetName-len(suffix)) + suffix
	}
}

func sanitizeSheetName(value string) string {
	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
		"'", "",
	)
	value = strings.TrimSpace(replacer.Replace(value))
	if value == "" {
		return "Destino"
	}
	return value
}

// truncate cuts value to at most n characters without splitting a rune.
func truncate(value string, n int) string {
	runes := []rune(value)
	if len(runes) <= n {
		return value
	}
	return string(runes[:n])
}

func yesNo(v bool) string {
	if v {
		return "Sim"
	}
	return "Não"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

func strPtr(s string) *string {
	return &s
}
