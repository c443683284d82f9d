package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/pricing"
)

// RenderQuoteText renders the plain-text version of a quote, the one users
// paste into messages.
func RenderQuoteText(doc model.QuoteDocument) string {
	var b strings.Builder
	b.WriteString("ORÇAMENTO DE VISITA TÉCNICA\n")
	fmt.Fprintf(&b, "Emitido em: %s\n", formatDate(doc.IssuedAt))
	fmt.Fprintf(&b, "Válido até: %s\n\n", formatDate(doc.ValidUntil))

	b.WriteString("CLIENTE\n")
	fmt.Fprintf(&b, "Nome: %s\n", doc.Client.Name)
	fmt.Fprintf(&b, "Documento: %s\n", doc.Client.Document)
	fmt.Fprintf(&b, "E-mail: %s\n", doc.Client.Email)
	fmt.Fprintf(&b, "Telefone: %s\n", doc.Client.Phone)
	fmt.Fprintf(&b, "Endereço: %s\n", doc.Client.Address)

	for _, q := range doc.Quotes {
		bd := q.Breakdown
		b.WriteString("\n")
		fmt.Fprintf(&b, "== %s ==\n", q.Label)
		fmt.Fprintf(&b, "Origem: %s\n", q.Route.Origin)
		fmt.Fprintf(&b, "Destino: %s\n", q.Route.Destination)
		trip := "somente ida"
		if q.Route.RoundTrip {
			trip = "ida e volta"
		}
		fmt.Fprintf(&b, "Distância: %s (%s)\n", q.Route.Distance.DistanceText, trip)
		fmt.Fprintf(&b, "Tempo estimado: %s\n", q.Route.Distance.DurationText)
		if q.Route.Distance.IsSimulated() {
			b.WriteString("* distância estimada\n")
		}
		fmt.Fprintf(&b, "Veículo: %s\n", pricing.FormatBRL(bd.VehicleTotal))
		if bd.TollTotal > 0 {
			fmt.Fprintf(&b, "  Pedágios: %s\n", pricing.FormatBRL(bd.TollTotal))
		}
		if q.EmployeeSet {
			fmt.Fprintf(&b, "Mão de obra: %s\n", pricing.FormatBRL(bd.LaborTotal))
		}
		if bd.MealTotal > 0 {
			fmt.Fprintf(&b, "Alimentação: %s\n", pricing.FormatBRL(bd.MealTotal))
		}
		for _, line := range bd.Services {
			fmt.Fprintf(&b, "Serviço %s x%d: %s\n", line.Name, line.Quantity, pricing.FormatBRL(line.Total))
		}
		fmt.Fprintf(&b, "Total: %s\n", pricing.FormatBRL(bd.GrandTotal))
	}

	if len(doc.Quotes) > 1 {
		fmt.Fprintf(&b, "\nTOTAL GERAL: %s\n", pricing.FormatBRL(doc.GrandTotal()))
	}
	return b.String()
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
