package dashboard

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	domdash "github.com/jhoicas/gestion-pyme/internal/domain/dashboard"
)

var pePrinter = message.NewPrinter(language.MustParse("es-PE"))

// formatSoles formatea un monto en soles con separadores locales, ej: "S/ 12,345.50".
func formatSoles(amount decimal.Decimal) string {
	return pePrinter.Sprintf("S/ %.2f", amount.Round(2).InexactFloat64())
}

// formatCard valor mostrado en la tarjeta de cada indicador.
func formatCard(key domdash.StatKey, s domdash.LiveStats) string {
	switch key {
	case domdash.StatIncome:
		return formatSoles(s.TotalIncome)
	case domdash.StatInvoices:
		return pePrinter.Sprintf("%d", s.PendingInvoices)
	case domdash.StatEmployees:
		return pePrinter.Sprintf("%d", s.ActiveEmployees)
	case domdash.StatCompliance:
		return fmt.Sprintf("%d%%", s.ComplianceScore)
	}
	return ""
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Marzo 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
