// Package pdf implementa el reporte imprimible del dashboard.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre app + Rol     │  Periodo + Fecha emisión    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TARJETAS: Ingresos | Facturas | Empleados | Cumplimiento   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Acceso | Acción | Módulo                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/domain/dashboard"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorSuccess = &props.Color{Red: 22, Green: 128, Blue: 61}
	colorInfo    = &props.Color{Red: 2, Green: 132, Blue: 199}
	colorWarning = &props.Color{Red: 202, Green: 138, Blue: 4}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa dashboard.ReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	appName string
}

// NewMarotoPDFGenerator construye el generador. appName aparece en el encabezado.
func NewMarotoPDFGenerator(appName string) *MarotoPDFGenerator {
	if appName == "" {
		appName = "Gestión PYME"
	}
	return &MarotoPDFGenerator{appName: appName}
}

// GenerateDashboardPDF genera el PDF del panel y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDashboardPDF(
	_ context.Context,
	view *dto.DashboardView,
	generatedAt time.Time,
) ([]byte, error) {
	if view == nil {
		return nil, fmt.Errorf("pdf: vista vacía")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Dashboard", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(view, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("INDICADORES"))
	m.AddRows(cardsRow(view.Cards))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("ACCESOS RÁPIDOS"))
	m.AddRows(shortcutHeaderRow())
	for _, r := range shortcutRows(view.Shortcuts) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app + rol (izq) y periodo + fecha de emisión (der).
func (g *MarotoPDFGenerator) headerRow(view *dto.DashboardView, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Panel: "+roleTitle(view.Role), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE DASHBOARD", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(view.DateLabel, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

// cardsRow: una columna por indicador, en el orden de la vista.
func cardsRow(cards []dto.StatCardDTO) core.Row {
	if len(cards) == 0 {
		return row.New(6)
	}
	size := 12 / len(cards)
	if size == 0 {
		size = 1
	}
	cols := make([]core.Col, 0, len(cards))
	for _, c := range cards {
		cols = append(cols, col.New(size).Add(
			text.New(c.Label, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
			text.New(c.Value, props.Text{Style: fontstyle.Bold, Size: 14, Top: 6, Left: 1}),
			text.New(c.Status, props.Text{Size: 7, Color: colorGray, Top: 15, Left: 1}),
		))
	}
	return row.New(22).Add(cols...)
}

func shortcutHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Acceso", 6, align.Left),
		h("Acción", 3, align.Center),
		h("Módulo", 3, align.Right),
	)
}

// shortcutRows: una fila por acceso rápido, coloreada según su intención.
func shortcutRows(shortcuts []dashboard.Shortcut) []core.Row {
	result := make([]core.Row, 0, len(shortcuts))
	for _, s := range shortcuts {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(s.Title, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1, Color: shortcutColor(s.Color),
			})),
			col.New(3).Add(text.New(actionLabel(s.Action), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(3).Add(text.New(s.Target, props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorGray,
			})),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Indicadores calculados al momento de la emisión. "+
				"Los ingresos corresponden a facturas pagadas en el mes en curso.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func shortcutColor(c dashboard.Color) *props.Color {
	switch c {
	case dashboard.ColorSuccess:
		return colorSuccess
	case dashboard.ColorInfo:
		return colorInfo
	case dashboard.ColorWarning:
		return colorWarning
	default:
		return colorPrimary
	}
}

func actionLabel(a dashboard.ActionKind) string {
	if a == dashboard.OpenModal {
		return "Formulario"
	}
	return "Pestaña"
}

// roleTitle "rrhh" → "RRHH", "contabilidad" → "Contabilidad".
func roleTitle(role string) string {
	switch role {
	case "":
		return "-"
	case "rrhh":
		return "RRHH"
	}
	return strings.ToUpper(role[:1]) + role[1:]
}
