package dto

import "github.com/jhoicas/gestion-pyme/internal/domain/dashboard"

// StatCardDTO una tarjeta de indicador ya lista para pintar.
type StatCardDTO struct {
	Key    string `json:"key"`    // income | invoices | employees | compliance
	Label  string `json:"label"`  // según rol
	Value  string `json:"value"`  // formateado (S/ 1,234.50; 12; 85%)
	Status string `json:"status"` // texto de estado según rol e indicadores
}

// DashboardView respuesta de GET /api/dashboard: todo lo que el cliente necesita para el panel.
type DashboardView struct {
	Role      string               `json:"role"`
	Shortcuts []dashboard.Shortcut `json:"shortcuts"`
	Cards     []StatCardDTO        `json:"cards"`
	Stats     dashboard.LiveStats  `json:"stats"`
	DateLabel string               `json:"date_label"` // ej: "Marzo 2026"
}
