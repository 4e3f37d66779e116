package dto

import "time"

// ComplianceResponse obligación legal en respuestas.
type ComplianceResponse struct {
	ID          string     `json:"id"`
	Agency      string     `json:"agency"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     time.Time  `json:"due_date"`
	Status      string     `json:"status"`
	Overdue     bool       `json:"overdue"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
