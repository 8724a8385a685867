package services

import (
	"strings"

	"acta_flow_app_go/models"

	"github.com/google/uuid"
)

// FieldErrors maps a form field name to a human-readable validation message.
// Validation errors stay inside the form boundary: handlers return them as a
// 422 body, they are never raised as Go errors.
type FieldErrors map[string]string

// HasErrors reports whether any field failed validation
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

// requireTrimmed trims the value and records a required-field message when empty
func requireTrimmed(fe FieldErrors, field, value, message string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		fe[field] = message
	}
	return trimmed
}

// validateOptionalID validates a UUID-shaped optional reference
func validateOptionalID(fe FieldErrors, field, value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if _, err := uuid.Parse(trimmed); err != nil {
		fe[field] = "invalid ID"
		return nil
	}
	return &trimmed
}

// AudienciaInput is the submitted form for creating or updating a hearing
type AudienciaInput struct {
	CaseID    string `json:"case_id"`
	CaseLabel string `json:"case_label"`
	Court     string `json:"court"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Status    string `json:"status"`
}

// Validate coerces and validates the input. On success the returned Audiencia
// carries canonical values (ISO date, HH:mm time, trimmed strings); the
// returned FieldErrors is non-empty otherwise. This is the single validation
// gate before submission, nothing re-validates downstream.
func (in *AudienciaInput) Validate() (*models.Audiencia, FieldErrors) {
	fe := FieldErrors{}

	caseID := validateOptionalID(fe, "case_id", in.CaseID)
	caseLabel := requireTrimmed(fe, "case_label", in.CaseLabel, "case label is required")
	court := requireTrimmed(fe, "court", in.Court, "court is required")
	hearingType := requireTrimmed(fe, "type", in.Type, "hearing type is required")

	date, err := CoerceDate(in.Date)
	if err != nil {
		fe["date"] = err.Error()
	}

	hearingTime, err := CoerceTime(in.Time)
	if err != nil {
		fe["time"] = err.Error()
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = models.AudienciaStatusScheduled
	} else if !models.IsValidAudienciaStatus(status) {
		fe["status"] = "invalid status"
	}

	if fe.HasErrors() {
		return nil, fe
	}

	return &models.Audiencia{
		CaseID:    caseID,
		CaseLabel: caseLabel,
		Court:     court,
		Type:      hearingType,
		Date:      date,
		Time:      hearingTime,
		Location:  strings.TrimSpace(in.Location),
		Status:    status,
	}, fe
}

// PlazoInput is the submitted form for creating or updating a deadline
type PlazoInput struct {
	CaseID    string `json:"case_id"`
	CaseLabel string `json:"case_label"`
	Type      string `json:"type"`
	DueDate   string `json:"due_date"`
	Priority  string `json:"priority"`
}

// Validate coerces and validates the input, mirroring AudienciaInput.Validate
func (in *PlazoInput) Validate() (*models.Plazo, FieldErrors) {
	fe := FieldErrors{}

	caseID := validateOptionalID(fe, "case_id", in.CaseID)
	caseLabel := requireTrimmed(fe, "case_label", in.CaseLabel, "case label is required")
	deadlineType := requireTrimmed(fe, "type", in.Type, "deadline type is required")

	dueDate, err := CoerceDate(in.DueDate)
	if err != nil {
		fe["due_date"] = err.Error()
	}

	priority := strings.TrimSpace(in.Priority)
	if priority == "" {
		priority = models.PlazoPriorityMedium
	} else if !models.IsValidPlazoPriority(priority) {
		fe["priority"] = "invalid priority"
	}

	if fe.HasErrors() {
		return nil, fe
	}

	return &models.Plazo{
		CaseID:    caseID,
		CaseLabel: caseLabel,
		Type:      deadlineType,
		DueDate:   dueDate,
		Priority:  priority,
	}, fe
}
