// Package validation implements the form-level gate applied before a
// document proceeds to analysis or export. The document store itself never
// validates: empty strings are legal at that layer, and this gate is the
// collaborator that decides when a resume is "ready".
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Koushiik20/ResuMate/internal/types"
)

var validate = validator.New()

// proceedGate is the readiness rule: a name and a valid email are required
// before analysis or export; everything else may stay blank.
type proceedGate struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
}

// FieldError describes a single failed readiness rule
type FieldError struct {
	Field  string
	Reason string
}

// GateError reports why a document is not ready to proceed
type GateError struct {
	Fields []FieldError
}

func (e *GateError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Reason))
	}
	return "resume is not ready: " + strings.Join(parts, ", ")
}

// CheckReady reports whether the document may proceed to analysis/export.
// Returns nil when ready, or a GateError naming the failed fields.
func CheckReady(doc *types.ResumeDocument) error {
	gate := proceedGate{
		FullName: strings.TrimSpace(doc.PersonalInfo.FullName),
		Email:    strings.TrimSpace(doc.PersonalInfo.Email),
	}

	err := validate.Struct(gate)
	if err == nil {
		return nil
	}

	gateErr := &GateError{}
	invalid, _ := err.(validator.ValidationErrors)
	for _, fe := range invalid {
		reason := "required"
		if fe.Tag() == "email" {
			reason = "must be a valid email address"
		}
		gateErr.Fields = append(gateErr.Fields, FieldError{
			Field:  fe.Field(),
			Reason: reason,
		})
	}
	if len(gateErr.Fields) == 0 {
		gateErr.Fields = append(gateErr.Fields, FieldError{Field: "form", Reason: err.Error()})
	}
	return gateErr
}
