package dto

import "github.com/SscSPs/journal_engine/internal/utils/accounting"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Details []accounting.FieldError `json:"details,omitempty"`
}
