package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/eduadvisor/backoffice/internal/pkg/apperrors"
)

// RecordFilter narrows list operations. Zero value lists everything.
type RecordFilter struct {
	ConsultantID string
}

// DeleteFilter selects records for bulk deletion. Nil bounds are open.
type DeleteFilter struct {
	ConsultantID string
	From         *time.Time
	To           *time.Time
}

// Matches reports whether a record owned by consultantID and created at
// createdAt falls inside the filter. From is inclusive, To is exclusive.
func (f DeleteFilter) Matches(consultantID string, createdAt time.Time) bool {
	if f.ConsultantID != "" && consultantID != f.ConsultantID {
		return false
	}
	if f.From != nil && createdAt.Before(*f.From) {
		return false
	}
	if f.To != nil && !createdAt.Before(*f.To) {
		return false
	}
	return true
}

// enumError builds the client error returned for a value outside a closed set.
func enumError[T ~string](field string, value string, allowed []T) error {
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return apperrors.NewBadRequestError(fmt.Sprintf("Invalid %s '%s'. Must be one of: %s",
		field, value, strings.Join(names, ", ")))
}

func parseEnum[T ~string](field, value string, allowed []T) (T, error) {
	for _, a := range allowed {
		if string(a) == value {
			return a, nil
		}
	}
	var zero T
	return zero, enumError(field, value, allowed)
}
