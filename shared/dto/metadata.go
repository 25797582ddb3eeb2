package dto

import (
	"time"

	"salon/shared/model"
	"salon/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.ISO(model.CreatedAt)
	m.UpdatedAt = timezone.ISO(model.UpdatedAt)
}

// OptionalTime renders a nullable timestamp, keeping JSON null for unset values.
func OptionalTime(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}

	formatted := timezone.ISO(*t)

	return &formatted
}
