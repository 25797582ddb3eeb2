package model

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"

	legacyStatusAccepted = "accepted"
	legacyStatusDeclined = "declined"
)

var statuses = map[string]string{
	StatusPending:        StatusPending,
	StatusApproved:       StatusApproved,
	StatusCancelled:      StatusCancelled,
	StatusCompleted:      StatusCompleted,
	legacyStatusAccepted: StatusApproved,
	legacyStatusDeclined: StatusCancelled,
}

// NormalizeStatus maps an admin-supplied status, including the legacy
// spellings older dashboards still send, to its canonical form.
func NormalizeStatus(status string) (string, bool) {
	normalized, ok := statuses[status]

	return normalized, ok
}
