package model

import "salon/shared/model"

const (
	TableName  = "messages"
	EntityName = "message"

	FieldID        = "id"
	FieldStatus    = "status"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

const (
	DefaultReportType = "general_message"
	StatusUnread      = "unread"
)

// Message is a contact-form submission or a service report from a customer.
type Message struct {
	ID         string  `db:"id"`
	Name       string  `db:"name"`
	Email      string  `db:"email"`
	Subject    string  `db:"subject"`
	Message    string  `db:"message"`
	ReportType string  `db:"report_type"`
	ReportFile *string `db:"report_file"`
	Status     string  `db:"status"`
	model.Metadata
}
