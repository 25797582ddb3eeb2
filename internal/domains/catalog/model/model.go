package model

import "salon/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID       = "id"
	FieldName     = "name"
	FieldPrice    = "price"
	FieldDuration = "duration"
)

// Service is a bookable salon offering. Price is in whole naira and
// Duration in minutes.
type Service struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Price    int64  `db:"price"`
	Duration int    `db:"duration"`
	model.Metadata
}
