package dto

import (
	"salon/internal/domains/notification/model"
	"salon/shared/timezone"
)

type NotificationResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Email = model.Email
	r.Phone = model.Phone
	r.Type = model.Type
	r.Message = model.Message
	r.CreatedAt = timezone.ISO(model.CreatedAt)
}

func FromModels(models []model.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
