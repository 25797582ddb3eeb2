package dto

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"

	"salon/internal/domains/message/model"
	"salon/shared"
	gModel "salon/shared/model"
)

// CreateMessageRequest is built from the multipart contact form.
type CreateMessageRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	ReportType string `json:"reportType"`

	ReportFile       *multipart.FileHeader `json:"reportFile"`
	ReportFileReader multipart.File        `json:"-"`
}

func (r *CreateMessageRequest) HasRequiredFields() bool {
	for _, v := range []string{r.Name, r.Email, r.Subject, r.Message} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}

	return true
}

func (r *CreateMessageRequest) HasReportFile() bool {
	return r.ReportFile != nil && r.ReportFileReader != nil
}

func (r *CreateMessageRequest) ToModel(reportFileURL string, now time.Time) model.Message {
	msg := model.Message{
		ID:         uuid.NewString(),
		Name:       r.Name,
		Email:      r.Email,
		Subject:    r.Subject,
		Message:    r.Message,
		ReportType: shared.FirstNonEmpty(r.ReportType, model.DefaultReportType),
		Status:     model.StatusUnread,
		Metadata:   gModel.NewMetadata(now),
	}

	if reportFileURL != "" {
		msg.ReportFile = &reportFileURL
	}

	return msg
}

type MessageResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReportType string    `json:"reportType"`
	ReportFile *string   `json:"reportFile"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (m *MessageResponse) FromModel(msg model.Message) {
	m.ID = msg.ID
	m.Name = msg.Name
	m.Email = msg.Email
	m.Subject = msg.Subject
	m.Message = msg.Message
	m.ReportType = msg.ReportType
	m.ReportFile = msg.ReportFile
	m.Status = msg.Status
	m.CreatedAt = msg.CreatedAt
	m.UpdatedAt = msg.UpdatedAt
}

// MessageEnvelope pairs a confirmation with the affected message.
type MessageEnvelope struct {
	Message string          `json:"message"`
	Data    MessageResponse `json:"data"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=32"`
}
