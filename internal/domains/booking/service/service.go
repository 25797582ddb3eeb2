package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"salon/config"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/infras/s3"
	"salon/internal/domains/booking/model"
	"salon/internal/domains/booking/model/dto"
	"salon/internal/domains/booking/repository"
	catalogService "salon/internal/domains/catalog/service"
	notificationModel "salon/internal/domains/notification/model"
	notificationDto "salon/internal/domains/notification/model/dto"
	notificationService "salon/internal/domains/notification/service"
	"salon/shared"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/failure"
	"salon/shared/lock"
	"salon/shared/timezone"
	"salon/shared/validator"
)

const (
	msgMissingFields       = "Missing required fields"
	msgInvalidPlan         = "Invalid payment plan. Use full or deposit_50."
	msgHomeAddressRequired = "Home service address is required when requesting home service"
	msgServiceNotFound     = "Service not found"
	msgBookingNotFound     = "Booking not found"
	msgIDAndEmailRequired  = "Booking id and email are required"
	msgReceiptRequired     = "Receipt file is required"
	msgBankParamsRequired  = "bookingId and email are required"
	msgNotBankTransfer     = "This booking is not set to Bank Transfer payment method"
	msgInvalidStatus       = "Invalid status"
	msgNoImage             = "No image to approve"

	msgReceiptUploaded = "Receipt uploaded successfully"
	msgBookingUpdated  = "Booking updated successfully"
	msgImageUpdated    = "Image approval updated successfully"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Track(ctx context.Context, id, email string) (dto.TrackResponse, error)
	UploadReceipt(ctx context.Context, req dto.UploadReceiptRequest) (dto.UploadReceiptResponse, error)
	BankDetails(ctx context.Context, id, email string) (dto.BankDetailsResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) ([]dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.UpdateBookingResponse, error)
	ApproveImage(ctx context.Context, id string, req dto.ApproveImageRequest) (dto.UpdateBookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Booking
	tx      postgres.Transactor
	catalog catalogService.Catalog
	ledger  notificationService.Ledger
	locker  lock.Locker
	s3      s3.S3
	cfg     *config.Config
	otel    otel.Otel
}

func New(
	repo repository.Booking,
	tx postgres.Transactor,
	catalog catalogService.Catalog,
	ledger notificationService.Ledger,
	locker lock.Locker,
	s3 s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:    repo,
		tx:      tx,
		catalog: catalog,
		ledger:  ledger,
		locker:  locker,
		s3:      s3,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.HasRequiredFields() {
		return res, failure.BadRequestFromString(msgMissingFields)
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if !model.IsValidPlan(strings.TrimSpace(req.PaymentPlan)) {
		return res, failure.BadRequestFromString(msgInvalidPlan)
	}

	if req.HomeService() && strings.TrimSpace(req.HomeServiceAddress) == "" {
		return res, failure.BadRequestFromString(msgHomeAddressRequired)
	}

	serviceID, ok := req.ParsedServiceID()
	if !ok {
		return res, failure.BadRequestFromString(msgServiceNotFound)
	}

	service, err := s.catalog.Get(ctx, serviceID)
	if err != nil {
		return res, fmt.Errorf("failed to resolve service: %w", err)
	}

	if service.ID == 0 {
		return res, failure.BadRequestFromString(msgServiceNotFound)
	}

	var styleImageURL string

	if req.StyleImage != nil && req.StyleImageFile != nil {
		styleImageURL, err = s.s3.UploadFile(ctx, constant.UploadDirectoryStyles, req.StyleImageFile, req.StyleImage)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload style image")

			return res, fmt.Errorf("failed to upload style image: %w", err)
		}
	}

	booking := req.ToModel(uuid.NewString(), service, styleImageURL, timezone.Now())

	var events []notificationModel.Event

	if booking.PaymentMethodKind().IsBankTransfer() {
		booking.BankTransferReference = model.BankReference(s.cfg.Bank.ReferencePrefix, booking.ID)

		events = append(events, s.event(notificationModel.TypePaymentInstructions, booking, func(e *notificationModel.Event) {
			e.Reference = booking.BankTransferReference
			e.Amount = booking.AmountDueNow
		}))
	}

	var recorded []notificationModel.Notification

	err = s.tx.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, sqltx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		recorded, err = s.record(ctx, sqltx, events...)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")
		s.discardUpload(ctx, styleImageURL)

		return res, err
	}

	if len(recorded) > 0 {
		s.ledger.Publish(ctx, recorded...)
	}

	res.Message = creationMessage(booking)
	res.Booking.FromModel(booking)

	if booking.PaymentMethodKind().IsBankTransfer() {
		details := s.bankDetails(booking)
		res.PaymentBankDetails = &details
	}

	log.Info().Str("bookingId", booking.ID).Str("paymentMethod", booking.PaymentMethod).Msg("booking created")

	return res, nil
}

func (s *serviceImpl) Track(ctx context.Context, id, email string) (res dto.TrackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Track")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id = strings.TrimSpace(id)
	if id == "" || shared.NormalizeEmail(email) == "" {
		return res, failure.BadRequestFromString(msgIDAndEmailRequired)
	}

	booking, err := s.authorize(ctx, id, email)
	if err != nil {
		return res, err
	}

	notifications, err := s.ledger.ListByBooking(ctx, booking.ID)
	if err != nil {
		return res, fmt.Errorf("failed to load booking notifications: %w", err)
	}

	res.Booking.FromModel(booking)
	res.Notifications = notificationDto.FromModels(notifications)

	return res, nil
}

func (s *serviceImpl) UploadReceipt(ctx context.Context, req dto.UploadReceiptRequest) (res dto.UploadReceiptResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UploadReceipt")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id := strings.TrimSpace(req.BookingID)
	if id == "" || shared.NormalizeEmail(req.Email) == "" {
		return res, failure.BadRequestFromString(msgIDAndEmailRequired)
	}

	if req.Receipt == nil || req.ReceiptFile == nil {
		return res, failure.BadRequestFromString(msgReceiptRequired)
	}

	err = s.locker.WithLock(ctx, model.LockKey(id), func(ctx context.Context) error {
		booking, err := s.authorize(ctx, id, req.Email)
		if err != nil {
			return err
		}

		receiptURL, err := s.s3.UploadFile(ctx, constant.UploadDirectoryReceipts, req.ReceiptFile, req.Receipt)
		if err != nil {
			log.Error().Err(err).Str("bookingId", id).Msg("failed to upload receipt")

			return fmt.Errorf("failed to upload receipt: %w", err)
		}

		now := timezone.Now()

		booking.PaymentReceiptFile = receiptURL
		booking.PaymentReceiptUploadedAt = &now
		booking.PaymentReceiptStatus = model.ReceiptStatusSubmitted

		if booking.PaymentStatus == model.PaymentStatusPending || booking.PaymentStatus == model.PaymentStatusInitiated {
			booking.PaymentStatus = model.PaymentStatusReceiptSubmitted
		}

		changes := map[string]any{
			model.FieldPaymentReceiptFile:       booking.PaymentReceiptFile,
			model.FieldPaymentReceiptUploadedAt: now,
			model.FieldPaymentReceiptStatus:     booking.PaymentReceiptStatus,
			model.FieldPaymentStatus:            booking.PaymentStatus,
		}

		if err := s.save(ctx, booking.ID, changes, s.event(notificationModel.TypeReceiptUploaded, booking, nil)); err != nil {
			s.discardUpload(ctx, receiptURL)

			return err
		}

		res.Message = msgReceiptUploaded
		res.ReceiptFile = receiptURL
		res.Booking = dto.ReceiptBookingView{
			ID:                   booking.ID,
			PaymentStatus:        booking.PaymentStatus,
			PaymentReceiptStatus: booking.PaymentReceiptStatus,
		}

		return nil
	})

	return res, err
}

func (s *serviceImpl) BankDetails(ctx context.Context, id, email string) (res dto.BankDetailsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.BankDetails")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id = strings.TrimSpace(id)
	if id == "" || shared.NormalizeEmail(email) == "" {
		return res, failure.BadRequestFromString(msgBankParamsRequired)
	}

	booking, err := s.authorize(ctx, id, email)
	if err != nil {
		return res, err
	}

	if !booking.PaymentMethodKind().IsBankTransfer() {
		return res, failure.BadRequestFromString(msgNotBankTransfer)
	}

	// The reference is derived from the id, so concurrent backfills agree.
	if booking.BankTransferReference == "" {
		booking.BankTransferReference = model.BankReference(s.cfg.Bank.ReferencePrefix, booking.ID)

		changes := map[string]any{model.FieldBankTransferReference: booking.BankTransferReference}
		if err = s.save(ctx, booking.ID, changes); err != nil {
			return res, err
		}
	}

	res.PaymentBankDetails = s.bankDetails(booking)
	res.BookingID = booking.ID

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if params.SortBy == "" {
		params.SortBy = model.FieldCreatedAt
		params.SortDir = gDto.SortDirAsc
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.UpdateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	status, ok := model.NormalizeStatus(req.Status)
	if !ok {
		return res, failure.BadRequestFromString(msgInvalidStatus)
	}

	err = s.locker.WithLock(ctx, model.LockKey(id), func(ctx context.Context) error {
		booking, err := s.getByID(ctx, id)
		if err != nil {
			return err
		}

		previous := booking.Status
		booking.Status = status
		booking.UpdatedAt = timezone.Now()

		var events []notificationModel.Event

		if previous != status {
			switch status {
			case model.StatusApproved:
				events = append(events, s.event(notificationModel.TypeApproved, booking, nil))
			case model.StatusCancelled:
				events = append(events, s.event(notificationModel.TypeCancelled, booking, nil))
			}
		}

		changes := map[string]any{
			model.FieldStatus:    booking.Status,
			model.FieldUpdatedAt: booking.UpdatedAt,
		}

		if err := s.save(ctx, booking.ID, changes, events...); err != nil {
			return err
		}

		log.Info().Str("bookingId", booking.ID).Str("from", previous).Str("to", status).Msg("booking status updated")

		res.Message = msgBookingUpdated
		res.Booking.FromModel(booking)

		return nil
	})

	return res, err
}

func (s *serviceImpl) ApproveImage(ctx context.Context, id string, req dto.ApproveImageRequest) (res dto.UpdateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ApproveImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.locker.WithLock(ctx, model.LockKey(id), func(ctx context.Context) error {
		booking, err := s.getByID(ctx, id)
		if err != nil {
			return err
		}

		if booking.StyleImage == "" {
			return failure.BadRequestFromString(msgNoImage)
		}

		now := timezone.Now()
		booking.ImageApproved = bool(req.Approved)
		booking.ImageApprovedAt = &now

		changes := map[string]any{
			model.FieldImageApproved:   booking.ImageApproved,
			model.FieldImageApprovedAt: now,
		}

		if err := s.save(ctx, booking.ID, changes); err != nil {
			return err
		}

		res.Message = msgImageUpdated
		res.Booking.FromModel(booking)

		return nil
	})

	return res, err
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.locker.WithLock(ctx, model.LockKey(id), func(ctx context.Context) error {
		booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return nil
		}

		if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("bookingId", id).Msg("failed to delete booking")

			return fmt.Errorf("failed to delete booking: %w", err)
		}

		s.discardUpload(ctx, booking.StyleImage)
		s.discardUpload(ctx, booking.PaymentReceiptFile)

		return nil
	})
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(msgBookingNotFound)
	}

	return booking, nil
}

// authorize loads a booking on behalf of a customer whose only credential is
// the email the booking was made with.
func (s *serviceImpl) authorize(ctx context.Context, id, email string) (model.Booking, error) {
	booking, err := s.getByID(ctx, id)
	if err != nil {
		return booking, err
	}

	if !shared.EmailMatches(booking.Email, email) {
		return booking, failure.EmailMismatchError
	}

	return booking, nil
}

// save applies changes and records events in one transaction, then publishes
// the recorded notifications.
func (s *serviceImpl) save(ctx context.Context, id string, changes map[string]any, events ...notificationModel.Event) error {
	var recorded []notificationModel.Notification

	err := s.tx.WithTx(ctx, func(sqltx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, sqltx, changes, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		var err error
		recorded, err = s.record(ctx, sqltx, events...)

		return err
	})
	if err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to save booking")

		return err
	}

	if len(recorded) > 0 {
		s.ledger.Publish(ctx, recorded...)
	}

	return nil
}

func (s *serviceImpl) record(ctx context.Context, sqltx *sqlx.Tx, events ...notificationModel.Event) ([]notificationModel.Notification, error) {
	recorded := make([]notificationModel.Notification, 0, len(events))

	for _, event := range events {
		notification, err := s.ledger.Record(ctx, sqltx, event)
		if err != nil {
			return nil, fmt.Errorf("failed to record %s notification: %w", event.Type, err)
		}

		recorded = append(recorded, notification)
	}

	return recorded, nil
}

func (s *serviceImpl) event(kind string, booking model.Booking, with func(e *notificationModel.Event)) notificationModel.Event {
	event := notificationModel.Event{
		Type:          kind,
		BookingID:     booking.ID,
		Email:         booking.Email,
		Phone:         booking.Phone,
		BookingStatus: booking.Status,
		OccurredAt:    timezone.Now(),
	}

	if with != nil {
		with(&event)
	}

	return event
}

func (s *serviceImpl) bankDetails(booking model.Booking) dto.PaymentBankDetails {
	return dto.PaymentBankDetails{
		BankName:      s.cfg.Bank.Name,
		AccountNumber: s.cfg.Bank.AccountNumber,
		AccountName:   s.cfg.Bank.AccountName,
		Reference:     booking.BankTransferReference,
		AmountDueNow:  booking.AmountDueNow,
	}
}

// discardUpload removes an object that no longer belongs to a booking. Failures
// only leave an orphaned object behind, so they are logged and ignored.
func (s *serviceImpl) discardUpload(ctx context.Context, url string) {
	if url == "" {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.s3.DeleteFile(c, url); err != nil {
			log.Warn().Err(err).Str("url", url).Msg("failed to delete uploaded file")
		}
	}()
}

func creationMessage(booking model.Booking) string {
	plan := "full"
	if booking.PaymentPlan == model.PlanDeposit50 {
		plan = "50% deposit"
	}

	return fmt.Sprintf(
		"Your service order has been made. A customer care representative will reach out to you via the email and phone number provided. Booking ID: %s. Payment: %s (₦%s due now).",
		booking.ID, plan, shared.FormatAmount(booking.AmountDueNow),
	)
}
