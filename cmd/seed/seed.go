package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"salon/config"
	"salon/infras/otel"
	"salon/infras/postgres"
	bookingModel "salon/internal/domains/booking/model"
	bookingDto "salon/internal/domains/booking/model/dto"
	bookingRepository "salon/internal/domains/booking/repository"
	catalogModel "salon/internal/domains/catalog/model"
	catalogRepository "salon/internal/domains/catalog/repository"
	messageModel "salon/internal/domains/message/model"
	messageDto "salon/internal/domains/message/model/dto"
	messageRepository "salon/internal/domains/message/repository"
	gDto "salon/shared/dto"
	"salon/shared/timezone"
)

const (
	defaultBookingCount = 25
	defaultMessageCount = 10
	bookingHorizonDays  = 60
	dateLayout          = "2006-01-02"
)

var errNoServices = errors.New("no services found, run the migrations first")

var (
	slots = []string{"09:00", "10:30", "12:00", "13:30", "15:00", "16:30"}
	plans = []string{bookingModel.PlanFull, bookingModel.PlanDeposit50}

	methods = []string{
		string(bookingModel.PaymentMethodBankTransfer),
		string(bookingModel.PaymentMethodCreditCard),
		string(bookingModel.PaymentMethodDebitCard),
		string(bookingModel.PaymentMethodUSSD),
		string(bookingModel.PaymentMethodCash),
	}

	languages   = []string{"English", "French", "Yoruba", "Igbo", "Hausa"}
	reportTypes = []string{messageModel.DefaultReportType, "feedback", "complaint", "technical_issue"}
)

func seedFaker(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gofakeit.Seed(seed)
	log.Debug().Int64("seed", seed).Msg("Faker seeded")
}

func bookingsCmd(cfg *config.Config) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Insert fake bookings against the seeded service catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db := postgres.New(cfg)
			defer db.Close()

			tracer := otel.New(cfg)

			return seedBookings(cmd.Context(), catalogRepository.New(db, tracer), bookingRepository.New(db, tracer), count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", defaultBookingCount, "number of bookings to insert")

	return cmd
}

func messagesCmd(cfg *config.Config) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Insert fake contact messages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db := postgres.New(cfg)
			defer db.Close()

			return seedMessages(cmd.Context(), messageRepository.New(db, otel.New(cfg)), count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", defaultMessageCount, "number of messages to insert")

	return cmd
}

func seedBookings(ctx context.Context, catalog catalogRepository.Service, bookings bookingRepository.Booking, count int) error {
	services, err := catalog.GetAll(ctx, gDto.QueryParams{SortBy: catalogModel.FieldID, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		return fmt.Errorf("failed to load services: %w", err)
	}

	if len(services) == 0 {
		return errNoServices
	}

	now := timezone.Now()

	for i := range count {
		service := services[gofakeit.Number(0, len(services)-1)]
		req := fakeBookingRequest(service.ID, now)

		if err := bookings.Insert(ctx, req.ToModel(uuid.NewString(), service, "", now)); err != nil {
			return fmt.Errorf("failed to insert booking %d: %w", i+1, err)
		}
	}

	log.Info().Int("count", count).Msg("Bookings seeded")

	return nil
}

func seedMessages(ctx context.Context, messages messageRepository.Message, count int) error {
	now := timezone.Now()

	for i := range count {
		req := fakeMessageRequest()

		if err := messages.Insert(ctx, req.ToModel("", now)); err != nil {
			return fmt.Errorf("failed to insert message %d: %w", i+1, err)
		}
	}

	log.Info().Int("count", count).Msg("Messages seeded")

	return nil
}

func fakeBookingRequest(serviceID int64, now time.Time) bookingDto.CreateBookingRequest {
	date := gofakeit.DateRange(now, now.AddDate(0, 0, bookingHorizonDays))

	req := bookingDto.CreateBookingRequest{
		Name:          gofakeit.Name(),
		Email:         strings.ToLower(gofakeit.Email()),
		Phone:         gofakeit.Phone(),
		ServiceID:     strconv.FormatInt(serviceID, 10),
		Date:          date.Format(dateLayout),
		Time:          gofakeit.RandomString(slots),
		Language:      gofakeit.RandomString(languages),
		PaymentMethod: gofakeit.RandomString(methods),
		PaymentPlan:   gofakeit.RandomString(plans),
	}

	if gofakeit.Bool() {
		req.HomeServiceRequested = "true"
		req.HomeServiceAddress = gofakeit.Address().Address
	}

	return req
}

func fakeMessageRequest() messageDto.CreateMessageRequest {
	return messageDto.CreateMessageRequest{
		Name:       gofakeit.Name(),
		Email:      strings.ToLower(gofakeit.Email()),
		Subject:    words(4),
		Message:    words(20),
		ReportType: gofakeit.RandomString(reportTypes),
	}
}

func words(n int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = gofakeit.Word()
	}

	return strings.Join(out, " ")
}
