package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Admin=MockAdminService

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"salon/config"
	"salon/infras/jwt"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/admin/model"
	"salon/internal/domains/admin/model/dto"
	"salon/internal/domains/admin/repository"
	"salon/shared"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/failure"
	"salon/shared/lock"
	"salon/shared/password"
	"salon/shared/timezone"
)

const (
	msgRegistrationOpen   = "Admin registration is open for initial setup"
	msgRegistrationClosed = "Admin registration is closed. Contact the existing admin for access."

	msgRegisterFieldsRequired   = "Name, email, password, and secret passcode are required"
	msgRegisterInvalidPasscode  = "Invalid secret passcode for admin registration"
	msgLoginFieldsRequired      = "Email and password are required"
	msgNoAdminForLogin          = "No admin account found. Complete initial admin setup first."
	msgInvalidCredentials       = "Invalid email or password"
	msgSecondFactorRequired     = "Provide either a valid secret passcode or a one-time access code"
	msgInvalidPasscode          = "Invalid secret passcode"
	msgInvalidAccessCode        = "Invalid or expired one-time access code"
	msgAccessFieldsRequired     = "Email and secret passcode are required"
	msgNoAdminConfigured        = "No admin account configured yet"
	msgAdminNotFoundForEmail    = "Admin account not found for this email"
	msgNoTokenProvided          = "No token provided"
	msgVerifyNoAdminConfigured  = "No admin configured"
	msgVerifyAdminNotFound      = "Admin not found"
	msgUnauthorizedAdminAccess  = "Unauthorized admin access"
	msgPasswordTooLong          = "Password must be at most 72 bytes"
	msgAdminRegistered          = "Admin registered successfully"
	msgLoginSuccessful          = "Login successful"
	msgAccessCodeGenerated      = "One-time access code generated successfully"
	defaultAccessCodeTTLMinutes = 10
)

// accessCodeSpace yields codes in [100000, 999999].
var accessCodeSpace = big.NewInt(900000)

type Admin interface {
	RegistrationStatus(ctx context.Context) (dto.RegistrationStatusResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RequestAccessCode(ctx context.Context, req dto.AccessCodeRequest) (dto.AccessCodeResponse, error)
	Verify(ctx context.Context, req dto.VerifyRequest) (dto.VerifyResponse, error)
	Authenticate(ctx context.Context, token string) (dto.AdminResponse, error)
}

type serviceImpl struct {
	admins repository.Admin
	codes  repository.AccessCode
	tx     postgres.Transactor
	locker lock.Locker
	jwt    jwt.JWT
	cfg    *config.Config
	otel   otel.Otel
}

func New(
	admins repository.Admin,
	codes repository.AccessCode,
	tx postgres.Transactor,
	locker lock.Locker,
	jwt jwt.JWT,
	cfg *config.Config,
	otel otel.Otel,
) Admin {
	return &serviceImpl{
		admins: admins,
		codes:  codes,
		tx:     tx,
		locker: locker,
		jwt:    jwt,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) RegistrationStatus(ctx context.Context) (res dto.RegistrationStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.RegistrationStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	count, err := s.count(ctx)
	if err != nil {
		return res, err
	}

	res.RegistrationOpen = count == 0
	res.Message = msgRegistrationClosed

	if res.RegistrationOpen {
		res.Message = msgRegistrationOpen
	}

	return res, nil
}

// Register creates the first admin. Once any admin exists registration is
// closed for good.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if req.Email == "" || req.Password == "" || req.Name == "" || req.SecretPasscode == "" {
		return res, failure.BadRequestFromString(msgRegisterFieldsRequired)
	}

	if len(req.Password) > password.MaxLength {
		return res, failure.BadRequestFromString(msgPasswordTooLong)
	}

	err = s.locker.WithLock(ctx, model.RegistrationLockKey, func(ctx context.Context) error {
		count, err := s.count(ctx)
		if err != nil {
			return err
		}

		if count > 0 {
			return failure.RegistrationClosedError
		}

		if !s.passcodeMatches(req.SecretPasscode) {
			return failure.Unauthorized(msgRegisterInvalidPasscode)
		}

		hash, err := password.Hash(req.Password)
		if err != nil {
			log.Error().Err(err).Msg("failed to hash admin password")

			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := req.ToModel(hash, timezone.Now())

		if err := s.admins.Insert(ctx, admin); err != nil {
			log.Error().Err(err).Msg("failed to insert admin")

			return fmt.Errorf("failed to insert admin: %w", err)
		}

		res.Message = msgAdminRegistered
		res.Admin.FromModel(admin)

		return nil
	})
	if err != nil {
		return dto.RegisterResponse{}, err
	}

	log.Info().Str("admin_id", res.Admin.ID).Msg("admin registered")

	return res, nil
}

// Login checks the password and then one of two second factors: the static
// secret passcode or an unused, unexpired access code issued to the admin.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if req.Email == "" || req.Password == "" {
		return res, failure.BadRequestFromString(msgLoginFieldsRequired)
	}

	count, err := s.count(ctx)
	if err != nil {
		return res, err
	}

	if count == 0 {
		return res, failure.Unauthorized(msgNoAdminForLogin)
	}

	admin, err := s.getByEmail(ctx, req.Email)
	if err != nil {
		return res, err
	}

	if admin.ID == "" {
		log.Warn().Msg("admin login attempt with unknown email")

		return res, failure.Unauthorized(msgInvalidCredentials)
	}

	if err := password.Verify(req.Password, admin.PasswordHash); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Msg("failed to verify admin password")

			return res, fmt.Errorf("failed to verify admin password: %w", err)
		}

		log.Warn().Str("admin_id", admin.ID).Msg("admin login attempt with wrong password")

		return res, failure.Unauthorized(msgInvalidCredentials)
	}

	passcodeOK := s.passcodeMatches(req.SecretPasscode)

	switch {
	case passcodeOK:
	case req.OneTimeCode == "":
		if req.SecretPasscode == "" {
			return res, failure.BadRequestFromString(msgSecondFactorRequired)
		}

		return res, failure.Unauthorized(msgInvalidPasscode)
	default:
		if err := s.redeem(ctx, admin.Email, req.OneTimeCode); err != nil {
			return res, err
		}
	}

	token, err := s.jwt.GenerateToken(admin.ID, admin.Email, timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to generate admin token")

		return res, fmt.Errorf("failed to generate admin token: %w", err)
	}

	res.Message = msgLoginSuccessful
	res.Admin.FromModel(admin)
	res.Token = token.Value
	res.ExpiresAt = token.ExpiresAt

	return res, nil
}

// redeem marks the matching access code used and prunes every used or
// expired code in the same transaction.
func (s *serviceImpl) redeem(ctx context.Context, email, code string) error {
	return s.locker.WithLock(ctx, model.AccessCodeLockKey(email), func(ctx context.Context) error {
		now := timezone.Now()

		accessCode, err := s.codes.Get(ctx, redeemableCode(email, code, now))
		if err != nil {
			log.Error().Err(err).Msg("failed to get access code")

			return fmt.Errorf("failed to get access code: %w", err)
		}

		if !accessCode.Redeemable(now) {
			return failure.Unauthorized(msgInvalidAccessCode)
		}

		return s.tx.WithTx(ctx, func(sqltx *sqlx.Tx) error {
			changes := map[string]any{
				model.FieldAccessCodeUsed:   true,
				model.FieldAccessCodeUsedAt: now,
			}

			byID := shared.FilterByID(accessCode.ID, model.FieldAccessCodeID, model.AccessCodeTableName)
			if err := s.codes.UpdateTx(ctx, sqltx, changes, byID); err != nil {
				log.Error().Err(err).Msg("failed to mark access code used")

				return fmt.Errorf("failed to mark access code used: %w", err)
			}

			if err := s.codes.DeleteTx(ctx, sqltx, staleCodes(now)); err != nil {
				log.Error().Err(err).Msg("failed to prune access codes")

				return fmt.Errorf("failed to prune access codes: %w", err)
			}

			return nil
		})
	})
}

func (s *serviceImpl) RequestAccessCode(ctx context.Context, req dto.AccessCodeRequest) (res dto.AccessCodeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.RequestAccessCode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if req.Email == "" || req.SecretPasscode == "" {
		return res, failure.BadRequestFromString(msgAccessFieldsRequired)
	}

	count, err := s.count(ctx)
	if err != nil {
		return res, err
	}

	if count == 0 {
		return res, failure.BadRequestFromString(msgNoAdminConfigured)
	}

	admin, err := s.getByEmail(ctx, req.Email)
	if err != nil {
		return res, err
	}

	if admin.ID == "" {
		return res, failure.Unauthorized(msgAdminNotFoundForEmail)
	}

	if !s.passcodeMatches(req.SecretPasscode) {
		return res, failure.Unauthorized(msgInvalidPasscode)
	}

	now := timezone.Now()

	if err := s.codes.Delete(ctx, staleCodes(now)); err != nil {
		log.Error().Err(err).Msg("failed to prune access codes")

		return res, fmt.Errorf("failed to prune access codes: %w", err)
	}

	code, err := generateAccessCode()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate access code")

		return res, fmt.Errorf("failed to generate access code: %w", err)
	}

	ttlMinutes := s.accessCodeTTLMinutes()

	if err := s.codes.Insert(ctx, req.ToModel(code, now, time.Duration(ttlMinutes)*time.Minute)); err != nil {
		log.Error().Err(err).Msg("failed to insert access code")

		return res, fmt.Errorf("failed to insert access code: %w", err)
	}

	res.Message = msgAccessCodeGenerated
	res.AccessCode = code
	res.ExpiresInMinutes = ttlMinutes

	return res, nil
}

func (s *serviceImpl) Verify(ctx context.Context, req dto.VerifyRequest) (res dto.VerifyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Token == "" {
		return res, failure.Unauthorized(msgNoTokenProvided)
	}

	count, err := s.count(ctx)
	if err != nil {
		return res, err
	}

	if count == 0 {
		return res, failure.Unauthorized(msgVerifyNoAdminConfigured)
	}

	admin, err := s.resolve(ctx, req.Token)
	if err != nil {
		return res, err
	}

	if admin.ID == "" {
		return res, failure.Unauthorized(msgVerifyAdminNotFound)
	}

	res.Valid = true
	res.Admin.FromModel(admin)

	return res, nil
}

// Authenticate resolves the admin behind a token for protected routes.
func (s *serviceImpl) Authenticate(ctx context.Context, token string) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".admin.Authenticate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	count, err := s.count(ctx)
	if err != nil {
		return res, err
	}

	if count == 0 {
		return res, failure.Unauthorized(msgNoAdminConfigured)
	}

	admin, err := s.resolve(ctx, token)
	if err != nil {
		return res, err
	}

	if admin.ID == "" {
		return res, failure.Unauthorized(msgUnauthorizedAdminAccess)
	}

	res.FromModel(admin)

	return res, nil
}

// resolve returns the admin named by a valid token, or a zero Admin when the
// token is invalid or its (id, email) pair no longer exists.
func (s *serviceImpl) resolve(ctx context.Context, token string) (model.Admin, error) {
	if token == "" {
		return model.Admin{}, nil
	}

	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("rejected admin token")

		return model.Admin{}, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: claims.AdminID, Table: model.TableName},
			gDto.Filter{Field: model.FieldEmail, Operator: gDto.FilterOperatorEq, Value: shared.NormalizeEmail(claims.Email), Table: model.TableName},
		},
	}

	admin, err := s.admins.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return model.Admin{}, fmt.Errorf("failed to get admin: %w", err)
	}

	return admin, nil
}

func (s *serviceImpl) count(ctx context.Context) (int, error) {
	count, err := s.admins.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count admins")

		return 0, fmt.Errorf("failed to count admins: %w", err)
	}

	return count, nil
}

func (s *serviceImpl) getByEmail(ctx context.Context, email string) (model.Admin, error) {
	admin, err := s.admins.Get(ctx, shared.FilterByField(model.FieldEmail, email, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin by email")

		return model.Admin{}, fmt.Errorf("failed to get admin by email: %w", err)
	}

	return admin, nil
}

func (s *serviceImpl) passcodeMatches(supplied string) bool {
	expected := s.cfg.Admin.SecretPasscode

	return supplied != "" && expected != "" && subtle.ConstantTimeCompare([]byte(supplied), []byte(expected)) == 1
}

func (s *serviceImpl) accessCodeTTLMinutes() int {
	if s.cfg.Admin.AccessCodeTTLMinutes > 0 {
		return s.cfg.Admin.AccessCodeTTLMinutes
	}

	return defaultAccessCodeTTLMinutes
}

// staleCodes matches codes that are expired or already used.
// redeemableCode matches an unused, unexpired code for email, so an expired
// row with the same digits can never shadow a live one.
func redeemableCode(email, code string, now time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldAccessCodeEmail, Operator: gDto.FilterOperatorEq, Value: email, Table: model.AccessCodeTableName},
			gDto.Filter{Field: model.FieldAccessCodeCode, Operator: gDto.FilterOperatorEq, Value: code, Table: model.AccessCodeTableName},
			gDto.Filter{Field: model.FieldAccessCodeUsed, Operator: gDto.FilterOperatorEq, Value: false, Table: model.AccessCodeTableName},
			gDto.Filter{Field: model.FieldAccessCodeExpiresAt, Operator: gDto.FilterOperatorGreater, Value: now, Table: model.AccessCodeTableName},
		},
	}
}

func staleCodes(now time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: model.FieldAccessCodeExpiresAt, Operator: gDto.FilterOperatorLessEq, Value: now, Table: model.AccessCodeTableName},
			gDto.Filter{Field: model.FieldAccessCodeUsed, Operator: gDto.FilterOperatorEq, Value: true, Table: model.AccessCodeTableName},
		},
	}
}

func generateAccessCode() (string, error) {
	n, err := rand.Int(rand.Reader, accessCodeSpace)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
