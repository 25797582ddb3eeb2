package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/admin/model"
	gDto "salon/shared/dto"
	gRepo "salon/shared/repository"
)

type Admin interface {
	Insert(ctx context.Context, model model.Admin) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Admin, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type AccessCode interface {
	Insert(ctx context.Context, model model.AccessCode) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AccessCode, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type adminRepositoryImpl struct {
	gRepo.Repository[model.Admin]
}

func New(db *postgres.Connection, otel otel.Otel) Admin {
	return &adminRepositoryImpl{
		Repository: gRepo.NewRepository[model.Admin](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

type accessCodeRepositoryImpl struct {
	gRepo.Repository[model.AccessCode]
}

func NewAccessCode(db *postgres.Connection, otel otel.Otel) AccessCode {
	return &accessCodeRepositoryImpl{
		Repository: gRepo.NewRepository[model.AccessCode](model.AccessCodeEntityName, model.AccessCodeTableName, model.FieldAccessCodeID, db, otel),
	}
}
