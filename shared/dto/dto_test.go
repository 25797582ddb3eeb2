package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"salon/shared/constant"
	"salon/shared/dto"
	"salon/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	var metadata dto.Metadata

	metadata.FromModel(model.Metadata{
		CreatedAt: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "2025-01-01T12:00:00.000Z", metadata.CreatedAt)
	assert.Equal(t, "2025-01-02T12:00:00.000Z", metadata.UpdatedAt)
}

func TestOptionalTime(t *testing.T) {
	assert.Nil(t, dto.OptionalTime(nil))
	assert.Nil(t, dto.OptionalTime(&time.Time{}))

	stamp := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)
	got := dto.OptionalTime(&stamp)

	if assert.NotNil(t, got) {
		assert.Equal(t, "2025-05-06T07:08:09.000Z", *got)
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	cutoff := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty group",
			group:     dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name: "single equality defaults to AND",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "id", Value: "b-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
			}},
			wantWhere: "(bookings.id = :w1)",
			wantArgs:  map[string]any{"w1": "b-1"},
		},
		{
			name: "stale access codes",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "expires_at", Value: cutoff, Operator: dto.FilterOperatorLessEq},
					dto.Filter{Field: "used", Value: true, Operator: dto.FilterOperatorEq},
				},
			},
			wantWhere: "(expires_at <= :w1 OR used = :w2)",
			wantArgs:  map[string]any{"w1": cutoff, "w2": true},
		},
		{
			name: "same column twice and a nested group",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "price", Value: 1000, Operator: dto.FilterOperatorGreaterEq},
					dto.Filter{Field: "price", Value: 9000, Operator: dto.FilterOperatorLessEq},
					dto.FilterGroup{Operator: dto.FilterGroupOperatorOr, Filters: []any{
						dto.Filter{Field: "status", Value: []string{"pending", "approved"}, Operator: dto.FilterOperatorIn},
						dto.Filter{Field: "image_approved_at", Operator: dto.FilterOperatorIsNull},
					}},
				},
			},
			wantWhere: "(price >= :w1 AND price <= :w2 AND (status IN (:w3, :w4) OR image_approved_at IS NULL))",
			wantArgs:  map[string]any{"w1": 1000, "w2": 9000, "w3": "pending", "w4": "approved"},
		},
		{
			name: "strictly after",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "expires_at", Value: cutoff, Operator: dto.FilterOperatorGreater, Table: "admin_access_codes"},
			}},
			wantWhere: "(admin_access_codes.expires_at > :w1)",
			wantArgs:  map[string]any{"w1": cutoff},
		},
		{
			name: "empty IN matches nothing",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			}},
			wantWhere: "(FALSE)",
			wantArgs:  map[string]any{},
		},
		{
			name: "unknown operator is dropped",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "status", Value: "x", Operator: "regex"},
			}},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		want         dto.QueryParams
	}{
		{
			name:  "all parameters",
			query: "page=2&limit=20&sort_by=name&sort_dir=asc",
			want:  dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name: "no defaults leaves everything unset",
			want: dto.QueryParams{},
		},
		{
			name:         "malformed and non-positive numbers are ignored",
			query:        "page=abc&limit=-5",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:  "zero page",
			query: "page=0",
			want:  dto.QueryParams{},
		},
		{
			name:  "limit is capped",
			query: "limit=5000",
			want:  dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:  "unknown sort direction is ignored",
			query: "sort_by=created_at&sort_dir=sideways",
			want:  dto.QueryParams{SortBy: "created_at"},
		},
		{
			name:         "partial with defaults",
			query:        "page=3&sort_by=email&sort_dir=DESC",
			withDefaults: true,
			want:         dto.QueryParams{Page: 3, Limit: constant.DefaultValueLimit, SortBy: "email", SortDir: dto.SortDirDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/admin/bookings?"+tt.query, nil)

			var got dto.QueryParams
			got.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.want, got)
		})
	}
}
