package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadataFromModel(t *testing.T) {
	at := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	var metadata dto.Metadata
	metadata.FromModel(model.NewMetadata("admin", at))

	assert.Equal(t, "admin", metadata.CreatedBy)
	assert.Equal(t, "admin", metadata.ModifiedBy)
	assert.NotEmpty(t, metadata.CreatedAt)
	assert.Equal(t, metadata.CreatedAt, metadata.ModifiedAt)
}

func TestQueryParamsFromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "?page=2&limit=5&sort_by=check_in&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 5, SortBy: "check_in", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults applied",
			query:          "",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "invalid values fall back",
			query:          "?page=-1&limit=abc&sort_dir=sideways",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			query:    "?sort_dir=DESC",
			expected: dto.QueryParams{SortDir: dto.SortDirDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/bookings"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestRestrictSort(t *testing.T) {
	params := dto.QueryParams{SortBy: "check_in"}
	params.RestrictSort("check_in", "guest_name")
	assert.Equal(t, dto.QueryParams{SortBy: "check_in", SortDir: dto.SortDirAsc}, params)

	params = dto.QueryParams{SortBy: "1; DROP TABLE bookings", SortDir: dto.SortDirDesc}
	params.RestrictSort("check_in")
	assert.Equal(t, dto.QueryParams{}, params)
}

func TestFilterWhereClause(t *testing.T) {
	tests := []struct {
		name   string
		filter dto.Filter
		where  string
		args   map[string]any
	}{
		{
			name:   "eq with table",
			filter: dto.Filter{Field: "id", Value: int64(42), Operator: dto.FilterOperatorEq, Table: "bookings"},
			where:  "bookings.id = :id",
			args:   map[string]any{"id": int64(42)},
		},
		{
			name:   "less with arg name",
			filter: dto.Filter{ArgName: "new_check_out", Field: "check_in", Value: "2024-03-12", Operator: dto.FilterOperatorLess},
			where:  "check_in < :new_check_out",
			args:   map[string]any{"new_check_out": "2024-03-12"},
		},
		{
			name:   "greater",
			filter: dto.Filter{Field: "check_out", Value: "2024-03-10", Operator: dto.FilterOperatorGreater},
			where:  "check_out > :check_out",
			args:   map[string]any{"check_out": "2024-03-10"},
		},
		{
			name:   "in slice",
			filter: dto.Filter{Field: "role", Value: []string{"admin", "staff"}, Operator: dto.FilterOperatorIn},
			where:  "role IN (:role_0, :role_1) ",
			args:   map[string]any{"role_0": "admin", "role_1": "staff"},
		},
		{
			name:   "plain",
			filter: dto.Filter{Value: "active IS TRUE", Operator: dto.FilterPlainQuery},
			where:  "(active IS TRUE)",
			args:   map[string]any{},
		},
		{
			name:   "unknown operator",
			filter: dto.Filter{Field: "id", Operator: "between"},
			where:  "",
			args:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestFilterGroupNesting(t *testing.T) {
	overlap := dto.And(
		dto.Filter{Field: "group_id", Value: int64(3), Operator: dto.FilterOperatorEq},
		dto.Filter{ArgName: "new_check_out", Field: "check_in", Value: "b", Operator: dto.FilterOperatorLess},
	).Append(dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{Field: "id", Value: int64(7), Operator: dto.FilterOperatorNotEq},
			dto.Filter{Field: "guest_name", Operator: dto.FilterIsNull},
		},
	})

	where, args := overlap.GetWhereClause()

	assert.Equal(t, "(group_id = :group_id AND check_in < :new_check_out AND (id != :id OR guest_name IS NULL))", where)
	assert.Equal(t, map[string]any{"group_id": int64(3), "new_check_out": "b", "id": int64(7)}, args)

	empty := dto.FilterGroup{}
	where, _ = empty.GetWhereClause()
	assert.Empty(t, where)
}
