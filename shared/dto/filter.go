package dto

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreater   = "greater"
	FilterOperatorGreaterEq = "greater_eq"
	FilterOperatorIn        = "in"
	FilterOperatorIsNull    = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreater:   ">",
	FilterOperatorGreaterEq: ">=",
}

// Filter is a single column predicate. Table qualifies the column when set.
type Filter struct {
	Field    string
	Value    any
	Operator string
	Table    string
}

// FilterGroup joins Filters (Filter or nested FilterGroup values) with
// Operator, AND when empty.
type FilterGroup struct {
	Filters  []any
	Operator string
}

// GetWhereClause renders the group as a parenthesised predicate with named
// placeholders :w1, :w2, ... so the same column may appear more than once.
// An empty group renders as "".
func (f FilterGroup) GetWhereClause() (string, map[string]any) {
	b := &whereBuilder{args: map[string]any{}}

	return b.group(f), b.args
}

type whereBuilder struct {
	args map[string]any
	n    int
}

func (b *whereBuilder) bind(value any) string {
	b.n++
	name := "w" + strconv.Itoa(b.n)
	b.args[name] = value

	return ":" + name
}

func (b *whereBuilder) group(g FilterGroup) string {
	parts := make([]string, 0, len(g.Filters))

	for _, item := range g.Filters {
		var clause string

		switch v := item.(type) {
		case Filter:
			clause = b.filter(v)
		case FilterGroup:
			clause = b.group(v)
		}

		if clause != "" {
			parts = append(parts, clause)
		}
	}

	if len(parts) == 0 {
		return ""
	}

	op := g.Operator
	if op == "" {
		op = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(parts, " "+op+" ") + ")"
}

func (b *whereBuilder) filter(f Filter) string {
	column := f.Field
	if f.Table != "" {
		column = f.Table + "." + f.Field
	}

	if symbol, ok := comparisons[f.Operator]; ok {
		return fmt.Sprintf("%s %s %s", column, symbol, b.bind(f.Value))
	}

	switch f.Operator {
	case FilterOperatorIsNull:
		return column + " IS NULL"
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
			return ""
		}

		if val.Len() == 0 {
			return "FALSE"
		}

		names := make([]string, val.Len())
		for i := range names {
			names[i] = b.bind(val.Index(i).Interface())
		}

		return fmt.Sprintf("%s IN (%s)", column, strings.Join(names, ", "))
	}

	return ""
}
