package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq      = "eq"
	FilterOperatorNotEq   = "not_eq"
	FilterOperatorIn      = "in"
	FilterOperatorLess    = "less"
	FilterOperatorGreater = "greater"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:      "=",
	FilterOperatorNotEq:   "!=",
	FilterOperatorLess:    "<",
	FilterOperatorGreater: ">",
}

// Filter is a single named-parameter condition on one column.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	argName := f.ArgName
	if argName == "" {
		argName = f.Field
	}

	if f.Operator == FilterOperatorIn {
		values := reflect.ValueOf(f.Value)
		if kind := values.Kind(); kind != reflect.Slice && kind != reflect.Array {
			return "", args
		}

		named := make([]string, values.Len())

		for i := range values.Len() {
			name := fmt.Sprintf("%s_%d", argName, i)
			args[name] = values.Index(i).Interface()
			named[i] = ":" + name
		}

		return fmt.Sprintf("%s IN (%s)", f.column(), strings.Join(named, ", ")), args
	}

	comparison, ok := comparisons[f.Operator]
	if !ok {
		return "", args
	}

	args[argName] = f.Value

	return fmt.Sprintf("%s %s :%s", f.column(), comparison, argName), args
}

// FilterGroup joins filters and nested groups with Operator. An empty Operator means AND.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(clauses, " "+operator+" ") + ")", args
}
