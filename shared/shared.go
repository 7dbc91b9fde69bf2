package shared

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// Paginate returns the page of items selected by params. Params without a limit select everything.
func Paginate[T any](items []T, params dto.QueryParams) []T {
	if params.Limit <= 0 {
		return items
	}

	start := params.Offset()
	if start >= len(items) {
		return []T{}
	}

	end := min(start+params.Limit, len(items))

	return items[start:end]
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data any, actor string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = actor

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins prefix and parts into a colon separated key.
func BuildCacheKey(prefix string, parts ...any) string {
	key := strings.Builder{}
	key.WriteString(prefix)

	for _, part := range parts {
		key.WriteString(":")
		key.WriteString(fmt.Sprint(part))
	}

	return key.String()
}

// ActorFromContext returns the actor recorded on ctx by the transport layer, or the system actor.
func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(constant.ContextKeyActor).(string); ok && actor != "" {
		return actor
	}

	return constant.ActorSystem
}
