package resource

import (
	"strings"
	"time"

	"github.com/tictail/tictail-go/pkg/tictail"
)

// ParamsFormatter rewrites list parameters before they are encoded into the
// query string. It receives a copy and may modify it in place.
type ParamsFormatter func(params tictail.Params) tictail.Params

// JoinValues joins slice values under keys with commas.
func JoinValues(keys ...string) ParamsFormatter {
	return func(params tictail.Params) tictail.Params {
		for _, key := range keys {
			switch value := params[key].(type) {
			case []string:
				params[key] = strings.Join(value, ",")
			case []interface{}:
				items := make([]string, 0, len(value))
				for _, item := range value {
					items = append(items, tictail.Params{key: item}.Values().Get(key))
				}

				params[key] = strings.Join(items, ",")
			}
		}

		return params
	}
}

// ISOTimes renders time values under keys as ISO-8601 strings.
func ISOTimes(keys ...string) ParamsFormatter {
	return func(params tictail.Params) tictail.Params {
		for _, key := range keys {
			switch value := params[key].(type) {
			case time.Time:
				params[key] = tictail.FormatTime(value)
			case *time.Time:
				if value != nil {
					params[key] = tictail.FormatTime(*value)
				}
			}
		}

		return params
	}
}

// Chain applies formatters in order.
func Chain(formatters ...ParamsFormatter) ParamsFormatter {
	return func(params tictail.Params) tictail.Params {
		for _, format := range formatters {
			params = format(params)
		}

		return params
	}
}
