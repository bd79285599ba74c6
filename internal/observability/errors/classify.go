// Package errors normalizes Go errors into short class names used as metric
// tags and notification fields.
package errors

import (
	goerrors "errors"
	"reflect"
	"strings"

	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

// Classify returns a normalized error class suitable for tagging metrics and
// failure notifications. Application errors classify by their taxonomy code;
// anything else falls back to the innermost concrete type name.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	var appErr *apperrors.AppError
	if goerrors.As(err, &appErr) {
		return string(appErr.Code)
	}

	// Unwrap to the innermost error for better signal.
	for {
		unwrapped := goerrors.Unwrap(err)
		if unwrapped == nil {
			break
		}
		err = unwrapped
	}

	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}

	name := strings.ToLower(strings.ReplaceAll(t.String(), "*", ""))
	name = strings.ReplaceAll(name, ".", "_")
	if name == "" {
		return "unknown"
	}
	return name
}
