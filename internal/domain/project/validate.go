package project

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Input is raw candidate input for a new project, keyed by field name.
// Values carry whatever representation the caller's form controls use.
type Input map[string]any

// FieldError pairs a field name with a human-readable reason.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every invalid field found in one pass.
// It is recoverable data, never fatal.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Reason))
	}
	return "invalid project input: " + strings.Join(parts, "; ")
}

const dateLayout = "2006-01-02"

// Validate type-checks, coerces, and constrains raw input. All field
// violations are collected in field order rather than short-circuiting,
// so a form can highlight every invalid input at once. On success the
// returned draft carries fully typed values; the caller assigns the ID.
func Validate(in Input) (Draft, []FieldError) {
	var draft Draft
	var errs []FieldError

	if name, ok := coerceText(in["name"]); ok && utf8.RuneCountInString(name) >= 2 {
		draft.Name = name
	} else {
		errs = append(errs, FieldError{Field: "name", Reason: "too short"})
	}

	if client, ok := coerceText(in["client"]); ok && utf8.RuneCountInString(client) >= 2 {
		draft.Client = client
	} else {
		errs = append(errs, FieldError{Field: "client", Reason: "too short"})
	}

	if cat, ok := parseEnumValue(in["category"], ParseCategory); ok {
		draft.Category = cat
	} else {
		errs = append(errs, FieldError{Field: "category", Reason: "required"})
	}

	if status, ok := parseEnumValue(in["status"], ParseStatus); ok {
		draft.Status = status
	} else {
		errs = append(errs, FieldError{Field: "status", Reason: "required"})
	}

	if billing, ok := parseEnumValue(in["billingType"], ParseBillingType); ok {
		draft.BillingType = billing
	} else {
		errs = append(errs, FieldError{Field: "billingType", Reason: "required"})
	}

	if value, ok := coerceNumber(in["value"]); ok && value > 0 {
		draft.Value = value
	} else {
		errs = append(errs, FieldError{Field: "value", Reason: "must be positive"})
	}

	if start, ok := coerceDate(in["startDate"]); ok {
		draft.StartDate = start
	} else {
		errs = append(errs, FieldError{Field: "startDate", Reason: "required"})
	}

	// endDate is optional: absence is fine, a present but unparseable
	// value is exactly one error. No ordering check against startDate.
	if raw, present := in["endDate"]; present && !isEmptyValue(raw) {
		if end, ok := coerceDate(raw); ok {
			draft.EndDate = &end
		} else {
			errs = append(errs, FieldError{Field: "endDate", Reason: "invalid date"})
		}
	}

	draft.Team = coerceTeam(in["team"])

	if len(errs) > 0 {
		return Draft{}, errs
	}
	return draft, nil
}

func coerceText(raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}

func parseEnumValue[T ~string](raw any, parse func(string) (T, bool)) (T, bool) {
	s, ok := coerceText(raw)
	if !ok || s == "" {
		var zero T
		return zero, false
	}
	return parse(s)
}

// coerceNumber accepts native numbers and numeric-looking text.
func coerceNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

func coerceDate(raw any) (time.Time, bool) {
	switch v := raw.(type) {
	case time.Time:
		return v, true
	case string:
		s := strings.TrimSpace(v)
		if t, err := time.Parse(dateLayout, s); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// coerceTeam tolerates any shape: no per-member validation is performed
// and a missing team defaults to the empty sequence.
func coerceTeam(raw any) []string {
	switch v := raw.(type) {
	case []string:
		team := make([]string, len(v))
		copy(team, v)
		return team
	case []any:
		team := make([]string, 0, len(v))
		for _, member := range v {
			if s, ok := member.(string); ok {
				team = append(team, s)
			}
		}
		return team
	}
	return []string{}
}

func isEmptyValue(raw any) bool {
	if raw == nil {
		return true
	}
	if s, ok := raw.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
