package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validInput() Input {
	return Input{
		"name":        "Site Revamp",
		"client":      "Acme Co",
		"category":    "Development",
		"status":      "inprogress",
		"billingType": "fixed",
		"value":       "50000",
		"startDate":   "2025-01-01",
	}
}

func fieldNames(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		out = append(out, fe.Field)
	}
	return out
}

func TestValidate_FullyValidInput(t *testing.T) {
	draft, errs := Validate(validInput())
	require.Empty(t, errs)

	require.Equal(t, "Site Revamp", draft.Name)
	require.Equal(t, "Acme Co", draft.Client)
	require.Equal(t, CategoryDevelopment, draft.Category)
	require.Equal(t, StatusInProgress, draft.Status)
	require.Equal(t, BillingFixed, draft.BillingType)
	require.Equal(t, float64(50000), draft.Value)
	require.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), draft.StartDate)
	require.Nil(t, draft.EndDate)
	require.Empty(t, draft.Team)
	require.NotNil(t, draft.Team)
}

func TestValidate_CollectsAllErrorsInOnePass(t *testing.T) {
	_, errs := Validate(Input{"name": "A", "value": "-5"})

	names := fieldNames(errs)
	require.Contains(t, names, "name")
	require.Contains(t, names, "client")
	require.Contains(t, names, "category")
	require.Contains(t, names, "status")
	require.Contains(t, names, "billingType")
	require.Contains(t, names, "value")
	require.Contains(t, names, "startDate")

	for _, fe := range errs {
		switch fe.Field {
		case "name":
			require.Equal(t, "too short", fe.Reason)
		case "value":
			require.Equal(t, "must be positive", fe.Reason)
		}
	}
}

func TestValidate_ErrorsKeepFieldOrder(t *testing.T) {
	_, errs := Validate(Input{})
	require.Equal(t,
		[]string{"name", "client", "category", "status", "billingType", "value", "startDate"},
		fieldNames(errs))
}

func TestValidate_NameAndClientTrimmedLength(t *testing.T) {
	in := validInput()
	in["name"] = "  A  "
	_, errs := Validate(in)
	require.Equal(t, []string{"name"}, fieldNames(errs))

	in["name"] = "  Ab  "
	draft, errs := Validate(in)
	require.Empty(t, errs)
	require.Equal(t, "Ab", draft.Name)
}

func TestValidate_LengthCountsCharactersNotBytes(t *testing.T) {
	// One multibyte character is still one character.
	in := validInput()
	in["name"] = "北"
	_, errs := Validate(in)
	require.Equal(t, []string{"name"}, fieldNames(errs))

	in["name"] = "北京"
	in["client"] = "Łó"
	draft, errs := Validate(in)
	require.Empty(t, errs)
	require.Equal(t, "北京", draft.Name)
	require.Equal(t, "Łó", draft.Client)
}

func TestValidate_EnumParsing(t *testing.T) {
	in := validInput()
	in["status"] = "Awaiting PO"
	in["category"] = "MAINTENANCE"
	in["billingType"] = "Retainer"

	draft, errs := Validate(in)
	require.Empty(t, errs)
	require.Equal(t, StatusAwaitingPO, draft.Status)
	require.Equal(t, CategoryMaintenance, draft.Category)
	require.Equal(t, BillingRetainer, draft.BillingType)

	in["status"] = "archived"
	_, errs = Validate(in)
	require.Equal(t, []FieldError{{Field: "status", Reason: "required"}}, errs)
}

func TestValidate_ValueCoercion(t *testing.T) {
	cases := []struct {
		name  string
		raw   any
		want  float64
		valid bool
	}{
		{"numeric text", "1200.50", 1200.50, true},
		{"float", float64(99), 99, true},
		{"int", 42, 42, true},
		{"zero", "0", 0, false},
		{"negative", -5, 0, false},
		{"garbage text", "lots of money", 0, false},
		{"missing", nil, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			if tc.raw == nil {
				delete(in, "value")
			} else {
				in["value"] = tc.raw
			}
			draft, errs := Validate(in)
			if tc.valid {
				require.Empty(t, errs)
				require.Equal(t, tc.want, draft.Value)
			} else {
				require.Equal(t, []FieldError{{Field: "value", Reason: "must be positive"}}, errs)
			}
		})
	}
}

func TestValidate_StartDateRequired(t *testing.T) {
	in := validInput()
	in["startDate"] = "not-a-date"
	_, errs := Validate(in)
	require.Equal(t, []FieldError{{Field: "startDate", Reason: "required"}}, errs)

	delete(in, "startDate")
	_, errs = Validate(in)
	require.Equal(t, []FieldError{{Field: "startDate", Reason: "required"}}, errs)
}

func TestValidate_EndDateOptional(t *testing.T) {
	in := validInput()
	draft, errs := Validate(in)
	require.Empty(t, errs)
	require.Nil(t, draft.EndDate)

	in["endDate"] = "2025-06-30"
	draft, errs = Validate(in)
	require.Empty(t, errs)
	require.NotNil(t, draft.EndDate)
	require.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), *draft.EndDate)

	// An end date before the start date is accepted: ordering is not
	// validated here.
	in["endDate"] = "2020-01-01"
	_, errs = Validate(in)
	require.Empty(t, errs)

	in["endDate"] = "soonish"
	_, errs = Validate(in)
	require.Equal(t, []FieldError{{Field: "endDate", Reason: "invalid date"}}, errs)

	// Blank text counts as absent, mirroring an untouched form input.
	in["endDate"] = "  "
	_, errs = Validate(in)
	require.Empty(t, errs)
}

func TestValidate_TeamShapes(t *testing.T) {
	in := validInput()
	in["team"] = []any{"Ana", "Bram"}
	draft, errs := Validate(in)
	require.Empty(t, errs)
	require.Equal(t, []string{"Ana", "Bram"}, draft.Team)

	in["team"] = []string{"Cleo"}
	draft, errs = Validate(in)
	require.Empty(t, errs)
	require.Equal(t, []string{"Cleo"}, draft.Team)

	delete(in, "team")
	draft, errs = Validate(in)
	require.Empty(t, errs)
	require.Empty(t, draft.Team)
}

func TestValidate_RoundTripThroughFilter(t *testing.T) {
	draft, errs := Validate(validInput())
	require.Empty(t, errs)

	proj := Project{ID: "fresh", Draft: draft}
	dev := CategoryDevelopment
	result := Filter([]Project{proj}, FilterCriteria{Search: "revamp", Category: &dev})
	require.Equal(t, []string{"fresh"}, ids(result))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "name", Reason: "too short"},
		{Field: "value", Reason: "must be positive"},
	}}
	require.Equal(t, "invalid project input: name: too short; value: must be positive", err.Error())
}
