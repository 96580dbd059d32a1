package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Philanthropists/foundation/pkg/messages"
)

func Test_ZeroValidatorIsValid(t *testing.T) {
	var v Validator

	assert.True(t, v.Valid())
	assert.True(t, v.Result().IsSuccess())
	assert.NoError(t, v.Err())
	assert.Empty(t, v.Messages())
}

func Test_NotEmptyFlagsBlankValues(t *testing.T) {
	var v Validator
	v.NotEmpty("account", "")
	v.NotEmpty("place", "   ")
	v.NotEmpty("value", "30000")

	assert.False(t, v.Valid())
	assert.Len(t, v.Violations(), 2)
}

func Test_RequireFieldsFlagsMissingKeys(t *testing.T) {
	fields := map[string]string{
		"value": "30000",
		"type":  "expense",
	}

	var v Validator
	v.RequireFields(fields, "value", "type", "place", "account")

	assert.False(t, v.Valid())
	assert.Len(t, v.Violations(), 2)

	missing := make(map[string]bool)
	for _, violation := range v.Violations() {
		missing[violation.Field] = true
	}
	assert.True(t, missing["place"])
	assert.True(t, missing["account"])
}

func Test_RequireFieldsAcceptsCompleteInput(t *testing.T) {
	fields := map[string]string{
		"value":   "30000",
		"type":    "expense",
		"place":   "Prueba",
		"account": "0000",
	}

	var v Validator
	v.RequireFields(fields, "value", "type", "place", "account")

	assert.True(t, v.Valid())
	assert.True(t, v.Result().IsSuccess())
}

func Test_ResultJoinsViolations(t *testing.T) {
	var v Validator
	v.Add("account", "must not be empty")
	v.Add("value", "must be a number")

	r := v.Result()
	assert.True(t, r.IsFailure())
	assert.Equal(t,
		"account: must not be empty; value: must be a number",
		r.Message())

	assert.ErrorContains(t, v.Err(), "validation failed")
}

func Test_MessagesCarryErrorSeverity(t *testing.T) {
	var v Validator
	v.Add("type", "unknown transaction type")

	l := v.Messages()
	assert.Len(t, l, 1)
	assert.Equal(t, messages.Error, l[0].Severity)
	assert.Equal(t, "type: unknown transaction type", l[0].Text)
	assert.True(t, l.HasErrors())
}
