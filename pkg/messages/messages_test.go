package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Philanthropists/foundation/pkg/result"
)

func Test_SeverityNames(t *testing.T) {
	known := map[Severity]string{
		Debug:   "debug",
		Info:    "info",
		Warning: "warning",
		Error:   "error",
	}

	for severity, name := range known {
		assert.Equal(t, name, severity.String())
		assert.True(t, severity.IsValid())
	}

	assert.Equal(t, "unknown", Severity(200).String())
	assert.False(t, Severity(200).IsValid())
}

func Test_MessageSatisfiesMessenger(t *testing.T) {
	m := NewWithCode(Error, "E-101", "connection refused")

	r := result.FailureFrom[int](m)
	assert.True(t, r.IsFailure())
	assert.Equal(t, "connection refused", r.Message())
}

func Test_NewSetsDate(t *testing.T) {
	m := New(Info, "started")

	assert.False(t, m.Date.IsZero())
	assert.Equal(t, "started", m.Message())
	assert.Empty(t, m.Code)
}

func Test_ListFiltersBySeverity(t *testing.T) {
	l := List{
		New(Info, "fetched"),
		New(Error, "lookup failed"),
		New(Warning, "slow response"),
		New(Error, "write failed"),
	}

	errors := l.WithSeverity(Error)
	assert.Len(t, errors, 2)
	assert.Equal(t, "lookup failed", errors[0].Text)
	assert.Equal(t, "write failed", errors[1].Text)

	assert.True(t, l.HasErrors())
	assert.Equal(t, Error, l.Worst())
}

func Test_EmptyListHasNoErrors(t *testing.T) {
	var l List

	assert.False(t, l.HasErrors())
	assert.Equal(t, Debug, l.Worst())
	assert.Empty(t, l.WithSeverity(Info))
}
