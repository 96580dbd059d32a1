// Package messages defines the structured messages operations attach to
// their outcomes: a severity, an optional machine-readable code, and the
// human-readable text a failure result carries.
package messages

import (
	"fmt"
	"time"
)

type Severity uint8

const (
	Debug Severity = iota
	Info
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

func (s Severity) IsValid() bool {
	return s.String() != "unknown"
}

// Message is a structured description of something that happened during
// an operation. It satisfies result.Messenger, so an Error-severity
// message can be handed to result.FailureFrom as is.
type Message struct {
	Severity Severity
	Code     string
	Text     string
	Date     time.Time
}

func New(severity Severity, text string) Message {
	return Message{
		Severity: severity,
		Text:     text,
		Date:     time.Now(),
	}
}

func NewWithCode(severity Severity, code, text string) Message {
	m := New(severity, text)
	m.Code = code
	return m
}

// Message returns the human-readable text.
func (m Message) Message() string {
	return m.Text
}

const (
	msgFormat  = `%s || [%s] %s`
	dateFormat = "2006-01-02"
)

func (m Message) String() string {
	return fmt.Sprintf(msgFormat,
		m.Date.Format(dateFormat),
		m.Severity,
		m.Text,
	)
}

// List is an ordered collection of messages gathered while an operation
// ran.
type List []Message

// WithSeverity returns the messages matching the given severity, keeping
// their order.
func (l List) WithSeverity(s Severity) List {
	var out List
	for _, m := range l {
		if m.Severity == s {
			out = append(out, m)
		}
	}
	return out
}

// Worst returns the highest severity present, or Debug for an empty
// list.
func (l List) Worst() Severity {
	worst := Debug
	for _, m := range l {
		if m.Severity > worst {
			worst = m.Severity
		}
	}
	return worst
}

// HasErrors reports whether any message has Error severity.
func (l List) HasErrors() bool {
	return len(l.WithSeverity(Error)) > 0
}
