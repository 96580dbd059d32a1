// Package config defines the contract configuration consumers code
// against. How values reach a Provider (files, environment, remote
// stores) is each provider's own concern.
package config

import (
	"encoding/json"

	"github.com/zeebo/errs"
)

// Provider hands out configuration values by key.
type Provider interface {
	Get(key string) (string, error)
	Has(key string) bool
	Keys() []string
}

// Static is a fixed map-backed Provider, used for defaults and tests.
type Static map[string]string

func (s Static) Get(key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", errs.New("configuration key %q is not set", key)
	}
	return v, nil
}

func (s Static) Has(key string) bool {
	_, ok := s[key]
	return ok
}

func (s Static) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

// Settings is the shape shared framework options are declared in.
// Concrete modules embed it and add their own tagged fields.
type Settings struct {
	Environment string `json:"environment"`
	Timezone    string `json:"timezone"`
	LogLevel    string `json:"log_level"`
}

// FromJSON decodes raw JSON into a tagged settings struct.
func FromJSON[T any](raw []byte) (T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, errs.Wrap(err)
	}
	return out, nil
}
