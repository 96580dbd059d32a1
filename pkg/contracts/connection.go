package contracts

import (
	"context"
	"sync"

	"github.com/zeebo/errs"
)

type ProviderKind uint8

const (
	SQL ProviderKind = iota
	Mongo
	REST
	File
)

func (p ProviderKind) String() string {
	switch p {
	case SQL:
		return "sql"
	case Mongo:
		return "mongo"
	case REST:
		return "rest"
	case File:
		return "file"
	default:
		return "unknown"
	}
}

func (p ProviderKind) IsValid() bool {
	return p.String() != "unknown"
}

// Connection is a live link to a data provider.
type Connection interface {
	Open(ctx context.Context) error
	Close(ctx context.Context) error
	Ping(ctx context.Context) error
}

// ConnectionFactory builds connections for one provider kind from an
// opaque settings value. The concrete settings type is the factory's
// business.
type ConnectionFactory interface {
	Kind() ProviderKind
	New(settings any) (Connection, error)
}

// ConnectionRegistry routes connection construction to the factory
// registered for each provider kind. Safe for concurrent use.
type ConnectionRegistry struct {
	mu        sync.RWMutex
	factories map[ProviderKind]ConnectionFactory
}

func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{
		factories: make(map[ProviderKind]ConnectionFactory),
	}
}

func (r *ConnectionRegistry) Register(f ConnectionFactory) error {
	if !f.Kind().IsValid() {
		return errs.New("cannot register factory for unknown provider kind %d", f.Kind())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[f.Kind()]; ok {
		return errs.New("factory already registered for provider %s", f.Kind())
	}

	r.factories[f.Kind()] = f
	return nil
}

func (r *ConnectionRegistry) New(kind ProviderKind, settings any) (Connection, error) {
	r.mu.RLock()
	f, ok := r.factories[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.New("no factory registered for provider %s", kind)
	}

	return f.New(settings)
}

func (r *ConnectionRegistry) Kinds() []ProviderKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]ProviderKind, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	return kinds
}
