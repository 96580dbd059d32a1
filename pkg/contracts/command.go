package contracts

import (
	"context"

	"github.com/zeebo/errs"

	"github.com/Philanthropists/foundation/pkg/result"
)

type CommandKind uint8

const (
	Query CommandKind = iota
	Mutation
	Migration
)

func (c CommandKind) String() string {
	switch c {
	case Query:
		return "query"
	case Mutation:
		return "mutation"
	case Migration:
		return "migration"
	default:
		return "unknown"
	}
}

func (c CommandKind) IsValid() bool {
	return c.String() != "unknown"
}

// Command is one executable unit of work against a provider.
type Command interface {
	Kind() CommandKind
	Execute(ctx context.Context) result.Result[result.Unit]
}

// CommandBuilder assembles a Command of one kind from a statement and
// its arguments.
type CommandBuilder interface {
	Build(kind CommandKind, statement string, args ...any) (Command, error)
}

// BuilderFunc adapts a plain function to the CommandBuilder interface.
type BuilderFunc func(kind CommandKind, statement string, args ...any) (Command, error)

func (f BuilderFunc) Build(kind CommandKind, statement string, args ...any) (Command, error) {
	return f(kind, statement, args...)
}

// DispatchBuilder routes Build calls to a per-kind builder.
type DispatchBuilder struct {
	Queries    CommandBuilder
	Mutations  CommandBuilder
	Migrations CommandBuilder
}

func (d DispatchBuilder) Build(kind CommandKind, statement string, args ...any) (Command, error) {
	var b CommandBuilder
	switch kind {
	case Query:
		b = d.Queries
	case Mutation:
		b = d.Mutations
	case Migration:
		b = d.Migrations
	default:
		return nil, errs.New("unknown command kind %d", kind)
	}

	if b == nil {
		return nil, errs.New("no builder configured for %s commands", kind)
	}

	return b.Build(kind, statement, args...)
}
