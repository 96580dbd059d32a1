// Package logext bundles logging with outcome construction for call
// sites that always do both. It is built purely on the public contracts
// of pkg/result and pkg/logging; the result types themselves never log.
package logext

import (
	"context"

	"github.com/Philanthropists/foundation/pkg/logging"
	"github.com/Philanthropists/foundation/pkg/result"
)

// Failure logs msg at error level and returns a failed result carrying
// the same message.
func Failure[T any](ctx context.Context, msg string, fields ...logging.Field) result.Result[T] {
	logging.FromContext(ctx).Error(msg, fields...)
	return result.Failure[T](msg)
}

// FailureFrom logs the text of m at error level and returns a failed
// result built from it.
func FailureFrom[T any](ctx context.Context, m result.Messenger, fields ...logging.Field) result.Result[T] {
	logging.FromContext(ctx).Error(m.Message(), fields...)
	return result.FailureFrom[T](m)
}

// Observe logs how the result of op settled and returns it untouched.
// Logging never alters the result handed back to the caller.
func Observe[T any](ctx context.Context, op string, r result.Result[T]) result.Result[T] {
	log := logging.FromContext(ctx)

	if r.IsFailure() {
		log.Error("operation failed",
			logging.String("operation", op),
			logging.String("message", r.Message()),
		)
		return r
	}

	log.Debug("operation succeeded",
		logging.String("operation", op),
		logging.String("message", r.Message()),
	)
	return r
}
