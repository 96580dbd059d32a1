// Package pipe moves settled outcomes between goroutines. Stages never
// inspect a value mid-operation: a result enters a channel only after the
// producing operation has settled, and travels immutable from there.
package pipe

import (
	"sync"

	"github.com/Philanthropists/foundation/pkg/result"
)

// Operation turns an input into a settled outcome.
type Operation[T, K any] func(T) result.Result[K]

// Settle runs op over every input and streams the outcomes, failures
// included. The output channel closes when in closes or done is closed.
func Settle[T, K any](done <-chan struct{}, in <-chan T, op Operation[T, K]) <-chan result.Result[K] {
	out := make(chan result.Result[K])

	go func() {
		defer close(out)

		for v := range OrDone(done, in) {
			select {
			case <-done:
				return
			case out <- op(v):
			}
		}
	}()

	return out
}

// Successes streams the values of successful results and hands each
// failure message to onFailure, preserving order of the successes.
func Successes[T any](done <-chan struct{}, in <-chan result.Result[T], onFailure func(string)) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		for r := range OrDone(done, in) {
			if r.IsFailure() {
				onFailure(r.Message())
				continue
			}

			select {
			case <-done:
				return
			case out <- r.Value():
			}
		}
	}()

	return out
}

// FanIn multiplexes multiple result streams into one.
func FanIn[T any](done <-chan struct{}, channels ...<-chan T) <-chan T {
	var wg sync.WaitGroup
	multiplexed := make(chan T)

	multiplex := func(c <-chan T) {
		defer wg.Done()

		for v := range c {
			select {
			case <-done:
				return
			case multiplexed <- v:
			}
		}
	}

	wg.Add(len(channels))
	for _, c := range channels {
		go multiplex(c)
	}

	go func() {
		defer close(multiplexed)
		wg.Wait()
	}()

	return multiplexed
}

// OrDone drains c until it closes or done is closed, whichever first.
func OrDone[T any](done <-chan struct{}, c <-chan T) <-chan T {
	stream := make(chan T)

	go func() {
		defer close(stream)

		for {
			select {
			case <-done:
				return
			case v, ok := <-c:
				if !ok {
					return
				}
				select {
				case stream <- v:
				case <-done:
				}
			}
		}
	}()

	return stream
}
