// Package changedetect tells incremental code generators which artifacts
// actually changed since the last run, by content digest rather than
// timestamps.
package changedetect

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Digest returns the hex digest used to fingerprint artifact content.
func Digest(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

type digestStore interface {
	SetDefault(k string, v any)
	Get(k string) (any, bool)
	Delete(k string)
}

// Detector remembers the last-seen digest per artifact name. The zero
// value keeps digests forever; set ExpirationTime to let stale entries
// age out between generator runs. Safe for concurrent use.
type Detector struct {
	ExpirationTime  time.Duration
	CleanupInterval time.Duration

	once  sync.Once
	store digestStore
}

func (d *Detector) init() {
	d.once.Do(func() {
		expTime := cache.NoExpiration
		if d.ExpirationTime != 0 {
			expTime = d.ExpirationTime
		}

		const defaultCleanupInterval = 1 * time.Minute

		cleanupInt := defaultCleanupInterval
		if d.CleanupInterval != 0 {
			cleanupInt = d.CleanupInterval
		}

		d.store = cache.New(expTime, cleanupInt)
	})
}

// Changed reports whether content differs from the digest last marked
// for name. An artifact never marked counts as changed.
func (d *Detector) Changed(name string, content []byte) bool {
	d.init()

	last, found := d.store.Get(name)
	if !found {
		return true
	}

	return last.(string) != Digest(content)
}

// Mark records the digest of content as the last-seen state of name.
func (d *Detector) Mark(name string, content []byte) {
	d.init()
	d.store.SetDefault(name, Digest(content))
}

// CheckAndMark reports whether content changed and records it as seen in
// one step, the usual shape of a generator loop.
func (d *Detector) CheckAndMark(name string, content []byte) bool {
	changed := d.Changed(name, content)
	if changed {
		d.Mark(name, content)
	}
	return changed
}

// Forget drops the recorded state of name, forcing the next check to
// report a change.
func (d *Detector) Forget(name string) {
	d.init()
	d.store.Delete(name)
}
