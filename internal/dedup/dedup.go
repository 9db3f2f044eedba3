// Package dedup detects documents that have already been processed, using a
// bounded in-memory fingerprint cache.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
	"github.com/g-caf/bootleg-expensify-sub000/internal/models"
)

const fingerprintLen = 16

// Defaults for the cache bound. Cleanup triggers above
// capacity*cleanupThreshold and evicts down to capacity*retentionFraction,
// oldest entries first.
const (
	DefaultCapacity          = 1000
	DefaultCleanupThreshold  = 0.8
	DefaultRetentionFraction = 0.6
)

// Fingerprint derives a stable identity for a document from its stable
// fields only. Body text is deliberately excluded: resends and forwarded
// copies mangle the body but keep sender, subject, and message id.
func Fingerprint(doc models.Document) string {
	if doc.Sender == "" && doc.Subject == "" && doc.MessageID == "" {
		// File-sourced documents carry no transport identity; fall back to
		// the filename plus content.
		sum := sha256.Sum256([]byte(doc.Filename + "|" + doc.Text))
		return hex.EncodeToString(sum[:])[:fingerprintLen]
	}

	msgID := doc.MessageID
	if len(msgID) > 8 {
		msgID = msgID[len(msgID)-8:]
	}
	key := fmt.Sprintf("%s|%s|%s|%s", doc.Sender, doc.Subject, doc.Date, msgID)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:fingerprintLen]
}

// Deduplicator is a bounded, insertion-ordered fingerprint cache. Safe for
// concurrent use.
type Deduplicator struct {
	mu       sync.Mutex
	seen     map[string]struct{}
	order    []string
	capacity int
	// cleanup and retain are precomputed entry counts derived from the
	// threshold and retention fractions.
	cleanup int
	retain  int
	logger  logging.Logger
}

// New creates a deduplicator with the given capacity and eviction fractions.
// Non-positive or out-of-range parameters fall back to the defaults.
func New(capacity int, cleanupThreshold, retentionFraction float64, logger logging.Logger) *Deduplicator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if cleanupThreshold <= 0 || cleanupThreshold > 1 {
		cleanupThreshold = DefaultCleanupThreshold
	}
	if retentionFraction <= 0 || retentionFraction >= cleanupThreshold {
		retentionFraction = DefaultRetentionFraction
	}
	cleanup := int(float64(capacity) * cleanupThreshold)
	retain := int(float64(capacity) * retentionFraction)
	// Tiny capacities truncate to zero, which would evict every entry the
	// moment it is recorded. Keep at least one.
	if cleanup < 1 {
		cleanup = 1
	}
	if retain < 1 {
		retain = 1
	}
	return &Deduplicator{
		seen:     make(map[string]struct{}),
		capacity: capacity,
		cleanup:  cleanup,
		retain:   retain,
		logger:   logger,
	}
}

// NewDefault creates a deduplicator with the default bounds.
func NewDefault(logger logging.Logger) *Deduplicator {
	return New(DefaultCapacity, DefaultCleanupThreshold, DefaultRetentionFraction, logger)
}

// Seen reports whether the fingerprint is in the cache without recording it.
func (d *Deduplicator) Seen(fingerprint string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.seen[fingerprint]
	return ok
}

// Record adds the fingerprint to the cache, evicting oldest entries when the
// cleanup threshold is crossed.
func (d *Deduplicator) Record(fingerprint string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record(fingerprint)
}

// CheckAndRecord reports whether the fingerprint was already present and
// records it if not, as one atomic step.
func (d *Deduplicator) CheckAndRecord(fingerprint string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[fingerprint]; ok {
		return true
	}
	d.record(fingerprint)
	return false
}

// Len returns the number of cached fingerprints.
func (d *Deduplicator) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}

func (d *Deduplicator) record(fingerprint string) {
	if _, ok := d.seen[fingerprint]; ok {
		return
	}
	d.seen[fingerprint] = struct{}{}
	d.order = append(d.order, fingerprint)

	if len(d.order) <= d.cleanup {
		return
	}

	evict := len(d.order) - d.retain
	for _, fp := range d.order[:evict] {
		delete(d.seen, fp)
	}
	d.order = append(d.order[:0:0], d.order[evict:]...)
	d.logger.WithFields(
		logging.Field{Key: "evicted", Value: evict},
		logging.Field{Key: "retained", Value: len(d.order)},
	).Debug("Evicted oldest fingerprints")
}
