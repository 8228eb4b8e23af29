package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// =============================================================================
// Keyers - Deterministic Cache Keys
// =============================================================================

// PlacementKeyOpts carries every input that feeds a single placement
// computation. Two requests with equal opts are guaranteed to produce the
// same placement, which is what makes the key safe.
type PlacementKeyOpts struct {
	Position   string  `json:"position"`
	Index      int     `json:"index"`
	Direction  string  `json:"direction,omitempty"` // "" when the caller has no preference
	ButtonSize float64 `json:"button_size,omitempty"`
	Gap        float64 `json:"gap,omitempty"`
	Offset     string  `json:"offset,omitempty"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// Keyer generates cache keys for the two cacheable computations.
type Keyer interface {
	// PlacementKey generates a key for a single control placement.
	PlacementKey(opts PlacementKeyOpts) string

	// PlanKey generates a key for a whole gallery plan, from a hash of
	// the serialized gallery declaration.
	PlanKey(galleryHash string) string
}

// DefaultKeyer generates unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PlacementKey generates a key for a single control placement.
func (k *DefaultKeyer) PlacementKey(opts PlacementKeyOpts) string {
	return hashKey("placement", opts)
}

// PlanKey generates a key for a whole gallery plan.
func (k *DefaultKeyer) PlanKey(galleryHash string) string {
	return fmt.Sprintf("plan:%s", galleryHash)
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, e.g.
// per-profile keys when several galleries share one Redis instance.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PlacementKey generates a prefixed placement key.
func (k *ScopedKeyer) PlacementKey(opts PlacementKeyOpts) string {
	return k.prefix + k.inner.PlacementKey(opts)
}

// PlanKey generates a prefixed plan key.
func (k *ScopedKeyer) PlanKey(galleryHash string) string {
	return k.prefix + k.inner.PlanKey(galleryHash)
}

// =============================================================================
// Hashing
// =============================================================================

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
