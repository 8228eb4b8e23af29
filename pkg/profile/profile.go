// Package profile provides persistence for named gallery profiles.
//
// A profile is a saved gallery declaration (container size, entries,
// overlay controls) a host can recall by id instead of resending the full
// declaration on every request. The package defines a Store interface with
// implementations for different backends:
//   - file: JSON files in a config directory, for CLI usage
//   - mongo: MongoDB collection, for the hosted placement service
//
// Profiles store declarations, not computed plans; plans are cheap to
// recompute and are memoized separately by pkg/cache.
package profile

import (
	"context"
	"errors"
	"time"

	"github.com/pixelgrid/overlaykit/pkg/gallery"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a profile does not exist.
	ErrNotFound = errors.New("profile not found")
)

// Profile is a named, persisted gallery declaration.
type Profile struct {
	ID        string          `json:"id" bson:"_id"`
	Name      string          `json:"name" bson:"name"`
	Gallery   gallery.Gallery `json:"gallery" bson:"gallery"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for profile storage backends.
type Store interface {
	// Get retrieves a profile by id. Returns ErrNotFound if it does not
	// exist.
	Get(ctx context.Context, id string) (*Profile, error)

	// Put stores a profile, overwriting any existing one with the same id.
	Put(ctx context.Context, p *Profile) error

	// Delete removes a profile. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error

	// List returns all stored profiles, in unspecified order.
	List(ctx context.Context) ([]*Profile, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
