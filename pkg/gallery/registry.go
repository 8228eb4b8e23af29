package gallery

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Registry - Live Overlay Instances
// =============================================================================

// Instance is one mounted gallery overlay: a computed plan bound to a
// unique id a host can address until it unmounts the gallery.
type Instance struct {
	ID        string      `json:"id"`
	Plan      GalleryPlan `json:"plan"`
	MountedAt time.Time   `json:"mounted_at"`
}

// Registry tracks live overlay instances for one rendering host. It is an
// explicit object owned by the host's lifetime scope: create it on startup,
// Close it on shutdown, and mount/unmount instances as galleries appear and
// disappear. Nothing here is process-global.
//
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	instances map[string]*Instance
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{instances: make(map[string]*Instance)}
}

// Mount registers a computed plan and returns its instance. IDs are random
// UUIDs, so remounting the same gallery yields a fresh instance.
func (r *Registry) Mount(plan GalleryPlan) *Instance {
	inst := &Instance{
		ID:        uuid.NewString(),
		Plan:      plan,
		MountedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[inst.ID] = inst
	return inst
}

// Get returns the instance with the given id, or nil if it is not mounted.
func (r *Registry) Get(id string) *Instance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.instances[id]
}

// Unmount removes an instance. It reports whether the id was mounted.
func (r *Registry) Unmount(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.instances[id]; !ok {
		return false
	}
	delete(r.instances, id)
	return true
}

// Len returns the number of mounted instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.instances)
}

// Close unmounts every instance. The registry stays usable afterwards, but
// hosts treat Close as teardown.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances = make(map[string]*Instance)
}
