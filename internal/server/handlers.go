package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pixelgrid/overlaykit/pkg/cache"
	apperrors "github.com/pixelgrid/overlaykit/pkg/errors"
	"github.com/pixelgrid/overlaykit/pkg/gallery"
	"github.com/pixelgrid/overlaykit/pkg/observability"
	"github.com/pixelgrid/overlaykit/pkg/overlay"
	"github.com/pixelgrid/overlaykit/pkg/profile"
)

// =============================================================================
// Placements
// =============================================================================

// placementRequest is the transport form of one placement computation.
// Position and direction are names ("top-right", "down"); an absent
// direction means no preference.
type placementRequest struct {
	Position   overlay.Position   `json:"position"`
	Index      int                `json:"index"`
	Direction  *overlay.Direction `json:"direction,omitempty"`
	ButtonSize float64            `json:"button_size,omitempty"`
	Gap        float64            `json:"gap,omitempty"`
	Offset     string             `json:"offset,omitempty"`
	Container  overlay.Size       `json:"container"`
}

func (s *Server) handlePlacement(w http.ResponseWriter, r *http.Request) {
	var in placementRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	req := overlay.Request{
		Position:   in.Position,
		Index:      in.Index,
		Direction:  in.Direction,
		ButtonSize: in.ButtonSize,
		Gap:        in.Gap,
		Offset:     in.Offset,
	}
	if err := overlay.Validate(req, in.Container); err != nil {
		writeError(w, err)
		return
	}

	start := time.Now()
	observability.Layout().OnPlaceStart(r.Context(), in.Position.String(), in.Index)
	p := overlay.Compute(req, in.Container)
	observability.Layout().OnPlaceComplete(r.Context(), in.Position.String(), in.Index, p.Constrained, time.Since(start))

	writeJSON(w, http.StatusOK, p)
}

// =============================================================================
// Plans
// =============================================================================

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var g gallery.Gallery
	if err := decodeJSON(r, &g); err != nil {
		writeError(w, err)
		return
	}
	s.servePlan(w, r, g, s.keyer)
}

// servePlan computes (or recalls) the plan for a gallery declaration.
func (s *Server) servePlan(w http.ResponseWriter, r *http.Request, g gallery.Gallery, keyer cache.Keyer) {
	ctx := r.Context()

	// The engine is pure: a hash of the declaration identifies the plan.
	declaration, err := json.Marshal(g)
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "serialize gallery"))
		return
	}
	key := keyer.PlanKey(cache.Hash(declaration))

	if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "plan")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}
	observability.Cache().OnCacheMiss(ctx, "plan")

	start := time.Now()
	observability.Layout().OnPlanStart(ctx, len(g.Controls))
	plan, err := g.Plan()
	observability.Layout().OnPlanComplete(ctx, len(g.Controls), time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := json.Marshal(plan)
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "serialize plan"))
		return
	}
	if err := s.cache.Set(ctx, key, body, PlanCacheTTL); err != nil {
		s.logger.Warn("cache plan", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "plan", len(body))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// =============================================================================
// Profiles
// =============================================================================

// profilePayload is the client-supplied part of a profile; id and
// timestamps are server-assigned.
type profilePayload struct {
	Name    string          `json:"name"`
	Gallery gallery.Gallery `json:"gallery"`
}

func (s *Server) handleProfileList(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if profiles == nil {
		profiles = []*profile.Profile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (s *Server) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleProfilePut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := apperrors.ValidateProfileID(id); err != nil {
		writeError(w, err)
		return
	}

	var in profilePayload
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	if err := in.Gallery.Validate(); err != nil {
		writeError(w, err)
		return
	}

	now := time.Now().UTC()
	p := &profile.Profile{
		ID:        id,
		Name:      in.Name,
		Gallery:   in.Gallery,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, err := s.store.Get(r.Context(), id); err == nil {
		p.CreatedAt = existing.CreatedAt
	}

	if err := s.store.Put(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleProfileDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProfilePlan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := s.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	// Scope the memoized plan to the profile so deleting or rewriting the
	// profile cannot collide with ad-hoc plan requests.
	keyer := cache.NewScopedKeyer(s.keyer, "profile:"+id+":")
	s.servePlan(w, r, p.Gallery, keyer)
}

// =============================================================================
// Instances
// =============================================================================

// mountRequest mounts either a saved profile (by id) or an inline gallery.
type mountRequest struct {
	ProfileID string           `json:"profile_id,omitempty"`
	Gallery   *gallery.Gallery `json:"gallery,omitempty"`
}

func (s *Server) handleInstanceMount(w http.ResponseWriter, r *http.Request) {
	var in mountRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	var g gallery.Gallery
	switch {
	case in.ProfileID != "" && in.Gallery != nil:
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "provide either profile_id or gallery, not both"))
		return
	case in.ProfileID != "":
		if s.store == nil {
			writeError(w, apperrors.New(apperrors.ErrCodeUnsupported, "no profile store configured"))
			return
		}
		p, err := s.store.Get(r.Context(), in.ProfileID)
		if err != nil {
			writeError(w, err)
			return
		}
		g = p.Gallery
	case in.Gallery != nil:
		g = *in.Gallery
	default:
		writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "provide profile_id or gallery"))
		return
	}

	plan, err := g.Plan()
	if err != nil {
		writeError(w, err)
		return
	}

	inst := s.registry.Mount(plan)
	s.logger.Info("mounted instance", "id", inst.ID, "tiles", len(plan.Tiles))
	writeJSON(w, http.StatusCreated, inst)
}

func (s *Server) handleInstanceGet(w http.ResponseWriter, r *http.Request) {
	inst := s.registry.Get(chi.URLParam(r, "id"))
	if inst == nil {
		writeError(w, apperrors.New(apperrors.ErrCodeNotFound, "instance not mounted"))
		return
	}
	writeJSON(w, http.StatusOK, inst)
}

func (s *Server) handleInstanceUnmount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.registry.Unmount(id) {
		writeError(w, apperrors.New(apperrors.ErrCodeNotFound, "instance not mounted"))
		return
	}
	s.logger.Info("unmounted instance", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
