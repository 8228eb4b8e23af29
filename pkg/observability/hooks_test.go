package observability

import (
	"context"
	"testing"
	"time"
)

type recordingLayoutHooks struct {
	NoopLayoutHooks
	planStarts    int
	planCompletes int
}

func (h *recordingLayoutHooks) OnPlanStart(ctx context.Context, controlCount int) {
	h.planStarts++
}

func (h *recordingLayoutHooks) OnPlanComplete(ctx context.Context, controlCount int, d time.Duration, err error) {
	h.planCompletes++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits, misses int
}

func (h *recordingCacheHooks) OnCacheHit(ctx context.Context, keyType string)  { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(ctx context.Context, keyType string) { h.misses++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	// No-op hooks must be safe to call.
	ctx := context.Background()
	Layout().OnPlanStart(ctx, 3)
	Layout().OnPlanComplete(ctx, 3, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "placement")
	Server().OnRequest(ctx, "POST", "/v1/plans")
}

func TestSetLayoutHooks(t *testing.T) {
	defer Reset()

	h := &recordingLayoutHooks{}
	SetLayoutHooks(h)

	ctx := context.Background()
	Layout().OnPlanStart(ctx, 2)
	Layout().OnPlanComplete(ctx, 2, time.Millisecond, nil)

	if h.planStarts != 1 || h.planCompletes != 1 {
		t.Errorf("planStarts = %d, planCompletes = %d, want 1 and 1", h.planStarts, h.planCompletes)
	}
}

func TestSetCacheHooks(t *testing.T) {
	defer Reset()

	h := &recordingCacheHooks{}
	SetCacheHooks(h)

	ctx := context.Background()
	Cache().OnCacheMiss(ctx, "plan")
	Cache().OnCacheHit(ctx, "plan")
	Cache().OnCacheHit(ctx, "plan")

	if h.hits != 2 || h.misses != 1 {
		t.Errorf("hits = %d, misses = %d, want 2 and 1", h.hits, h.misses)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	h := &recordingLayoutHooks{}
	SetLayoutHooks(h)
	SetLayoutHooks(nil)

	Layout().OnPlanStart(context.Background(), 1)
	if h.planStarts != 1 {
		t.Errorf("planStarts = %d, want 1 (nil must not replace hooks)", h.planStarts)
	}
}

func TestReset(t *testing.T) {
	h := &recordingLayoutHooks{}
	SetLayoutHooks(h)
	Reset()

	Layout().OnPlanStart(context.Background(), 1)
	if h.planStarts != 0 {
		t.Errorf("planStarts = %d, want 0 after Reset", h.planStarts)
	}
}
