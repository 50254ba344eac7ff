// Package observability provides hooks for instrumenting sketch rendering.
//
// Libraries emit events through the registered hooks; the defaults are
// no-ops, so instrumentation costs nothing unless main registers an
// implementation at startup.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Render().OnDrawStart(ctx, "overlay", seed)
//	// ... draw ...
//	observability.Render().OnDrawComplete(ctx, "overlay", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the render pipeline.
type RenderHooks interface {
	// OnDrawStart is called before a sketch draws a frame.
	OnDrawStart(ctx context.Context, sketch string, seed uint64)

	// OnDrawComplete is called after a frame is drawn or the draw failed.
	OnDrawComplete(ctx context.Context, sketch string, duration time.Duration, err error)

	// OnEncode is called after an artifact is encoded.
	OnEncode(ctx context.Context, format string, size int)
}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnDrawStart(context.Context, string, uint64)                  {}
func (NoopRenderHooks) OnDrawComplete(context.Context, string, time.Duration, error) {}
func (NoopRenderHooks) OnEncode(context.Context, string, int)                        {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetRenderHooks registers custom render hooks. A nil h is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	renderHooks = NoopRenderHooks{}
}
