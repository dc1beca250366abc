// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about remote collection, CloudFormation API calls, and graph
// analysis.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so library packages stay
// free of backend imports.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCollectHooks(&myCollectHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Collect().OnLookupStart(ctx, exportName)
//	// ... list importers ...
//	observability.Collect().OnLookupComplete(ctx, exportName, n, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Collect Hooks
// =============================================================================

// CollectHooks receives events from the remote relationship collector.
type CollectHooks interface {
	// OnExportsListed records the end of export listing.
	OnExportsListed(ctx context.Context, count int, duration time.Duration, err error)

	// Importer lookup events, one pair per export
	OnLookupStart(ctx context.Context, export string)
	OnLookupComplete(ctx context.Context, export string, importers int, duration time.Duration, err error)
}

// =============================================================================
// API Hooks
// =============================================================================

// APIHooks receives events for individual CloudFormation API pages.
type APIHooks interface {
	// OnCall records one API request, including retries done by the SDK.
	OnCall(ctx context.Context, operation string, duration time.Duration, err error)
}

// =============================================================================
// Analysis Hooks
// =============================================================================

// AnalysisHooks receives events from graph assembly and analysis.
type AnalysisHooks interface {
	// OnAssembled records the size of the assembled graph.
	OnAssembled(ctx context.Context, nodes, edges int)

	// OnCyclesFound records the outcome of cycle enumeration.
	OnCyclesFound(ctx context.Context, cycles int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCollectHooks is a no-op implementation of CollectHooks.
type NoopCollectHooks struct{}

func (NoopCollectHooks) OnExportsListed(context.Context, int, time.Duration, error) {}
func (NoopCollectHooks) OnLookupStart(context.Context, string)                      {}
func (NoopCollectHooks) OnLookupComplete(context.Context, string, int, time.Duration, error) {
}

// NoopAPIHooks is a no-op implementation of APIHooks.
type NoopAPIHooks struct{}

func (NoopAPIHooks) OnCall(context.Context, string, time.Duration, error) {}

// NoopAnalysisHooks is a no-op implementation of AnalysisHooks.
type NoopAnalysisHooks struct{}

func (NoopAnalysisHooks) OnAssembled(context.Context, int, int)             {}
func (NoopAnalysisHooks) OnCyclesFound(context.Context, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	collectHooks  CollectHooks  = NoopCollectHooks{}
	apiHooks      APIHooks      = NoopAPIHooks{}
	analysisHooks AnalysisHooks = NoopAnalysisHooks{}
	hooksMu       sync.RWMutex
)

// SetCollectHooks registers custom collector hooks.
// This should be called once at application startup before any collection.
func SetCollectHooks(h CollectHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		collectHooks = h
	}
}

// SetAPIHooks registers custom API hooks.
func SetAPIHooks(h APIHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		apiHooks = h
	}
}

// SetAnalysisHooks registers custom analysis hooks.
func SetAnalysisHooks(h AnalysisHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		analysisHooks = h
	}
}

// Collect returns the registered collector hooks.
func Collect() CollectHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return collectHooks
}

// API returns the registered API hooks.
func API() APIHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return apiHooks
}

// Analysis returns the registered analysis hooks.
func Analysis() AnalysisHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return analysisHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	collectHooks = NoopCollectHooks{}
	apiHooks = NoopAPIHooks{}
	analysisHooks = NoopAnalysisHooks{}
}
