// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about selection episodes and region exports.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the selection engine
// stays free of logging and metrics dependencies.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSelectionHooks(&mySelectionHooks{})
//	    observability.SetExportHooks(&myExportHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Selection().OnEpisodeStart(id)
//	// ... user draws, moves, resizes ...
//	observability.Selection().OnEpisodeEnd(id, observability.OutcomeAccepted, rect, elapsed)
package observability

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/cropframe/pkg/geom"
)

// Outcome is how a selection episode ended.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeCanceled Outcome = "canceled"
	OutcomeRetried  Outcome = "retried"
	// OutcomeRejected means the drawn rectangle was below the minimum size.
	OutcomeRejected Outcome = "rejected"
)

// =============================================================================
// Selection Hooks
// =============================================================================

// SelectionHooks receives events from the interaction state machine.
// Calls are made synchronously on the goroutine driving the machine.
type SelectionHooks interface {
	// OnEpisodeStart records the start of a new drawing.
	OnEpisodeStart(episode uuid.UUID)

	// OnTransition records a state change within an episode.
	OnTransition(episode uuid.UUID, from, to string)

	// OnEpisodeEnd records how an episode ended and the rectangle it held.
	OnEpisodeEnd(episode uuid.UUID, outcome Outcome, r geom.Rect, elapsed time.Duration)
}

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from region export.
type ExportHooks interface {
	// OnExport records a region written in format, with the byte count or
	// the error that stopped it.
	OnExport(format string, size int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSelectionHooks is a no-op implementation of SelectionHooks.
type NoopSelectionHooks struct{}

func (NoopSelectionHooks) OnEpisodeStart(uuid.UUID)                                  {}
func (NoopSelectionHooks) OnTransition(uuid.UUID, string, string)                    {}
func (NoopSelectionHooks) OnEpisodeEnd(uuid.UUID, Outcome, geom.Rect, time.Duration) {}

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExport(string, int, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	selectionHooks SelectionHooks = NoopSelectionHooks{}
	exportHooks    ExportHooks    = NoopExportHooks{}
	hooksMu        sync.RWMutex
)

// SetSelectionHooks registers custom selection hooks.
// This should be called once at application startup before any machine is driven.
func SetSelectionHooks(h SelectionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		selectionHooks = h
	}
}

// SetExportHooks registers custom export hooks.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// Selection returns the registered selection hooks.
func Selection() SelectionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return selectionHooks
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	selectionHooks = NoopSelectionHooks{}
	exportHooks = NoopExportHooks{}
}
