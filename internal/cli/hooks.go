package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cycl/pkg/observability"
)

// logHooks reports collection, API and analysis events as debug logs.
type logHooks struct {
	logger *log.Logger
}

// RegisterHooks routes observability events to the CLI logger.
func (c *CLI) RegisterHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetCollectHooks(h)
	observability.SetAPIHooks(h)
	observability.SetAnalysisHooks(h)
}

func (h *logHooks) OnExportsListed(_ context.Context, count int, d time.Duration, err error) {
	h.logger.Debug("listed exports", "count", count, "elapsed", d.Round(time.Millisecond), "err", err)
}

func (h *logHooks) OnLookupStart(_ context.Context, export string) {
	h.logger.Debug("looking up importers", "export", export)
}

func (h *logHooks) OnLookupComplete(_ context.Context, export string, importers int, d time.Duration, err error) {
	h.logger.Debug("looked up importers", "export", export, "importers", importers,
		"elapsed", d.Round(time.Millisecond), "err", err)
}

func (h *logHooks) OnCall(_ context.Context, operation string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("api call failed", "operation", operation, "elapsed", d.Round(time.Millisecond), "err", err)
	}
}

func (h *logHooks) OnAssembled(_ context.Context, nodes, edges int) {
	h.logger.Debug("graph assembled", "stacks", nodes, "imports", edges)
}

func (h *logHooks) OnCyclesFound(_ context.Context, cycles int, d time.Duration) {
	h.logger.Debug("enumerated cycles", "cycles", cycles, "elapsed", d.Round(time.Millisecond))
}
