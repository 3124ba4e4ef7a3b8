// Package benchmark compares bootlog with other Go logging libraries
// writing to the same discarding sink.
package benchmark

import (
	"time"

	"github.com/philipp01105/bootlog/core"
	"github.com/philipp01105/bootlog/handler"
)

// noopHandler discards entries without formatting, isolating logger
// overhead from pipeline cost.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) HandleLog(_ time.Time, _ core.Level, msg string, _ []any) error {
	_ = len(msg)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
