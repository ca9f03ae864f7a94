package events

import (
	"time"

	"github.com/handiism/recipe-browser/internal/logging"
)

type FetchTracer struct{}

var Fetch = FetchTracer{}

func (FetchTracer) Start(op, arg string) {
	logging.Trace("fetch.start", "op", op, "arg", arg)
}

func (FetchTracer) Done(op, arg string, count int, elapsed time.Duration) {
	logging.Trace("fetch.done", "op", op, "arg", arg, "count", count, "elapsed_ms", elapsed.Milliseconds())
}

// Fail is always logged; fetch errors are otherwise invisible to the user.
func (FetchTracer) Fail(op, arg string, err error) {
	if err == nil {
		return
	}
	logging.Logger().Warn("fetch failed", "op", op, "arg", arg, "error", err.Error())
}

// Discarded records a result that arrived after its controller was unmounted.
func (FetchTracer) Discarded(session, op string) {
	logging.Trace("fetch.discarded", "session", session, "op", op)
}
