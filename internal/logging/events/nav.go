package events

import "github.com/handiism/recipe-browser/internal/logging"

type NavTracer struct{}

var Nav = NavTracer{}

func (NavTracer) Push(route, id string, depth int) {
	logging.Trace("nav.push", "route", route, "id", id, "depth", depth)
}

func (NavTracer) Pop(route, id string, depth int) {
	logging.Trace("nav.pop", "route", route, "id", id, "depth", depth)
}
