// Package nav implements the two-screen navigation stack: the Home screen
// at the bottom and any number of recipe detail screens above it.
package nav

import (
	"sync"

	"github.com/handiism/recipe-browser/internal/logging/events"
)

// Route names a screen.
type Route string

const (
	Home          Route = "Home"
	RecipeDetails Route = "RecipeDetails"
)

// Entry is one screen on the stack. ID is the recipe id for RecipeDetails
// and empty for Home.
type Entry struct {
	Route Route
	ID    string
}

// Hook is called with the entry being entered or left.
type Hook func(Entry)

// Navigator is a stack of screens that never drops below Home.
type Navigator struct {
	mu      sync.Mutex
	stack   []Entry
	onEnter Hook
	onLeave Hook
}

// Option configures a Navigator.
type Option func(*Navigator)

// OnEnter registers a hook fired after an entry is pushed.
func OnEnter(h Hook) Option {
	return func(n *Navigator) { n.onEnter = h }
}

// OnLeave registers a hook fired after an entry is popped.
func OnLeave(h Hook) Option {
	return func(n *Navigator) { n.onLeave = h }
}

// New returns a Navigator showing Home.
func New(opts ...Option) *Navigator {
	n := &Navigator{stack: []Entry{{Route: Home}}}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Navigate pushes route with its id and fires the enter hook.
func (n *Navigator) Navigate(route Route, id string) Entry {
	e := Entry{Route: route, ID: id}
	n.mu.Lock()
	n.stack = append(n.stack, e)
	depth := len(n.stack)
	n.mu.Unlock()

	events.Nav.Push(string(route), id, depth)
	if n.onEnter != nil {
		n.onEnter(e)
	}
	return e
}

// Back pops the top entry and fires the leave hook. It reports false when
// already at Home.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	if len(n.stack) <= 1 {
		n.mu.Unlock()
		return false
	}
	e := n.stack[len(n.stack)-1]
	n.stack = n.stack[:len(n.stack)-1]
	depth := len(n.stack)
	n.mu.Unlock()

	events.Nav.Pop(string(e.Route), e.ID, depth)
	if n.onLeave != nil {
		n.onLeave(e)
	}
	return true
}

// Current returns the top of the stack.
func (n *Navigator) Current() Entry {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of screens on the stack, Home included.
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack)
}
