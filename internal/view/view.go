// Package view recomputes the visible subset of the lobby whenever the
// canonical list or the active filter changes, and fans everything the
// visual layer needs out through the render port.
package view

import (
	"sync"

	"github.com/ludopark/lobbyclient/internal/conn"
	"github.com/ludopark/lobbyclient/internal/lobby"
)

// RenderPort is the boundary to the visual layer. The core is fully
// testable with nothing behind it.
type RenderPort interface {
	OnVisibleListChanged(games []lobby.Game)
	OnBalanceChanged(balance float64)
	OnConnectionStateChanged(state conn.State)
}

// Model holds the active filter and drives the render port. It subscribes
// to the store on construction, so every effective store mutation triggers
// a reprojection.
type Model struct {
	mu     sync.Mutex
	store  *lobby.Store
	filter lobby.Filter
	port   RenderPort
}

// NewModel wires a model to the store and render port. The initial filter
// is All.
func NewModel(store *lobby.Store, port RenderPort) *Model {
	m := &Model{
		store:  store,
		filter: lobby.All(),
		port:   port,
	}
	store.OnChange(m.reproject)
	return m
}

// SetFilter activates a filter and reprojects the current canonical list.
func (m *Model) SetFilter(f lobby.Filter) {
	m.mu.Lock()
	m.filter = f
	m.mu.Unlock()

	m.reproject(m.store.Games())
}

// Filter returns the active filter.
func (m *Model) Filter() lobby.Filter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter
}

// Visible returns the current projection of the canonical list.
func (m *Model) Visible() []lobby.Game {
	m.mu.Lock()
	f := m.filter
	m.mu.Unlock()
	return lobby.Project(m.store.Games(), f)
}

// HandleBalance forwards a balance push to the render port.
func (m *Model) HandleBalance(balance float64) {
	m.port.OnBalanceChanged(balance)
}

// HandleConnState forwards a connection state change to the render port.
func (m *Model) HandleConnState(state conn.State) {
	m.port.OnConnectionStateChanged(state)
}

func (m *Model) reproject(games []lobby.Game) {
	m.mu.Lock()
	f := m.filter
	m.mu.Unlock()

	m.port.OnVisibleListChanged(lobby.Project(games, f))
}
