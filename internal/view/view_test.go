package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludopark/lobbyclient/internal/conn"
	"github.com/ludopark/lobbyclient/internal/lobby"
)

// fakePort records everything the core pushes to the visual layer.
type fakePort struct {
	visible [][]lobby.Game
	balance []float64
	states  []conn.State
}

func (p *fakePort) OnVisibleListChanged(games []lobby.Game)    { p.visible = append(p.visible, games) }
func (p *fakePort) OnBalanceChanged(balance float64)           { p.balance = append(p.balance, balance) }
func (p *fakePort) OnConnectionStateChanged(state conn.State)  { p.states = append(p.states, state) }

func ids(games []lobby.Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.ID)
	}
	return out
}

func TestModel_ReprojectsOnStoreChange(t *testing.T) {
	store := lobby.NewStore()
	port := &fakePort{}
	m := NewModel(store, port)
	m.SetFilter(lobby.MinOnly(100))

	store.ReplaceAll([]lobby.Game{{ID: "1", Stake: 50}, {ID: "2", Stake: 200}})

	require.NotEmpty(t, port.visible)
	assert.Equal(t, []string{"2"}, ids(port.visible[len(port.visible)-1]))

	store.Upsert(lobby.Game{ID: "3", Stake: 150})
	assert.Equal(t, []string{"3", "2"}, ids(port.visible[len(port.visible)-1]))

	store.Remove("2")
	assert.Equal(t, []string{"3"}, ids(port.visible[len(port.visible)-1]))
}

func TestModel_SetFilterReprojectsImmediately(t *testing.T) {
	store := lobby.NewStore()
	port := &fakePort{}
	m := NewModel(store, port)
	store.ReplaceAll([]lobby.Game{{ID: "1", Stake: 50}, {ID: "2", Stake: 200}})

	m.SetFilter(lobby.Range(40, 60))

	require.NotEmpty(t, port.visible)
	assert.Equal(t, []string{"1"}, ids(port.visible[len(port.visible)-1]))

	m.SetFilter(lobby.All())
	assert.Equal(t, []string{"1", "2"}, ids(port.visible[len(port.visible)-1]))
}

func TestModel_Visible(t *testing.T) {
	store := lobby.NewStore()
	m := NewModel(store, &fakePort{})
	store.ReplaceAll([]lobby.Game{{ID: "1", Stake: 50}, {ID: "2", Stake: 200}})

	m.SetFilter(lobby.MinOnly(100))

	assert.Equal(t, []string{"2"}, ids(m.Visible()))
}

func TestModel_ForwardsSignals(t *testing.T) {
	store := lobby.NewStore()
	port := &fakePort{}
	m := NewModel(store, port)

	m.HandleBalance(125.5)
	m.HandleConnState(conn.StateConnected)

	assert.Equal(t, []float64{125.5}, port.balance)
	assert.Equal(t, []conn.State{conn.StateConnected}, port.states)
}
