package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/ludopark/lobbyclient/internal/conn"
	"github.com/ludopark/lobbyclient/internal/lobby"
)

// consolePort is the terminal stand-in for the webapp's list view. It
// prints the visible lobby, the balance and the connection status.
type consolePort struct {
	mu  sync.Mutex
	out io.Writer
}

func newConsolePort(out io.Writer) *consolePort {
	return &consolePort{out: out}
}

func (p *consolePort) OnVisibleListChanged(games []lobby.Game) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(games) == 0 {
		fmt.Fprintln(p.out, "lobby: no open games match the filter")
		return
	}
	fmt.Fprintf(p.out, "lobby: %d open game(s)\n", len(games))
	for _, g := range games {
		creator := g.CreatorName
		if creator == "" {
			creator = "anonymous"
		}
		fmt.Fprintf(p.out, "  [%s] %s stakes %.2f ETB, prize %.2f ETB, %s\n",
			g.ID, creator, g.Stake, g.Prize, g.WinConditionLabel())
	}
}

func (p *consolePort) OnBalanceChanged(balance float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "balance: %.2f ETB\n", balance)
}

func (p *consolePort) OnConnectionStateChanged(state conn.State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "connection: %s\n", state)
}
