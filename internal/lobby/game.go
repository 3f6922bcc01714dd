package lobby

import "fmt"

// Game represents one open offer in the shared lobby. Every field is owned
// by the server; the client only caches what it was pushed.
type Game struct {
	ID           string  `json:"id"`
	CreatorName  string  `json:"creatorName,omitempty"`
	Stake        float64 `json:"stake"`
	Prize        float64 `json:"prize"` // derived server-side, see protocol.ComputePrize
	WinCondition int     `json:"win_condition"`
}

// WinConditionLabel returns the lobby display text for a win condition:
// how many of the four tokens have to reach home.
func (g Game) WinConditionLabel() string {
	if g.WinCondition == 1 {
		return "first token home"
	}
	return fmt.Sprintf("%d tokens home", g.WinCondition)
}
