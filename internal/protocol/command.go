package protocol

// CommandType tags one outbound frame to the lobby server.
type CommandType string

const (
	CommandCreateGame CommandType = "create_game"
	CommandJoinGame   CommandType = "join_game"
)

// Command is one outbound frame. Building a command never touches the
// transport; sending is the connection manager's job.
type Command struct {
	Type         CommandType `json:"type"`
	Stake        int         `json:"stake,omitempty"`
	WinCondition int         `json:"winCondition,omitempty"`
	GameID       string      `json:"gameId,omitempty"`
}

// CreateGame builds a creation request for a new offer with the given stake
// and win condition (tokens required home, 1..4).
func CreateGame(stake, winCondition int) Command {
	return Command{Type: CommandCreateGame, Stake: stake, WinCondition: winCondition}
}

// JoinGame builds a join request for an existing offer.
func JoinGame(gameID string) Command {
	return Command{Type: CommandJoinGame, GameID: gameID}
}

// ComputePrize returns the payout for a winning stake: both players' stakes
// pooled, minus the 10% house cut. Used only for local preview; the server
// pushes the authoritative prize with each game and the two must agree.
func ComputePrize(stake float64) float64 {
	return stake * 2 * 0.9
}
