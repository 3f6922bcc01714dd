package lobby

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_AllIsIdentity(t *testing.T) {
	games := []Game{game("1", 50), game("2", 200), game("3", 150)}

	got := Project(games, All())

	require.Equal(t, games, got)
}

func TestProject_RangeIsInclusive(t *testing.T) {
	games := []Game{
		game("below", 49),
		game("low", 50),
		game("mid", 120),
		game("high", 200),
		game("above", 201),
	}

	got := Project(games, Range(50, 200))

	assert.Equal(t, []string{"low", "mid", "high"}, ids(got))
}

func TestProject_MinOnly(t *testing.T) {
	games := []Game{game("1", 50), game("2", 200), game("3", 100)}

	got := Project(games, MinOnly(100))

	assert.Equal(t, []string{"2", "3"}, ids(got))
}

func TestProject_PreservesCanonicalOrder(t *testing.T) {
	games := []Game{game("3", 150), game("1", 50), game("2", 200)}

	got := Project(games, MinOnly(100))

	// matching entries keep their relative order, newest first
	require.Equal(t, []string{"3", "2"}, ids(got))
}

func TestProject_NeverMutatesInput(t *testing.T) {
	games := []Game{game("1", 50), game("2", 200)}

	_ = Project(games, MinOnly(100))
	out := Project(games, All())
	out[0].ID = "mutated"

	assert.Equal(t, []string{"1", "2"}, ids(games))
}

func TestFilterMatches(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		stake  float64
		want   bool
	}{
		{"all matches anything", All(), 0, true},
		{"range lower bound", Range(50, 200), 50, true},
		{"range upper bound", Range(50, 200), 200, true},
		{"range below", Range(50, 200), 49.99, false},
		{"range above", Range(50, 200), 200.01, false},
		{"min at threshold", MinOnly(100), 100, true},
		{"min below threshold", MinOnly(100), 99.99, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(game("g", tt.stake)))
		})
	}
}
