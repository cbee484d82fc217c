// Package spin implements spin-the-bottle: a random angle picks one player
// from a circle of equal arcs.
package spin

import (
	"github.com/barquest/barquest/internal/dependencies/random"
	"github.com/barquest/barquest/internal/model"
)

// fullTurns is how many complete rotations precede the final angle, purely so
// clients can animate a convincing spin.
const fullTurns = 5

// Result is the outcome of one spin. Rotation is the total angle in degrees
// including the full turns; the selected player sits under the final angle.
type Result struct {
	Rotation      int
	FinalAngle    int
	SelectedIndex int
	SelectedName  string
}

// Service picks players by spinning a bottle
type Service struct {
	random random.Random
}

// New creates a new spin service
func New(random random.Random) *Service {
	return &Service{random: random}
}

// Spin picks a random final angle and maps it onto the circle of players.
// Player i owns the arc [i*360/n, (i+1)*360/n).
func (s *Service) Spin(playerNames []string) (Result, error) {
	if len(playerNames) < 2 {
		return Result{}, model.ErrNotEnoughPlayers
	}

	angle := s.random.Intn(360)
	index := angle * len(playerNames) / 360

	return Result{
		Rotation:      fullTurns*360 + angle,
		FinalAngle:    angle,
		SelectedIndex: index,
		SelectedName:  playerNames[index],
	}, nil
}
