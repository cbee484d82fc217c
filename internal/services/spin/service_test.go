package spin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barquest/barquest/internal/dependencies/mocks"
	"github.com/barquest/barquest/internal/model"
)

func TestSpinRequiresTwoPlayers(t *testing.T) {
	service := New(mocks.NewMockRandom())

	_, err := service.Spin([]string{"Marta"})
	assert.ErrorIs(t, err, model.ErrNotEnoughPlayers)
}

func TestSpinSelectsPlayerByArc(t *testing.T) {
	players := []string{"Marta", "Jordi", "Pau", "Laia"}

	// Four players own 90 degree arcs
	tests := []struct {
		angle    int
		index    int
		selected string
	}{
		{0, 0, "Marta"},
		{89, 0, "Marta"},
		{90, 1, "Jordi"},
		{179, 1, "Jordi"},
		{180, 2, "Pau"},
		{359, 3, "Laia"},
	}

	for _, tt := range tests {
		random := mocks.NewMockRandom()
		random.QueueIntn(tt.angle)
		service := New(random)

		result, err := service.Spin(players)
		require.NoError(t, err)

		assert.Equal(t, tt.index, result.SelectedIndex, "angle %d", tt.angle)
		assert.Equal(t, tt.selected, result.SelectedName, "angle %d", tt.angle)
		assert.Equal(t, tt.angle, result.FinalAngle)
		assert.Equal(t, 5*360+tt.angle, result.Rotation)
	}
}
