// Package outcome decides the result of a higher/lower bet. It is pure and
// stateless so it can be tested without any game session or timing concerns.
package outcome

import "github.com/barquest/barquest/internal/model"

// Evaluate compares the drawn rank against the current rank under the given
// bet direction. Equal ranks are a tie: everyone drinks, regardless of the
// direction. A wrong guess means the betting player drinks; a correct guess
// means nobody does.
func Evaluate(direction model.BetDirection, currentRank, drawnRank int) model.Outcome {
	if drawnRank == currentRank {
		return model.Outcome{
			Result:         model.OutcomeTie,
			EveryoneDrinks: true,
		}
	}

	correct := drawnRank > currentRank
	if direction == model.BetLower {
		correct = drawnRank < currentRank
	}

	if correct {
		return model.Outcome{Result: model.OutcomeCorrect}
	}
	return model.Outcome{
		Result:       model.OutcomeIncorrect,
		PlayerDrinks: true,
	}
}
