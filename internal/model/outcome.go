package model

// OutcomeResult classifies a resolved bet
type OutcomeResult string

const (
	OutcomeCorrect   OutcomeResult = "correct"
	OutcomeIncorrect OutcomeResult = "incorrect"
	OutcomeTie       OutcomeResult = "tie"
)

// Outcome is the result of evaluating a bet against the drawn card. The two
// drink flags are mutually exclusive; a correct bet sets neither.
type Outcome struct {
	Result         OutcomeResult
	PlayerDrinks   bool
	EveryoneDrinks bool
}
