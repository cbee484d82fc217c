// Package truthdare draws prompts from the static truth and dare catalogs.
package truthdare

import (
	"github.com/barquest/barquest/internal/catalog"
	"github.com/barquest/barquest/internal/dependencies/random"
	"github.com/barquest/barquest/internal/model"
)

// Service draws random truth or dare prompts
type Service struct {
	random random.Random
}

// New creates a new truth-or-dare service
func New(random random.Random) *Service {
	return &Service{random: random}
}

// Draw returns a random prompt of the given type
func (s *Service) Draw(promptType catalog.PromptType) (catalog.Prompt, error) {
	if promptType != catalog.PromptTruth && promptType != catalog.PromptDare {
		return catalog.Prompt{}, model.ErrUnknownPromptType
	}

	prompts := catalog.Prompts(promptType)
	return prompts[s.random.Intn(len(prompts))], nil
}

// DrawAny flips a coin between truth and dare and draws a prompt of that type
func (s *Service) DrawAny() catalog.Prompt {
	promptType := catalog.PromptTruth
	if s.random.Intn(2) == 1 {
		promptType = catalog.PromptDare
	}

	prompt, _ := s.Draw(promptType)
	return prompt
}
