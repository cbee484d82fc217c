package redis

import (
	"fmt"

	"github.com/barquest/barquest/internal/model"
)

// Key prefix for all app data
const keyPrefix = "barquest"

// profileKey returns the Redis key for a UserProfile
func profileKey(id model.ProfileID) string {
	return fmt.Sprintf("%s:profile:%s", keyPrefix, id)
}

// cardGameKey returns the Redis key for a CardGameSession
func cardGameKey(id model.CardGameID) string {
	return fmt.Sprintf("%s:cardgame:%s", keyPrefix, id)
}

// higherLowerKey returns the Redis key for a HigherLowerSession
func higherLowerKey(id model.HigherLowerID) string {
	return fmt.Sprintf("%s:higherlower:%s", keyPrefix, id)
}
