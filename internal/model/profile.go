package model

// ProfileID uniquely identifies a user profile
type ProfileID string

// CheckInPoints is the fixed number of points awarded per check-in
const CheckInPoints = 10

// ProfileSchemaVersion is the current version of the persisted profile blob.
// Loads with a newer version fall back to the default profile.
const ProfileSchemaVersion = 1

// UserProfile is the single durable, cross-session entity. All mutation goes
// through the profile service; Level is derived from Points, never set
// independently.
type UserProfile struct {
	SchemaVersion int       `json:"schema_version"`
	ID            ProfileID `json:"id"`
	Name          string    `json:"name"`
	Avatar        string    `json:"avatar"`
	Points        int       `json:"points"`
	Level         int       `json:"level"`
	CheckIns      []CheckIn `json:"check_ins"`
	Badges        []Badge   `json:"badges"`
}

// CheckIn records a claimed visit to a venue. The venue name is denormalized
// at check-in time and never re-derived. Immutable once appended; duplicates
// per venue are permitted (history is append-only).
type CheckIn struct {
	VenueID   VenueID `json:"venue_id"`
	VenueName string  `json:"venue_name"`
	Timestamp int64   `json:"timestamp"` // epoch milliseconds
	Points    int     `json:"points"`
}

// BadgeID identifies a badge definition in the static catalog
type BadgeID string

// Badge is the progress state for one badge definition. Progress is
// recomputed wholesale from the full check-in history, never incremented.
type Badge struct {
	ID          BadgeID `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Requirement int     `json:"requirement"`
	Progress    int     `json:"progress"`
	Earned      bool    `json:"earned"`
}

// LevelForPoints derives the level for a points total
func LevelForPoints(points int) int {
	return points/100 + 1
}

// PointsForNextLevel returns the points total at which the given level is left
func PointsForNextLevel(level int) int {
	return level * 100
}
