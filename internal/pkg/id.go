package pkg

import "github.com/google/uuid"

// GenerateGameID returns a new random game id.
func GenerateGameID() string {
	return uuid.NewString()
}
