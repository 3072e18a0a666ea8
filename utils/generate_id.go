package utils

import "github.com/google/uuid"

// GenerateID returns a new entity identifier. Every entity in the
// system (users, posts, tags, folders, images, sessions) uses the same
// UUID scheme.
func GenerateID() string {
	return uuid.NewString()
}
