package model

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidID reports whether s is a well-formed object id (24 hex characters).
// Anything else must never reach the network layer: list rendering filters
// such entries out before favorite/share handlers can see them.
func ValidID(s string) bool {
	_, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	return err == nil
}
