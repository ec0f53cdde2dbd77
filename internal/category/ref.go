package category

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsOpaqueReference reports whether s is a storage-generated category
// reference rather than a human-readable label. References are 24 hex
// digit ObjectIDs; nothing else in the pipeline inspects the format.
func IsOpaqueReference(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) == 24 && primitive.IsValidObjectID(s)
}

// NewReference returns a fresh reference in the same format.
func NewReference() string {
	return primitive.NewObjectID().Hex()
}
