package entity

import "github.com/google/uuid"

// Principal is the authenticated caller extracted from an access token.
type Principal struct {
	UserID  uuid.UUID
	RealmID int64
}
