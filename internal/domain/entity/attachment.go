package entity

import (
	"time"

	"github.com/google/uuid"
)

type Attachment struct {
	ID            uuid.UUID
	PathID        string
	OwnerID       uuid.UUID
	RealmID       int64
	IsRealmPublic bool
	Size          int64
	CreatedAt     time.Time
}

func NewAttachment(pathID string, ownerID uuid.UUID, realmID int64, size int64) *Attachment {
	return &Attachment{
		ID:        uuid.New(),
		PathID:    pathID,
		OwnerID:   ownerID,
		RealmID:   realmID,
		Size:      size,
		CreatedAt: time.Now().UTC(),
	}
}

// CanBeViewedBy reports whether the given user may read the attachment.
func (a *Attachment) CanBeViewedBy(userID uuid.UUID, realmID int64) bool {
	if a.OwnerID == userID {
		return true
	}
	return a.IsRealmPublic && a.RealmID == realmID
}
