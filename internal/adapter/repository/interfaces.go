package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/thumbgate/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *entity.Attachment) error
	GetByPathID(ctx context.Context, pathID string) (*entity.Attachment, error)
	SetRealmPublic(ctx context.Context, id uuid.UUID, public bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
