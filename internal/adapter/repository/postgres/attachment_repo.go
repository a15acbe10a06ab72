package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/thumbgate/internal/domain"
	"github.com/marcos-nsantos/thumbgate/internal/domain/entity"
)

const uniqueViolation = "23505"

var ErrDuplicatePathID = errors.New("attachment path id already exists")

type AttachmentRepo struct {
	pool *pgxpool.Pool
}

func NewAttachmentRepo(pool *pgxpool.Pool) *AttachmentRepo {
	return &AttachmentRepo{pool: pool}
}

func (r *AttachmentRepo) Create(ctx context.Context, attachment *entity.Attachment) error {
	query := `
		INSERT INTO attachments (id, path_id, owner_id, realm_id, is_realm_public, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		attachment.ID, attachment.PathID, attachment.OwnerID, attachment.RealmID,
		attachment.IsRealmPublic, attachment.Size, attachment.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicatePathID
		}
		return fmt.Errorf("inserting attachment: %w", err)
	}
	return nil
}

func (r *AttachmentRepo) GetByPathID(ctx context.Context, pathID string) (*entity.Attachment, error) {
	query := `
		SELECT id, path_id, owner_id, realm_id, is_realm_public, size, created_at
		FROM attachments
		WHERE path_id = $1
	`
	var a entity.Attachment
	err := r.pool.QueryRow(ctx, query, pathID).Scan(
		&a.ID, &a.PathID, &a.OwnerID, &a.RealmID, &a.IsRealmPublic, &a.Size, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("querying attachment: %w", err)
	}
	return &a, nil
}

func (r *AttachmentRepo) SetRealmPublic(ctx context.Context, id uuid.UUID, public bool) error {
	result, err := r.pool.Exec(ctx, `UPDATE attachments SET is_realm_public = $2 WHERE id = $1`, id, public)
	if err != nil {
		return fmt.Errorf("updating attachment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAttachmentNotFound
	}
	return nil
}

func (r *AttachmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM attachments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting attachment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAttachmentNotFound
	}
	return nil
}
