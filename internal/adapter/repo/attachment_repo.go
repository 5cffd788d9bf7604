package repo

import (
	"context"

	"iptrack/internal/domain"
	"iptrack/internal/infra"
	"iptrack/internal/sqlinline"
)

// AttachmentRepositoryPG implements domain.AttachmentRepository using PostgreSQL.
type AttachmentRepositoryPG struct {
	db infra.SQLExecutor
}

func NewAttachmentRepository(db infra.SQLExecutor) *AttachmentRepositoryPG {
	return &AttachmentRepositoryPG{db: db}
}

func scanAttachment(s scanner, a *domain.Attachment) error {
	return s.Scan(&a.ID, &a.AssetKind, &a.AssetID, &a.Filename, &a.OriginalName, &a.MimeType, &a.Size, &a.Path, &a.CreatedAt)
}

// Create links a stored blob to its asset. The owning column is chosen by
// AssetKind, so only attachable kinds are accepted.
func (r *AttachmentRepositoryPG) Create(ctx context.Context, a *domain.Attachment) error {
	if !a.AssetKind.AcceptsAttachments() {
		return domain.ErrUnsupportedKind
	}
	err := r.db.QueryRow(ctx, sqlinline.QInsertAttachment,
		string(a.AssetKind), a.AssetID, a.Filename, a.OriginalName, a.MimeType, a.Size, a.Path,
	).Scan(&a.ID, &a.CreatedAt)
	return mapError("create attachment", err)
}

func (r *AttachmentRepositoryPG) Get(ctx context.Context, id string) (*domain.Attachment, error) {
	var a domain.Attachment
	if err := scanAttachment(r.db.QueryRow(ctx, sqlinline.QSelectAttachmentByID, id), &a); err != nil {
		return nil, mapError("get attachment", err)
	}
	return &a, nil
}

func (r *AttachmentRepositoryPG) ListByAsset(ctx context.Context, kind domain.Kind, assetID string) ([]domain.Attachment, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListAttachmentsByAsset, string(kind), assetID)
	if err != nil {
		return nil, mapError("list attachments", err)
	}
	items, err := collect(rows, scanAttachment)
	return items, mapError("list attachments", err)
}

// ListByAssets loads the attachments of many assets in one round trip.
func (r *AttachmentRepositoryPG) ListByAssets(ctx context.Context, kind domain.Kind, assetIDs []string) ([]domain.Attachment, error) {
	if len(assetIDs) == 0 {
		return []domain.Attachment{}, nil
	}
	rows, err := r.db.Query(ctx, sqlinline.QListAttachmentsByAssets, string(kind), assetIDs)
	if err != nil {
		return nil, mapError("list attachments", err)
	}
	items, err := collect(rows, scanAttachment)
	return items, mapError("list attachments", err)
}

func (r *AttachmentRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, sqlinline.QDeleteAttachment, id)
	return expectOne("delete attachment", tag, err)
}

var _ domain.AttachmentRepository = (*AttachmentRepositoryPG)(nil)
