package domain

import "time"

// Attachment is a stored file linked to a trademark, trade name or
// mercantile record. Path is the public URL path of the blob.
type Attachment struct {
	ID           string    `json:"id"`
	AssetKind    Kind      `json:"asset_kind"`
	AssetID      string    `json:"asset_id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	Path         string    `json:"path"`
	CreatedAt    time.Time `json:"created_at"`
}
