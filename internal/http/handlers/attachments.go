package handlers

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"iptrack/internal/domain"
	"iptrack/internal/storage"
	"iptrack/pkg/zip"
)

// multipartMemory is how much of an upload is buffered before spilling to disk.
const multipartMemory = 8 << 20

// attachmentTarget parses and validates an asset kind/id pair.
func attachmentTarget(rawKind, rawID string) (domain.Kind, string, error) {
	kind, err := domain.ParseKind(rawKind)
	if err != nil {
		return "", "", err
	}
	if !kind.AcceptsAttachments() {
		return "", "", fmt.Errorf("%w: %s does not take attachments", domain.ErrUnsupportedKind, kind)
	}
	id, err := parseUUID("assetId", rawID)
	if err != nil {
		return "", "", err
	}
	return kind, id, nil
}

// assetExists confirms the attachment owner is present before a blob is stored.
func (a *App) assetExists(ctx context.Context, kind domain.Kind, id string) error {
	var err error
	switch kind {
	case domain.KindTrademark:
		_, err = a.Trademarks.Get(ctx, id)
	case domain.KindTradeName:
		_, err = a.TradeNames.Get(ctx, id)
	case domain.KindMercantile:
		_, err = a.Mercantile.Get(ctx, id)
	default:
		err = domain.ErrUnsupportedKind
	}
	return err
}

func blobKey(att domain.Attachment) string {
	return string(att.AssetKind) + "/" + att.Filename
}

// removeBlob deletes the stored file of att. Failures leave an orphan file
// and are only logged.
func (a *App) removeBlob(r *http.Request, att domain.Attachment) {
	if a.Store == nil {
		return
	}
	if err := a.Store.Delete(r.Context(), blobKey(att)); err != nil {
		a.log(r).Warn().Err(err).Str("attachment_id", att.ID).Msg("delete attachment blob failed")
	}
}

// UploadAttachment stores a multipart "file" for the asset named by the
// assetType and assetId form fields.
func (a *App) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.MaxUploadBytes+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if strings.Contains(err.Error(), "too large") {
			a.fail(w, r, storage.ErrTooLarge)
			return
		}
		a.fail(w, r, invalidf("multipart form expected"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	kind, assetID, err := attachmentTarget(r.FormValue("assetType"), r.FormValue("assetId"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		a.fail(w, r, invalidf("file is required"))
		return
	}
	defer file.Close()
	if header.Size > a.MaxUploadBytes {
		a.fail(w, r, storage.ErrTooLarge)
		return
	}
	if err := a.assetExists(r.Context(), kind, assetID); err != nil {
		a.fail(w, r, err)
		return
	}

	key, size, err := a.Store.Save(r.Context(), storage.AttachmentKey(string(kind), header.Filename), file, a.MaxUploadBytes)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	att := &domain.Attachment{
		AssetKind:    kind,
		AssetID:      assetID,
		Filename:     path.Base(key),
		OriginalName: path.Base(strings.ReplaceAll(header.Filename, "\\", "/")),
		MimeType:     mimeType,
		Size:         size,
		Path:         a.UploadPrefix + "/" + key,
	}
	if err := a.Attachments.Create(r.Context(), att); err != nil {
		a.removeBlob(r, *att)
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusCreated, att)
}

// ListAttachments returns the files of the asset named by the assetType and
// assetId query parameters.
func (a *App) ListAttachments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind, assetID, err := attachmentTarget(q.Get("assetType"), q.Get("assetId"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	items, err := a.Attachments.ListByAsset(r.Context(), kind, assetID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.json(w, http.StatusOK, items)
}

func (a *App) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	att, err := a.Attachments.Get(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if err := a.Attachments.Delete(r.Context(), id); err != nil {
		a.fail(w, r, err)
		return
	}
	a.removeBlob(r, *att)
	a.json(w, http.StatusOK, map[string]bool{"ok": true})
}

// DownloadAttachmentsZip streams every attachment of one asset as a zip.
func (a *App) DownloadAttachmentsZip(w http.ResponseWriter, r *http.Request) {
	kind, assetID, err := attachmentTarget(chi.URLParam(r, "kind"), chi.URLParam(r, "assetId"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	items, err := a.Attachments.ListByAsset(r.Context(), kind, assetID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if len(items) == 0 {
		a.fail(w, r, fmt.Errorf("attachments: %w", domain.ErrNotFound))
		return
	}

	assets := make([]zip.Asset, 0, len(items))
	for _, att := range items {
		assets = append(assets, zip.Asset{
			Filename: att.OriginalName,
			Open: func() (io.ReadCloser, error) {
				return a.Store.Open(r.Context(), blobKey(att))
			},
		})
	}
	name := fmt.Sprintf("%s-%s.zip", kind, assetID)
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.WriteHeader(http.StatusOK)
	if err := zip.ArchiveAssets(w, assets); err != nil {
		// headers are gone; the client sees a truncated archive
		a.log(r).Error().Err(err).Str("asset_id", assetID).Msg("zip attachments failed")
	}
}
