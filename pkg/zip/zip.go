package zip

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// Asset is one file to place in an archive. Open is called lazily while the
// archive is written so large attachments are streamed.
type Asset struct {
	Filename string
	Open     func() (io.ReadCloser, error)
}

// ArchiveAssets writes assets into a zip stream on w. Duplicate names get a
// numeric suffix ("a.pdf", "a (2).pdf") so no entry shadows another.
func ArchiveAssets(w io.Writer, assets []Asset) error {
	zw := zip.NewWriter(w)
	seen := map[string]int{}
	for _, asset := range assets {
		name := uniqueName(seen, entryName(asset.Filename))
		if err := addEntry(zw, name, asset); err != nil {
			zw.Close()
			return err
		}
	}
	return zw.Close()
}

func addEntry(zw *zip.Writer, name string, asset Asset) error {
	rc, err := asset.Open()
	if err != nil {
		return fmt.Errorf("zip: open %s: %w", name, err)
	}
	defer rc.Close()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("zip: create %s: %w", name, err)
	}
	if _, err := io.Copy(w, rc); err != nil {
		return fmt.Errorf("zip: copy %s: %w", name, err)
	}
	return nil
}

// entryName strips directories so entries stay at the archive root.
func entryName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}

func uniqueName(seen map[string]int, name string) string {
	seen[name]++
	n := seen[name]
	if n == 1 {
		return name
	}
	ext := path.Ext(name)
	candidate := fmt.Sprintf("%s (%d)%s", strings.TrimSuffix(name, ext), n, ext)
	// the suffixed name may itself collide with a real file name
	if seen[candidate] > 0 {
		return uniqueName(seen, candidate)
	}
	seen[candidate]++
	return candidate
}
