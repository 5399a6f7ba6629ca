package s3

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alizaqureshi939-lab/Lafz-Box/internal/validate"
)

// ArtifactKind prefixes object keys so the bucket stays browsable.
type ArtifactKind string

const (
	KindCover ArtifactKind = "covers"
	KindPDF   ArtifactKind = "pdfs"
	KindQR    ArtifactKind = "qr"
)

// ObjectKey builds `<kind>/<slug>-<short-uuid><ext>` for a given story or
// settings artifact.
func ObjectKey(kind ArtifactKind, name, ext string) string {
	short := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s/%s-%s%s", kind, validate.Slugify(name), short, strings.ToLower(ext))
}

// UploadFile streams a local file into the bucket via a presigned PUT and
// returns the URL to store in the document.
// Content-Length MUST be set: some S3-compatible stores reject chunked uploads.
func (c *Client) UploadFile(ctx context.Context, kind ArtifactKind, name, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("open artifact: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat artifact: %w", err)
	}

	ext := filepath.Ext(localPath)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := ObjectKey(kind, name, ext)
	uploadURL, err := c.PresignUpload(ctx, key, contentType)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, f)
	if err != nil {
		return "", fmt.Errorf("create put request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	req.ContentLength = info.Size() // ensure no chunked encoding

	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload to bucket failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("upload failed status=%d", resp.StatusCode)
	}

	return c.ObjectURL(ctx, key)
}
