// Package source loads a statement document from a local path or a Cloud
// Storage URI and determines its media type before it is handed to the
// extraction provider.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/dvloznov/bankvision/internal/extract"
)

// Load reads the document at arg, which is either a local file path or a
// "gs://bucket/object" URI, and sniffs its media type. Media-type acceptance
// is not checked here; the extract package rejects unsupported types.
func Load(ctx context.Context, arg string) (extract.Document, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(arg, "gs://") {
		data, err = downloadObject(ctx, arg)
	} else {
		data, err = os.ReadFile(arg)
	}
	if err != nil {
		return extract.Document{}, fmt.Errorf("Load: read %s: %w", arg, err)
	}

	return extract.Document{
		Data:     data,
		MIMEType: detectMediaType(arg, data),
		Filename: baseName(arg),
	}, nil
}

// downloadObject fetches the object bytes for a gs:// URI.
func downloadObject(ctx context.Context, gcsURI string) ([]byte, error) {
	bucket, object, err := splitGCSURI(gcsURI)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("open GCS object reader: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read GCS object: %w", err)
	}
	return data, nil
}

func splitGCSURI(uri string) (bucket, object string, err error) {
	trimmed := strings.TrimPrefix(uri, "gs://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid GCS URI %q, want gs://bucket/object", uri)
	}
	return parts[0], parts[1], nil
}

func baseName(arg string) string {
	if strings.HasPrefix(arg, "gs://") {
		return path.Base(arg)
	}
	return filepath.Base(arg)
}

// mediaTypeByExtension covers the accepted statement formats; anything else
// falls back to content sniffing and is rejected downstream if unsupported.
var mediaTypeByExtension = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".heic": "image/heic",
}

func detectMediaType(arg string, data []byte) string {
	ext := strings.ToLower(path.Ext(arg))
	if mt, ok := mediaTypeByExtension[ext]; ok {
		return mt
	}
	return http.DetectContentType(data)
}
