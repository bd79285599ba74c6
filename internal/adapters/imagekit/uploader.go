// Package imagekit uploads resume files to an ImageKit-style media CDN over
// its REST upload API.
package imagekit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/APVS-BRO/ai-careers-hub/internal/core"
	apperrors "github.com/APVS-BRO/ai-careers-hub/internal/errors"
)

// Config holds media CDN connection settings.
type Config struct {
	// UploadURL is the upload endpoint, e.g. https://upload.imagekit.io/api/v1/files/upload.
	UploadURL string
	// PrivateKey authenticates uploads via basic auth.
	PrivateKey string
	// Folder is the optional remote folder for uploaded files.
	Folder string
	// HTTPClient is optional; defaults to a 30s-timeout client.
	HTTPClient *http.Client
}

// Uploader implements core.MediaUploader against the CDN's upload API.
type Uploader struct {
	uploadURL  string
	privateKey string
	folder     string
	http       *http.Client
}

// NewUploader constructs a media uploader.
func NewUploader(cfg Config) (*Uploader, error) {
	if cfg.UploadURL == "" {
		return nil, errors.New("media upload URL is required")
	}
	if cfg.PrivateKey == "" {
		return nil, errors.New("media private key is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Uploader{
		uploadURL:  cfg.UploadURL,
		privateKey: cfg.PrivateKey,
		folder:     cfg.Folder,
		http:       httpClient,
	}, nil
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload sends the base64-encoded file as a multipart form and returns the
// hosted URL.
func (u *Uploader) Upload(ctx context.Context, req core.UploadRequest) (string, error) {
	if strings.TrimSpace(req.FileName) == "" {
		return "", apperrors.ValidationField("fileName", "file name is required")
	}
	if req.Base64Data == "" {
		return "", apperrors.ValidationField("file", "file data is required")
	}

	var body strings.Builder
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("file", req.Base64Data); err != nil {
		return "", fmt.Errorf("write file field: %w", err)
	}
	if err := writer.WriteField("fileName", req.FileName); err != nil {
		return "", fmt.Errorf("write fileName field: %w", err)
	}
	if u.folder != "" {
		if err := writer.WriteField("folder", u.folder); err != nil {
			return "", fmt.Errorf("write folder field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u.uploadURL, strings.NewReader(body.String()))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	// The CDN authenticates with the private key as basic auth user and an
	// empty password.
	httpReq.SetBasicAuth(u.privateKey, "")

	resp, err := u.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.Upstreamf("upload file: media CDN responded %d", resp.StatusCode)
	}

	var parsed uploadResponse
	if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&parsed); decodeErr != nil {
		return "", fmt.Errorf("decode upload response: %w", decodeErr)
	}
	if parsed.URL == "" {
		return "", apperrors.Upstream("upload file: media CDN returned no URL")
	}
	return parsed.URL, nil
}
