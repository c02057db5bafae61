// Package storage uploads notice and complaint attachments to Cloudinary.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores attachments and returns their public URLs.
type Uploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// New creates a Cloudinary-backed uploader from a CLOUDINARY_URL-style
// connection string.
func New(cloudinaryURL, folder string) (*Uploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	cld.Config.URL.Secure = true
	return &Uploader{cld: cld, folder: folder}, nil
}

// Upload stores the file and returns its secure URL.
func (u *Uploader) Upload(ctx context.Context, r io.Reader, fileName string) (string, error) {
	params := uploader.UploadParams{
		Folder:         u.folder,
		PublicID:       fmt.Sprintf("%d-%s", time.Now().UnixNano(), fileName),
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
		Overwrite:      api.Bool(false),
	}
	resp, err := u.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if resp.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload returned no URL")
	}
	return resp.SecureURL, nil
}
