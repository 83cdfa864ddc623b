package handler

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"

	"github.com/folioapi/internal/asset"
	"github.com/gin-gonic/gin"

	_ "golang.org/x/image/webp"
)

const maxUploadBytes = 10 << 20

var (
	errFileTooLarge = errors.New("file exceeds the 10MB upload limit")
	errFileType     = errors.New("only images and PDFs are allowed")
)

// formFile pulls one uploaded file out of a multipart request. A missing
// field (or a non-multipart body) yields (nil, nil) so callers can treat
// the file as optional; the required-file checks live in the services.
func formFile(c *gin.Context, field string) (*asset.File, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, nil
	}

	if header.Size > maxUploadBytes {
		return nil, errFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") && contentType != "application/pdf" {
		return nil, errFileType
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %q: %w", field, err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload %q: %w", field, err)
	}
	if int64(len(data)) > maxUploadBytes {
		return nil, errFileTooLarge
	}

	// Raster formats we can sniff get a decode check so corrupt uploads
	// fail here instead of surfacing as broken references later. SVG and
	// other image types pass through on the declared content type alone.
	switch contentType {
	case "image/png", "image/jpeg", "image/gif", "image/webp":
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("upload %q is not a valid %s file", field, contentType)
		}
	}

	return &asset.File{
		Name:        header.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Reader:      bytes.NewReader(data),
	}, nil
}
