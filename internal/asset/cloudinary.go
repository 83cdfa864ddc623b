package asset

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Cloudinary is a minimal client for the Cloudinary upload API. Images
// upload as image resources; PDFs upload as raw resources so the stored
// reference keeps its .pdf extension and renders in the browser.
type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
	BaseURL   string
	httpDo    *http.Client
}

// NewCloudinary builds a client for the given cloud credentials.
func NewCloudinary(cloudName, apiKey, apiSecret string) *Cloudinary {
	return &Cloudinary{
		CloudName: cloudName,
		APIKey:    apiKey,
		APISecret: apiSecret,
		BaseURL:   "https://api.cloudinary.com/v1_1",
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type uploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

type destroyResponse struct {
	Result string `json:"result"`
}

// Upload stores the file under namespace and returns its reference URL.
// The public id is the upload timestamp joined with the original file
// name, mirroring how existing references were minted.
func (c *Cloudinary) Upload(ctx context.Context, namespace string, file File) (string, error) {
	publicID := uploadPublicID(file)
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	params := map[string]string{
		"folder":    namespace,
		"public_id": publicID,
		"timestamp": timestamp,
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range params {
		if err := writer.WriteField(key, value); err != nil {
			return "", err
		}
	}
	if err := writer.WriteField("api_key", c.APIKey); err != nil {
		return "", err
	}
	if err := writer.WriteField("signature", c.sign(params)); err != nil {
		return "", err
	}

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/%s/%s/upload", c.BaseURL, c.CloudName, resourceType(file))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return "", fmt.Errorf("cloudinary upload http %d: %v", resp.StatusCode, errMap)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.SecureURL != "" {
		return out.SecureURL, nil
	}
	return out.URL, nil
}

// Delete removes the asset identified by namespace/publicID. Missing
// assets are not an error; the store answers "not found" and the caller
// only cares that nothing is left behind.
func (c *Cloudinary) Delete(ctx context.Context, namespace, publicID string) error {
	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	fullID := fmt.Sprintf("%s/%s", namespace, publicID)

	params := map[string]string{
		"public_id": fullID,
		"timestamp": timestamp,
	}

	form := make([]string, 0, 4)
	for key, value := range params {
		form = append(form, fmt.Sprintf("%s=%s", key, value))
	}
	form = append(form, "api_key="+c.APIKey, "signature="+c.sign(params))

	// Both image and raw destroys go through the image endpoint first;
	// raw assets answer "not found" there and get a second attempt.
	for _, resource := range []string{"image", "raw"} {
		endpoint := fmt.Sprintf("%s/%s/%s/destroy", c.BaseURL, c.CloudName, resource)
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(strings.Join(form, "&")))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpDo.Do(req)
		if err != nil {
			return err
		}

		var out destroyResponse
		decodeErr := json.NewDecoder(resp.Body).Decode(&out)
		resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("cloudinary destroy http %d", resp.StatusCode)
		}
		if decodeErr != nil {
			return decodeErr
		}
		if out.Result == "ok" {
			return nil
		}
	}

	return fmt.Errorf("cloudinary destroy %s: not found", fullID)
}

// sign produces the SHA-1 request signature over the sorted parameters.
func (c *Cloudinary) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, params[key]))
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.APISecret))
	return hex.EncodeToString(sum[:])
}

func resourceType(file File) string {
	if file.ContentType == "application/pdf" {
		return "raw"
	}
	return "image"
}

// uploadPublicID names the asset after the upload instant plus the
// original file name. Image ids drop the extension (Cloudinary appends
// the delivery format); raw ids keep it so the stored URL still ends in
// .pdf and renders inline.
func uploadPublicID(file File) string {
	base := filepath.Base(file.Name)
	if !file.IsPDF() {
		if idx := strings.Index(base, "."); idx >= 0 {
			base = base[:idx]
		}
	}
	if base == "" || base == "." {
		base = "upload"
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)
}

