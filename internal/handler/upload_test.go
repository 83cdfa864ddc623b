package handler

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/textproto"
	"testing"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestFormFileAcceptsPNG(t *testing.T) {
	data := pngBytes(t)
	body, contentType := multipartBody(t, "skillIcon", "icon.png", "image/png", data)
	c := testContext(t, "POST", contentType, body)

	file, err := formFile(c, "skillIcon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file == nil {
		t.Fatal("expected a file")
	}
	if file.Name != "icon.png" || file.ContentType != "image/png" {
		t.Fatalf("unexpected file metadata: %+v", file)
	}
	if file.Size != int64(len(data)) {
		t.Fatalf("expected size %d, got %d", len(data), file.Size)
	}
}

func TestFormFileAcceptsPDF(t *testing.T) {
	body, contentType := multipartBody(t, "resumePdf", "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	c := testContext(t, "POST", contentType, body)

	file, err := formFile(c, "resumePdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file == nil || !file.IsPDF() {
		t.Fatalf("expected a PDF file, got %+v", file)
	}
}

func TestFormFileMissingFieldIsNil(t *testing.T) {
	body, contentType := multipartBody(t, "other", "icon.png", "image/png", pngBytes(t))
	c := testContext(t, "POST", contentType, body)

	file, err := formFile(c, "skillIcon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file != nil {
		t.Fatalf("expected nil file for a missing field, got %+v", file)
	}
}

func TestFormFileNonMultipartIsNil(t *testing.T) {
	c := testContext(t, "POST", "application/json", bytes.NewBufferString(`{"skillName":"Go"}`))

	file, err := formFile(c, "skillIcon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file != nil {
		t.Fatalf("expected nil file without a multipart body, got %+v", file)
	}
}

func TestFormFileRejectsUnknownType(t *testing.T) {
	body, contentType := multipartBody(t, "skillIcon", "notes.txt", "text/plain", []byte("hello"))
	c := testContext(t, "POST", contentType, body)

	if _, err := formFile(c, "skillIcon"); !errors.Is(err, errFileType) {
		t.Fatalf("expected errFileType, got %v", err)
	}
}

func TestFormFileRejectsCorruptPNG(t *testing.T) {
	body, contentType := multipartBody(t, "skillIcon", "icon.png", "image/png", []byte("not a png"))
	c := testContext(t, "POST", contentType, body)

	if _, err := formFile(c, "skillIcon"); err == nil {
		t.Fatal("expected an error for a corrupt image")
	}
}

func TestFormFileAllowsSVGWithoutDecode(t *testing.T) {
	body, contentType := multipartBody(t, "skillIcon", "icon.svg", "image/svg+xml", []byte("<svg></svg>"))
	c := testContext(t, "POST", contentType, body)

	file, err := formFile(c, "skillIcon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file == nil || file.ContentType != "image/svg+xml" {
		t.Fatalf("expected the svg to pass through, got %+v", file)
	}
}
