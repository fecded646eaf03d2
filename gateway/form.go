package gateway

import (
	"bytes"
	"io"
	"mime/multipart"

	"github.com/disintegration/imaging"
)

// Upload bounds, longest side in pixels. Product photos keep enough detail
// for marketplace cards; avatars stay small.
const (
	productImageMaxWidth = 1200
	avatarMaxWidth       = 400
)

// form accumulates a multipart body. Empty scalar values are skipped, the
// same way the dashboard assembled FormData payloads.
type form struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func newForm() *form {
	f := &form{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

func (f *form) field(key, value string) {
	if f.err != nil || value == "" {
		return
	}
	f.err = f.w.WriteField(key, value)
}

func (f *form) file(key, filename string, data []byte) {
	if f.err != nil {
		return
	}
	part, err := f.w.CreateFormFile(key, filename)
	if err != nil {
		f.err = err
		return
	}
	_, f.err = part.Write(data)
}

func (f *form) encode() (contentType string, body io.Reader, err error) {
	if f.err != nil {
		return "", nil, f.err
	}
	if err := f.w.Close(); err != nil {
		return "", nil, err
	}
	return f.w.FormDataContentType(), &f.buf, nil
}

// shrinkForUpload downscales an image before upload when it exceeds maxWidth.
// Payloads that do not decode as images pass through untouched.
func shrinkForUpload(data []byte, maxWidth int) []byte {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}
	if img.Bounds().Dx() <= maxWidth {
		return data
	}
	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG); err != nil {
		return data
	}
	return buf.Bytes()
}
