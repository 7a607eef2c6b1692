package services

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storedObject struct {
	Path        string
	ContentType string
	Data        []byte
}

type fakeUploader struct {
	objects []storedObject
	err     error
}

func (f *fakeUploader) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.objects = append(f.objects, storedObject{Path: path, ContentType: contentType, Data: data})
	return PublicURL("arfind-test", path), nil
}

func multipartFile(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&body, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[field][0]
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestImageService_UploadImage(t *testing.T) {
	up := &fakeUploader{}
	svc := NewImageService(up)
	svc.newID = func() string { return "fixed" }

	url, err := svc.UploadImage(context.Background(), multipartFile(t, "imagen_file", "plan.JPEG", pngBytes(t)), "planes")
	require.NoError(t, err)

	assert.Equal(t, "https://storage.googleapis.com/arfind-test/planes/fixed.jpg", url)
	require.Len(t, up.objects, 1)
	assert.Equal(t, "image/jpeg", up.objects[0].ContentType)
	assert.Equal(t, []byte{0xFF, 0xD8}, up.objects[0].Data[:2])
}

func TestImageService_UploadImage_UnknownExtensionBecomesPNG(t *testing.T) {
	up := &fakeUploader{}
	svc := NewImageService(up)
	svc.newID = func() string { return "id" }

	_, err := svc.UploadImage(context.Background(), multipartFile(t, "imagen_file", "foto.gif", pngBytes(t)), "productos")
	require.NoError(t, err)
	assert.Equal(t, "productos/id.png", up.objects[0].Path)
	assert.Equal(t, "image/png", up.objects[0].ContentType)
}

func TestImageService_UploadImage_Errors(t *testing.T) {
	svc := NewImageService(&fakeUploader{})
	_, err := svc.UploadImage(context.Background(), multipartFile(t, "imagen_file", "x.png", []byte("nope")), "planes")
	assert.Error(t, err)

	failing := NewImageService(&fakeUploader{err: errors.New("bucket down")})
	_, err = failing.UploadImage(context.Background(), multipartFile(t, "imagen_file", "x.png", pngBytes(t)), "planes")
	assert.EqualError(t, err, "bucket down")
}

func TestImageService_UploadRaw(t *testing.T) {
	up := &fakeUploader{}
	svc := NewImageService(up)
	svc.newID = func() string { return "raw" }

	data := []byte("%PDF-1.4 contenido")
	url, err := svc.UploadRaw(context.Background(), "Contrato.pdf", data, "")
	require.NoError(t, err)

	assert.Equal(t, "https://storage.googleapis.com/arfind-test/uploads/raw.pdf", url)
	assert.Equal(t, "application/pdf", up.objects[0].ContentType)
	assert.Equal(t, data, up.objects[0].Data)
}
