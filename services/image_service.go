package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/arfind/arfind_admin/utils"
)

// ObjectUploader stores bytes under a path and returns their public URL.
type ObjectUploader interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
}

// PublicURL is the anonymous download URL of an object.
func PublicURL(bucket, path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, path)
}

// GCSUploader writes public-read objects to a Cloud Storage bucket.
type GCSUploader struct {
	bucket     *storage.BucketHandle
	bucketName string
}

func NewGCSUploader(bucket *storage.BucketHandle, bucketName string) *GCSUploader {
	return &GCSUploader{bucket: bucket, bucketName: bucketName}
}

func (u *GCSUploader) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	obj := u.bucket.Object(path)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to write object %s: %w", path, err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to make %s public: %w", path, err)
	}

	return PublicURL(u.bucketName, path), nil
}

// ImageService prepares uploaded files and hands them to object storage.
type ImageService struct {
	uploader ObjectUploader
	newID    func() string
}

func NewImageService(uploader ObjectUploader) *ImageService {
	return &ImageService{uploader: uploader, newID: uuid.NewString}
}

// UploadImage re-encodes an uploaded image as PNG or JPEG and stores it
// under folder/<uuid>.<ext>.
func (s *ImageService) UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	if file.Size > utils.MaxUploadSize {
		return "", fmt.Errorf("file too large. Maximum size is %d bytes", utils.MaxUploadSize)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	target := utils.ImageTargetFor(file.Filename)
	data, err := utils.ReencodeImage(src, target)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("%s/%s.%s", folder, s.newID(), target.Ext)
	return s.uploader.Upload(ctx, path, target.ContentType, data)
}

// UploadRaw stores a file as-is; the content type is sniffed from its bytes.
func (s *ImageService) UploadRaw(ctx context.Context, filename string, data []byte, folder string) (string, error) {
	if len(data) > utils.MaxUploadSize {
		return "", fmt.Errorf("file too large. Maximum size is %d bytes", utils.MaxUploadSize)
	}

	path := fmt.Sprintf("%s/%s.%s", utils.CleanFolder(folder, "uploads"), s.newID(), utils.SafeExtension(filename))
	return s.uploader.Upload(ctx, path, http.DetectContentType(data), data)
}

// ReadUpload reads an uploaded multipart file into memory.
func ReadUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, utils.MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return data, nil
}
