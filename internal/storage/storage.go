// Package storage contains object storage abstractions for user and catalog images
// kept in an S3-compatible store.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// ErrUnsupportedImage is returned when an upload is not a JPEG, PNG or WebP image.
var ErrUnsupportedImage = errors.New("unsupported image type")

// MaxImageSize bounds avatar and photo uploads.
const MaxImageSize = 5 << 20

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, or -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Storage is an S3-compatible object storage client.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageExt returns the file extension for an accepted image content type.
func ImageExt(contentType string) (string, error) {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	ext, ok := imageExt[ct]
	if !ok {
		return "", ErrUnsupportedImage
	}
	return ext, nil
}

// AvatarKey is the object key of a user's avatar.
func AvatarKey(userID, ext string) string {
	return fmt.Sprintf("avatars/%s%s", userID, ext)
}

// SportPhotoKey is the object key of a sport's photo.
func SportPhotoKey(sportID int64, ext string) string {
	return fmt.Sprintf("sports/%d%s", sportID, ext)
}
