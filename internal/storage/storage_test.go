package storage

import (
	"testing"

	"cinesport/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestImageExt(t *testing.T) {
	tests := []struct {
		ct      string
		want    string
		wantErr bool
	}{
		{ct: "image/jpeg", want: ".jpg"},
		{ct: "image/PNG", want: ".png"},
		{ct: "image/webp; charset=binary", want: ".webp"},
		{ct: "application/pdf", wantErr: true},
		{ct: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.ct, func(t *testing.T) {
			got, err := ImageExt(tt.ct)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedImage)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "avatars/u-1.png", AvatarKey("u-1", ".png"))
	assert.Equal(t, "sports/7.jpg", SportPhotoKey(7, ".jpg"))
}

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		msg  string
	}{
		{name: "endpoint", cfg: config.MinIOConfig{}, msg: "minio endpoint is required"},
		{name: "credentials", cfg: config.MinIOConfig{Endpoint: "localhost:9000"}, msg: "minio credentials are required"},
		{name: "bucket", cfg: config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"}, msg: "minio bucket is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(tt.cfg)
			assert.Nil(t, s)
			assert.EqualError(t, err, tt.msg)
		})
	}
}
