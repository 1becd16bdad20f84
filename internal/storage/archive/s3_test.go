// internal/storage/archive/s3_test.go
package archive

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3Storage_ImplementsStorage(t *testing.T) {
	var _ Storage = (*S3Storage)(nil)
}

func TestNewS3_RequiresBucket(t *testing.T) {
	_, err := NewS3(S3Config{Region: "us-east-1"})
	assert.Error(t, err)
}

func TestS3Storage_KeyAndRelative(t *testing.T) {
	tests := []struct {
		prefix string
		path   string
		want   string
	}{
		{"", "510050/physical/delta-0.3.json", "510050/physical/delta-0.3.json"},
		{"bundles", "510050/physical/delta-0.3.json", "bundles/510050/physical/delta-0.3.json"},
		{"/bundles/", "/510050/a.json", "bundles/510050/a.json"},
	}

	for _, tt := range tests {
		s, err := NewS3(S3Config{Bucket: "b", Region: "us-east-1", Prefix: tt.prefix})
		require.NoError(t, err)

		got := s.key(tt.path)
		assert.Equal(t, tt.want, got, "key(%q) with prefix %q", tt.path, tt.prefix)
	}
}

func TestS3Storage_Relative(t *testing.T) {
	s := &S3Storage{prefix: "bundles"}
	assert.Equal(t, "510050/a.json", s.relative("bundles/510050/a.json"))

	bare := &S3Storage{}
	assert.Equal(t, "510050/a.json", bare.relative("510050/a.json"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&smithy.GenericAPIError{Code: "NotFound"}))
	assert.True(t, isNotFound(fmt.Errorf("head: %w", &smithy.GenericAPIError{Code: "NoSuchKey"})))
	assert.False(t, isNotFound(&smithy.GenericAPIError{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("NotFound")))
}

func TestNew_SelectsBackend(t *testing.T) {
	st, err := New(Config{Type: TypeLocalFS, Path: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalFS{}, st)

	st, err = New(Config{Type: TypeS3, S3: S3Config{Bucket: "b", Region: "us-east-1"}})
	require.NoError(t, err)
	assert.IsType(t, &S3Storage{}, st)

	_, err = New(Config{Type: "ftp"})
	assert.Error(t, err)
}
