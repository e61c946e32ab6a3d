package clients

import (
	"errors"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestBucketAlreadyOurs(t *testing.T) {
	assert.True(t, bucketAlreadyOurs(minio.ErrorResponse{Code: "BucketAlreadyOwnedByYou"}))
	assert.True(t, bucketAlreadyOurs(minio.ErrorResponse{Code: "BucketAlreadyExists"}))
	assert.False(t, bucketAlreadyOurs(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, bucketAlreadyOurs(errors.New("dial tcp: connection refused")))
}
