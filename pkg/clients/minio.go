package clients

import (
	"context"

	config "github.com/DRSN-tech/inventory-service/internal/cfg"
	"github.com/DRSN-tech/inventory-service/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// NewMinIOClient создаёт клиент хранилища CSV-отчётов.
func NewMinIOClient(c *config.MinIOCfg) (*minio.Client, error) {
	client, err := minio.New(c.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.MinioRootUser, c.MinioRootPassword, ""),
		Secure: c.MinioUseSSL,
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	return client, nil
}

// EnsureBucket создаёт бакет отчётов при старте. Бакет, созданный параллельно запущенной репликой, не ошибка.
func EnsureBucket(ctx context.Context, client *minio.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if exists {
		return nil
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		if bucketAlreadyOurs(err) {
			return nil
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

func bucketAlreadyOurs(err error) bool {
	switch minio.ToErrorResponse(err).Code {
	case "BucketAlreadyOwnedByYou", "BucketAlreadyExists":
		return true
	}
	return false
}
