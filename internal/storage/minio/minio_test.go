package minio

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/requesthub/requests-service/internal/config"
	"github.com/requesthub/requests-service/internal/storage"
)

// Интеграционные тесты для пакета minio:
// — поднимают реальный MinIO через testcontainers-go;
// — создают общий бакет для файлов заявок;
// — проверяют:
//    New: успешное подключение и ошибку при отсутствии бакета;
//    PutObject: синхронную запись и md5-контрольную сумму в ETag;
//    ObjectContent: чтение содержимого и ErrNotFoundObject;
//    RemoveObject: удаление и идемпотентность по отсутствующему ключу.
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -race -count=1

func startMinio(t *testing.T, createBucket bool) (*BlobStorage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const (
		image        = "docker.io/minio/minio:latest"
		rootUser     = "root"
		rootPassword = "rootpass"
		bucket       = "request-files"
	)
	req := tc.ContainerRequest{
		Image: image,
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd:          []string{"server", "/data", "--console-address", ":9001"},
		ExposedPorts: []string{"9000/tcp", "9001/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	t.Logf("starting minio container with image=%q", image)
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "9000/tcp")
	endpoint := fmt.Sprintf("http://%s:%s", host, port.Port())

	if createBucket {
		admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
			Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
			Secure: false,
		})
		require.NoError(t, err)
		err = admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"})
		require.NoError(t, err)
	}

	cfg := &config.Config{
		S3: config.S3Config{
			Endpoint:     endpoint,
			RootUser:     rootUser,
			RootPassword: rootPassword,
			Bucket:       bucket,
		},
	}

	st, newErr := New(ctx, cfg)
	if !createBucket {
		require.Error(t, newErr)
		_ = c.Terminate(context.Background())
		return nil, func() {}
	}
	require.NoError(t, newErr)

	cleanup := func() {
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func TestIntegration_New_BucketMustExist(t *testing.T) {
	// Без предварительного создания бакета New должен вернуть ошибку.
	_, _ = startMinio(t, false)
}

func TestIntegration_PutObject_And_ObjectContent_OK(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	bucketID := uuid.New()
	content := []byte("request attachment body")
	sum := md5.Sum(content)

	info, err := st.PutObject(context.Background(), bucketID, "report-abcde-fghij.txt",
		bytes.NewReader(content), int64(len(content)), "text/plain")
	require.NoError(t, err)
	require.EqualValues(t, len(content), info.Size)
	require.Equal(t, hex.EncodeToString(sum[:]), info.ETag)

	rc, err := st.ObjectContent(context.Background(), bucketID, "report-abcde-fghij.txt")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestIntegration_ObjectContent_NotFound(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	_, err := st.ObjectContent(context.Background(), uuid.New(), "missing-00000-00000.txt")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFoundObject)
}

func TestIntegration_RemoveObject_OK_And_MissingIsNoError(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	bucketID := uuid.New()
	content := []byte("to be removed")

	_, err := st.PutObject(context.Background(), bucketID, "gone-aaaaa-bbbbb.txt",
		bytes.NewReader(content), int64(len(content)), "text/plain")
	require.NoError(t, err)

	require.NoError(t, st.RemoveObject(context.Background(), bucketID, "gone-aaaaa-bbbbb.txt"))

	_, err = st.ObjectContent(context.Background(), bucketID, "gone-aaaaa-bbbbb.txt")
	require.ErrorIs(t, err, storage.ErrNotFoundObject)

	// Повторное удаление отсутствующего объекта — не ошибка.
	require.NoError(t, st.RemoveObject(context.Background(), bucketID, "gone-aaaaa-bbbbb.txt"))
}

// TestIntegration_PutObject_IsolatedByBucketPrefix — объекты разных бакетов
// заявок не пересекаются даже при одинаковых ключах.
func TestIntegration_PutObject_IsolatedByBucketPrefix(t *testing.T) {
	st, cleanup := startMinio(t, true)
	defer cleanup()

	first, second := uuid.New(), uuid.New()

	_, err := st.PutObject(context.Background(), first, "same-11111-22222.txt",
		bytes.NewReader([]byte("first")), 5, "text/plain")
	require.NoError(t, err)

	_, err = st.PutObject(context.Background(), second, "same-11111-22222.txt",
		bytes.NewReader([]byte("second")), 6, "text/plain")
	require.NoError(t, err)

	rc, err := st.ObjectContent(context.Background(), first, "same-11111-22222.txt")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "first", string(got))
}
