package seed

import (
	"bytes"
	"context"
	"educanvas_backend/internal/config"
	"educanvas_backend/internal/util"
	"fmt"
	"io"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Source 数据来源
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	Name() string
}

// EmbedSource 编译进二进制的数据
type EmbedSource struct{}

func (EmbedSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(embeddedFixture)), nil
}

func (EmbedSource) Name() string {
	return util.FixtureEmbed
}

// FileSource 本地JSON文件
type FileSource struct {
	Path string
}

func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	return os.Open(s.Path)
}

func (s FileSource) Name() string {
	return util.FixtureFile + ":" + s.Path
}

// MinioSource MinIO / S3 中的对象
type MinioSource struct {
	Client *minio.Client
	Bucket string
	Object string
}

func NewMinioSource(cfg *config.FixtureConfig) (*MinioSource, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioSource{Client: client, Bucket: cfg.MinioBucket, Object: cfg.MinioObject}, nil
}

func (s *MinioSource) Open(ctx context.Context) (io.ReadCloser, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	// GetObject 是惰性的，Stat 触发请求以便尽早暴露对象不存在等错误
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, err
	}
	return obj, nil
}

func (s *MinioSource) Name() string {
	return util.FixtureMinio + ":" + s.Bucket + "/" + s.Object
}

// NewSource 根据配置选择数据来源
func NewSource(cfg *config.FixtureConfig) (Source, error) {
	switch cfg.Source {
	case "", util.FixtureEmbed:
		return EmbedSource{}, nil
	case util.FixtureFile:
		return FileSource{Path: cfg.Path}, nil
	case util.FixtureMinio:
		return NewMinioSource(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", util.ErrUnknownFixtureSource, cfg.Source)
	}
}
