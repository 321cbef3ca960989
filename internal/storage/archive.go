package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/bowerhall/voxtutor/internal/logger"
)

// Client archives voice notes and their transcripts to object storage.
// Archival is best-effort and entirely optional; local cleanup never waits
// for it.
type Client struct {
	mc     *minio.Client
	bucket string
}

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

func NewClient(cfg Config) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	bucket := cfg.Bucket
	if bucket == "" {
		bucket = "voxtutor-voice"
	}

	return &Client{mc: mc, bucket: bucket}, nil
}

// Init creates the archive bucket if it doesn't exist.
func (c *Client) Init(ctx context.Context) error {
	exists, err := c.mc.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", c.bucket, err)
	}

	if !exists {
		if err := c.mc.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", c.bucket, err)
		}
		logger.Info("bucket created", "bucket", c.bucket)
	}

	return nil
}

// ArchiveVoice uploads the original voice file and its transcript under the
// job ID before the local copies are removed.
func (c *Client) ArchiveVoice(ctx context.Context, jobID, voicePath, transcript string) error {
	data, err := os.ReadFile(voicePath)
	if err != nil {
		return fmt.Errorf("read voice file: %w", err)
	}

	voiceName := jobID + path.Ext(voicePath)
	if err := c.upload(ctx, voiceName, data, "audio/ogg"); err != nil {
		return err
	}

	return c.upload(ctx, jobID+".txt", []byte(transcript), "text/plain")
}

func (c *Client) upload(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := c.mc.PutObject(ctx, c.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("upload %s/%s: %w", c.bucket, name, err)
	}

	logger.Debug("voice note archived", "bucket", c.bucket, "name", name, "size", len(data))
	return nil
}
