package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// maxDownloadSize caps voice attachment downloads (20MB, the Telegram bot
// API file limit).
const maxDownloadSize = 20 * 1024 * 1024

type Downloader interface {
	Download(ctx context.Context, url, dst string) error
}

type HTTPDownloader struct {
	client *http.Client
}

func NewHTTPDownloader() *HTTPDownloader {
	return &HTTPDownloader{client: &http.Client{Timeout: 30 * time.Second}}
}

func (d *HTTPDownloader) Download(ctx context.Context, url, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed: HTTP %d", resp.StatusCode)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, io.LimitReader(resp.Body, maxDownloadSize)); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}

	return out.Close()
}
