package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type Converter interface {
	Convert(ctx context.Context, src, dst string) error
}

// FFmpeg converts audio by shelling out to the ffmpeg binary. Run collapses
// the process's end/error/exit events into a single error-or-nil result.
type FFmpeg struct {
	// Quality is the target audio bitrate in kbit/s.
	Quality int
}

const defaultQuality = 96

func (f FFmpeg) Convert(ctx context.Context, src, dst string) error {
	quality := f.Quality
	if quality <= 0 {
		quality = defaultQuality
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y", "-loglevel", "error",
		"-i", src,
		"-vn", "-codec:a", "libmp3lame",
		"-b:a", fmt.Sprintf("%dk", quality),
		dst,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("ffmpeg: %s", msg)
		}
		return fmt.Errorf("ffmpeg: %w", err)
	}

	return nil
}
