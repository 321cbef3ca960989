package media

import (
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bowerhall/voxtutor/internal/logger"
)

// Job holds the two transient files of one voice-message conversion. The
// random job ID keeps concurrent downloads apart and guarantees the source
// and converted paths never collide, whatever the remote extension is.
type Job struct {
	ID            string
	SourcePath    string
	ConvertedPath string
}

func NewJob(dir, remotePath, targetExt string) Job {
	id := uuid.NewString()

	ext := path.Ext(remotePath)
	if ext == "" || ext == targetExt {
		ext = ".src" + ext
	}

	return Job{
		ID:            id,
		SourcePath:    filepath.Join(dir, id+ext),
		ConvertedPath: filepath.Join(dir, id+targetExt),
	}
}

// Cleanup removes both job files. Removal failures are logged and swallowed;
// a leaked temp file is not worth failing the message for. The sweeper picks
// up anything left behind.
func (j Job) Cleanup() {
	for _, p := range []string{j.SourcePath, j.ConvertedPath} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			logger.Warn("temp file removal failed", "path", p, "error", err)
		}
	}
}
