package voice

import (
	"context"
	"net/url"

	"github.com/bowerhall/voxtutor/internal/llm"
	"github.com/bowerhall/voxtutor/internal/logger"
	"github.com/bowerhall/voxtutor/internal/media"
	"github.com/bowerhall/voxtutor/internal/storage"
)

// Dialoguer is the slice of the dialogue engine the pipeline needs.
type Dialoguer interface {
	Converse(ctx context.Context, userID int64, text string) (string, error)
	Correct(ctx context.Context, text string) (string, error)
}

// Archiver stores a copy of the voice note before local cleanup.
type Archiver interface {
	ArchiveVoice(ctx context.Context, jobID, voicePath, transcript string) error
}

// Pipeline turns a voice attachment into dialogue: download, convert,
// transcribe, relay the transcript and its grammar correction, then fold the
// transcript into the user's session as if it had been typed.
type Pipeline struct {
	dir         string
	targetExt   string
	downloader  media.Downloader
	converter   media.Converter
	transcriber llm.Transcriber
	engine      Dialoguer
	archive     Archiver
}

type Config struct {
	Dir       string
	TargetExt string
}

func NewPipeline(cfg Config, downloader media.Downloader, converter media.Converter, transcriber llm.Transcriber, engine Dialoguer, archive *storage.Client) *Pipeline {
	targetExt := cfg.TargetExt
	if targetExt == "" {
		targetExt = ".mp3"
	}

	p := &Pipeline{
		dir:         cfg.Dir,
		targetExt:   targetExt,
		downloader:  downloader,
		converter:   converter,
		transcriber: transcriber,
		engine:      engine,
	}

	// A nil *storage.Client inside a non-nil interface would still be
	// called; only assign when archival is actually configured.
	if archive != nil {
		p.archive = archive
	}

	return p
}

// Process handles one voice message end to end. Replies (including error
// replies) go through reply; both temp files are removed on every exit path.
func (p *Pipeline) Process(ctx context.Context, userID int64, fileURL string, reply func(string) error) {
	job := media.NewJob(p.dir, remotePath(fileURL), p.targetExt)
	defer job.Cleanup()

	if err := p.downloader.Download(ctx, fileURL, job.SourcePath); err != nil {
		logger.Error("voice download failed", "error", err, "user", userID)
		p.send(reply, "[ERROR:Download] "+err.Error())
		return
	}

	if err := p.converter.Convert(ctx, job.SourcePath, job.ConvertedPath); err != nil {
		logger.Error("voice conversion failed", "error", err, "user", userID)
		p.send(reply, "[ERROR:Conversion] "+err.Error())
		return
	}

	text, err := p.transcriber.Transcribe(ctx, job.ConvertedPath)
	if err != nil {
		logger.Error("transcription failed", "error", err, "user", userID)
		p.send(reply, "[ERROR:Transcription] "+err.Error())
		return
	}

	p.send(reply, "[Voice message]: "+text)

	if p.archive != nil {
		if err := p.archive.ArchiveVoice(ctx, job.ID, job.SourcePath, text); err != nil {
			logger.Warn("voice archive failed", "error", err, "job", job.ID)
		}
	}

	// Side-channel correction; its result is never stored as a turn.
	fixed, err := p.engine.Correct(ctx, text)
	if err != nil {
		logger.Error("correction failed", "error", err, "user", userID)
		p.send(reply, "[ERROR:ChatGPT]: "+err.Error())
		return
	}
	p.send(reply, "[Fixed message]: "+fixed)

	answer, err := p.engine.Converse(ctx, userID, text)
	if err != nil {
		p.send(reply, "[ERROR:ChatGPT]: "+err.Error())
		return
	}
	p.send(reply, answer)
}

func (p *Pipeline) send(reply func(string) error, text string) {
	if err := reply(text); err != nil {
		logger.Error("reply failed", "error", err)
	}
}

// remotePath extracts the path component of the attachment URL; its
// extension tells the job what the source format is.
func remotePath(fileURL string) string {
	u, err := url.Parse(fileURL)
	if err != nil {
		return fileURL
	}
	return u.Path
}
