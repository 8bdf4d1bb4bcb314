package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dgallion1/docsect/internal/document"
)

// Worker converts a single document job.
type Worker struct {
	proc *document.Processor
	log  *slog.Logger
}

func NewWorker(proc *document.Processor, log *slog.Logger) *Worker {
	return &Worker{proc: proc, log: log}
}

// Process runs the conversion for a job and records its outcome.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	job.SetStatus(StatusConverting, "converting")
	res, err := w.proc.Process(job.FileData(), job.Filename)
	if err != nil {
		log.Error("conversion failed", "error", err)
		job.AddError(fmt.Sprintf("convert: %s", err))
		job.SetStatus(StatusFailed, "converting")
		return
	}

	job.SetResult(res)
	log.Info("conversion complete", "title", res.Meta.Title, "bytes", len(res.Page))
	job.SetStatus(StatusCompleted, "done")
}
