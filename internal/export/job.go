package export

import (
	"context"
	"log"
	"sync"
)

// Status is the lifecycle state of an export job
type Status string

// Export job states. There is no cancelled state: once started, a job runs
// to completion or failure; abandoning the handle just ignores the result.
const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Exporter produces PDF bytes from a rendered surface
type Exporter interface {
	ExportPDF(ctx context.Context, surfaceHTML string) ([]byte, error)
}

// Job is a single in-flight export. The capture-and-encode work runs in the
// background so the caller keeps accepting input while it is pending.
type Job struct {
	mu       sync.Mutex
	status   Status
	pdf      []byte
	err      error
	filename string
	done     chan struct{}
}

// StartJob kicks off an export of the surface in the background. The
// suggested download filename is derived from the person's name. The job is
// deliberately detached from any caller context: it cannot be cancelled.
func StartJob(exporter Exporter, surfaceHTML, fullName string) *Job {
	j := &Job{
		status:   StatusPending,
		filename: SuggestedFilename(fullName),
		done:     make(chan struct{}),
	}

	go func() {
		defer close(j.done)

		pdf, err := exporter.ExportPDF(context.Background(), surfaceHTML)

		j.mu.Lock()
		defer j.mu.Unlock()
		if err != nil {
			log.Printf("[EXPORT] %s failed: %v", j.filename, err)
			j.status = StatusFailure
			j.err = err
			return
		}
		j.status = StatusSuccess
		j.pdf = pdf
	}()

	return j
}

// Status returns the job's current state
func (j *Job) Status() Status {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.status
}

// Filename returns the suggested download filename
func (j *Job) Filename() string {
	return j.filename
}

// Done returns a channel closed when the job finishes either way
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Result returns the PDF bytes once the job succeeded, or the failure
// error. Calling it while the job is still pending blocks until completion.
func (j *Job) Result() ([]byte, error) {
	<-j.done
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.pdf, j.err
}
