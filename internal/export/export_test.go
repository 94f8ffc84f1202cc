package export

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestedFilename(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		expected string
	}{
		{"simple name", "Jane Doe", "Jane_Doe_Resume.pdf"},
		{"single word", "Jane", "Jane_Resume.pdf"},
		{"extra whitespace", "  Jane   van  Doe ", "Jane_van_Doe_Resume.pdf"},
		{"blank falls back", "", "Resume.pdf"},
		{"whitespace only falls back", "   ", "Resume.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SuggestedFilename(tt.fullName))
		})
	}
}

type fakeExporter struct {
	pdf     []byte
	err     error
	block   chan struct{}
	gotHTML string
}

func (f *fakeExporter) ExportPDF(_ context.Context, surfaceHTML string) ([]byte, error) {
	f.gotHTML = surfaceHTML
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.pdf, nil
}

func TestStartJob_Success(t *testing.T) {
	exporter := &fakeExporter{pdf: []byte("%PDF-1.4 fake")}

	job := StartJob(exporter, "<html></html>", "Jane Doe")
	assert.Equal(t, "Jane_Doe_Resume.pdf", job.Filename())

	pdf, err := job.Result()
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), pdf)
	assert.Equal(t, StatusSuccess, job.Status())
	assert.Equal(t, "<html></html>", exporter.gotHTML)
}

func TestStartJob_Failure(t *testing.T) {
	exporter := &fakeExporter{err: errors.New("chrome not found")}

	job := StartJob(exporter, "<html></html>", "")
	assert.Equal(t, "Resume.pdf", job.Filename())

	pdf, err := job.Result()
	assert.Error(t, err)
	assert.Nil(t, pdf)
	assert.Equal(t, StatusFailure, job.Status())
}

func TestStartJob_PendingWhileRunning(t *testing.T) {
	exporter := &fakeExporter{pdf: []byte("x"), block: make(chan struct{})}

	job := StartJob(exporter, "<html></html>", "Jane Doe")
	assert.Equal(t, StatusPending, job.Status())

	close(exporter.block)
	select {
	case <-job.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("job did not finish")
	}
	assert.Equal(t, StatusSuccess, job.Status())
}

func TestStartJob_RetryAfterFailure(t *testing.T) {
	// A failed export leaves the caller free to start a fresh job
	failing := &fakeExporter{err: errors.New("capture failed")}
	first := StartJob(failing, "<html></html>", "Jane Doe")
	_, err := first.Result()
	require.Error(t, err)

	working := &fakeExporter{pdf: []byte("ok")}
	second := StartJob(working, "<html></html>", "Jane Doe")
	pdf, err := second.Result()
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), pdf)
}
