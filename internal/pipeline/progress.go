package pipeline

import (
	"sync"
	"time"
)

// Status represents the overall bootstrap state.
type Status string

const (
	// StatusBootstrapping indicates extraction and indexing are in progress.
	StatusBootstrapping Status = "bootstrapping"
	// StatusReady indicates bootstrap is complete and search is available.
	StatusReady Status = "ready"
	// StatusError indicates bootstrap failed with a hard error.
	StatusError Status = "error"
)

// Snapshot is an immutable view of bootstrap progress.
type Snapshot struct {
	Status         Status `json:"status"`
	FilesTotal     int    `json:"files_total"`
	FilesProcessed int    `json:"files_processed"`
	FilesFailed    int    `json:"files_failed"`
	Documents      int    `json:"documents"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
	ErrorMessage   string `json:"error_message,omitempty"`
}

// Progress provides thread-safe tracking of bootstrap progress.
type Progress struct {
	mu sync.RWMutex

	status         Status
	filesTotal     int
	filesProcessed int
	filesFailed    int
	documents      int
	startTime      time.Time
	errorMessage   string
}

// NewProgress creates a tracker initialized for bootstrap.
func NewProgress() *Progress {
	return &Progress{
		status:    StatusBootstrapping,
		startTime: time.Now(),
	}
}

// SetTotal records the number of discovered files.
func (p *Progress) SetTotal(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.filesTotal = total
}

// FileDone records one resolved extraction task.
func (p *Progress) FileDone(ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.filesProcessed++
	if !ok {
		p.filesFailed++
	}
}

// SetDocuments records the number of documents that made it into the corpus.
func (p *Progress) SetDocuments(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.documents = n
}

// SetReady marks bootstrap as complete.
func (p *Progress) SetReady() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status = StatusReady
}

// SetError marks bootstrap as failed.
func (p *Progress) SetError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status = StatusError
	p.errorMessage = message
}

// Snapshot returns an immutable copy of the current state.
func (p *Progress) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return Snapshot{
		Status:         p.status,
		FilesTotal:     p.filesTotal,
		FilesProcessed: p.filesProcessed,
		FilesFailed:    p.filesFailed,
		Documents:      p.documents,
		ElapsedSeconds: int(time.Since(p.startTime).Seconds()),
		ErrorMessage:   p.errorMessage,
	}
}
