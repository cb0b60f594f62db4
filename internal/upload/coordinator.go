// Package upload stages local attachments and pushes them to object storage
// as one batch before a ticket is created.
package upload

import (
	"context"
	"fmt"
	"sync"

	"github.com/providesk/helpdesk-gateway/internal/domain"
	apperrors "github.com/providesk/helpdesk-gateway/pkg/util"
)

// Coordinator holds the staged file list for one draft and runs the batch
// upload. Files in a batch upload concurrently; the batch settles only when
// every file has either stored or failed. One aggregate uploading flag covers
// the whole batch.
type Coordinator struct {
	mu        sync.Mutex
	storage   ObjectStorage
	pathHint  string
	files     []domain.StagedFile
	uploading bool
}

// NewCoordinator builds a coordinator writing under the given path hint.
func NewCoordinator(storage ObjectStorage, pathHint string) *Coordinator {
	return &Coordinator{storage: storage, pathHint: pathHint}
}

// AddFiles appends staged files in order.
func (c *Coordinator) AddFiles(files ...domain.StagedFile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files = append(c.files, files...)
}

// RemoveFile drops the staged file at index.
func (c *Coordinator) RemoveFile(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.files) {
		return fmt.Errorf("no staged file at index %d", index)
	}
	c.files = append(c.files[:index], c.files[index+1:]...)
	return nil
}

// Files returns a snapshot of the staged file list.
func (c *Coordinator) Files() []domain.StagedFile {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.StagedFile, len(c.files))
	copy(out, c.files)
	return out
}

// Uploading reports whether a batch is in flight.
func (c *Coordinator) Uploading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uploading
}

// Reset clears the staged file list after a successful submission.
func (c *Coordinator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files = nil
}

// UploadAll stores every staged file and returns the stored references in
// settle order. If any upload fails the whole batch fails: the staged list is
// left intact for a retry and an UploadError wrapping the first failure is
// returned. The caller must not create the ticket until UploadAll returns.
func (c *Coordinator) UploadAll(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	batch := make([]domain.StagedFile, len(c.files))
	copy(batch, c.files)
	c.uploading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.uploading = false
		c.mu.Unlock()
	}()

	if len(batch) == 0 {
		return []string{}, nil
	}

	type result struct {
		ref string
		err error
	}
	results := make(chan result, len(batch))

	var wg sync.WaitGroup
	for _, file := range batch {
		wg.Add(1)
		go func(file domain.StagedFile) {
			defer wg.Done()
			ref, err := c.storage.Store(ctx, file, c.pathHint)
			results <- result{ref: ref, err: err}
		}(file)
	}
	wg.Wait()
	close(results)

	refs := make([]string, 0, len(batch))
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		refs = append(refs, res.ref)
	}
	if firstErr != nil {
		return nil, apperrors.NewUploadError(firstErr)
	}
	return refs, nil
}
