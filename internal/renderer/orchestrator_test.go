package renderer

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	recipients map[string]*Recipient
	templates  map[string]*Template
}

func (s *fakeStore) GetRecipient(id string) (*Recipient, error) {
	return s.recipients[id], nil
}

func (s *fakeStore) GetTemplate(id string) (*Template, error) {
	return s.templates[id], nil
}

// stubRenderer returns a pre-encoded raster and tracks how many renders run
// concurrently.
type stubRenderer struct {
	raster     []byte
	delay      time.Duration
	mu         sync.Mutex
	inFlight   int32
	maxSeen    int32
	failedJobs map[string]bool
}

func (r *stubRenderer) Render(ctx context.Context, job Job, tmpl *Template, recipient *Recipient) ([]byte, error) {
	current := atomic.AddInt32(&r.inFlight, 1)
	defer atomic.AddInt32(&r.inFlight, -1)

	r.mu.Lock()
	if current > r.maxSeen {
		r.maxSeen = current
	}
	r.mu.Unlock()

	if r.delay > 0 {
		time.Sleep(r.delay)
	}

	if r.failedJobs[job.CertificateID] {
		return nil, errors.New("simulated render failure")
	}

	return r.raster, nil
}

func testStore(t *testing.T, recipientCount int) *fakeStore {
	t.Helper()

	store := &fakeStore{
		recipients: make(map[string]*Recipient),
		templates: map[string]*Template{
			"tpl-1": testTemplate(),
		},
	}
	for i := 0; i < recipientCount; i++ {
		id := fmt.Sprintf("rec-%d", i)
		store.recipients[id] = &Recipient{ID: id, Name: fmt.Sprintf("Recipient %d", i)}
	}
	return store
}

func testJobs(count int) []Job {
	jobs := make([]Job, count)
	for i := range jobs {
		jobs[i] = Job{
			CertificateID: fmt.Sprintf("cert-%d", i),
			RecipientID:   fmt.Sprintf("rec-%d", i),
			TemplateID:    "tpl-1",
		}
	}
	return jobs
}

func zipEntryNames(t *testing.T, payload []byte) []string {
	t.Helper()

	reader, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)

	var names []string
	for _, f := range reader.File {
		names = append(names, f.Name)
	}
	return names
}

func TestGenerateArchive_AllSucceed(t *testing.T) {
	renderer := &stubRenderer{raster: testPNG(t, 12, 8)}
	orch := NewWithRenderer(testStore(t, 3), renderer, NewPDFPacker(nil), 2)

	archive, err := orch.GenerateArchive(context.Background(), testJobs(3))

	require.NoError(t, err)
	assert.Equal(t, 3, archive.Succeeded)
	assert.Equal(t, 0, archive.Failed)
	assert.Len(t, zipEntryNames(t, archive.Zip), 3)
}

func TestGenerateArchive_UncompressedEntries(t *testing.T) {
	renderer := &stubRenderer{raster: testPNG(t, 12, 8)}
	orch := NewWithRenderer(testStore(t, 1), renderer, NewPDFPacker(nil), 1)

	archive, err := orch.GenerateArchive(context.Background(), testJobs(1))
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(archive.Zip), int64(len(archive.Zip)))
	require.NoError(t, err)
	require.Len(t, reader.File, 1)
	assert.Equal(t, zip.Store, reader.File[0].Method, "archive uses storage mode, not deflate")
}

// Partial-success contract: one job with a missing recipient still yields an
// archive with the surviving entries plus an accurate failure count.
func TestGenerateArchive_PartialSuccess(t *testing.T) {
	renderer := &stubRenderer{raster: testPNG(t, 12, 8)}
	store := testStore(t, 5)
	delete(store.recipients, "rec-2")

	orch := NewWithRenderer(store, renderer, NewPDFPacker(nil), 4)

	archive, err := orch.GenerateArchive(context.Background(), testJobs(5))

	require.NoError(t, err)
	assert.Equal(t, 4, archive.Succeeded)
	assert.Equal(t, 1, archive.Failed)
	assert.Len(t, zipEntryNames(t, archive.Zip), 4)

	var failure *JobResult
	for i := range archive.Results {
		if archive.Results[i].Status != "success" {
			failure = &archive.Results[i]
		}
	}
	require.NotNil(t, failure)
	assert.Equal(t, "cert-2", failure.CertificateID)
	assert.Equal(t, "recipient not found", failure.Error)
}

// Zero-success contract: no archive is produced when every lookup fails.
func TestGenerateArchive_TotalFailure(t *testing.T) {
	renderer := &stubRenderer{raster: testPNG(t, 12, 8)}
	store := &fakeStore{
		recipients: map[string]*Recipient{},
		templates:  map[string]*Template{},
	}

	orch := NewWithRenderer(store, renderer, NewPDFPacker(nil), 2)

	archive, err := orch.GenerateArchive(context.Background(), testJobs(4))

	assert.ErrorIs(t, err, ErrNoSuccessfulJobs)
	assert.Nil(t, archive)
}

func TestGenerateArchive_RenderFailureCounted(t *testing.T) {
	renderer := &stubRenderer{
		raster:     testPNG(t, 12, 8),
		failedJobs: map[string]bool{"cert-1": true},
	}
	orch := NewWithRenderer(testStore(t, 3), renderer, NewPDFPacker(nil), 2)

	archive, err := orch.GenerateArchive(context.Background(), testJobs(3))

	require.NoError(t, err)
	assert.Equal(t, 2, archive.Succeeded)
	assert.Equal(t, 1, archive.Failed)
}

// The pool never runs more than the configured number of renders at once.
func TestGenerateArchive_WorkerBound(t *testing.T) {
	renderer := &stubRenderer{raster: testPNG(t, 12, 8), delay: 20 * time.Millisecond}
	orch := NewWithRenderer(testStore(t, 20), renderer, NewPDFPacker(nil), 3)

	_, err := orch.GenerateArchive(context.Background(), testJobs(20))

	require.NoError(t, err)
	assert.LessOrEqual(t, renderer.maxSeen, int32(3))
}

func TestGenerateArchive_DuplicateNamesNotOverwritten(t *testing.T) {
	renderer := &stubRenderer{raster: testPNG(t, 12, 8)}
	store := testStore(t, 2)
	store.recipients["rec-0"].Name = "John Smith"
	store.recipients["rec-1"].Name = "john SMITH!"

	orch := NewWithRenderer(store, renderer, NewPDFPacker(nil), 1)

	archive, err := orch.GenerateArchive(context.Background(), testJobs(2))

	require.NoError(t, err)
	names := zipEntryNames(t, archive.Zip)
	require.Len(t, names, 2)
	assert.NotEqual(t, names[0], names[1], "sanitized name collisions must not overwrite entries")
}

func TestGenerateArchive_CancelledContext(t *testing.T) {
	renderer := &stubRenderer{raster: testPNG(t, 12, 8)}
	orch := NewWithRenderer(testStore(t, 4), renderer, NewPDFPacker(nil), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	archive, err := orch.GenerateArchive(ctx, testJobs(4))

	assert.ErrorIs(t, err, ErrNoSuccessfulJobs)
	assert.Nil(t, archive)
}

func TestDefaultWorkerCount_Bounds(t *testing.T) {
	workers := DefaultWorkerCount()

	assert.GreaterOrEqual(t, workers, 1)
	assert.LessOrEqual(t, workers, 8)
}
