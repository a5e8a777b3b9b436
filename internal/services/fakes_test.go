package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dimitrije/critterdex-api/internal/catalog"
	"github.com/dimitrije/critterdex-api/internal/models"
	"github.com/dimitrije/critterdex-api/internal/storage"
)

const testImage = "data:image/png;base64,iVBORw0KGgo="

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// flakyBackend wraps a memory backend with injectable failures.
type flakyBackend struct {
	*storage.Memory

	mu     sync.Mutex
	getErr error
	putErr error
	puts   int
}

func newFlakyBackend() *flakyBackend {
	return &flakyBackend{Memory: storage.NewMemory()}
}

func (b *flakyBackend) Get(ctx context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	err := b.getErr
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return b.Memory.Get(ctx, key)
}

func (b *flakyBackend) Put(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	b.puts++
	err := b.putErr
	b.mu.Unlock()
	if err != nil {
		return err
	}
	return b.Memory.Put(ctx, key, value)
}

func (b *flakyBackend) failPuts(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.putErr = err
}

func (b *flakyBackend) putCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.puts
}

type recordingNotifier struct {
	mu          sync.Mutex
	statuses    []models.SessionStatus
	collections [][]models.CapturedAnimal
}

func (n *recordingNotifier) SessionStateChanged(status models.SessionStatus) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.statuses = append(n.statuses, status)
}

func (n *recordingNotifier) CollectionChanged(snapshot []models.CapturedAnimal) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.collections = append(n.collections, snapshot)
}

func (n *recordingNotifier) sessionStates() []models.SessionState {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.SessionState, len(n.statuses))
	for i, st := range n.statuses {
		out[i] = st.State
	}
	return out
}

// lastStatus returns the most recent status published in state.
func (n *recordingNotifier) lastStatus(state models.SessionState) (models.SessionStatus, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := len(n.statuses) - 1; i >= 0; i-- {
		if n.statuses[i].State == state {
			return n.statuses[i], true
		}
	}
	return models.SessionStatus{}, false
}

func (n *recordingNotifier) collectionSizes() []int {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]int, len(n.collections))
	for i, c := range n.collections {
		out[i] = len(c)
	}
	return out
}

type identifierFunc func(ctx context.Context, req IdentifyRequest) (models.AnimalTemplate, error)

func (f identifierFunc) Identify(ctx context.Context, req IdentifyRequest) (models.AnimalTemplate, error) {
	return f(ctx, req)
}

// fixedIdentifier always resolves key from the built-in catalog and counts
// invocations.
type fixedIdentifier struct {
	key   string
	calls atomic.Int32
}

func (f *fixedIdentifier) Identify(_ context.Context, _ IdentifyRequest) (models.AnimalTemplate, error) {
	f.calls.Add(1)
	return catalog.Default().Lookup(f.key)
}

// blockingIdentifier parks until released or until its context ends.
type blockingIdentifier struct {
	started chan struct{}
	release chan struct{}
	result  models.AnimalTemplate
}

func newBlockingIdentifier(result models.AnimalTemplate) *blockingIdentifier {
	return &blockingIdentifier{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		result:  result,
	}
}

func (b *blockingIdentifier) Identify(ctx context.Context, _ IdentifyRequest) (models.AnimalTemplate, error) {
	b.started <- struct{}{}
	select {
	case <-b.release:
		return b.result, nil
	case <-ctx.Done():
		return models.AnimalTemplate{}, ctx.Err()
	}
}

type stubSource struct {
	closed atomic.Int32
	err    error
}

func (s *stubSource) Close() error {
	s.closed.Add(1)
	return s.err
}

func capturedAnimal(id string, key string, at time.Time) models.CapturedAnimal {
	tmpl, err := catalog.Default().Lookup(key)
	if err != nil {
		panic(err)
	}
	return models.CapturedAnimal{
		AnimalTemplate: tmpl,
		ID:             id,
		CapturedAt:     at,
		ImageData:      testImage,
	}
}
