package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dimitrije/critterdex-api/internal/models"
)

// ImageSource is the raw image acquisition of a session (a camera stream, an
// upload). It is closed once the payload is available or the session is
// cancelled.
type ImageSource interface {
	Close() error
}

// CollectionAdder is the part of the collection store a session commits to.
type CollectionAdder interface {
	Add(ctx context.Context, animal models.CapturedAnimal) error
}

type ImagePayload struct {
	Data        string
	OverrideKey string
	Location    string
}

type Outcome struct {
	Committed bool
	Animal    *models.CapturedAnimal
	Failure   error
}

type SessionOptions struct {
	Timeout  time.Duration
	Notifier Notifier
	Logger   *slog.Logger
	Now      func() time.Time
	NewID    IDFunc
}

// CaptureSession is the capture state machine. At most one session is active;
// every transition is applied under one lock and published to the notifier.
type CaptureSession struct {
	mu         sync.Mutex
	identifier Identifier
	collection CollectionAdder
	notifier   Notifier
	logger     *slog.Logger
	timeout    time.Duration
	now        func() time.Time
	newID      IDFunc

	state   models.SessionState
	current *activeSession
}

type activeSession struct {
	id       string
	source   ImageSource
	cancel   context.CancelFunc
	payload  ImagePayload
	template *models.AnimalTemplate
	failure  error
	captured string
}

func NewCaptureSession(identifier Identifier, collection CollectionAdder, opts SessionOptions) *CaptureSession {
	if opts.Notifier == nil {
		opts.Notifier = NopNotifier{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = NewID
	}
	return &CaptureSession{
		identifier: identifier,
		collection: collection,
		notifier:   opts.Notifier,
		logger:     opts.Logger.With("component", "session"),
		timeout:    opts.Timeout,
		now:        opts.Now,
		newID:      opts.NewID,
		state:      models.SessionIdle,
	}
}

// Begin starts a session. It fails with ErrSessionConflict while another
// session is active.
func (s *CaptureSession) Begin(source ImageSource) (models.SessionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Active() {
		return s.statusLocked(), fmt.Errorf("%w: session is %s", ErrSessionConflict, s.state)
	}

	s.current = &activeSession{id: s.newID(), source: source}
	s.transitionLocked(models.SessionCapturing)
	s.logger.Info("capture session started", "session_id", s.current.id)
	return s.statusLocked(), nil
}

// Identify hands the captured payload to the identifier. It is the only call
// that reaches the identifier, and it can succeed at most once per session.
func (s *CaptureSession) Identify(ctx context.Context, payload ImagePayload) (models.SessionStatus, error) {
	if payload.Data == "" {
		return s.Status(), ErrEmptyImage
	}

	s.mu.Lock()
	if err := s.expectLocked(models.SessionCapturing, models.SessionIdentifying); err != nil {
		status := s.statusLocked()
		s.mu.Unlock()
		return status, err
	}
	sess := s.current
	s.closeSourceLocked()

	var idCtx context.Context
	var cancel context.CancelFunc
	if s.timeout > 0 {
		idCtx, cancel = context.WithTimeout(ctx, s.timeout)
	} else {
		idCtx, cancel = context.WithCancel(ctx)
	}
	sess.cancel = cancel
	sess.payload = payload
	s.transitionLocked(models.SessionIdentifying)
	s.mu.Unlock()

	tmpl, err := s.identifier.Identify(idCtx, IdentifyRequest{
		ImagePayload: payload.Data,
		OverrideKey:  payload.OverrideKey,
	})
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != sess || s.state != models.SessionIdentifying {
		s.logger.Info("identification result dropped", "session_id", sess.id)
		return s.statusLocked(), ErrSessionCancelled
	}

	if err != nil {
		if !errors.Is(err, ErrIdentificationFailed) {
			err = fmt.Errorf("%w: %v", ErrIdentificationFailed, err)
		}
		sess.failure = err
		s.logger.Info("identification failed", "session_id", sess.id, "error", err)
	} else {
		sess.template = &tmpl
		s.logger.Info("animal identified", "session_id", sess.id, "key", tmpl.Key)
	}
	s.transitionLocked(models.SessionPendingResult)
	return s.statusLocked(), nil
}

// Complete is the end-of-presentation signal. A successful result is
// committed to the collection exactly once; a failed one is discarded. If the
// collection write fails the session stays pending so the caller can retry.
func (s *CaptureSession) Complete(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.expectLocked(models.SessionPendingResult, models.SessionCommitted); err != nil {
		return Outcome{}, err
	}
	sess := s.current

	if sess.template == nil {
		s.transitionLocked(models.SessionDiscarded)
		failure := sess.failure
		s.resetLocked()
		s.logger.Info("capture discarded", "session_id", sess.id)
		return Outcome{Failure: failure}, nil
	}

	animal := models.CapturedAnimal{
		AnimalTemplate: sess.template.Clone(),
		ID:             s.newID(),
		CapturedAt:     s.now().UTC(),
		ImageData:      sess.payload.Data,
		Location:       sess.payload.Location,
	}
	if err := s.collection.Add(ctx, animal); err != nil {
		s.logger.Error("failed to commit capture", "session_id", sess.id, "error", err)
		return Outcome{}, err
	}

	sess.captured = animal.ID
	s.transitionLocked(models.SessionCommitted)
	s.resetLocked()
	s.logger.Info("capture committed", "session_id", sess.id, "animal_id", animal.ID)
	return Outcome{Committed: true, Animal: &animal}, nil
}

// Cancel abandons the active session. Commit is final: Complete holds the
// lock from Committed back to Idle, so Cancel never sees a committed session.
func (s *CaptureSession) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Active() {
		return ErrNoActiveSession
	}

	sess := s.current
	s.closeSourceLocked()
	if sess.cancel != nil {
		sess.cancel()
	}
	s.resetLocked()
	s.logger.Info("capture session cancelled", "session_id", sess.id)
	return nil
}

func (s *CaptureSession) Status() models.SessionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *CaptureSession) expectLocked(want, to models.SessionState) error {
	if !s.state.Active() {
		return ErrNoActiveSession
	}
	if s.state != want {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, to)
	}
	return nil
}

func (s *CaptureSession) closeSourceLocked() {
	if s.current == nil || s.current.source == nil {
		return
	}
	if err := s.current.source.Close(); err != nil {
		s.logger.Warn("failed to close image source", "session_id", s.current.id, "error", err)
	}
	s.current.source = nil
}

func (s *CaptureSession) resetLocked() {
	s.current = nil
	s.transitionLocked(models.SessionIdle)
}

func (s *CaptureSession) transitionLocked(to models.SessionState) {
	s.state = to
	s.notifier.SessionStateChanged(s.statusLocked())
}

func (s *CaptureSession) statusLocked() models.SessionStatus {
	status := models.SessionStatus{State: s.state}
	if s.current == nil {
		return status
	}

	status.SessionID = s.current.id
	if s.state == models.SessionPendingResult || s.state == models.SessionCommitted || s.state == models.SessionDiscarded {
		ok := s.current.template != nil
		status.Success = &ok
		if ok {
			tmpl := s.current.template.Clone()
			status.Animal = &tmpl
		}
		if s.current.failure != nil {
			status.Error = s.current.failure.Error()
		}
	}
	status.CapturedID = s.current.captured
	return status
}
