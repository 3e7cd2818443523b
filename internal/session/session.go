// Package session holds the display state of one weather widget: the latest
// reading or error, whether a lookup is in flight, and which request owns it.
package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/weather-lookup/internal/common"
	"github.com/i474232898/weather-lookup/internal/weather"
)

// Runner resolves one query into an outcome. *weather.Resolver satisfies it.
type Runner interface {
	Run(ctx context.Context, query string) weather.Outcome
}

// Snapshot is a copy of the display state at one point in time.
type Snapshot struct {
	RequestID string                  `json:"requestId,omitempty"`
	Query     string                  `json:"query,omitempty"`
	State     weather.State           `json:"state"`
	Loading   bool                    `json:"loading"`
	Reading   *weather.WeatherReading `json:"reading,omitempty"`
	Error     string                  `json:"error,omitempty"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

// Session is a concurrency-safe holder of the widget state.
// Only the most recent submission may write a result; older completions are dropped.
type Session struct {
	mu sync.RWMutex

	runner Runner
	logger *slog.Logger

	current   Snapshot
	lastQuery string
	subs      map[chan Snapshot]struct{}

	wg    sync.WaitGroup
	newID func() string
	now   func() time.Time
}

// New creates an idle Session.
func New(runner Runner, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		runner: runner,
		logger: logger,
		subs:   make(map[chan Snapshot]struct{}),
		newID:  uuid.NewString,
		now:    func() time.Time { return time.Now().UTC() },
	}
	s.current = Snapshot{State: weather.StateIdle, UpdatedAt: s.now()}
	return s
}

// Submit starts a lookup in the background and returns its request id.
// Blank text is ignored: no state changes and accepted is false.
func (s *Session) Submit(ctx context.Context, text string) (id string, accepted bool) {
	id, query, ok := s.begin(text)
	if !ok {
		return "", false
	}

	ctx = context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.complete(id, s.runner.Run(ctx, query))
	}()
	return id, true
}

// SubmitSync runs a lookup and waits for it. The returned snapshot is the
// state after completion, which may belong to a newer request.
func (s *Session) SubmitSync(ctx context.Context, text string) (Snapshot, bool) {
	id, query, ok := s.begin(text)
	if !ok {
		return s.Snapshot(), false
	}
	s.complete(id, s.runner.Run(ctx, query))
	return s.Snapshot(), true
}

func (s *Session) begin(text string) (id, query string, ok bool) {
	if common.IsBlank(text) {
		s.logger.Debug("ignoring blank query")
		return "", "", false
	}
	query = strings.TrimSpace(text)
	id = s.newID()

	s.mu.Lock()
	s.lastQuery = query
	s.current = Snapshot{
		RequestID: id,
		Query:     query,
		State:     weather.StateLoading,
		Loading:   true,
		UpdatedAt: s.now(),
	}
	s.mu.Unlock()

	s.logger.Debug("lookup started", "request_id", id, "query", query)
	return id, query, true
}

func (s *Session) complete(id string, out weather.Outcome) bool {
	s.mu.Lock()
	if s.current.RequestID != id {
		s.mu.Unlock()
		s.logger.Debug("discarding stale result", "request_id", id, "query", out.Query)
		return false
	}

	s.current = Snapshot{
		RequestID: id,
		Query:     s.current.Query,
		State:     out.State,
		Reading:   out.Reading,
		Error:     out.Message,
		UpdatedAt: s.now(),
	}
	snap := s.current
	dropped := 0
	for ch := range s.subs {
		select {
		case ch <- snap:
		default:
			dropped++
		}
	}
	s.mu.Unlock()

	s.logger.Debug("lookup finished", "request_id", id, "state", string(out.State), "error", out.Message)
	if dropped > 0 {
		s.logger.Warn("subscribers too slow; dropped snapshot", "request_id", id, "dropped", dropped)
	}
	return true
}

// Snapshot returns the current display state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// LastQuery returns the most recent accepted query, or "" if none.
func (s *Session) LastQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastQuery
}

// Subscribe registers for completed snapshots. The returned func unsubscribes
// and closes the channel.
func (s *Session) Subscribe(buffer int) (<-chan Snapshot, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Snapshot, buffer)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, ch)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// Wait blocks until all background lookups have finished.
func (s *Session) Wait() {
	s.wg.Wait()
}
