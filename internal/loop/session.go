package loop

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/spaaace/internal/input"
	"github.com/tomz197/spaaace/internal/loop/config"
	"github.com/tomz197/spaaace/internal/object"
)

// ErrQuit is returned by the update driver when the quit input is held.
var ErrQuit = errors.New("quit requested")

// Painter renders the world.
type Painter interface {
	// Paint draws the view into an off-screen buffer. The world is locked
	// for the whole call.
	Paint(v object.View)
	// Present outputs the last painted frame. Runs without the lock.
	Present() error
}

// KeyFunc returns the inputs held at now.
type KeyFunc func(now time.Time) input.Set

// ArenaFunc reports the arena bounds for the next tick.
type ArenaFunc func() object.Arena

// SessionOptions configures a Session.
type SessionOptions struct {
	Keys     KeyFunc
	Arena    ArenaFunc     // Optional, keeps the world's arena when nil
	TickTime time.Duration // Minimum wall-clock time between ticks
	Logger   *zap.Logger
}

// Session drives one World: a fixed-cadence update loop and a render loop
// running on separate goroutines. Updates and draw passes never interleave.
type Session struct {
	mu     sync.Mutex
	world  *World
	keys   KeyFunc
	arena  ArenaFunc
	tick   time.Duration
	poll   time.Duration
	redraw chan struct{}
	now    func() time.Time
	log    *zap.Logger
}

// NewSession wraps world with update/draw scheduling.
func NewSession(world *World, opts SessionOptions) *Session {
	if opts.Keys == nil {
		opts.Keys = func(time.Time) input.Set { return nil }
	}
	if opts.TickTime <= 0 {
		opts.TickTime = config.TickTime
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Session{
		world:  world,
		keys:   opts.Keys,
		arena:  opts.Arena,
		tick:   opts.TickTime,
		poll:   config.PollInterval,
		redraw: make(chan struct{}, 1),
		now:    time.Now,
		log:    opts.Logger,
	}
}

// Step runs one tick of dt seconds and requests a redraw, holding the lock
// for both.
func (s *Session) Step(dt float64, keys object.Input) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.arena != nil {
		s.world.SetArena(s.arena())
	}
	s.world.Update(dt, keys)

	// Coalesce: a pending redraw already covers this tick.
	select {
	case s.redraw <- struct{}{}:
	default:
	}
}

// Draw runs fn with a read-only view of the world, holding the lock.
func (s *Session) Draw(fn func(object.View)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.world)
}

// Run drives the session until the quit input is held or ctx is done.
// A quit is a normal exit and returns nil.
func (s *Session) Run(ctx context.Context, p Painter) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.drive(ctx) })
	g.Go(func() error { return s.render(ctx, p) })

	err := g.Wait()
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// drive polls the clock and runs a tick once at least one tick period has
// elapsed. dt is the real elapsed time, so a late tick is longer instead of
// being followed by catch-up ticks.
func (s *Session) drive(ctx context.Context) error {
	last := s.now()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		time.Sleep(s.poll)

		now := s.now()
		elapsed := now.Sub(last)
		if elapsed < s.tick {
			continue
		}

		keys := s.keys(now)
		if keys.Held(input.Quit) {
			s.log.Debug("quit requested")
			return ErrQuit
		}

		s.Step(elapsed.Seconds(), keys)
		last = now
	}
}

// render paints and presents a frame for every redraw request.
func (s *Session) render(ctx context.Context, p Painter) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.redraw:
		}

		s.Draw(p.Paint)
		if err := p.Present(); err != nil {
			return err
		}
	}
}
