package crawler

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vovakirdan/tui-crawler/internal/config"
	"github.com/vovakirdan/tui-crawler/internal/store"
)

// Outcome describes what one input did to the session.
type Outcome struct {
	Moved      bool
	Removed    int
	Respawned  bool
	Generation uint64
}

// Session is one run of the crawler: a player, its walls and its score,
// each held in a store cell, plus the PRNG the walls are drawn from.
//
// A Session is not safe for concurrent use.
type Session struct {
	id     uuid.UUID
	seed   uint32
	layout Layout
	rng    *Rand

	player *store.Cell[Position]
	walls  *store.Cell[WallBatch]
	score  *store.Cell[Score]
	dirty  *store.Tracker

	steps   uint64
	presses uint64

	logger *log.Logger
	tracer trace.Tracer
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for session events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracer sets the tracer used for move spans.
func WithTracer(t trace.Tracer) Option {
	return func(s *Session) {
		if t != nil {
			s.tracer = t
		}
	}
}

// NewSession starts a session with the player centered and generation 0 of
// the walls drawn from seed. cfg must already be validated.
func NewSession(cfg config.CrawlerConfig, seed uint32, opts ...Option) *Session {
	l := LayoutFrom(cfg)
	rng := NewRand(seed)

	s := &Session{
		id:     uuid.New(),
		seed:   seed,
		layout: l,
		rng:    rng,
		logger: log.New(io.Discard),
		tracer: noop.NewTracerProvider().Tracer("crawler"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.player = store.New(l.Start())
	s.walls = store.New(NewWallBatch(l, rng))
	s.score = store.New(Score{})
	s.dirty = store.NewTracker(s.player, s.walls, s.score)

	s.logger.Debug("session started", "session", s.id, "seed", seed,
		"dungeon", l.Dungeon, "batch", l.BatchSize)
	return s
}

// Press handles one key press.
func (s *Session) Press(ctx context.Context, key rune) Outcome {
	return s.Move(ctx, ParseKey(key))
}

// Move advances the player one step in d. A step that leaves the player
// where it was does nothing else: no collision pass, no score, no respawn.
func (s *Session) Move(ctx context.Context, d Direction) Outcome {
	s.presses++

	from := s.player.Read()
	to := Advance(from, d, s.layout)
	if to == from {
		return Outcome{Generation: s.Generation()}
	}

	_, span := s.tracer.Start(ctx, "crawler.move", trace.WithAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.String("direction", d.String()),
	))
	defer span.End()

	s.player.Write(to)
	s.steps++

	batch := s.walls.Read()
	score := s.score.Read()
	removed, respawned := batch.OnPlayerMoved(to, s.rng, &score)
	if removed > 0 {
		s.walls.Write(batch)
		s.score.Write(score)
	}

	out := Outcome{
		Moved:      true,
		Removed:    removed,
		Respawned:  respawned,
		Generation: batch.Generation(),
	}
	span.SetAttributes(
		attribute.Int("removed", removed),
		attribute.Bool("respawned", respawned),
		attribute.Int64("generation", int64(out.Generation)),
	)

	if respawned {
		s.logger.Debug("walls respawned", "session", s.id,
			"generation", out.Generation, "score", score.Value())
	}
	return out
}

// ID identifies the session in logs and traces.
func (s *Session) ID() uuid.UUID { return s.id }

// Layout returns the session constants.
func (s *Session) Layout() Layout { return s.layout }

// Player returns the player position.
func (s *Session) Player() Position { return s.player.Read() }

// Walls returns a copy of the live walls.
func (s *Session) Walls() []WallEntry {
	b := s.walls.Read()
	return b.Walls()
}

// Generation returns the generation of the live walls.
func (s *Session) Generation() uint64 {
	b := s.walls.Read()
	return b.Generation()
}

// Score returns the current score.
func (s *Session) Score() uint32 {
	sc := s.score.Read()
	return sc.Value()
}

// Seed returns the current PRNG state.
func (s *Session) Seed() uint32 { return s.rng.Seed() }

// InitialSeed returns the seed the session started from.
func (s *Session) InitialSeed() uint32 { return s.seed }

// Subscribe calls fn after every change to the player, walls or score.
// The returned function removes the subscription.
func (s *Session) Subscribe(fn func()) (unsubscribe func()) {
	unsubs := []func(){
		s.player.Subscribe(func(Position) { fn() }),
		s.walls.Subscribe(func(WallBatch) { fn() }),
		s.score.Subscribe(func(Score) { fn() }),
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// Dirty reports whether anything changed since the last ClearDirty.
func (s *Session) Dirty() bool { return s.dirty.Dirty() }

// ClearDirty resets the change tracking.
func (s *Session) ClearDirty() { s.dirty.ClearDirty() }
