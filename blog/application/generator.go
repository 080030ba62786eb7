package application

import (
	"context"
	"fmt"
	"time"

	"github.com/dfryer1193/factsdaily/blog/domain"
	"github.com/rs/zerolog/log"
)

// PostGenerator publishes the next fact in the rotation as today's post and
// rebuilds the index page.
//
// Runs are not synchronized with each other. Two overlapping runs can both
// read the same state and lose one advance.
type PostGenerator struct {
	facts     domain.FactSource
	state     domain.StateRepository
	pages     domain.PageStore
	renderer  *PageRenderer
	factLabel string

	ledger     domain.PostLedger
	openLedger LedgerOpener
	now        func() time.Time
}

type GeneratorOption func(*PostGenerator)

// LedgerOpener connects a ledger for a single run. The returned func
// releases it.
type LedgerOpener func(ctx context.Context) (domain.PostLedger, func() error, error)

// WithLedger records every generated post in l.
func WithLedger(l domain.PostLedger) GeneratorOption {
	return func(g *PostGenerator) {
		g.ledger = l
	}
}

// WithLedgerOpener connects the ledger only once the facts and state have been
// validated, so a run that fails early never creates the ledger database.
func WithLedgerOpener(open LedgerOpener) GeneratorOption {
	return func(g *PostGenerator) {
		g.openLedger = open
	}
}

// WithClock overrides the source of the current date.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *PostGenerator) {
		g.now = now
	}
}

func NewPostGenerator(
	facts domain.FactSource,
	state domain.StateRepository,
	pages domain.PageStore,
	renderer *PageRenderer,
	factLabel string,
	opts ...GeneratorOption,
) *PostGenerator {
	g := &PostGenerator{
		facts:     facts,
		state:     state,
		pages:     pages,
		renderer:  renderer,
		factLabel: factLabel,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs one publishing cycle and returns the post it wrote.
//
// The advanced state is saved before anything is rendered, so a failed
// render or write never causes the same fact to be published twice.
// Running twice on one date overwrites that date's post with the next fact.
func (g *PostGenerator) Generate(ctx context.Context) (*domain.Post, error) {
	facts, err := g.facts.LoadFacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load facts: %w", err)
	}

	st, err := g.state.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rotation state: %w", err)
	}

	idx, err := NextIndex(st.LastIndex, len(facts))
	if err != nil {
		return nil, err
	}

	ledger, release, err := g.connectLedger(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := g.pages.EnsureLayout(ctx); err != nil {
		return nil, err
	}

	if err := g.state.Save(ctx, domain.RotationState{LastIndex: idx}); err != nil {
		return nil, fmt.Errorf("failed to save rotation state: %w", err)
	}

	log.Info().
		Int("last_index", st.LastIndex).
		Int("index", idx).
		Int("facts", len(facts)).
		Msg("Advanced fact rotation")

	now := g.now()
	date := now.Format(domain.DateLayout)
	post := &domain.Post{
		Date:      date,
		Title:     PostTitle(g.factLabel, idx),
		Fact:      facts[idx],
		FactIndex: idx,
		Filename:  domain.PostFilename(date),
		CreatedAt: now.UTC(),
	}

	post.HTMLContent, err = g.renderer.RenderPost(post, now)
	if err != nil {
		return nil, err
	}

	if err := g.pages.WritePost(ctx, post.Filename, post.HTMLContent); err != nil {
		return nil, err
	}

	if err := g.rebuildIndex(ctx, now); err != nil {
		return nil, err
	}

	if ledger != nil {
		if err := ledger.RecordPost(ctx, post); err != nil {
			return nil, fmt.Errorf("failed to record post in ledger: %w", err)
		}
	}

	log.Info().
		Str("date", post.Date).
		Str("file", post.Filename).
		Str("title", post.Title).
		Msg("Published post")

	return post, nil
}

func (g *PostGenerator) connectLedger(ctx context.Context) (domain.PostLedger, func(), error) {
	if g.openLedger == nil {
		return g.ledger, func() {}, nil
	}

	ledger, closeLedger, err := g.openLedger(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	return ledger, func() {
		if err := closeLedger(); err != nil {
			log.Error().Err(err).Msg("Failed to close ledger")
		}
	}, nil
}

func (g *PostGenerator) rebuildIndex(ctx context.Context, now time.Time) error {
	posts, err := g.pages.ListPosts(ctx)
	if err != nil {
		return err
	}

	content, err := g.renderer.RenderIndex(posts, now)
	if err != nil {
		return err
	}

	if err := g.pages.WriteIndex(ctx, content); err != nil {
		return err
	}

	log.Debug().Int("posts", len(posts)).Msg("Rebuilt index page")
	return nil
}
