// Package fetcher orchestrates a single LEI search: input capture,
// validation, the remote lookup, and the resulting view state.
//
// Fetcher holds only configuration. All mutable state lives in State, which
// the caller threads through Input, Search and Complete. Execute is the only
// blocking step and may run on any goroutine.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/leifetch/internal/entity"
	"github.com/zjrosen/leifetch/internal/lei"
	"github.com/zjrosen/leifetch/internal/log"
	"github.com/zjrosen/leifetch/internal/lookup"
	"github.com/zjrosen/leifetch/internal/tracing"
)

// Fetcher applies search transitions using a lookup client and labels.
type Fetcher struct {
	client lookup.Client
	labels Labels
	loc    *time.Location
	policy Policy
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLocation sets the timezone dates are rendered in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(f *Fetcher) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// WithPolicy sets the overlap policy. Defaults to DefaultPolicy.
func WithPolicy(p Policy) Option {
	return func(f *Fetcher) {
		if p != "" {
			f.policy = p
		}
	}
}

// New creates a Fetcher.
func New(client lookup.Client, labels Labels, opts ...Option) *Fetcher {
	f := &Fetcher{
		client: client,
		labels: labels,
		loc:    time.Local,
		policy: DefaultPolicy,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Labels returns the configured labels.
func (f *Fetcher) Labels() Labels { return f.labels }

// Policy returns the overlap policy.
func (f *Fetcher) Policy() Policy { return f.policy }

// WithLabels returns a copy of f using labels.
func (f *Fetcher) WithLabels(labels Labels) *Fetcher {
	cp := *f
	cp.labels = labels
	return &cp
}

// Input records text as the current identifier, verbatim.
func (f *Fetcher) Input(s State, text string) State {
	s.Identifier = text
	return s
}

// Clear empties the identifier and the error and result regions. A pending
// lookup stays pending.
func (f *Fetcher) Clear(s State) State {
	s.Identifier = ""
	s.Err, s.ErrKind = "", KindNone
	s.Entity = nil
	return s
}

// Search validates the identifier. On failure the error region shows the
// matching label, any result is cleared and no request is returned. On
// success the state enters Loading and the returned Request must be passed
// to Execute.
func (f *Fetcher) Search(s State) (State, *Request) {
	if err := lei.Validate(s.Identifier); err != nil {
		s.Entity = nil
		switch {
		case errors.Is(err, lei.ErrEmptyIdentifier):
			s.Err, s.ErrKind = f.labels.Empty, KindEmptyIdentifier
		default:
			s.Err, s.ErrKind = f.labels.InvalidLength, KindInvalidLength
		}
		log.Debug(log.CatLookup, "identifier rejected", "kind", s.ErrKind, "identifier", s.Identifier)
		return s, nil
	}

	if s.Loading && f.policy == PolicyIgnoreWhileLoading {
		log.Debug(log.CatLookup, "search ignored while loading", "identifier", s.Identifier)
		return s, nil
	}

	s.latest++
	s.Loading = true
	s.Err, s.ErrKind = "", KindNone
	s.Entity = nil

	req := &Request{
		Seq:        s.latest,
		ID:         uuid.NewString(),
		Identifier: s.Identifier,
	}
	log.Info(log.CatLookup, "search started", "request_id", req.ID, "seq", req.Seq, "lei", req.Identifier)
	return s, req
}

// Execute performs the lookup for req exactly once. A panicking client is
// reported as a failed lookup.
func (f *Fetcher) Execute(ctx context.Context, req Request) (res Result) {
	res.Request = req
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			res.Record = entity.Record{}
			res.Err = &lookup.Error{Err: fmt.Errorf("lookup panicked: %v", r)}
			log.ErrorErr(log.CatLookup, "lookup panicked", res.Err, "request_id", req.ID)
		}
	}()

	ctx = tracing.ContextWithRequestID(ctx, req.ID)
	res.Record, res.Err = f.client.Lookup(ctx, req.Identifier)

	if res.Err != nil {
		log.ErrorErr(log.CatLookup, "lookup failed", res.Err, "request_id", req.ID, "duration", time.Since(start))
	} else {
		log.Info(log.CatLookup, "lookup succeeded", "request_id", req.ID, "duration", time.Since(start))
	}
	return res
}

// Complete applies res to s and always clears Loading when res is applied.
// Under PolicyDiscardStale a result for anything but the latest request is
// dropped and s is returned unchanged.
func (f *Fetcher) Complete(s State, res Result) State {
	if f.policy == PolicyDiscardStale && res.Request.Seq != s.latest {
		log.Debug(log.CatLookup, "stale result dropped",
			"request_id", res.Request.ID, "seq", res.Request.Seq, "latest", s.latest)
		return s
	}

	s.Loading = false
	if res.Err != nil {
		s.Entity = nil
		s.Err, s.ErrKind = lookup.Message(res.Err), KindLookupFailed
		return s
	}

	display := entity.ToDisplay(res.Record, f.loc)
	s.Entity = &display
	s.Err, s.ErrKind = "", KindNone
	return s
}

// Run performs Search, Execute and Complete synchronously.
func (f *Fetcher) Run(ctx context.Context, s State) State {
	s, req := f.Search(s)
	if req == nil {
		return s
	}
	return f.Complete(s, f.Execute(ctx, *req))
}
