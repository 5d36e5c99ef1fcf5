// Package core provides the reducer-driven state container shared by the
// session and admin stores, plus its logging, metrics and tracing hooks.
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"storefront/internal/codec"
)

// Action is a tagged state transition request.
type Action interface {
	Kind() string
}

// State is implemented by container snapshots. Clone must return a value that
// shares no mutable memory with the receiver.
type State[S any] interface {
	Clone() S
	MergeJSON(fields map[string]json.RawMessage) (S, error)
}

// Reducer computes the next snapshot. It must not modify its input.
type Reducer[S any] func(state S, action Action) S

type subscription[S any] struct {
	id int
	fn func(S)
}

// Store owns the current snapshot of one container. Dispatches are serialised;
// each one replaces the snapshot atomically, persists it when a slot store is
// configured, and then notifies subscribers in registration order.
// Subscribers must not dispatch into the store that is notifying them.
type Store[S State[S]] struct {
	dispatchMu sync.Mutex
	mu         sync.RWMutex
	state      S
	reduce     Reducer[S]

	subMu  sync.Mutex
	subs   []subscription[S]
	nextID int

	cfg settings
}

// NewStore constructs a store starting from defaults, or from the snapshot
// persisted under the WithSlots key merged over defaults.
func NewStore[S State[S]](ctx context.Context, defaults S, reduce Reducer[S], opts ...Option) *Store[S] {
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	initial := defaults
	if cfg.slots != nil {
		initial = codec.Load(ctx, cfg.slots, cfg.slotKey, defaults, cfg.logger)
	}
	return &Store[S]{state: initial, reduce: reduce, cfg: cfg}
}

// Snapshot returns a deep copy of the current state.
func (s *Store[S]) Snapshot() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Logger exposes the configured logger.
func (s *Store[S]) Logger() Logger { return s.cfg.logger }

// Clock exposes the configured clock.
func (s *Store[S]) Clock() Clock { return s.cfg.clock }

// Dispatch runs the reducer for action and publishes the result. A reducer
// panic is recovered and logged; the snapshot is left unchanged.
func (s *Store[S]) Dispatch(ctx context.Context, action Action) {
	if action == nil {
		return
	}
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	op := "dispatch_" + action.Kind()
	ctx, span := s.cfg.tracer.Start(ctx, op)
	started := s.cfg.clock.Now()

	next, err := s.apply(action)
	if err == nil {
		s.mu.Lock()
		s.state = next
		s.mu.Unlock()
		s.cfg.logger.Debug("state updated", "action", action.Kind())
		if s.cfg.slots != nil {
			codec.Save(ctx, s.cfg.slots, s.cfg.slotKey, next, s.cfg.logger)
		}
		s.notify(next)
	}

	s.cfg.metrics.Observe(ctx, op, err == nil, s.cfg.clock.Now().Sub(started))
	span.End(err)
}

func (s *Store[S]) apply(action Action) (next S, err error) {
	s.mu.RLock()
	current := s.state.Clone()
	s.mu.RUnlock()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reducer panic on %s: %v", action.Kind(), r)
			s.cfg.logger.Error("reducer panicked, state unchanged", "action", action.Kind(), "panic", r)
		}
	}()
	return s.reduce(current, action), nil
}

// Subscribe registers fn to receive every new snapshot. The returned function
// removes the subscription.
func (s *Store[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription[S]{id: id, fn: fn})
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store[S]) notify(next S) {
	s.subMu.Lock()
	subs := append([]subscription[S](nil), s.subs...)
	s.subMu.Unlock()
	for _, sub := range subs {
		s.deliver(sub, next.Clone())
	}
}

func (s *Store[S]) deliver(sub subscription[S], snapshot S) {
	defer func() {
		if r := recover(); r != nil {
			s.cfg.logger.Error("subscriber panicked", "subscription", sub.id, "panic", r)
		}
	}()
	sub.fn(snapshot)
}
