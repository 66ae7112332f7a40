/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

package rx

import (
	"context"
	"sync/atomic"
)

// Void is the value type of producers that never emit.
type Void = struct{}

// Observer receives the signals of one producer execution. Nil
// callbacks are ignored.
type Observer[T any] struct {
	OnValue    func(T)
	OnComplete func()
	OnError    func(error)
}

// Producer is a cold, single-shot asynchronous source. No work happens
// before Subscribe is called; each Subscribe starts an entirely
// independent execution that emits at most one value followed by
// exactly one terminal signal (completion or failure).
type Producer[T any] struct {
	start func(*Emitter[T])
}

// NewProducer builds a producer from a start function. start runs once
// per subscription, on the subscribing goroutine; asynchronous
// producers dispatch their own work from inside it.
func NewProducer[T any](start func(*Emitter[T])) *Producer[T] {
	return &Producer[T]{start: start}
}

// Subscribe starts an execution of the producer and delivers its
// signals to obs. The returned subscription can be disposed to
// suppress delivery of any signal not yet emitted; disposal does not
// interrupt work already in flight.
func (p *Producer[T]) Subscribe(obs Observer[T]) *Subscription {
	sub := &Subscription{finished: make(chan struct{})}
	p.start(&Emitter[T]{sub: sub, obs: obs})
	return sub
}

// Await subscribes and blocks until the execution reaches a terminal
// signal or ctx is done. It returns the emitted value (if any, with ok
// reporting whether one was emitted) and the terminal error. When ctx
// ends first the subscription is disposed and ctx's error is returned;
// the underlying work keeps running to completion unobserved.
func (p *Producer[T]) Await(ctx context.Context) (value T, ok bool, err error) {
	var (
		got      T
		gotOK    bool
		terminal error
	)
	sub := p.Subscribe(Observer[T]{
		OnValue: func(v T) {
			got = v
			gotOK = true
		},
		OnError: func(e error) {
			terminal = e
		},
	})

	select {
	case <-sub.finished:
		return got, gotOK, terminal
	case <-ctx.Done():
		sub.Dispose()
		var zero T
		return zero, false, ctx.Err()
	}
}

// Subscription represents one execution of a producer as seen by one
// observer.
type Subscription struct {
	disposed atomic.Bool
	terminal atomic.Bool
	finished chan struct{}
}

// Dispose suppresses delivery of any further signals to the observer.
// In-flight work is not interrupted.
func (s *Subscription) Dispose() {
	if s.disposed.CompareAndSwap(false, true) {
		// Unblock waiters even though no terminal signal was observed.
		if s.terminal.CompareAndSwap(false, true) {
			close(s.finished)
		}
	}
}

// Disposed reports whether Dispose has been called.
func (s *Subscription) Disposed() bool {
	return s.disposed.Load()
}

// Done is closed once the execution reaches a terminal signal or the
// subscription is disposed.
func (s *Subscription) Done() <-chan struct{} {
	return s.finished
}

// Emitter is the producer side of one execution. It enforces the
// signal-ordering law: values are dropped after a terminal signal or
// disposal, and only the first terminal signal is delivered.
type Emitter[T any] struct {
	sub *Subscription
	obs Observer[T]
}

// Value delivers v unless the execution already terminated or the
// subscription was disposed.
func (e *Emitter[T]) Value(v T) {
	if e.sub.disposed.Load() || e.sub.terminal.Load() {
		return
	}
	if e.obs.OnValue != nil {
		e.obs.OnValue(v)
	}
}

// Complete delivers the completion signal at most once.
func (e *Emitter[T]) Complete() {
	if !e.sub.terminal.CompareAndSwap(false, true) {
		return
	}
	if !e.sub.disposed.Load() && e.obs.OnComplete != nil {
		e.obs.OnComplete()
	}
	close(e.sub.finished)
}

// Fail delivers the failure signal at most once.
func (e *Emitter[T]) Fail(err error) {
	if !e.sub.terminal.CompareAndSwap(false, true) {
		return
	}
	if !e.sub.disposed.Load() && e.obs.OnError != nil {
		e.obs.OnError(err)
	}
	close(e.sub.finished)
}

// Subscription returns the subscription this emitter feeds.
func (e *Emitter[T]) Subscription() *Subscription {
	return e.sub
}

// Map derives a producer whose value is f applied to p's value.
// Terminal signals pass through unchanged.
func Map[T, U any](p *Producer[T], f func(T) U) *Producer[U] {
	return NewProducer(func(e *Emitter[U]) {
		p.Subscribe(Observer[T]{
			OnValue:    func(v T) { e.Value(f(v)) },
			OnComplete: e.Complete,
			OnError:    e.Fail,
		})
	})
}

// ObserveOn derives a producer that delivers every signal of p via s.
// Use a serial scheduler to preserve the value-before-terminal order.
func ObserveOn[T any](p *Producer[T], s Scheduler) *Producer[T] {
	return NewProducer(func(e *Emitter[T]) {
		p.Subscribe(Observer[T]{
			OnValue:    func(v T) { s.Schedule(func() { e.Value(v) }) },
			OnComplete: func() { s.Schedule(e.Complete) },
			OnError:    func(err error) { s.Schedule(func() { e.Fail(err) }) },
		})
	})
}
