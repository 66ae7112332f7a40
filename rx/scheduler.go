/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

package rx

import "sync"

// Scheduler dispatches tasks for execution. Adapters take schedulers
// as configuration so tests can run everything synchronously and
// applications can route deliveries onto the goroutine they own.
type Scheduler interface {
	Schedule(task func())
}

// ImmediateScheduler runs each task inline on the calling goroutine.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Schedule(task func()) { task() }

// GoroutineScheduler runs each task on its own goroutine, delegating
// concurrency entirely to the runtime.
type GoroutineScheduler struct{}

func (GoroutineScheduler) Schedule(task func()) { go task() }

// SerialScheduler runs tasks one at a time, in submission order, on a
// single dedicated goroutine. It stands in for a main/UI loop when
// deliveries must all be observed on one goroutine.
type SerialScheduler struct {
	tasks chan func()
	quit  chan struct{}
	once  sync.Once
}

// NewSerialScheduler starts the scheduler's goroutine.
func NewSerialScheduler() *SerialScheduler {
	s := &SerialScheduler{
		tasks: make(chan func(), 64),
		quit:  make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *SerialScheduler) loop() {
	for {
		select {
		case task := <-s.tasks:
			task()
		case <-s.quit:
			return
		}
	}
}

// Schedule enqueues task. Tasks submitted after Stop are dropped.
func (s *SerialScheduler) Schedule(task func()) {
	select {
	case s.tasks <- task:
	case <-s.quit:
	}
}

// Stop shuts the scheduler down. Tasks still queued are not run.
func (s *SerialScheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
}

// Package defaults.
var (
	// Immediate runs work inline; foreground operations use it.
	Immediate Scheduler = ImmediateScheduler{}

	// Background dispatches work off the calling goroutine; it is the
	// default scheduler for the InBackground operations.
	Background Scheduler = GoroutineScheduler{}
)

var (
	mainOnce sync.Once
	mainLoop *SerialScheduler
)

// Main returns the shared serial scheduler used as the default
// delivery target for mapped background fetches. It is created on
// first use and lives for the life of the process; applications that
// own a real main loop should configure adapters with their own
// scheduler instead.
func Main() Scheduler {
	mainOnce.Do(func() { mainLoop = NewSerialScheduler() })
	return mainLoop
}
