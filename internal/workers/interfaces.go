// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers bounds how much CPU-heavy work runs at once.
//
// Password hashing is deliberately slow; running it unbounded on every
// request goroutine lets a burst of registrations starve the rest of the
// server. An Executor hands out a fixed number of slots instead.
package workers

import "context"

// Executor runs jobs on a bounded number of slots.
type Executor interface {
	// Do waits for a free slot and runs job on the calling goroutine.
	//
	// Waiting honours ctx: if ctx is done before a slot frees up, job is
	// never started and ctx's error is returned wrapped in ErrPoolWaitCanceled.
	// Once job starts it always runs to completion.
	Do(ctx context.Context, job func()) error
}
