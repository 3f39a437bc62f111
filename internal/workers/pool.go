// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/semaphore"
)

var ErrPoolWaitCanceled = errors.New("canceled while waiting for a worker slot")

// Pool is a semaphore-backed Executor.
type Pool struct {
	sem  *semaphore.Weighted
	size int
}

// NewPool returns a Pool with size slots; size <= 0 means runtime.NumCPU().
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}

	return &Pool{sem: semaphore.NewWeighted(int64(size)), size: size}
}

func (p *Pool) Do(ctx context.Context, job func()) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %w", ErrPoolWaitCanceled, err)
	}
	defer p.sem.Release(1)

	job()
	return nil
}

// Size reports the number of slots.
func (p *Pool) Size() int {
	return p.size
}
