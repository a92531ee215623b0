// vecgpu - a 2D rendering library
// Copyright (C) 2026  The vecgpu Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package queue holds the per-frame deferred render queue — spec
// component 4.E. Canvas drawing calls append DrawOps here instead of
// touching the GPU directly; the batch package drains the queue at
// endFrame.
package queue

import (
	"seehuhn.de/go/pdf/graphics"

	"github.com/vecgpu/vecgpu/paint"
	"github.com/vecgpu/vecgpu/pathgeom"
)

// Op identifies what kind of draw a DrawOp records, mirroring the
// original engine's DrawOp enum (fill, stroke, text fill, text stroke).
type Op uint8

const (
	OpFill Op = iota
	OpStroke
	OpTextFill
	OpTextStroke
)

// DrawOp is one deferred drawing instruction: an operation, the path it
// operates on (already cloned so later mutation of the caller's path
// doesn't affect it), and a snapshot of the context state at record time.
type DrawOp struct {
	Op    Op
	Path  *pathgeom.Path
	State paint.ContextState

	// Text-only fields, populated for OpTextFill/OpTextStroke.
	Text string
	X, Y float64

	FillRule graphics.FillRule
}

// Queue is a simple FIFO of DrawOps for one frame.
type Queue struct {
	ops []DrawOp
}

// New returns an empty queue.
func New() *Queue { return &Queue{} }

// Push appends op to the end of the queue.
func (q *Queue) Push(op DrawOp) {
	q.ops = append(q.ops, op)
}

// Drain returns all queued ops in FIFO order and empties the queue. The
// queue drops its reference to the returned slice, so later Push calls
// start a new backing array and do not modify it.
func (q *Queue) Drain() []DrawOp {
	out := q.ops
	q.ops = nil
	return out
}

// Len reports how many ops are currently queued.
func (q *Queue) Len() int { return len(q.ops) }
