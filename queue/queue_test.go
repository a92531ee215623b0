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

package queue

import "testing"

func TestDrainPreservesFIFOOrder(t *testing.T) {
	q := New()
	q.Push(DrawOp{Op: OpFill})
	q.Push(DrawOp{Op: OpStroke})
	q.Push(DrawOp{Op: OpTextFill})

	ops := q.Drain()
	if len(ops) != 3 {
		t.Fatalf("expected 3 ops, got %d", len(ops))
	}
	want := []Op{OpFill, OpStroke, OpTextFill}
	for i, op := range ops {
		if op.Op != want[i] {
			t.Fatalf("op %d: want %v, got %v", i, want[i], op.Op)
		}
	}
	if q.Len() != 0 {
		t.Fatal("expected queue empty after drain")
	}
}

func TestDrainThenPushDoesNotMutatePreviousResult(t *testing.T) {
	q := New()
	q.Push(DrawOp{Op: OpFill})
	first := q.Drain()

	q.Push(DrawOp{Op: OpStroke})
	second := q.Drain()

	if len(first) != 1 || first[0].Op != OpFill {
		t.Fatalf("expected first drain untouched, got %+v", first)
	}
	if len(second) != 1 || second[0].Op != OpStroke {
		t.Fatalf("expected second drain to contain only the new op, got %+v", second)
	}
}
