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

// Package atlas implements async image decoding and atlas packing — spec
// component 4.I. Decoding happens off the frame thread onto a bounded task
// queue (capacity 128, mirroring the original engine's taskQueue); results
// are drained and composited into the atlas at the start of the next
// frame, never mid-frame.
package atlas

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"sync"
)

// TaskQueueCapacity bounds the number of pending decode results, matching
// the original engine's moodycamel::ConcurrentQueue<...>(128).
const TaskQueueCapacity = 128

// DecodeResult is one finished async decode, either an image ready for
// packing or the error that occurred.
type DecodeResult struct {
	ImageID int
	Img     image.Image
	Err     error
}

// Decoder runs each image decode in its own goroutine and delivers results
// onto a bounded channel. Submit never blocks the caller for longer than it
// takes to start a goroutine; the bound is enforced on the *result* channel,
// so a flood of requests backpressures decoding rather than frame time.
type Decoder struct {
	results chan DecodeResult
	wg      sync.WaitGroup
}

// NewDecoder returns a Decoder with a TaskQueueCapacity-deep result
// channel.
func NewDecoder() *Decoder {
	return &Decoder{results: make(chan DecodeResult, TaskQueueCapacity)}
}

// Submit decodes data in a new goroutine and pushes the result onto the
// queue. Submit itself returns at once; the decoding goroutine blocks if
// the queue is already full (TaskQueueCapacity results un-drained) until a
// result is drained.
func (d *Decoder) Submit(imageID int, data []byte) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			err = fmt.Errorf("atlas: decode image %d: %w", imageID, err)
		}
		d.results <- DecodeResult{ImageID: imageID, Img: img, Err: err}
	}()
}

// Drain returns every result currently queued, without blocking. It is
// called once per frame, at beginFrame, per spec.md §4.I.
func (d *Decoder) Drain() []DecodeResult {
	var out []DecodeResult
	for {
		select {
		case r := <-d.results:
			out = append(out, r)
		default:
			return out
		}
	}
}

// Wait blocks until all submitted decodes have been pushed to the result
// channel; used by tests and by shutdown.
func (d *Decoder) Wait() { d.wg.Wait() }
