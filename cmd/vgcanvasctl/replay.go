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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vecgpu/vecgpu/canvas"
	"github.com/vecgpu/vecgpu/gpubackend"
)

func init() {
	rootCmd.AddCommand(replayCmd)
}

var replayCmd = &cobra.Command{
	Use:   "replay <scene.json>",
	Short: "Replay a recorded scene and report batch/vertex/index stats",
	Long:  "replay deserializes a JSON scene (a sequence of canvas calls), drives a canvas.Context bound to a gpubackend.Recorder, and prints the number of merged batches, draw calls, vertex floats, and indices the frame would submit to a real GPU.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("vgcanvasctl: %w", err)
		}
		defer f.Close()

		scene, err := loadScene(f)
		if err != nil {
			return err
		}

		rec := gpubackend.NewRecorder()
		c := canvas.New(rec)
		if err := apply(c, scene); err != nil {
			return err
		}

		batches := c.LastBatches()
		var vertexFloats, indices int
		for _, b := range batches {
			vertexFloats += len(b.VertexData)
			indices += len(b.IndexData)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "batches=%d draw_calls=%d vertex_floats=%d indices=%d\n",
			len(batches), rec.DrawCallCount(), vertexFloats, indices)
		return nil
	},
}
