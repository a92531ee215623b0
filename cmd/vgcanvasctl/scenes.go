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
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vecgpu/vecgpu/canvas"
	"github.com/vecgpu/vecgpu/gpubackend"
	"github.com/vecgpu/vecgpu/testcases"
)

func init() {
	rootCmd.AddCommand(scenesCmd)
}

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "Run every built-in test scenario and report batch/draw stats",
	Long:  "scenes runs every named scenario in testcases.All through a canvas.Context bound to a gpubackend.Recorder and prints its batch/vertex/index/draw-call counts, one line per scenario.",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, tc := range testcases.All[category] {
				rec := gpubackend.NewRecorder()
				c := canvas.New(rec)
				if err := tc.Run(c); err != nil {
					fmt.Fprintf(out, "%s/%s: error: %v\n", category, tc.Name, err)
					continue
				}
				batches := c.LastBatches()
				var vertexFloats, indices int
				for _, b := range batches {
					vertexFloats += len(b.VertexData)
					indices += len(b.IndexData)
				}
				fmt.Fprintf(out, "%s/%s: batches=%d draw_calls=%d vertex_floats=%d indices=%d\n",
					category, tc.Name, len(batches), rec.DrawCallCount(), vertexFloats, indices)
			}
		}
		return nil
	},
}
