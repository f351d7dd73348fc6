/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chosler/mobius4d/InputParameters"
	"github.com/chosler/mobius4d/render"
	"github.com/spf13/cobra"
)

// RenderCmd represents the render command
var RenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render color-mapped images of the curvature fields",
	Long: `
Runs the pipeline and writes PNG images: a parameter-space heat map and a
projected view per scalar field, or just the selected field.

mobius4d render -f params.yaml -o plots`,
	Run: func(cmd *cobra.Command, args []string) {
		mr := gatherRun(cmd)
		outDir, _ := cmd.Flags().GetString("outputDir")
		sp := processInput(mr)
		if len(outDir) != 0 {
			sp.OutputDir = outDir
		}
		RunRender(mr, sp)
	},
}

func init() {
	rootCmd.AddCommand(RenderCmd)
	RenderCmd.Flags().StringP("paramFile", "f", "", "YAML parameter file, explicit flags override its values")
	RenderCmd.Flags().Int("nu", 200, "samples along the periodic u direction")
	RenderCmd.Flags().Int("nv", 50, "samples across the strip's width")
	RenderCmd.Flags().String("field", "", "render only this field (default: all)")
	RenderCmd.Flags().StringP("outputDir", "o", "", "directory for the PNG output")
}

func RunRender(mr *ModelRun, sp *InputParameters.SurfaceParameters) {
	pg, fld := runPipeline(sp)
	if mr.Field != "" {
		path := filepath.Join(sp.OutputDir, mr.Field+".png")
		if err := render.Heatmap(fld, mr.Field, path); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
		return
	}
	if err := render.RenderAll(fld, pg, sp.OutputDir); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("wrote plots to %s\n", sp.OutputDir)
}
