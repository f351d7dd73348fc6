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

	"github.com/chosler/mobius4d/InputParameters"
	"github.com/chosler/mobius4d/curvature"
	"github.com/chosler/mobius4d/geometry4D"
	"github.com/chosler/mobius4d/grid"
	"github.com/chosler/mobius4d/surface"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type ModelRun struct {
	ParamFile string
	Nu, Nv    int
	Field     string
	Profile   bool
}

// CurvatureCmd represents the curvature command
var CurvatureCmd = &cobra.Command{
	Use:   "curvature",
	Short: "Compute the curvature scalar fields and print their summaries",
	Long: `
Runs the sampling and estimation pipeline over the strip's parameter grid and
prints a summary of each scalar field: the conformal scale factor, |H|, the
projected Gaussian curvature and the S3-to-R3 curvature difference.

mobius4d curvature -f params.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		mr := gatherRun(cmd)
		sp := processInput(mr)
		RunCurvature(mr, sp)
	},
}

func init() {
	rootCmd.AddCommand(CurvatureCmd)
	CurvatureCmd.Flags().StringP("paramFile", "f", "", "YAML parameter file, explicit flags override its values")
	CurvatureCmd.Flags().Int("nu", 200, "samples along the periodic u direction")
	CurvatureCmd.Flags().Int("nv", 50, "samples across the strip's width")
	CurvatureCmd.Flags().String("field", "", "summarize only this field (default: all)")
	CurvatureCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
}

// gatherRun collects the command line into a ModelRun. Nu and Nv are taken
// only when the flag was given explicitly, so their visible defaults never
// clobber values read from the parameter file.
func gatherRun(cmd *cobra.Command) (mr *ModelRun) {
	mr = &ModelRun{}
	mr.ParamFile, _ = cmd.Flags().GetString("paramFile")
	if cmd.Flags().Changed("nu") {
		mr.Nu, _ = cmd.Flags().GetInt("nu")
	}
	if cmd.Flags().Changed("nv") {
		mr.Nv, _ = cmd.Flags().GetInt("nv")
	}
	mr.Field, _ = cmd.Flags().GetString("field")
	mr.Profile, _ = cmd.Flags().GetBool("profile")
	return
}

func processInput(mr *ModelRun) (sp *InputParameters.SurfaceParameters) {
	sp = InputParameters.NewSurfaceParameters()
	if len(mr.ParamFile) != 0 {
		data, err := os.ReadFile(mr.ParamFile)
		if err != nil {
			fmt.Printf("error reading parameter file: %s\n", err.Error())
			os.Exit(1)
		}
		if err = sp.Parse(data); err != nil {
			fmt.Printf("error parsing parameter file: %s\n", err.Error())
			os.Exit(1)
		}
	}
	if mr.Nu != 0 {
		sp.Nu = mr.Nu
	}
	if mr.Nv != 0 {
		sp.Nv = mr.Nv
	}
	if len(mr.Field) != 0 {
		sp.Field = mr.Field
	}
	sp.Print()
	return
}

func RunCurvature(mr *ModelRun, sp *InputParameters.SurfaceParameters) {
	if mr.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	pg, fld := runPipeline(sp)
	fmt.Printf("%8.5f\t\t= Pole Margin min(1-w)\n", 1-pg.Core(pg.X4[3]).Max())
	names := curvature.FieldNames()
	if mr.Field != "" {
		names = []string{mr.Field}
	}
	for _, name := range names {
		printSummary(fld, name)
	}
}

// runPipeline builds the sampler with the parameter file's twist and pole
// margin, then runs the full estimation pass.
func runPipeline(sp *InputParameters.SurfaceParameters) (pg *grid.PointGrids, fld *curvature.Fields) {
	spec := sp.GridSpec()
	if err := spec.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	sm := grid.NewSampler(spec)
	sm.Surface = surface.Lawson{Twist: sp.Twist}
	sm.Projection = geometry4D.Stereographic{PoleMargin: sp.PoleMargin}
	pg = sm.Sample()
	fld = curvature.Compute(pg)
	return
}

func printSummary(fld *curvature.Fields, name string) {
	m, err := fld.ByName(name)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("[%s]\n", name)
	fmt.Printf("%8.5f\t\t= min\n", m.Min())
	fmt.Printf("%8.5f\t\t= max\n", m.Max())
	fmt.Printf("%8.5f\t\t= mean\n", m.Mean())
	if n := m.NumNonFinite(); n != 0 {
		fmt.Printf("[%d]\t\t\t= undefined samples\n", n)
	}
}
