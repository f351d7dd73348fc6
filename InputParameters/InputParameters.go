package InputParameters

import (
	"fmt"
	"math"

	"github.com/chosler/mobius4d/grid"
	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SurfaceParameters struct {
	Title      string  `yaml:"Title"`
	Nu         int     `yaml:"Nu"`
	Nv         int     `yaml:"Nv"`
	UMin       float64 `yaml:"UMin"`
	UMax       float64 `yaml:"UMax"`
	VMin       float64 `yaml:"VMin"`
	VMax       float64 `yaml:"VMax"`
	Twist      float64 `yaml:"Twist"`
	PoleMargin float64 `yaml:"PoleMargin"`
	Field      string  `yaml:"Field"` // scalar field to summarize or render
	OutputDir  string  `yaml:"OutputDir"`
}

// NewSurfaceParameters carries the defaults of the reference visualization;
// a parameter file overrides selectively.
func NewSurfaceParameters() *SurfaceParameters {
	return &SurfaceParameters{
		Title:      "Sudanese Mobius Strip",
		Nu:         200,
		Nv:         50,
		UMin:       0,
		UMax:       2 * math.Pi,
		VMin:       -math.Pi / 2,
		VMax:       math.Pi / 2,
		Twist:      0.5,
		PoleMargin: 0.01,
		Field:      "habs",
		OutputDir:  ".",
	}
}

func (sp *SurfaceParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SurfaceParameters) Print() {
	fmt.Printf("\"%s\"\t= Title\n", sp.Title)
	fmt.Printf("[%d x %d]\t\t= Grid Resolution\n", sp.Nu, sp.Nv)
	fmt.Printf("[%8.5f,%8.5f)\t= U Range\n", sp.UMin, sp.UMax)
	fmt.Printf("[%8.5f,%8.5f]\t= V Range\n", sp.VMin, sp.VMax)
	fmt.Printf("%8.5f\t\t= Twist\n", sp.Twist)
	fmt.Printf("%8.5f\t\t= Pole Margin\n", sp.PoleMargin)
	fmt.Printf("[%s]\t\t\t= Field\n", sp.Field)
}

// GridSpec converts the parameters into the immutable configuration value
// consumed by the pipeline.
func (sp *SurfaceParameters) GridSpec() grid.Spec {
	return grid.Spec{
		Nu:   sp.Nu,
		Nv:   sp.Nv,
		UMin: sp.UMin,
		UMax: sp.UMax,
		VMin: sp.VMin,
		VMax: sp.VMax,
	}
}
