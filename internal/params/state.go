// Package params holds the editable plotting parameters and their JSON
// file representation. The parameter file is consumed by the external
// field visualizer; this package only reads and writes it.
package params

// Vec3 is a point or extent in plotting space.
type Vec3 [3]float64

// Charge is a point charge: magnitude plus position.
type Charge struct {
	Q, X, Y, Z float64
}

// Bounds are explicit plotting bounds. They are only written out when
// the state does not ask the visualizer to infer them.
type Bounds struct {
	Min, Max Vec3
}

// Plane selects the 2D slice the fields are plotted in: the axis
// orthogonal to the plane (0=YZ, 1=XZ, 2=XY) and the coordinate on
// that axis.
type Plane struct {
	Axis       int
	Coordinate float64
}

// DensityMode tags which variant of a charge density entry is active.
type DensityMode int

const (
	DensityPreset DensityMode = iota
	DensityCustom
)

// PresetFunc indexes the fixed list of preset density functions the
// visualizer understands.
type PresetFunc int

const (
	PresetDelta PresetFunc = iota
	PresetHeaviside
	PresetInverseHeaviside
)

// PresetNames are the display names for the preset functions, indexed
// by PresetFunc.
var PresetNames = [...]string{"Delta", "Heaviside", "Inverse Heaviside"}

// ChargeDensity describes one volumetric charge distribution, either a
// preset formula applied to one variable or a free-form expression.
// Both payloads are retained so an entry toggled between modes in the
// editor keeps its draft values; the codec serializes only the fields
// of the active mode.
type ChargeDensity struct {
	Mode DensityMode

	// Preset payload
	Func  PresetFunc
	Var   string
	Scale float64
	Value float64

	// Custom payload
	Expr string
}

// State mirrors every editable field of the parameter file. It is
// owned and mutated by the UI loop only.
type State struct {
	Margins    Vec3
	PlotEField bool
	PlotBField bool
	Plane      Plane
	ShowPlots  bool

	InferBounds bool
	Bounds      Bounds

	Resolution int
	Colormap   string

	Charges   []Charge
	Densities []ChargeDensity
}

// Default returns a State with the visualizer's default values.
func Default() *State {
	return &State{
		Margins:     Vec3{5, 5, 5},
		PlotEField:  true,
		PlotBField:  true,
		Plane:       Plane{Axis: 2, Coordinate: 0},
		InferBounds: true,
		Resolution:  100,
		Colormap:    "cool",
	}
}

// AddCharge appends a zero charge at the end of the list.
func (s *State) AddCharge() {
	s.Charges = append(s.Charges, Charge{})
}

// RemoveCharge deletes the charge at index i, preserving the order of
// the remaining entries.
func (s *State) RemoveCharge(i int) {
	s.Charges = append(s.Charges[:i], s.Charges[i+1:]...)
}

// AddDensity appends a new preset density with neutral parameters.
func (s *State) AddDensity() {
	s.Densities = append(s.Densities, ChargeDensity{
		Mode:  DensityPreset,
		Func:  PresetDelta,
		Var:   "x",
		Scale: 1,
	})
}

// RemoveDensity deletes the density at index i, preserving the order
// of the remaining entries.
func (s *State) RemoveDensity(i int) {
	s.Densities = append(s.Densities[:i], s.Densities[i+1:]...)
}
