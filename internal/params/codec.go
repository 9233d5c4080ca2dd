package params

import (
	"encoding/json"
	"fmt"
	"os"
)

// fileJSON is the on-disk shape of the parameter file. Pointer and
// slice fields model optional keys: nil means the key was absent.
type fileJSON struct {
	Margins    []float64     `json:"plot-margins,omitempty"`
	EField     *fieldToggle  `json:"e-field,omitempty"`
	BField     *fieldToggle  `json:"b-field,omitempty"`
	Plane      *planeJSON    `json:"plane,omitempty"`
	Show       *bool         `json:"show,omitempty"`
	Bounds     *boundsJSON   `json:"plot-bounds,omitempty"`
	Charges    [][]float64   `json:"charges,omitempty"`
	Resolution *int          `json:"resolution,omitempty"`
	Colormap   *string       `json:"colormap,omitempty"`
	Densities  []densityJSON `json:"charge-densities,omitempty"`
}

type fieldToggle struct {
	Plot *bool `json:"plot"`
}

type planeJSON struct {
	Axis       *int     `json:"axis,omitempty"`
	Coordinate *float64 `json:"coordinate,omitempty"`
}

type boundsJSON struct {
	Min []float64 `json:"min"`
	Max []float64 `json:"max"`
}

// densityJSON carries one charge-density entry. The "func" key is
// polymorphic: a preset index for preset entries, the expression
// string for custom ones.
type densityJSON struct {
	Preset bool            `json:"preset"`
	Func   json.RawMessage `json:"func"`
	Var    *string         `json:"var,omitempty"`
	Scale  *float64        `json:"scale,omitempty"`
	Value  *float64        `json:"value,omitempty"`
}

// Load reads the parameter file at path into st. Keys present in the
// file overwrite the corresponding field; absent optional keys leave
// prior state untouched, except that the charge and density lists are
// always replaced wholesale and InferBounds follows the presence of
// the plot-bounds key. Oversized string values are dropped without
// error. A missing file satisfies errors.Is(err, fs.ErrNotExist); a
// malformed one carries the json error.
func Load(path string, st *State) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read parameters: %w", err)
	}
	var f fileJSON
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse parameters: %w", err)
	}

	if len(f.Margins) >= 3 {
		copy(st.Margins[:], f.Margins)
	}
	if f.EField != nil && f.EField.Plot != nil {
		st.PlotEField = *f.EField.Plot
	}
	if f.BField != nil && f.BField.Plot != nil {
		st.PlotBField = *f.BField.Plot
	}
	if f.Plane != nil {
		if f.Plane.Axis != nil {
			st.Plane.Axis = *f.Plane.Axis
		}
		if f.Plane.Coordinate != nil {
			st.Plane.Coordinate = *f.Plane.Coordinate
		}
	}
	if f.Show != nil {
		st.ShowPlots = *f.Show
	}
	if f.Bounds != nil {
		st.InferBounds = false
		if len(f.Bounds.Min) >= 3 {
			copy(st.Bounds.Min[:], f.Bounds.Min)
		}
		if len(f.Bounds.Max) >= 3 {
			copy(st.Bounds.Max[:], f.Bounds.Max)
		}
	} else {
		st.InferBounds = true
	}
	if f.Resolution != nil {
		st.Resolution = *f.Resolution
	}
	if f.Colormap != nil && CheckLen(*f.Colormap, ColormapLimit) == nil {
		st.Colormap = *f.Colormap
	}

	st.Charges = nil
	for _, c := range f.Charges {
		if len(c) < 4 {
			continue
		}
		st.Charges = append(st.Charges, Charge{Q: c[0], X: c[1], Y: c[2], Z: c[3]})
	}

	st.Densities = nil
	for _, d := range f.Densities {
		rho, ok := decodeDensity(d)
		if !ok {
			continue
		}
		st.Densities = append(st.Densities, rho)
	}
	return nil
}

// decodeDensity maps one file entry to a ChargeDensity. Entries with
// an oversized variable name or expression, or a func value of the
// wrong type for their mode, are skipped.
func decodeDensity(d densityJSON) (ChargeDensity, bool) {
	if d.Preset {
		var fn int
		if json.Unmarshal(d.Func, &fn) != nil {
			return ChargeDensity{}, false
		}
		if d.Var == nil || CheckLen(*d.Var, VarLimit) != nil {
			return ChargeDensity{}, false
		}
		rho := ChargeDensity{
			Mode:  DensityPreset,
			Func:  PresetFunc(fn),
			Var:   *d.Var,
			Scale: 1,
		}
		if d.Scale != nil {
			rho.Scale = *d.Scale
		}
		if d.Value != nil {
			rho.Value = *d.Value
		}
		return rho, true
	}

	var expr string
	if json.Unmarshal(d.Func, &expr) != nil {
		return ChargeDensity{}, false
	}
	if CheckLen(expr, ExprLimit) != nil {
		return ChargeDensity{}, false
	}
	return ChargeDensity{Mode: DensityCustom, Expr: expr}, true
}

// Save writes st to path as indented JSON. Scalar keys are always
// written; plot-bounds only when bounds are explicit, and the two
// lists only when non-empty. The write is not atomic.
func Save(path string, st *State) error {
	f := fileJSON{
		Margins:    st.Margins[:],
		EField:     &fieldToggle{Plot: &st.PlotEField},
		BField:     &fieldToggle{Plot: &st.PlotBField},
		Plane:      &planeJSON{Axis: &st.Plane.Axis, Coordinate: &st.Plane.Coordinate},
		Show:       &st.ShowPlots,
		Resolution: &st.Resolution,
		Colormap:   &st.Colormap,
	}
	if !st.InferBounds {
		f.Bounds = &boundsJSON{Min: st.Bounds.Min[:], Max: st.Bounds.Max[:]}
	}
	for _, c := range st.Charges {
		f.Charges = append(f.Charges, []float64{c.Q, c.X, c.Y, c.Z})
	}
	for _, rho := range st.Densities {
		f.Densities = append(f.Densities, encodeDensity(rho))
	}

	data, err := json.MarshalIndent(f, "", "    ")
	if err != nil {
		return fmt.Errorf("encode parameters: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write parameters: %w", err)
	}
	return nil
}

func encodeDensity(rho ChargeDensity) densityJSON {
	if rho.Mode == DensityPreset {
		fn, _ := json.Marshal(int(rho.Func))
		v, scale, value := rho.Var, rho.Scale, rho.Value
		return densityJSON{
			Preset: true,
			Func:   fn,
			Var:    &v,
			Scale:  &scale,
			Value:  &value,
		}
	}
	expr, _ := json.Marshal(rho.Expr)
	return densityJSON{Preset: false, Func: expr}
}
