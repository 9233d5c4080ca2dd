package editor

import (
	"fmt"

	"github.com/arcphys/field-editor/internal/config"
	"github.com/arcphys/field-editor/internal/params"
)

// buildForm lays out the whole editor for one frame, mutating the
// state in place as widgets report interactions.
func (g *Editor) buildForm(f *form) {
	st := g.state

	if f.header("Electrostatics") {
		if f.button("addQ", "Add charge") {
			st.AddCharge()
		}
		f.endRow()
		// Manual index bookkeeping: after a deletion the entry that
		// slid into slot i is built next frame, not skipped.
		for i := 0; i < len(st.Charges); {
			c := &st.Charges[i]
			qid := fmt.Sprintf("q%d", i)
			f.label("Charge (q, x, y, z)")
			f.floatField(qid+".q", &c.Q, config.FieldW)
			f.floatField(qid+".x", &c.X, config.FieldW)
			f.floatField(qid+".y", &c.Y, config.FieldW)
			f.floatField(qid+".z", &c.Z, config.FieldW)
			if f.button(qid+".del", "Delete") {
				st.RemoveCharge(i)
			} else {
				i++
			}
			f.endRow()
		}

		if f.button("addRho", "Add charge density function") {
			st.AddDensity()
		}
		f.endRow()
		for i := 0; i < len(st.Densities); {
			rho := &st.Densities[i]
			rid := fmt.Sprintf("rho%d", i)

			preset := rho.Mode == params.DensityPreset
			f.checkbox(rid+".preset", "Use preset function", &preset)
			rho.Mode = params.DensityCustom
			if preset {
				rho.Mode = params.DensityPreset
			}
			f.endRow()

			if preset {
				fn := int(rho.Func)
				for p, name := range params.PresetNames {
					f.radio(fmt.Sprintf("%s.fn%d", rid, p), name, &fn, p)
				}
				rho.Func = params.PresetFunc(fn)
				f.endRow()
				f.label("Variable (x, y, z, r, theta, phi, rc)")
				f.textField(rid+".var", &rho.Var, params.VarLimit, config.FieldW)
				f.endRow()
				f.label("Scale")
				f.floatField(rid+".scale", &rho.Scale, config.FieldW)
				f.label("Value")
				f.floatField(rid+".value", &rho.Value, config.FieldW)
				f.endRow()
			} else {
				f.label("rho(x,y,z/r,theta,phi/rc,phi,z) =")
				f.textField(rid+".expr", &rho.Expr, params.ExprLimit, config.WideFieldW)
				f.endRow()
			}

			if f.button(rid+".del", "Delete density") {
				st.RemoveDensity(i)
			} else {
				i++
			}
			f.endRow()
		}
	}

	if f.header("Plane of interest") {
		f.label("Plot fields in which plane?")
		f.radio("plane.xy", "XY", &st.Plane.Axis, 2)
		f.radio("plane.xz", "XZ", &st.Plane.Axis, 1)
		f.radio("plane.yz", "YZ", &st.Plane.Axis, 0)
		f.endRow()
		f.label("Coordinate on nonplanar axis")
		f.floatField("plane.coord", &st.Plane.Coordinate, config.FieldW)
		f.endRow()
	}

	if f.header("Plot") {
		f.label("Color map")
		f.textField("colormap", &st.Colormap, params.ColormapLimit, config.WideFieldW)
		f.endRow()
		f.checkbox("efield", "Plot electric field", &st.PlotEField)
		f.endRow()
		f.checkbox("bfield", "Plot magnetic field", &st.PlotBField)
		f.endRow()
		f.checkbox("show", "Show plots after saving", &st.ShowPlots)
		f.endRow()
		f.label("Plot margins (X, Y, Z)")
		f.floatField("margin.x", &st.Margins[0], config.FieldW)
		f.floatField("margin.y", &st.Margins[1], config.FieldW)
		f.floatField("margin.z", &st.Margins[2], config.FieldW)
		f.endRow()
		f.checkbox("infer", "Infer plot bounds", &st.InferBounds)
		f.endRow()
		if !st.InferBounds {
			f.label("Plot bounds (minimum X, Y, Z)")
			f.floatField("bmin.x", &st.Bounds.Min[0], config.FieldW)
			f.floatField("bmin.y", &st.Bounds.Min[1], config.FieldW)
			f.floatField("bmin.z", &st.Bounds.Min[2], config.FieldW)
			f.endRow()
			f.label("Plot bounds (maximum X, Y, Z)")
			f.floatField("bmax.x", &st.Bounds.Max[0], config.FieldW)
			f.floatField("bmax.y", &st.Bounds.Max[1], config.FieldW)
			f.floatField("bmax.z", &st.Bounds.Max[2], config.FieldW)
			f.endRow()
		}
		f.label("Plot resolution")
		f.intField("resolution", &st.Resolution, config.FieldW)
		f.endRow()
	}

	if f.header("Disk") {
		if f.button("load", "Load...") {
			g.loadFromDialog()
		}
		if f.button("save", "Save...") {
			g.saveToDialog()
		}
		f.endRow()
	}

	if f.button("exit", "Exit") {
		g.quit = true
	}
	f.endRow()
}
