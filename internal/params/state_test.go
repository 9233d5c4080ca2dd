package params

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	st := Default()
	if st.Margins != (Vec3{5, 5, 5}) {
		t.Fatalf("Margins=%v, want {5 5 5}", st.Margins)
	}
	if !st.PlotEField || !st.PlotBField {
		t.Fatalf("field toggles=%v/%v, want both true", st.PlotEField, st.PlotBField)
	}
	if st.Plane != (Plane{Axis: 2, Coordinate: 0}) {
		t.Fatalf("Plane=%v, want XY at 0", st.Plane)
	}
	if st.ShowPlots {
		t.Fatal("ShowPlots=true, want false")
	}
	if !st.InferBounds {
		t.Fatal("InferBounds=false, want true")
	}
	if st.Resolution != 100 {
		t.Fatalf("Resolution=%d, want 100", st.Resolution)
	}
	if st.Colormap != "cool" {
		t.Fatalf("Colormap=%q, want %q", st.Colormap, "cool")
	}
	if len(st.Charges) != 0 || len(st.Densities) != 0 {
		t.Fatal("default state has list entries")
	}
}

func TestRemoveChargeKeepsOrder(t *testing.T) {
	st := Default()
	for q := 0; q < 5; q++ {
		st.Charges = append(st.Charges, Charge{Q: float64(q)})
	}

	st.RemoveCharge(2)

	want := []Charge{{Q: 0}, {Q: 1}, {Q: 3}, {Q: 4}}
	if !reflect.DeepEqual(st.Charges, want) {
		t.Fatalf("Charges=%v, want %v", st.Charges, want)
	}
}

func TestRemoveDensityKeepsOrder(t *testing.T) {
	st := Default()
	for i := 0; i < 3; i++ {
		st.Densities = append(st.Densities, ChargeDensity{Mode: DensityCustom, Expr: strings.Repeat("x", i+1)})
	}

	st.RemoveDensity(0)

	if len(st.Densities) != 2 {
		t.Fatalf("len=%d, want 2", len(st.Densities))
	}
	if st.Densities[0].Expr != "xx" || st.Densities[1].Expr != "xxx" {
		t.Fatalf("Densities=%v, want remaining entries in order", st.Densities)
	}
}

func TestAddDensityDefaults(t *testing.T) {
	st := Default()
	st.AddDensity()

	want := ChargeDensity{Mode: DensityPreset, Func: PresetDelta, Var: "x", Scale: 1}
	if st.Densities[0] != want {
		t.Fatalf("new density=%+v, want %+v", st.Densities[0], want)
	}
}

func TestCheckLen(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		limit   int
		tooLong bool
	}{
		{"empty", "", ColormapLimit, false},
		{"just under", strings.Repeat("a", ColormapLimit-1), ColormapLimit, false},
		{"at limit", strings.Repeat("a", ColormapLimit), ColormapLimit, true},
		{"over limit", strings.Repeat("a", ColormapLimit+1), ColormapLimit, true},
		{"var four chars", "phi", VarLimit, false},
		{"var five chars", "theta", VarLimit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckLen(tt.s, tt.limit)
			if tt.tooLong && !errors.Is(err, ErrTooLong) {
				t.Fatalf("err=%v, want ErrTooLong", err)
			}
			if !tt.tooLong && err != nil {
				t.Fatalf("err=%v, want nil", err)
			}
		})
	}
}
