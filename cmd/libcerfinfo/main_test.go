package main

import (
	"math"
	"testing"
)

func TestCommandsArgCounts(t *testing.T) {
	want := map[string]int{
		"wofz": 2, "imwofx": 1, "erfcx": 1, "erfi": 1, "dawson": 1,
		"cerf": 2, "cerfc": 2, "cerfi": 2, "cdawson": 2,
		"voigt": 3, "voigt-hwhm": 2,
	}
	for name, n := range want {
		cmd, ok := commands[name]
		if !ok {
			t.Fatalf("missing command %q", name)
		}
		if cmd.nargs != n {
			t.Fatalf("%s.nargs = %d, want %d", name, cmd.nargs, n)
		}
	}
}

func TestErfcxCommand(t *testing.T) {
	got := commands["erfcx"].run([]float64{20})[0]
	want := 0.0281743487410513
	if math.Abs(got-want)/want > 1e-9 {
		t.Fatalf("erfcx 20 = %v, want %v", got, want)
	}
}

func TestVoigtHWHMCommand(t *testing.T) {
	got := commands["voigt-hwhm"].run([]float64{1, 0})[0]
	want := math.Sqrt(2 * math.Ln2)
	if math.Abs(got-want)/want > 1e-9 {
		t.Fatalf("voigt-hwhm 1 0 = %v, want %v", got, want)
	}
}
