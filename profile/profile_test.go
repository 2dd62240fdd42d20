package profile

import (
	"slices"
	"testing"
)

func TestNew_AppliesOptions(t *testing.T) {
	p := New(WithMode("cpu"), WithPath("/tmp/odatauri"), WithQuiet(true))

	if p.Mode != "cpu" || p.Path != "/tmp/odatauri" || !p.Quiet {
		t.Errorf("unexpected profiler %+v", p)
	}
}

func TestStart_NoMode_IsNoop(t *testing.T) {
	ctrl := New(WithPath(t.TempDir())).Start()
	if _, ok := ctrl.(ignore); !ok {
		t.Errorf("expected no-op profiler, got %T", ctrl)
	}

	ctrl.Stop()
}

func TestStart_UnknownMode_IsNoop(t *testing.T) {
	ctrl := New(WithMode("bogus"), WithPath(t.TempDir())).Start()
	if _, ok := ctrl.(ignore); !ok {
		t.Errorf("expected no-op profiler, got %T", ctrl)
	}

	ctrl.Stop()
}

func TestModes(t *testing.T) {
	modes := Modes()

	if !Enabled {
		if len(modes) != 0 {
			t.Errorf("expected no modes without %s tag, got %v", Tag, modes)
		}

		return
	}

	if !slices.IsSorted(modes) || !slices.Contains(modes, "cpu") || slices.Contains(modes, "quiet") {
		t.Errorf("unexpected modes %v", modes)
	}
}
