package logger

import "testing"

func TestDefault_Replaceable(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	d := &testDrain{}
	root := NewRoot(String("app", "test"))
	root.SetDrain(d)
	SetDefault(root)

	Info("through the package funcs", Int("n", 1))
	Error("and again")

	got := d.captured()
	if len(got) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(got))
	}
	if got[0].msg != "through the package funcs" || got[1].msg != "and again" {
		t.Errorf("Unexpected messages: %+v", got)
	}
}

func TestWith_DerivesFromDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	d := &testDrain{}
	root := NewRoot(String("app", "test"))
	root.SetDrain(d)
	SetDefault(root)

	child := With(String("req", "7"))
	child.Warning("derived")

	got := d.captured()
	if len(got) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(got))
	}
	keys := keysOf(got[0].logger)
	if len(keys) != 2 || keys[0] != "app" || keys[1] != "req" {
		t.Errorf("Unexpected inherited keys: %v", keys)
	}
}

func TestDefault_LevelFuncsCoverAllLevels(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	d := &testDrain{}
	root := NewRoot()
	root.SetDrain(d)
	SetDefault(root)

	Critical("c")
	Error("e")
	Warning("w")
	Info("i")
	Debug("d")
	Trace("t")

	if len(d.captured()) != 6 {
		t.Errorf("Expected 6 records, got %d", len(d.captured()))
	}
}
