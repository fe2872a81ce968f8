package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eca/internal/elementary"
	"eca/internal/sweep"
)

// isolateHome points HOME at a temp directory so tests never read a real
// ~/.eca/config.yaml.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func decodeGrid(t *testing.T, out string) gridDocument {
	t.Helper()
	var doc gridDocument
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	return doc
}

func TestVersionCmd(t *testing.T) {
	isolateHome(t)
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "eca version "+version) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRunCmdJSON(t *testing.T) {
	isolateHome(t)
	out, err := execute(t, "run", "--rule", "110", "--gens", "2", "--size", "7", "--boundary", "mirror", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := decodeGrid(t, out)
	want := []string{"1000000", "1000000"}
	if strings.Join(doc.Rows, ",") != strings.Join(want, ",") {
		t.Errorf("rows = %v, want %v", doc.Rows, want)
	}
	if doc.Rule != 110 || doc.Boundary != "mirror" || doc.Width != 7 || doc.Generations != 2 {
		t.Errorf("unexpected document header: %+v", doc)
	}
}

func TestRunCmdText(t *testing.T) {
	isolateHome(t)
	t.Setenv("ECA_RULE", "30")
	out, err := execute(t, "run", "--gens", "2", "--size", "5", "--boundary", "toric", "--format", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "█    \n██  █\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRunCmdRejectsInvalidRule(t *testing.T) {
	isolateHome(t)
	_, err := execute(t, "run", "--rule", "300")
	if !errors.Is(err, elementary.ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
}

func TestRunCmdRejectsOversizedGrid(t *testing.T) {
	isolateHome(t)
	_, err := execute(t, "run", "--gens", "65", "--max-dimension", "64")
	if !errors.Is(err, elementary.ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestRunCmdPNGFile(t *testing.T) {
	home := isolateHome(t)
	path := filepath.Join(home, "grid.png")
	if _, err := execute(t, "run", "--gens", "8", "--size", "8", "--format", "png", "--canvas", "64", "--out", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("expected 64x64 image, got %v", b)
	}
}

func TestRunCmdPixelPNG(t *testing.T) {
	isolateHome(t)
	out, err := execute(t, "run", "--gens", "3", "--size", "5", "--format", "png", "--pixel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, err := png.Decode(strings.NewReader(out))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Errorf("expected 5x3 image, got %v", b)
	}
}

func TestStepCmdDecimal(t *testing.T) {
	isolateHome(t)
	out, err := execute(t, "step", "5", "--rule", "110", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := decodeGrid(t, out)
	if strings.Join(doc.Rows, ",") != "101,111" {
		t.Errorf("rows = %v, want [101 111]", doc.Rows)
	}
	if doc.Boundary != "mirror" {
		t.Errorf("step should default to mirror, got %s", doc.Boundary)
	}
}

func TestStepCmdBits(t *testing.T) {
	isolateHome(t)
	out, err := execute(t, "step", "--bits", "001", "--rule", "110", "--boundary", "toric", "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc := decodeGrid(t, out); strings.Join(doc.Rows, ",") != "001,011" {
		t.Errorf("rows = %v, want [001 011]", doc.Rows)
	}
}

func TestStepCmdArgumentErrors(t *testing.T) {
	isolateHome(t)
	tests := [][]string{
		{"step"},
		{"step", "5", "--bits", "101"},
		{"step", "-1"},
		{"step", "--bits", "10x"},
		{"step", "5", "--boundary", "sphere"},
	}
	for _, args := range tests {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestRuleCmd(t *testing.T) {
	isolateHome(t)
	out, err := execute(t, "rule", "110")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Rule 110 (01101110)", "111 -> 0", "110 -> 1", "000 -> 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := execute(t, "rule", "256"); !errors.Is(err, elementary.ErrInvalidRule) {
		t.Errorf("expected ErrInvalidRule, got %v", err)
	}
	if _, err := execute(t, "rule", "abc"); err == nil {
		t.Error("expected error for non-numeric rule")
	}
}

func TestSweepCmd(t *testing.T) {
	isolateHome(t)
	out, err := execute(t, "sweep", "--gens", "20", "--size", "8", "--boundary", "toric", "--workers", "2", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var results []sweep.Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(results) != 256 {
		t.Fatalf("expected 256 results, got %d", len(results))
	}
	if results[204].Rule != 204 || results[204].Period != 1 {
		t.Errorf("unexpected identity rule result: %+v", results[204])
	}

	out, err = execute(t, "sweep", "--gens", "10", "--size", "8", "--sort", "density", "--top", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Top 3 rules by density") || strings.Count(out, "rule=") != 3 {
		t.Errorf("unexpected text output:\n%s", out)
	}

	if _, err := execute(t, "sweep", "--gens", "5", "--size", "5", "--sort", "colour"); err == nil {
		t.Error("expected error for unknown sort key")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	home := isolateHome(t)
	path := filepath.Join(home, "eca", "config.yaml")

	out, err := execute(t, "config", "init", "--config", path)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("init output should mention the path, got %q", out)
	}
	if _, err := execute(t, "config", "init", "--config", path); err == nil {
		t.Error("second init without --force should fail")
	}

	t.Setenv("ECA_BOUNDARY", "toric")
	out, err = execute(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "rule: 110") || !strings.Contains(out, "boundary: toric") {
		t.Errorf("unexpected config output:\n%s", out)
	}

	out, err = execute(t, "config", "path", "--config", path)
	if err != nil || strings.TrimSpace(out) != path {
		t.Errorf("config path = %q (err %v), want %q", out, err, path)
	}
}
