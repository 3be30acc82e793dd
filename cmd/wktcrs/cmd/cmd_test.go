package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	wktcrs "github.com/reoring/wktcrs"
)

const wgs84 = `GEODCRS["WGS84",DATUM["WGS84",ELLIPSOID["WGS84",6378137,298.257223563]],CS[ellipsoidal,2],AXIS["lat",north],AXIS["lon",east]]`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestCheck_OK(t *testing.T) {
	out, _, err := run(t, wgs84, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if out != "-: ok (geodetic CRS \"WGS84\")\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCheck_ReportsIssue(t *testing.T) {
	_, _, err := run(t, `GEODCRS["X",DATUM["X",ELLIPSOID["X",1,1]]`, "check")
	if !wktcrs.HasCode(err, wktcrs.CodeUnmatchedBracket) {
		t.Fatalf("expected unmatched_bracket, got %v", err)
	}
}

func TestFmt_CompactAndPretty(t *testing.T) {
	out, _, err := run(t, wgs84, "fmt", "--compact")
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if out != wgs84+"\n" {
		t.Fatalf("compact output mismatch: %q", out)
	}

	out, _, err = run(t, wgs84, "fmt", "--indent", "\t")
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if !strings.Contains(out, "\n\tDATUM[\"WGS84\",\n\t\tELLIPSOID[") {
		t.Fatalf("pretty output mismatch: %q", out)
	}
}

func TestFmt_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.wkt")
	if err := os.WriteFile(path, []byte(wgs84), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, "", "fmt", "--compact", path)
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if strings.TrimSpace(out) != wgs84 {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestExport_YAML(t *testing.T) {
	out, _, err := run(t, wgs84, "export", "-f", "yaml")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "keyword: GEODCRS") {
		t.Fatalf("unexpected output: %q", out)
	}
	if _, _, err := run(t, wgs84, "export", "-f", "xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestDemo(t *testing.T) {
	out, _, err := run(t, "", "demo")
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	if !strings.Contains(out, "COMPOUNDCRS[\"WGS84 + EGM2008 height\"") || !strings.Contains(out, "2 components") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wktcrs.toml")
	body := "[format]\ncompact = true\n\n[parse]\nmax_depth = 2\n\n[log]\nlevel = \"debug\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if nl, ind := cfg.Layout(); nl != "" || ind != "" {
		t.Fatalf("compact layout expected, got %q %q", nl, ind)
	}
	if cfg.ParseOpt().MaxDepth != 2 || cfg.Parse.MaxBytes != 1<<20 {
		t.Fatalf("unexpected parse options: %+v", cfg.Parse)
	}

	_, errOut, err := run(t, wgs84, "--config", path, "check")
	if !wktcrs.HasCode(err, wktcrs.CodeTooDeep) {
		t.Fatalf("expected too_deep with max_depth=2, got %v", err)
	}
	if !strings.Contains(errOut, "level=DEBUG") {
		t.Fatalf("expected debug logs, got %q", errOut)
	}
}

func TestConfig_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[format]\nwidth = 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil || !strings.HasPrefix(out, "wktcrs v") {
		t.Fatalf("version: %q err=%v", out, err)
	}
}
