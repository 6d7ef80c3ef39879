package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupUnknownFallsBackToDefault(t *testing.T) {
	r := NewRegistry()
	got := r.Lookup("no-such-preset")
	if got.Name != DefaultName {
		t.Fatalf("expected default preset for unknown name, got %q", got.Name)
	}
}

func TestBuiltinsPresent(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"default", "dark", "light", "accent"} {
		if !r.Has(name) {
			t.Fatalf("expected builtin preset %q", name)
		}
	}
}

func TestLoadFileNameFromFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ocean.yaml")
	content := "header_bg: \"25\"\nbody_bg: \"17\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write theme file: %v", err)
	}

	r := NewRegistry()
	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	got := r.Lookup("ocean")
	if got.Name != "ocean" {
		t.Fatalf("expected preset named ocean, got %q", got.Name)
	}
	if got.HeaderBg != "25" || got.BodyBg != "17" {
		t.Fatalf("unexpected colors: %+v", got)
	}
	// Unset fields inherit from default.
	def := r.Lookup(DefaultName)
	if got.Border != def.Border {
		t.Fatalf("expected border inherited from default, got %q", got.Border)
	}
}

func TestLoadDirMissingIsNotAnError(t *testing.T) {
	r := NewRegistry()
	if err := r.LoadDir(filepath.Join(t.TempDir(), "missing")); err != nil {
		t.Fatalf("expected nil for missing dir, got %v", err)
	}
}

func TestLoadDirShadowsBuiltin(t *testing.T) {
	dir := t.TempDir()
	content := "border: \"99\"\n"
	if err := os.WriteFile(filepath.Join(dir, "dark.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write theme file: %v", err)
	}

	r := NewRegistry()
	if err := r.LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if got := r.Lookup("dark"); got.Border != "99" {
		t.Fatalf("expected user file to shadow builtin dark, got border %q", got.Border)
	}
}

func TestLoadFileRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write theme file: %v", err)
	}
	r := NewRegistry()
	if err := r.LoadFile(path); err == nil {
		t.Fatalf("expected parse error for malformed theme file")
	}
}
