// SPDX-License-Identifier: MPL-2.0

package script

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestResolveFromRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Register("greet", &Func{DocText: "Say hello\n===\nmanual"})

	r := NewResolver(t.TempDir(), registry)

	s, err := r.Resolve("greet")
	if err != nil {
		t.Fatalf("Resolve(greet) error: %v", err)
	}
	if s.Doc() != "Say hello\n===\nmanual" {
		t.Errorf("Doc() = %q", s.Doc())
	}
}

func TestResolveNotFound(t *testing.T) {
	r := NewResolver(t.TempDir(), nil)

	_, err := r.Resolve("doesnotexist")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve(doesnotexist) error = %v, want ErrNotFound", err)
	}
}

func TestResolveGoScript(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "check.go"), `package main

import "errors"

var Doc = "Check exactly one argument\n===\nFull manual."

func Main(args []string) error {
	if len(args) != 1 {
		return errors.New("want exactly one argument")
	}
	return nil
}
`)

	r := NewResolver(dir, nil)

	s, err := r.Resolve("check")
	if err != nil {
		t.Fatalf("Resolve(check) error: %v", err)
	}
	if s.Doc() != "Check exactly one argument\n===\nFull manual." {
		t.Errorf("Doc() = %q", s.Doc())
	}
	if err := s.Main([]string{"hello"}); err != nil {
		t.Errorf("Main([hello]) error: %v", err)
	}
	if err := s.Main(nil); err == nil {
		t.Error("Main(nil) expected error, got nil")
	}
}

func TestResolveGoScriptWithoutDoc(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "plain.go"), `package main

func Main(args []string) error { return nil }
`)

	r := NewResolver(dir, nil)

	s, err := r.Resolve("plain")
	if err != nil {
		t.Fatalf("Resolve(plain) error: %v", err)
	}
	if s.Doc() != "" {
		t.Errorf("Doc() = %q, want empty", s.Doc())
	}
}

func TestResolveGoScriptWithoutMain(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "doconly.go"), `package main

var Doc = "Doc only"
`)

	r := NewResolver(dir, nil)

	s, err := r.Resolve("doconly")
	if err != nil {
		t.Fatalf("Resolve(doconly) error: %v", err)
	}
	if err := s.Main(nil); err == nil {
		t.Error("Main on a script without Main expected error, got nil")
	}
}

// A file that exists but cannot be loaded is a distinct failure, not
// not-found: callers must not be able to mistake it for a skippable name.
func TestResolveInvalidGoScriptIsNotNotFound(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.go"), "this is not valid go source\n")

	r := NewResolver(dir, nil)

	_, err := r.Resolve("broken")
	if err == nil {
		t.Fatal("Resolve(broken) expected error, got nil")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve(broken) error = %v, must not be ErrNotFound", err)
	}
}

func TestResolveScriptFolder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pack", "main.go"), `package main

var Doc = "Folder script"

func Main(args []string) error { return nil }
`)

	r := NewResolver(dir, nil)

	s, err := r.Resolve("pack")
	if err != nil {
		t.Fatalf("Resolve(pack) error: %v", err)
	}
	if s.Doc() != "Folder script" {
		t.Errorf("Doc() = %q", s.Doc())
	}
}

func TestResolveFolderWithoutEntryIsNotFound(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "emptydir"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	r := NewResolver(dir, nil)

	_, err := r.Resolve("emptydir")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve(emptydir) error = %v, want ErrNotFound", err)
	}
}

func TestRegistryShadowsFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "greet.go"), "this is not valid go and must never be loaded")

	registry := NewRegistry()
	registry.Register("greet", &Func{DocText: "built-in"})

	r := NewResolver(dir, registry)

	s, err := r.Resolve("greet")
	if err != nil {
		t.Fatalf("Resolve(greet) error: %v", err)
	}
	if s.Doc() != "built-in" {
		t.Errorf("Doc() = %q, want the registry entry", s.Doc())
	}
}

func TestRegistered(t *testing.T) {
	registry := NewRegistry()
	registry.Register("alpha", &Func{})
	registry.Register("beta", &Func{})

	r := NewResolver(t.TempDir(), registry)

	got := r.Registered()
	slices.Sort(got)
	if !slices.Equal(got, []string{"alpha", "beta"}) {
		t.Errorf("Registered() = %v, want [alpha beta]", got)
	}

	if empty := NewResolver(t.TempDir(), nil).Registered(); len(empty) != 0 {
		t.Errorf("Registered() without registry = %v, want empty", empty)
	}
}

func TestResolveCachesResult(t *testing.T) {
	registry := NewRegistry()
	registry.Register("once", &Func{})

	r := NewResolver(t.TempDir(), registry)

	first, err := r.Resolve("once")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	// Re-registering must not affect an already-resolved name.
	registry.Register("once", &Func{DocText: "replaced"})

	second, err := r.Resolve("once")
	if err != nil {
		t.Fatalf("second Resolve error: %v", err)
	}
	if first != second {
		t.Error("Resolve did not reuse the cached script")
	}
}
