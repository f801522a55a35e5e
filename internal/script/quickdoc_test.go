// SPDX-License-Identifier: MPL-2.0

package script

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestCollect(t *testing.T) {
	registry := NewRegistry()
	registry.Register("alpha", &Func{DocText: "First script\n===\nmanual"})
	registry.Register("beta", &Func{DocText: ""})

	r := NewResolver(t.TempDir(), registry)

	got, err := Collect(r, []string{"alpha", "missing", "beta"})
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}

	want := []Descriptor{
		{Name: "alpha", Title: "First script"},
		{Name: "beta", Title: ""},
	}
	if len(got) != len(want) {
		t.Fatalf("Collect returned %d descriptors, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Collect()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// Only not-found is skippable; any other load failure aborts the whole
// collection instead of silently thinning the listing.
func TestCollectAbortsOnLoadFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.go"), "this is not valid go source\n")

	registry := NewRegistry()
	registry.Register("alpha", &Func{DocText: "Fine"})

	r := NewResolver(dir, registry)

	descriptors, err := Collect(r, []string{"alpha", "broken"})
	if err == nil {
		t.Fatal("Collect with a broken script expected error, got nil")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("Collect error = %v, must not be ErrNotFound", err)
	}
	if descriptors != nil {
		t.Errorf("Collect returned descriptors %v alongside the error", descriptors)
	}
}

func TestCollectEmpty(t *testing.T) {
	r := NewResolver(t.TempDir(), nil)

	got, err := Collect(r, nil)
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Collect(nil) = %v, want empty", got)
	}
}
