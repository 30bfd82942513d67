package outpath

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRecursivePreservesStructureBelowMarker(t *testing.T) {
	r := Resolver{RootMarker: "lib"}

	got := r.Recursive(
		filepath.Join("generated", "auth.g.dart"),
		filepath.Join("app", "lib", "auth", "session", "token.dart"),
	)
	want := filepath.Join("generated", "auth", "session", "token.g.dart")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestRecursiveMarkerAtParent(t *testing.T) {
	r := Resolver{RootMarker: "lib"}

	// Input directly under the marker gets no extra nesting.
	got := r.Recursive(
		filepath.Join("out", "group.g.dart"),
		filepath.Join("lib", "messages.dart"),
	)
	want := filepath.Join("out", "messages.g.dart")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestRecursiveFallbackLastTwoComponents(t *testing.T) {
	r := Resolver{RootMarker: "lib"}

	// No marker anywhere: keep the last two directory components.
	got := r.Recursive(
		filepath.Join("out", "group.g.dart"),
		filepath.Join("a", "b", "c", "d", "file.dart"),
	)
	want := filepath.Join("out", "c", "d", "file.g.dart")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestRecursiveShallowInputNoNesting(t *testing.T) {
	r := Resolver{}

	got := r.Recursive(
		filepath.Join("out", "group.g.dart"),
		"file.dart",
	)
	want := filepath.Join("out", "file.g.dart")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestRecursiveCustomMarker(t *testing.T) {
	r := Resolver{RootMarker: "pigeons"}

	got := r.Recursive(
		filepath.Join("gen", "api.g.dart"),
		filepath.Join("proj", "pigeons", "v2", "api.dart"),
	)
	want := filepath.Join("gen", "v2", "api.g.dart")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestFlat(t *testing.T) {
	r := Resolver{}

	got := r.Flat("out", filepath.Join("lib", "deep", "messages.dart"))
	want := filepath.Join("out", "messages.dart")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestEnsureDirCreatesChain(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "a", "b", "c", "out.g.dart")

	EnsureDir(target)

	info, err := os.Stat(filepath.Dir(target))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory chain to exist: %v", err)
	}
}

func TestEnsureDirFailureIsNotFatal(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	// Directory creation under a regular file cannot succeed; EnsureDir
	// must swallow it.
	EnsureDir(filepath.Join(blocker, "sub", "out.g.dart"))
}
