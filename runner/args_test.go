package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pigeonbuild/cli/config"
	"github.com/pigeonbuild/cli/outpath"
	"github.com/pigeonbuild/cli/ui"
)

func testRunner(opts Options) *Runner {
	console := ui.NewConsole(ui.Options{Out: &bytes.Buffer{}})
	return New(console, opts)
}

func TestBuildArgsTranslation(t *testing.T) {
	r := testRunner(Options{Generator: "pigeon"})
	file := config.DiscoveredFile{Path: "lib/api.dart", Spec: "lib/api.dart"}

	tests := []struct {
		name    string
		options []config.Option
		want    []string
		wantErr bool
	}{
		{
			name:    "no options",
			options: nil,
			want:    []string{"--input", "lib/api.dart"},
		},
		{
			name:    "bool true becomes bare flag",
			options: []config.Option{{Name: "debug", Value: true}},
			want:    []string{"--input", "lib/api.dart", "--debug"},
		},
		{
			name:    "bool false omitted",
			options: []config.Option{{Name: "debug", Value: false}},
			want:    []string{"--input", "lib/api.dart"},
		},
		{
			name:    "string becomes flag value pair",
			options: []config.Option{{Name: "dart_out", Value: "out/api.g.dart"}},
			want:    []string{"--input", "lib/api.dart", "--dart_out", "out/api.g.dart"},
		},
		{
			name:    "empty string omitted",
			options: []config.Option{{Name: "dart_out", Value: ""}},
			want:    []string{"--input", "lib/api.dart"},
		},
		{
			name: "list emits one pair per element in order",
			options: []config.Option{
				{Name: "copyright_header", Value: []any{"a.txt", "b.txt"}},
			},
			want: []string{"--input", "lib/api.dart", "--copyright_header", "a.txt", "--copyright_header", "b.txt"},
		},
		{
			name: "option order preserved",
			options: []config.Option{
				{Name: "z_first", Value: "1"},
				{Name: "a_second", Value: "2"},
			},
			want: []string{"--input", "lib/api.dart", "--z_first", "1", "--a_second", "2"},
		},
		{
			name:    "unsupported type is an error",
			options: []config.Option{{Name: "count", Value: 7}},
			wantErr: true,
		},
		{
			name:    "unsupported list element is an error",
			options: []config.Option{{Name: "xs", Value: []any{"ok", 7}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.buildArgs(config.Group{Name: "g", Options: tt.options}, file)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBuildArgsRecursiveModifierRewritesPath(t *testing.T) {
	tmp := t.TempDir()
	r := testRunner(Options{Resolver: outpath.Resolver{RootMarker: "lib"}})

	outBase := filepath.Join(tmp, "gen", "group.g.dart")
	file := config.DiscoveredFile{Path: filepath.Join("app", "lib", "auth", "login.dart")}
	group := config.Group{Name: "g", Options: []config.Option{
		{Name: "dart_out", Modifier: config.ModifierCreateDirRecursive, Value: outBase},
	}}

	got, err := r.buildArgs(group, file)
	if err != nil {
		t.Fatalf("buildArgs failed: %v", err)
	}

	wantOut := filepath.Join(tmp, "gen", "auth", "login.g.dart")
	want := []string{"--input", file.Path, "--dart_out", wantOut}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// The destination directory chain must exist afterwards.
	if info, err := os.Stat(filepath.Dir(wantOut)); err != nil || !info.IsDir() {
		t.Errorf("expected output directory to be created: %v", err)
	}
}

func TestBuildArgsFlatModifier(t *testing.T) {
	tmp := t.TempDir()
	r := testRunner(Options{})

	outDir := filepath.Join(tmp, "objc")
	file := config.DiscoveredFile{Path: filepath.Join("lib", "api.dart")}
	group := config.Group{Name: "g", Options: []config.Option{
		{Name: "objc_out", Modifier: config.ModifierCreateDir, Value: outDir},
	}}

	got, err := r.buildArgs(group, file)
	if err != nil {
		t.Fatalf("buildArgs failed: %v", err)
	}

	want := []string{"--input", file.Path, "--objc_out", filepath.Join(outDir, "api.dart")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if info, err := os.Stat(outDir); err != nil || !info.IsDir() {
		t.Errorf("expected output directory to be created: %v", err)
	}
}

func TestBuildArgsResolvesSymlinks(t *testing.T) {
	tmp := t.TempDir()
	real := filepath.Join(tmp, "real.dart")
	if err := os.WriteFile(real, []byte("// test"), 0o644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(tmp, "link.dart")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	r := testRunner(Options{})
	got, err := r.buildArgs(config.Group{Name: "g"}, config.DiscoveredFile{Path: link})
	if err != nil {
		t.Fatalf("buildArgs failed: %v", err)
	}

	resolved, err := filepath.EvalSymlinks(real)
	if err != nil {
		t.Fatal(err)
	}
	if got[1] != resolved {
		t.Errorf("expected symlink-resolved input %s, got %s", resolved, got[1])
	}
}
