package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/raphi011/ldconf/internal/search"
)

type stubPlatform struct{ home string }

func (p stubPlatform) Windows() bool               { return false }
func (p stubPlatform) HomeDir() (string, error)    { return p.home, nil }
func (p stubPlatform) InstallPath() (string, bool) { return "", false }

// fixture puts content into <tmp>/test.conf, chdirs into tmp so the
// working-directory candidate wins, and returns a locator whose other
// candidates all point into the empty tmp tree. Empty content means no
// file is written at all.
func fixture(t *testing.T, content string) *search.Locator {
	t.Helper()
	tmp := t.TempDir()
	chdir(t, tmp)

	if content != "" {
		if err := os.WriteFile(filepath.Join(tmp, "test.conf"), []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	return search.New(filepath.Join(tmp, "bin"), stubPlatform{home: filepath.Join(tmp, "home")})
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("error %v is not a *config.Error", err)
	}
	return cerr.Kind
}

func TestReadSwitches(t *testing.T) {
	loc := fixture(t, `[default]
switches = [
    "-I%%ldcbinarypath%%/inc",
    "-O2",
    "%%ldcbinarypath%%/a%%ldcbinarypath%%/b",
]
`)

	var f File
	if err := f.Read(loc, "test.conf", "/opt/ldc/bin"); err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []string{"-I/opt/ldc/bin/inc", "-O2", "/opt/ldc/bin/a/opt/ldc/bin/b"}
	if !reflect.DeepEqual(f.Switches, want) {
		t.Errorf("Switches = %v, want %v", f.Switches, want)
	}
	if f.Path == "" {
		t.Error("Path not set after successful Read")
	}
	if _, ok := f.Settings.Group("default"); !ok {
		t.Error("Settings missing default group")
	}
}

func TestReadNoSwitches(t *testing.T) {
	loc := fixture(t, `[default]
other = 1
`)

	var f File
	if err := f.Read(loc, "test.conf", "/opt/ldc/bin"); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(f.Switches) != 0 {
		t.Errorf("Switches = %v, want empty", f.Switches)
	}
}

func TestReadMissingDefault(t *testing.T) {
	loc := fixture(t, `[other]
x = 1
`)

	var f File
	err := f.Read(loc, "test.conf", "/opt/ldc/bin")
	if kindOf(t, err) != KindSchema {
		t.Errorf("kind = %v, want schema error", kindOf(t, err))
	}
	if want := "no default settings in configuration file"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestReadDefaultNotGroup(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "scalar", content: "default = \"x\"\n"},
		{name: "array", content: "default = [1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := fixture(t, tt.content)

			var f File
			err := f.Read(loc, "test.conf", "/opt/ldc/bin")
			if kindOf(t, err) != KindSchema {
				t.Errorf("kind = %v, want schema error", kindOf(t, err))
			}
			if want := "default is not a group"; err.Error() != want {
				t.Errorf("Error() = %q, want %q", err.Error(), want)
			}
		})
	}
}

func TestReadSwitchesWrongType(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not an array", content: "[default]\nswitches = \"-O2\"\n"},
		{name: "non-string element", content: "[default]\nswitches = [\"-O2\", 1]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := fixture(t, tt.content)

			var f File
			err := f.Read(loc, "test.conf", "/opt/ldc/bin")
			if kindOf(t, err) != KindSchema {
				t.Errorf("kind = %v, want schema error", kindOf(t, err))
			}
		})
	}
}

func TestReadParseError(t *testing.T) {
	loc := fixture(t, "[default\nswitches = []\n")

	var f File
	err := f.Read(loc, "test.conf", "/opt/ldc/bin")

	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("error %v is not a *config.Error", err)
	}
	if cerr.Kind != KindParse {
		t.Errorf("kind = %v, want parse error", cerr.Kind)
	}
	if cerr.Line <= 0 {
		t.Errorf("Line = %d, want > 0", cerr.Line)
	}
	if cerr.Msg == "" {
		t.Error("Msg is empty")
	}
	if f.Path != "" {
		t.Errorf("Path = %q after failed Read, want empty", f.Path)
	}
}

func TestReadNotFound(t *testing.T) {
	loc := fixture(t, "")

	var f File
	err := f.Read(loc, "test.conf", "/opt/ldc/bin")
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
	if f.Path != "" || f.Settings != nil || f.Switches != nil {
		t.Error("File populated after not-found")
	}
}

func TestReadIOError(t *testing.T) {
	loc := fixture(t, "")

	// A directory passes the existence probe but cannot be read.
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(cwd, "test.conf"), 0755); err != nil {
		t.Fatal(err)
	}

	var f File
	if kind := kindOf(t, f.Read(loc, "test.conf", "/opt/ldc/bin")); kind != KindIO {
		t.Errorf("kind = %v, want io error", kind)
	}
}

func TestReadIdempotent(t *testing.T) {
	loc := fixture(t, `[default]
switches = ["-I%%ldcbinarypath%%/inc"]
`)

	var first, second File
	if err := first.Read(loc, "test.conf", "/opt/ldc/bin"); err != nil {
		t.Fatalf("first Read: %v", err)
	}
	if err := second.Read(loc, "test.conf", "/opt/ldc/bin"); err != nil {
		t.Fatalf("second Read: %v", err)
	}

	if first.Path != second.Path {
		t.Errorf("Path differs across reads: %q vs %q", first.Path, second.Path)
	}
	if !reflect.DeepEqual(first.Switches, second.Switches) {
		t.Errorf("Switches differ across reads: %v vs %v", first.Switches, second.Switches)
	}
}

// chdir changes the working directory for the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}
