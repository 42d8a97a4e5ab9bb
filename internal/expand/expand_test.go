package expand

import (
	"reflect"
	"testing"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		binDir string
		want   string
	}{
		{
			name:   "single token",
			raw:    "-I%%ldcbinarypath%%/inc",
			binDir: "/opt/ldc/bin",
			want:   "-I/opt/ldc/bin/inc",
		},
		{
			name:   "no token passes through",
			raw:    "-O2",
			binDir: "/opt/ldc/bin",
			want:   "-O2",
		},
		{
			name:   "multiple tokens",
			raw:    "%%ldcbinarypath%%/a%%ldcbinarypath%%/b",
			binDir: "/opt/ldc/bin",
			want:   "/opt/ldc/bin/a/opt/ldc/bin/b",
		},
		{
			name:   "adjacent tokens",
			raw:    "%%ldcbinarypath%%%%ldcbinarypath%%",
			binDir: "/x",
			want:   "/x/x",
		},
		{
			name:   "empty string",
			raw:    "",
			binDir: "/opt/ldc/bin",
			want:   "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Expand(tt.raw, tt.binDir); got != tt.want {
				t.Errorf("Expand(%q, %q) = %q, want %q", tt.raw, tt.binDir, got, tt.want)
			}
		})
	}
}

func TestAll(t *testing.T) {
	t.Parallel()

	in := []string{"-I%%ldcbinarypath%%/inc", "-O2", "%%ldcbinarypath%%/a%%ldcbinarypath%%/b"}
	want := []string{"-I/opt/ldc/bin/inc", "-O2", "/opt/ldc/bin/a/opt/ldc/bin/b"}

	got := All(in, "/opt/ldc/bin")
	if !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
	if len(got) != len(in) {
		t.Errorf("All() changed length: got %d, want %d", len(got), len(in))
	}
}

func TestAllEmpty(t *testing.T) {
	t.Parallel()

	got := All(nil, "/opt/ldc/bin")
	if len(got) != 0 {
		t.Errorf("All(nil) = %v, want empty", got)
	}
}
