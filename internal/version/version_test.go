package version

import (
	"context"
	"errors"
	"testing"
)

type fakeRunner struct {
	out  string
	err  error
	args []string
}

func (f *fakeRunner) RunCommand(_ context.Context, args ...string) ([]byte, error) {
	f.args = args
	return []byte(f.out), f.err
}

func TestParse(t *testing.T) {
	tests := []struct {
		tag     string
		want    [3]string
		wantErr bool
	}{
		{"v1.2.3", [3]string{"1", "2", "3"}, false},
		{"1.2.3", [3]string{"1", "2", "3"}, false},
		{"v0.4.0\n", [3]string{"0", "4", "0"}, false},
		{"v1.2", [3]string{"1", "2", "0"}, false},
		{"v2", [3]string{"2", "0", "0"}, false},
		{"v1.2.3-beta.1", [3]string{"1", "2", "3"}, false},
		{"v1.2.3+build.5", [3]string{"1", "2", "3"}, false},
		{"release", [3]string{}, true},
		{"", [3]string{}, true},
		{"v1.2.3.4", [3]string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := Parse(tt.tag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.tag, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrNoVersion) {
					t.Errorf("Parse(%q) error does not wrap ErrNoVersion: %v", tt.tag, err)
				}
				return
			}
			if got.Strings() != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.tag, got.Strings(), tt.want)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	v := Version{Major: 1, Minor: 10, Patch: 0}
	if got := v.String(); got != "1.10.0" {
		t.Errorf("String() = %q, want 1.10.0", got)
	}
}

func TestResolve(t *testing.T) {
	runner := &fakeRunner{out: "v0.4.2\n"}
	r := &Resolver{Runner: runner}

	got, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if want := (Version{0, 4, 2}); got != want {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}

	wantArgs := []string{"describe", "--tags", "--abbrev=0"}
	if len(runner.args) != len(wantArgs) {
		t.Fatalf("args = %v, want %v", runner.args, wantArgs)
	}
	for i := range wantArgs {
		if runner.args[i] != wantArgs[i] {
			t.Errorf("args = %v, want %v", runner.args, wantArgs)
		}
	}
}

func TestResolveNoTags(t *testing.T) {
	r := &Resolver{Runner: &fakeRunner{err: errors.New("fatal: No names found, cannot describe anything.")}}

	_, err := r.Resolve(context.Background())
	if !errors.Is(err, ErrNoVersion) {
		t.Errorf("Resolve() error = %v, want ErrNoVersion", err)
	}
}
