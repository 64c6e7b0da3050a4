// Package version derives the theme version from the latest git tag.
package version

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/cli/safeexec"
	"golang.org/x/mod/semver"
)

// ErrNoVersion is wrapped by every resolution failure.
var ErrNoVersion = errors.New("no version available")

// Version is a major.minor.patch triple.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// Strings returns the components as an ordered triple of strings.
func (v Version) Strings() [3]string {
	return [3]string{strconv.Itoa(v.Major), strconv.Itoa(v.Minor), strconv.Itoa(v.Patch)}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse reads a tag such as "v1.2.3" or "1.2". Missing components are
// zero; prerelease and build suffixes are dropped.
func Parse(tag string) (Version, error) {
	tag = strings.TrimSpace(tag)
	canonical := semver.Canonical("v" + strings.TrimPrefix(tag, "v"))
	if canonical == "" {
		return Version{}, fmt.Errorf("%w: %q is not a version tag", ErrNoVersion, tag)
	}
	canonical = strings.TrimSuffix(canonical, semver.Prerelease(canonical))

	parts := strings.Split(strings.TrimPrefix(canonical, "v"), ".")
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrNoVersion, tag, err)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// CommandRunner executes git commands and returns their output.
type CommandRunner interface {
	RunCommand(ctx context.Context, args ...string) ([]byte, error)
}

type gitRunner struct{}

func (gitRunner) RunCommand(ctx context.Context, args ...string) ([]byte, error) {
	git, err := safeexec.LookPath("git")
	if err != nil {
		return nil, err
	}
	return exec.CommandContext(ctx, git, args...).Output()
}

// Resolver finds the most recent tag of the working repository.
type Resolver struct {
	Runner  CommandRunner
	Timeout time.Duration
}

// NewResolver returns a Resolver that shells out to git.
func NewResolver() *Resolver {
	return &Resolver{Runner: gitRunner{}, Timeout: 5 * time.Second}
}

// Resolve runs `git describe --tags --abbrev=0` and parses the tag. Any
// failure, including a repository without tags, wraps ErrNoVersion.
func (r *Resolver) Resolve(ctx context.Context) (Version, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	out, err := r.Runner.RunCommand(ctx, "describe", "--tags", "--abbrev=0")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return Version{}, fmt.Errorf("%w: git describe: %s", ErrNoVersion, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return Version{}, fmt.Errorf("%w: git describe: %v", ErrNoVersion, err)
	}

	return Parse(string(out))
}
