package palette

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/jsvensson/themepack/internal/color"
)

// VariantPlaceholder is replaced with the variant name in a Remote URL.
const VariantPlaceholder = "{variant}"

// DefaultRemoteURL points at the Catppuccin LESS palette fragments.
const DefaultRemoteURL = "https://raw.githubusercontent.com/catppuccin/palette/main/less/_" + VariantPlaceholder + ".less"

// maxFragmentSize bounds how much of a fragment response is read.
const maxFragmentSize = 1 << 20

var declPattern = regexp.MustCompile(`^\s*@([A-Za-z][\w-]*)\s*:\s*(#[0-9A-Fa-f]{6})\s*;`)

// FetchError reports a failed fragment download for one variant.
type FetchError struct {
	Variant Variant
	URL     string
	Status  int
	Err     error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetching %s palette from %s: unexpected status %d", e.Variant, e.URL, e.Status)
	}
	return fmt.Sprintf("fetching %s palette from %s: %v", e.Variant, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Remote downloads one preprocessor fragment per variant and merges the
// bundled raw/HSL/RGB components into the fetched hex values.
type Remote struct {
	URL        string
	Client     *http.Client
	Components *Bundled
}

// NewRemote returns a Remote using urlTemplate and a client with the
// given timeout. A zero timeout disables it.
func NewRemote(urlTemplate string, timeout time.Duration, components *Bundled) *Remote {
	if urlTemplate == "" {
		urlTemplate = DefaultRemoteURL
	}
	return &Remote{
		URL:        urlTemplate,
		Client:     &http.Client{Timeout: timeout},
		Components: components,
	}
}

// Palette fetches and parses the fragment for v.
func (r *Remote) Palette(ctx context.Context, v Variant) (*Palette, error) {
	url := strings.ReplaceAll(r.URL, VariantPlaceholder, string(v))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Variant: v, URL: url, Err: err}
	}

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Variant: v, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Variant: v, URL: url, Status: resp.StatusCode}
	}

	fetched, err := ParseFragment(io.LimitReader(resp.Body, maxFragmentSize))
	if err != nil {
		return nil, &FetchError{Variant: v, URL: url, Err: err}
	}

	return r.merge(ctx, v, fetched)
}

// merge keeps the fetched roles and hex values, taking the other
// encodings from the bundled table where it knows the role.
func (r *Remote) merge(ctx context.Context, v Variant, fetched *Palette) (*Palette, error) {
	if r.Components == nil {
		return fetched, nil
	}
	bundled, err := r.Components.Palette(ctx, v)
	if err != nil {
		return nil, err
	}

	out := New()
	for _, role := range fetched.Roles {
		e := fetched.Entries[role]
		if b, ok := bundled.Entries[role]; ok {
			e.Raw, e.HSL, e.RGB = b.Raw, b.HSL, b.RGB
		}
		out.Set(role, e)
	}
	return out, nil
}

// ParseFragment reads `@role: #hex;` declarations from a preprocessor
// fragment. Other lines are ignored; a fragment without any declaration
// is an error.
func ParseFragment(r io.Reader) (*Palette, error) {
	p := New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := declPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		c, err := color.ParseHex(m[2])
		if err != nil {
			return nil, fmt.Errorf("@%s: %w", m[1], err)
		}
		p.Set(m[1], NewEntry(c))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading fragment: %w", err)
	}
	if p.Len() == 0 {
		return nil, fmt.Errorf("fragment contains no color declarations")
	}
	return p, nil
}
