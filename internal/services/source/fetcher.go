package source

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// maxBody caps the size of a snapshot read from any fetcher
const maxBody = 10 << 20

// Format is the encoding of a snapshot document
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFor guesses the format from a file name or URL path
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Fetcher abstracts where snapshot bytes come from for testing
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, Format, error)
	Location() string
}

// NewFetcher returns an HTTPFetcher for http(s) URLs and a FileFetcher otherwise
func NewFetcher(location string, timeout time.Duration) Fetcher {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPFetcher{URL: location, Timeout: timeout}
	}
	return &FileFetcher{Path: location}
}

// FileFetcher reads a snapshot from a local file
type FileFetcher struct {
	Path string
}

// Fetch reads the whole file
func (f *FileFetcher) Fetch(ctx context.Context) ([]byte, Format, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBody))
	if err != nil {
		return nil, 0, err
	}
	return data, FormatFor(f.Path), nil
}

// Location returns the file path
func (f *FileFetcher) Location() string {
	return f.Path
}

// HTTPFetcher downloads a snapshot with a GET request
type HTTPFetcher struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client // defaults to http.DefaultClient
}

// Fetch performs the request, applying Timeout if ctx has no deadline
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, Format, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, 0, fmt.Errorf("unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, 0, err
	}
	return data, f.format(resp.Header.Get("Content-Type")), nil
}

// format prefers the response content type over the URL extension
func (f *HTTPFetcher) format(contentType string) Format {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		switch {
		case strings.Contains(mt, "yaml"):
			return FormatYAML
		case strings.Contains(mt, "json"):
			return FormatJSON
		}
	}
	return FormatFor(strings.SplitN(f.URL, "?", 2)[0])
}

// Location returns the URL
func (f *HTTPFetcher) Location() string {
	return f.URL
}
