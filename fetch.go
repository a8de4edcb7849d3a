package md2docx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxFetchSize caps a fetched document at 8MB to bound memory.
const maxFetchSize = 8 << 20

// RawContentURL derives the raw-content URL for a GitHub file URL, e.g.
//
//	https://github.com/owner/repo/blob/main/README.md
//	-> https://raw.githubusercontent.com/owner/repo/main/README.md
//
// URLs already pointing at raw.githubusercontent.com pass through
// unchanged. Anything else returns ErrNotGitHubURL.
func RawContentURL(fileURL string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotGitHubURL, err)
	}

	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "raw.githubusercontent.com":
		return fileURL, nil
	case "github.com":
	default:
		return "", fmt.Errorf("%w: host %q", ErrNotGitHubURL, u.Hostname())
	}

	// Path shape: /owner/repo/blob/ref/path...
	if !strings.Contains(u.Path, "/blob/") {
		return "", fmt.Errorf("%w: missing /blob/ segment in %q", ErrNotGitHubURL, u.Path)
	}
	u.Host = "raw.githubusercontent.com"
	u.Path = strings.Replace(u.Path, "/blob/", "/", 1)
	return u.String(), nil
}

// FetchMarkdown retrieves the text content at rawURL. A nil client uses
// http.DefaultClient. Non-2xx responses return ErrFetchStatus; transport
// errors are wrapped. The engine keeps no state, so a failed fetch leaves
// nothing to roll back.
func FetchMarkdown(ctx context.Context, client *http.Client, rawURL string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s from %s", ErrFetchStatus, resp.Status, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchSize))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	return string(body), nil
}
