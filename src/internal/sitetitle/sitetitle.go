// Package sitetitle fetches a web page and extracts its title. It is used to
// suggest a name for a new site when the user does not give one.
package sitetitle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/maksimkurb/quick-nav/src/internal/errors"
	"github.com/maksimkurb/quick-nav/src/internal/log"
	"github.com/maksimkurb/quick-nav/src/internal/utils"
	"github.com/maksimkurb/quick-nav/src/internal/validation"
)

const (
	defaultTimeout = 10 * time.Second
	maxPageSize    = 2 << 20
	maxTitleLength = 200
	userAgent      = "Mozilla/5.0 (compatible; quick-nav/1.0)"
)

// HTTPDoer is the transport used to fetch pages.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher extracts page titles.
type Fetcher struct {
	client HTTPDoer
}

// New creates a fetcher. A nil client uses an http.Client with a 10s timeout.
func New(client HTTPDoer) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Fetcher{client: client}
}

// Fetch downloads pageURL and returns the text of its <title>, falling back
// to the og:title meta tag. A page without either yields a not found error.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	if !validation.IsSiteURL(pageURL) {
		return "", errors.NewValidationError(fmt.Sprintf("%q is not an absolute http(s) URL", pageURL), nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSpace(pageURL), nil)
	if err != nil {
		return "", errors.NewTransportError("failed to create request", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", errors.NewTransportError(fmt.Sprintf("failed to fetch %s", pageURL), err)
	}
	defer utils.CloseOrWarn(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.NewStatusError(fmt.Sprintf("failed to fetch %s", pageURL), resp.StatusCode, "")
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", errors.NewDecodeError(fmt.Sprintf("failed to parse %s", pageURL), err)
	}

	title := Extract(doc)
	if title == "" {
		return "", errors.NewNotFoundError(fmt.Sprintf("%s has no title", pageURL))
	}

	log.Debugf("Title of %s: %q", pageURL, title)
	return title, nil
}

// Extract returns the normalized title of a parsed document, or "".
func Extract(doc *html.Node) string {
	var title, ogTitle string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				title = normalize(text(n))
				return
			case "meta":
				if ogTitle == "" && attr(n, "property") == "og:title" {
					ogTitle = normalize(attr(n, "content"))
				}
			case "script", "style", "svg":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if title != "" {
		return title
	}
	return ogTitle
}

func text(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// normalize collapses whitespace and truncates overly long titles.
func normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > maxTitleLength {
		s = string(r[:maxTitleLength])
	}
	return s
}
