package livecheck

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"

	"golang.org/x/net/html"

	"github.com/GunniBusch/brew-version-check/pkg/htmlutil"
	"github.com/GunniBusch/brew-version-check/pkg/version"
)

// Client scrapes release pages for version-bearing links.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	HTMLHook   func(context.Context, *html.Node) error
}

func (c *Client) fillDefaults() {
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	if c.UserAgent == "" {
		c.UserAgent = "github.com/GunniBusch/brew-version-check/pkg/livecheck"
	}
}

type HTTPError struct {
	Status     string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %s", e.Status)
}

func (c Client) get(ctx context.Context, requestURL string) (_ *url.URL, _ []byte, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("GET %q => %w", requestURL, err)
		}
	}()
	c.fillDefaults()

	// 1. Build the request
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	// 2. Do the networking
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		_ = resp.Body.Close()
		return nil, nil, err
	}
	if err := resp.Body.Close(); err != nil {
		return nil, nil, err
	}

	// 3. Validate the result
	if resp.StatusCode != http.StatusOK {
		return nil, nil, &HTTPError{Status: resp.Status, StatusCode: resp.StatusCode}
	}

	return resp.Request.URL, content, nil
}

// Link is an <a> element found on a page; HRef is resolved against the
// final (post-redirect) page location.
type Link struct {
	Text string
	HRef string
}

// Links fetches a page and returns every hyperlink on it.
func (c Client) Links(ctx context.Context, pageURL string) ([]Link, error) {
	location, content, err := c.get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	if c.HTMLHook != nil {
		if err := c.HTMLHook(ctx, doc); err != nil {
			return nil, err
		}
	}

	var links []Link
	if err := htmlutil.VisitHTML(doc, nil, func(node *html.Node) error {
		if node.Type != html.ElementNode || node.Data != "a" {
			return nil
		}
		href, ok := htmlutil.GetAttr(node, "", "href")
		if !ok {
			return nil
		}
		abs, err := location.Parse(href)
		if err != nil {
			return err
		}
		links = append(links, Link{
			Text: htmlutil.GetText(node),
			HRef: abs.String(),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	return links, nil
}

// Versions scans every link on a page for version information.  With a nil
// pattern, each link's target URL goes through the detection heuristics;
// with a pattern, the first capture group is taken from whichever of the
// link target or the link text it matches.
func (c Client) Versions(ctx context.Context, pageURL string, pattern *regexp.Regexp) ([]version.Version, error) {
	links, err := c.Links(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	vers := make([]version.Version, 0, len(links))
	for _, link := range links {
		var ver version.Version
		if pattern == nil {
			ver = version.Detect(link.HRef, true)
		} else {
			ver = matchPattern(pattern, link.HRef, link.Text)
		}
		if !ver.IsNull() {
			vers = append(vers, ver)
		}
	}
	return vers, nil
}

func matchPattern(pattern *regexp.Regexp, candidates ...string) version.Version {
	for _, cand := range candidates {
		match := pattern.FindStringSubmatch(cand)
		if match == nil {
			continue
		}
		capture := match[0]
		if len(match) > 1 {
			capture = match[1]
		}
		if capture == "" {
			continue
		}
		if ver, err := version.New(capture); err == nil {
			return ver
		}
	}
	return version.Null
}
