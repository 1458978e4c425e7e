package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/120.0.0.0 Safari/537.36"

// elements that never contain signal-bearing text
const noiseSelectors = "script, style, nav, footer, header, noscript, iframe"

// Page is the extracted visible content of one fetched URL. Text is
// line-oriented: one trimmed text fragment per line, blanks removed, so the
// analyzer can work line by line.
type Page struct {
	URL   string
	Title string
	Text  string
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher downloads pages and strips them to readable text. An optional
// rate limiter enforces a delay between successive fetches to avoid bans.
type Fetcher struct {
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
	userAgent   string
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  DefaultUserAgent,
	}
}

func (f *Fetcher) SetHTTPClient(client HTTPClient) {
	f.httpClient = client
}

func (f *Fetcher) SetUserAgent(userAgent string) {
	f.userAgent = userAgent
}

func (f *Fetcher) SetRateLimit(maxRequestsPerSecond float32) {
	f.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// Fetch downloads one URL and returns its title and visible text.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Page, error) {

	if f.rateLimiter != nil {
		if err := f.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if urlErr, ok := err.(*url.Error); ok && urlErr.Timeout() {
			return nil, fmt.Errorf("request timed out")
		}
		return nil, fmt.Errorf("connection failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %v", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing page: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(noiseSelectors).Remove()

	return &Page{
		URL:   pageURL,
		Title: title,
		Text:  extractText(doc),
	}, nil
}

func extractText(doc *goquery.Document) string {

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return ""
	}

	var lines []string
	for _, node := range body.Nodes {
		collectText(node, &lines)
	}
	return strings.Join(lines, "\n")
}

func collectText(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*lines = append(*lines, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, lines)
	}
}
