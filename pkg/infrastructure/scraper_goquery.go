package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const staticUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// minFragmentLen filters out navigation crumbs and button labels.
const minFragmentLen = 30

// StaticScraper fetches a page over plain HTTP and extracts the readable
// text with goquery. Used as the fallback when the headless browser fails
// or returns too little text.
type StaticScraper struct {
	client *http.Client
}

func NewStaticScraper() *StaticScraper {
	return &StaticScraper{client: &http.Client{Timeout: 15 * time.Second}}
}

func (s *StaticScraper) ExtractText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", staticUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, footer, nav, header").Remove()

	var parts []string
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		parts = append(parts, title)
	}
	doc.Find("h1, h2, h3, p, li").Each(func(_ int, sel *goquery.Selection) {
		text := strings.Join(strings.Fields(sel.Text()), " ")
		if len(text) > minFragmentLen {
			parts = append(parts, text)
		}
	})

	return strings.Join(parts, "\n"), nil
}
