package mock

import "github.com/jtorra/blogscrap"

var _ blogscrap.LayoutSelector = (*LayoutSelector)(nil)

// LayoutSelector is a mock implementation of blogscrap.LayoutSelector.
type LayoutSelector struct {
	NameFn           func() string
	ListArticlesFn   func(html string, baseURL string) ([]blogscrap.Article, error)
	NextPageURLFn    func(html string, baseURL string, label string) (string, string, error)
	ExtractContentFn func(html string, title string) (string, error)
}

func (s *LayoutSelector) Name() string {
	return s.NameFn()
}

func (s *LayoutSelector) ListArticles(html string, baseURL string) ([]blogscrap.Article, error) {
	return s.ListArticlesFn(html, baseURL)
}

func (s *LayoutSelector) NextPageURL(html string, baseURL string, label string) (string, string, error) {
	return s.NextPageURLFn(html, baseURL, label)
}

func (s *LayoutSelector) ExtractContent(html string, title string) (string, error) {
	return s.ExtractContentFn(html, title)
}
