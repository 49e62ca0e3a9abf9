package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jtorra/blogscrap"
	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// artifactShell is the template for cached article documents.
const artifactShell = "<html><head></head><body></body></html>"

// BuildArtifact assembles the minimal standalone document cached for one
// article: a <title> in the head and the already-cleaned content in the
// body. The result is pretty-printed.
func BuildArtifact(title string, content *goquery.Selection) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(artifactShell))
	if err != nil {
		return "", blogscrap.Errorf(blogscrap.EINTERNAL, "failed to parse artifact shell: %v", err)
	}

	// The shell gets the same noise strip as extracted content. A no-op for
	// the empty template today.
	removeNoise(doc.Selection)

	titleNode := &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title}
	titleNode.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	doc.Find("head").AppendNodes(titleNode)
	doc.Find("body").AppendSelection(content)

	out, err := doc.Html()
	if err != nil {
		return "", blogscrap.Errorf(blogscrap.EINTERNAL, "failed to serialize artifact: %v", err)
	}
	return gohtml.Format(out), nil
}

// CleanArtifact re-applies the noise strip to a whole cached document and
// returns it pretty-printed again. Used by the post-processing "clean" pass
// over existing artifacts.
func CleanArtifact(artifactHTML string) (string, error) {
	doc, err := parseDocument(artifactHTML)
	if err != nil {
		return "", err
	}
	removeNoise(doc.Selection)

	out, err := doc.Html()
	if err != nil {
		return "", blogscrap.Errorf(blogscrap.EINTERNAL, "failed to serialize artifact: %v", err)
	}
	return gohtml.Format(out), nil
}
