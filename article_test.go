package blogscrap_test

import (
	"testing"

	"github.com/jtorra/blogscrap"
	"github.com/stretchr/testify/assert"
)

// Story: Deterministic Artifact Filenames
// The same permalink always maps to the same cache filename, and distinct
// permalinks differing only by path map to distinct filenames.

func TestArtifactName_DerivedFromPermalinkPath(t *testing.T) {
	t.Parallel()

	// Given two permalinks differing only by path
	one := blogscrap.ArtifactName("https://example.com/2024/a/post-one", "Post One")
	two := blogscrap.ArtifactName("https://example.com/2024/a/post-two", "Post Two")

	// Then path segments are joined with dashes and suffixed
	assert.Equal(t, "2024-a-post-one.html", one)
	assert.Equal(t, "2024-a-post-two.html", two)
	assert.NotEqual(t, one, two)
}

func TestArtifactName_IsDeterministic(t *testing.T) {
	t.Parallel()

	first := blogscrap.ArtifactName("https://example.com/p/hello", "Hello")
	second := blogscrap.ArtifactName("https://example.com/p/hello", "Hello")

	assert.Equal(t, first, second)
}

func TestArtifactName_KeepsExistingHTMLSuffix(t *testing.T) {
	t.Parallel()

	name := blogscrap.ArtifactName("https://example.com/2009/05/old-post.html", "Old Post")

	assert.Equal(t, "2009-05-old-post.html", name)
}

func TestArtifactName_QueryOnlyPermalinkFallsBackToTitle(t *testing.T) {
	t.Parallel()

	// Given a permalink with no meaningful path
	name := blogscrap.ArtifactName("https://example.com/?p=123", "Some Post!")

	// Then the sanitized title is used as the stem
	assert.Equal(t, "Some-Post.html", name)
}

func TestArtifactName_UntitledQueryOnlyPermalinkHashes(t *testing.T) {
	t.Parallel()

	// Given no path and no usable title
	first := blogscrap.ArtifactName("https://example.com/?p=123", "")
	second := blogscrap.ArtifactName("https://example.com/?p=123", "")
	other := blogscrap.ArtifactName("https://example.com/?p=124", "")

	// Then the name is still deterministic and distinct per permalink
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Contains(t, first, ".html")
}

func TestMarkdownName_MirrorsArtifactStem(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-post.md", blogscrap.MarkdownName("2024-post.html"))
}
