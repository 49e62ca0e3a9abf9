package blogscrap

// Platform identifies a supported blog publishing-platform layout.
type Platform string

// Supported platforms.
const (
	PlatformUnknown   Platform = ""
	PlatformBlogspot  Platform = "blogspot"
	PlatformWordpress Platform = "wordpress"
)

// PlatformDetector identifies blog platforms from a site's root URL and
// front-page HTML.
type PlatformDetector interface {
	// Detect analyzes the root URL and page HTML and returns the identified
	// platform. Returns PlatformUnknown if the platform cannot be determined;
	// all mode-dependent operations then degrade to empty results.
	Detect(rootURL string, html string) Platform
}
