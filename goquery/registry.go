package goquery

import "github.com/jtorra/blogscrap"

var _ blogscrap.SelectorRegistry = (*Registry)(nil)

// Registry manages platform-specific layout selectors. Exactly two platforms
// are supported; an unknown platform maps to nil, which callers treat as
// "no articles, no pagination" (silent degradation, not an error).
type Registry struct {
	selectors map[blogscrap.Platform]blogscrap.LayoutSelector
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		selectors: make(map[blogscrap.Platform]blogscrap.LayoutSelector),
	}
}

// Get returns the selector for a platform.
// Returns nil if no selector is registered for the platform.
func (r *Registry) Get(platform blogscrap.Platform) blogscrap.LayoutSelector {
	return r.selectors[platform]
}

// Register adds a selector for a platform.
// If a selector is already registered for the platform, it is replaced.
func (r *Registry) Register(platform blogscrap.Platform, selector blogscrap.LayoutSelector) {
	r.selectors[platform] = selector
}

// List returns all registered platforms.
func (r *Registry) List() []blogscrap.Platform {
	platforms := make([]blogscrap.Platform, 0, len(r.selectors))
	for p := range r.selectors {
		platforms = append(platforms, p)
	}
	return platforms
}
