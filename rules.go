package readability

// This file is the site-rule extension point: a SiteRule (see types.go)
// may optionally implement UnwantedCleaner, BylineOverrider,
// PostProcessor, or Serializer to hook into the orchestrator at those
// four points. WithSiteRules (core.go) attaches the registry; it is empty
// unless a caller supplies one, and no concrete rule ships with this
// package.
