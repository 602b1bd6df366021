package readability

import "regexp"

// Options holds the tunable parameters of an extraction. The zero value is
// not usable directly; use New, which applies the documented defaults.
type Options struct {
	// MaxElemsToParse is the maximum number of HTML elements to accept
	// before Parse fails. Zero means unlimited.
	MaxElemsToParse int

	// NTopCandidates is how many top-scoring candidates grabArticle keeps
	// around when deciding whether an ancestor is a better fit.
	NTopCandidates int

	// CharThreshold is the minimum text length an extraction attempt must
	// reach before it is accepted without relaxing any flag.
	CharThreshold int

	// KeepClasses, when true, skips stripping class attributes from the
	// final content.
	KeepClasses bool

	// DisableJSONLD skips JSON-LD metadata extraction, falling back to meta
	// tags only.
	DisableJSONLD bool

	// ClassesToPreserve lists class names kept on output elements even when
	// KeepClasses is false.
	ClassesToPreserve []string

	// TagsToScore lists the element tags considered during the scoring pass.
	TagsToScore []string

	// AllowedVideoRegex overrides the default embed allow-list used when
	// cleaning <object>/<embed>/<iframe> nodes. An empty value keeps the
	// default.
	AllowedVideoRegex *regexp.Regexp

	// LinkDensityModifier is added to the link-density threshold used while
	// conditionally cleaning content. Defaults to zero.
	LinkDensityModifier float64
}

// Option configures a Readability value at construction time.
type Option func(*Readability)

// WithMaxElemsToParse sets Options.MaxElemsToParse.
func WithMaxElemsToParse(n int) Option {
	return func(r *Readability) { r.MaxElemsToParse = n }
}

// WithNTopCandidates sets Options.NTopCandidates.
func WithNTopCandidates(n int) Option {
	return func(r *Readability) { r.NTopCandidates = n }
}

// WithCharThreshold sets Options.CharThreshold.
func WithCharThreshold(n int) Option {
	return func(r *Readability) { r.CharThreshold = n }
}

// WithKeepClasses sets Options.KeepClasses.
func WithKeepClasses(keep bool) Option {
	return func(r *Readability) { r.KeepClasses = keep }
}

// WithDisableJSONLD sets Options.DisableJSONLD.
func WithDisableJSONLD(disable bool) Option {
	return func(r *Readability) { r.DisableJSONLD = disable }
}

// WithClassesToPreserve sets Options.ClassesToPreserve.
func WithClassesToPreserve(classes ...string) Option {
	return func(r *Readability) { r.ClassesToPreserve = classes }
}

// WithTagsToScore sets Options.TagsToScore.
func WithTagsToScore(tags ...string) Option {
	return func(r *Readability) { r.TagsToScore = tags }
}

// WithAllowedVideoRegex overrides the embed allow-list regex. Passing nil or
// a nil-valued *regexp.Regexp keeps the default, per spec.
func WithAllowedVideoRegex(re *regexp.Regexp) Option {
	return func(r *Readability) {
		if re != nil {
			r.AllowedVideoRegex = re
		}
	}
}

// WithLinkDensityModifier sets Options.LinkDensityModifier.
func WithLinkDensityModifier(mod float64) Option {
	return func(r *Readability) { r.LinkDensityModifier = mod }
}

func defaultOptions() Options {
	return Options{
		MaxElemsToParse:     0,
		NTopCandidates:      5,
		CharThreshold:       500,
		ClassesToPreserve:   []string{"page"},
		TagsToScore:         []string{"section", "h2", "h3", "h4", "h5", "h6", "p", "td", "pre"},
		AllowedVideoRegex:   rxVideos,
		LinkDensityModifier: 0,
	}
}
