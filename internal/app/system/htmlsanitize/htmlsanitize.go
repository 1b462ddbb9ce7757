// Package htmlsanitize strips unsafe markup from user-supplied rich
// text fields before they are stored.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Clean sanitizes a user-supplied HTML fragment with the UGC policy
// (basic formatting allowed, scripts and event handlers removed).
func Clean(s string) string {
	return policy.Sanitize(s)
}
