// Package matching holds the alert match predicate as pure functions so the
// scan that feeds it can later be replaced by an index without changing
// observable behavior.
package matching

import "strings"

// KeywordMatches reports whether the alert keyword hits the job: the whole
// keyword as a case-insensitive substring of title or description, or any
// whitespace-delimited token of the keyword as a substring of the title.
func KeywordMatches(keyword, title, description string) bool {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	lt := strings.ToLower(title)
	ld := strings.ToLower(description)

	if strings.Contains(lt, kw) || strings.Contains(ld, kw) {
		return true
	}
	for _, tok := range strings.Fields(kw) {
		if strings.Contains(lt, tok) {
			return true
		}
	}
	return false
}

// LocationMatches uses bidirectional containment so "Remote" matches
// "Remote, Worldwide" and vice versa.
func LocationMatches(alertLocation, jobLocation string) bool {
	al := strings.ToLower(strings.TrimSpace(alertLocation))
	jl := strings.ToLower(strings.TrimSpace(jobLocation))
	if al == "" || jl == "" {
		return false
	}
	return strings.Contains(jl, al) || strings.Contains(al, jl)
}

// Matches is the full alert predicate: keyword AND location.
func Matches(keyword, alertLocation, title, description, jobLocation string) bool {
	return KeywordMatches(keyword, title, description) &&
		LocationMatches(alertLocation, jobLocation)
}
