package filter

import (
	"strings"

	"github.com/harshtiwariiii/job-finder-bot/internal/source"
)

// MatchesInterest decides whether a job is worth surfacing. Pure function
// of the record's text fields.
//
// Matching is plain case-insensitive substring containment, not word
// matching: a haystack containing "aijunior analyst" matches "junior".
func MatchesInterest(job source.Job) bool {
	text := strings.ToLower(job.Title + " " + job.CompanyName + " " + job.Description)

	//must look entry-level
	if !containsAny(text, entryKeywords) {
		return false
	}

	//must hit at least one role-interest list
	return containsAny(text, roleKeywords)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
