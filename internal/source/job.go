// Define an interface for all job sources
// Ensure consistency

package source

import (
	"context"
	"strings"
)

// Job is one jobs_results element from a search response. Every field is
// optional upstream; missing keys decode to zero values.
type Job struct {
	Title              string             `json:"title"`
	CompanyName        string             `json:"company_name"`
	Location           string             `json:"location"`
	Description        string             `json:"description"`
	DetectedExtensions DetectedExtensions `json:"detected_extensions"`
	ApplyLink          string             `json:"apply_link"`
	Link               string             `json:"link"`
}

type DetectedExtensions struct {
	PostedAt string `json:"posted_at"`
}

// BestLink prefers the real apply link and falls back to the generic
// redirect link.
func (j Job) BestLink() string {
	if j.ApplyLink != "" {
		return j.ApplyLink
	}
	return j.Link
}

// HasValidLink reports whether BestLink is a usable absolute HTTP(S) URL.
// Checked at render time, not at filter time.
func (j Job) HasValidLink() bool {
	link := j.BestLink()
	return link != "" && strings.HasPrefix(link, "http")
}

//Source defines the interface that all job providers must implement
type Source interface {
	//Search jobs for one query term in one location
	Search(ctx context.Context, term, location string) ([]Job, error)

	//Name is the provider name (SerpAPI, ...)
	Name() string
}
