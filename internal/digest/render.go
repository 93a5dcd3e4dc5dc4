// Package digest renders the accepted jobs of one run into a self-contained
// HTML email body. Static markup only, no scripts.
package digest

import (
	"fmt"
	"html"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/harshtiwariiii/job-finder-bot/internal/source"
)

const emptyBody = "<p>No new relevant jobs found today.</p>"

const itemTemplate = `
    <li>
      <strong><a href="%s" target="_blank" rel="noopener noreferrer">%s</a></strong><br/>
      <em>Company:</em> %s<br/>
      <em>Location:</em> %s<br/>
      <em>Posted:</em> %s<br/>
      <p>%s</p><br/>
    </li>
    `

// Render builds the digest in input order. Records without a usable link
// are skipped here, after filtering, so the caller's accepted count can
// exceed the number of items actually emitted.
func Render(jobs []source.Job) string {
	if len(jobs) == 0 {
		return emptyBody
	}

	parts := []string{
		"<h2>🚀 Job Finder Results</h2>",
		"<p>Click the job title to open the application link in your browser.</p>",
		"<ul>",
	}

	companies := mapset.NewSet[string]()
	rendered := 0
	for _, j := range jobs {
		//skip empty/broken links
		if !j.HasValidLink() {
			continue
		}

		title := j.Title
		if title == "" {
			title = "N/A"
		}
		posted := j.DetectedExtensions.PostedAt
		if posted == "" {
			posted = "N/A"
		}

		//truncate the raw text first, escape after, so an escaped entity
		//is never cut in half
		snippet := html.EscapeString(truncateRunes(j.Description, 250))

		parts = append(parts, fmt.Sprintf(itemTemplate,
			html.EscapeString(j.BestLink()),
			html.EscapeString(title),
			html.EscapeString(j.CompanyName),
			html.EscapeString(j.Location),
			html.EscapeString(posted),
			snippet,
		))

		rendered++
		if j.CompanyName != "" {
			companies.Add(j.CompanyName)
		}
	}

	parts = append(parts, "</ul>")
	parts = append(parts, fmt.Sprintf("<p>Showing %d job(s) from %d company(ies).</p>",
		rendered, companies.Cardinality()))

	return strings.Join(parts, "\n")
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
