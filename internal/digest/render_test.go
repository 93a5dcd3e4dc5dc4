package digest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshtiwariiii/job-finder-bot/internal/source"
)

func TestRenderEmpty(t *testing.T) {
	got := Render(nil)
	assert.Equal(t, "<p>No new relevant jobs found today.</p>", got)
	assert.NotContains(t, got, "<ul>")
}

func TestRenderSingleJob(t *testing.T) {
	jobs := []source.Job{
		{
			Title:              "Junior Full Stack Developer",
			CompanyName:        "Acme",
			Location:           "Remote",
			Description:        "full stack web role",
			DetectedExtensions: source.DetectedExtensions{PostedAt: "3 days ago"},
			ApplyLink:          "https://acme.example/apply",
		},
	}

	got := Render(jobs)

	assert.Contains(t, got, `<a href="https://acme.example/apply" target="_blank" rel="noopener noreferrer">Junior Full Stack Developer</a>`)
	assert.Contains(t, got, "<em>Company:</em> Acme<br/>")
	assert.Contains(t, got, "<em>Location:</em> Remote<br/>")
	assert.Contains(t, got, "<em>Posted:</em> 3 days ago<br/>")
	assert.Contains(t, got, "<p>full stack web role</p>")
	assert.Contains(t, got, "Showing 1 job(s) from 1 company(ies).")
}

func TestRenderPrefersApplyLink(t *testing.T) {
	jobs := []source.Job{
		{
			Title:     "Junior Dev",
			ApplyLink: "https://real.example/apply",
			Link:      "https://redirect.example/x",
		},
	}

	got := Render(jobs)
	assert.Contains(t, got, `href="https://real.example/apply"`)
	assert.NotContains(t, got, "redirect.example")
}

func TestRenderFallbackFields(t *testing.T) {
	jobs := []source.Job{
		{Link: "https://jobs.example/1"},
	}

	got := Render(jobs)
	assert.Contains(t, got, ">N/A</a>")
	assert.Contains(t, got, "<em>Posted:</em> N/A<br/>")
}

// The subject line reports the filter-accepted total, which is counted
// before this skip happens. A job with a broken link still counts there but
// never shows up as a list item. Deliberate mismatch, kept from the
// original behavior.
func TestRenderSkipsBadLinkKeepingCallerCount(t *testing.T) {
	jobs := []source.Job{
		{Title: "Good Job", CompanyName: "A", ApplyLink: "https://a.example/apply"},
		{Title: "No Link Job", CompanyName: "B"},
		{Title: "Bad Scheme Job", CompanyName: "C", Link: "mailto:hr@c.example"},
	}

	got := Render(jobs)

	acceptedCount := len(jobs)
	renderedCount := strings.Count(got, "<li>")
	assert.Equal(t, 3, acceptedCount)
	assert.Equal(t, 1, renderedCount)
	assert.NotContains(t, got, "No Link Job")
	assert.NotContains(t, got, "Bad Scheme Job")
	assert.Contains(t, got, "Showing 1 job(s)")
}

func TestRenderEscapesHTML(t *testing.T) {
	jobs := []source.Job{
		{
			Title:       `<script>alert("x")</script>`,
			CompanyName: "Jones & Sons",
			Location:    `"Remote"`,
			Description: "use <b>bold</b> & brackets",
			ApplyLink:   `https://a.example/apply?a=1&b="2"`,
		},
	}

	got := Render(jobs)

	assert.NotContains(t, got, "<script>")
	assert.Contains(t, got, "&lt;script&gt;")
	assert.Contains(t, got, "Jones &amp; Sons")
	assert.Contains(t, got, "&#34;Remote&#34;")
	assert.Contains(t, got, "use &lt;b&gt;bold&lt;/b&gt; &amp; brackets")
	//href is quote-escaped so the attribute cannot be broken out of
	assert.Contains(t, got, `href="https://a.example/apply?a=1&amp;b=&#34;2&#34;"`)
}

func TestRenderTruncatesRawDescriptionAt250(t *testing.T) {
	desc := strings.Repeat("&", 300)
	jobs := []source.Job{
		{Title: "T", Description: desc, Link: "https://x.example/1"},
	}

	got := Render(jobs)

	//250 raw characters truncated first, escaped after: 250 ampersands
	//become 250 "&amp;" entities, well over 250 output characters
	snippet := strings.Repeat("&amp;", 250)
	require.Contains(t, got, "<p>"+snippet+"</p>")
	assert.NotContains(t, got, strings.Repeat("&amp;", 251))
}

func TestRenderShortDescriptionUntouched(t *testing.T) {
	jobs := []source.Job{
		{Title: "T", Description: "short text", Link: "https://x.example/1"},
	}

	got := Render(jobs)
	assert.Contains(t, got, "<p>short text</p>")
}

func TestRenderPreservesInputOrder(t *testing.T) {
	jobs := []source.Job{
		{Title: "First", Link: "https://x.example/1"},
		{Title: "Second", Link: "https://x.example/2"},
		{Title: "Third", Link: "https://x.example/3"},
	}

	got := Render(jobs)

	first := strings.Index(got, "First")
	second := strings.Index(got, "Second")
	third := strings.Index(got, "Third")
	assert.True(t, first < second && second < third, "items out of discovery order")
}

func TestRenderCountsDistinctCompanies(t *testing.T) {
	jobs := []source.Job{
		{Title: "A1", CompanyName: "Acme", Link: "https://x.example/1"},
		{Title: "A2", CompanyName: "Acme", Link: "https://x.example/2"},
		{Title: "B1", CompanyName: "Beta", Link: "https://x.example/3"},
	}

	got := Render(jobs)
	assert.Contains(t, got, "Showing 3 job(s) from 2 company(ies).")
}
