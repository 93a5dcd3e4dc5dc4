package filter

// Fixed keyword lists. These are intentionally not configurable; changing
// them changes which jobs get surfaced.
var (
	entryKeywords = []string{"entry level", "junior", "fresher", "new grad", "0-2 years"}

	aiMLKeywords      = []string{"machine learning", "ml engineer", "ai engineer", "deep learning"}
	djangoKeywords    = []string{"django", "python", "drf", "django rest"}
	fullstackKeywords = []string{"full stack", "backend", "frontend", "software engineer"}
)

// roleKeywords is the union of the three role-interest lists.
var roleKeywords = func() []string {
	out := make([]string, 0, len(aiMLKeywords)+len(djangoKeywords)+len(fullstackKeywords))
	out = append(out, aiMLKeywords...)
	out = append(out, djangoKeywords...)
	out = append(out, fullstackKeywords...)
	return out
}()
