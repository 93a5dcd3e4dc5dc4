package filter

import (
	"testing"

	"github.com/harshtiwariiii/job-finder-bot/internal/source"
)

func TestMatchesInterest(t *testing.T) {
	tests := []struct {
		name     string
		job      source.Job
		expected bool
	}{
		{
			name: "entry level full stack",
			job: source.Job{
				Title:       "Junior Full Stack Developer",
				Description: "full stack web role",
			},
			expected: true,
		},
		{
			name: "entry keyword in description only",
			job: source.Job{
				Title:       "Python Developer",
				Description: "great role for a fresher, Django experience a plus",
			},
			expected: true,
		},
		{
			name: "role keywords without entry keyword",
			job: source.Job{
				Title:       "Machine Learning Engineer",
				Description: "5+ years building deep learning systems in Python",
			},
			expected: false,
		},
		{
			name: "entry keyword without role keyword",
			job: source.Job{
				Title:       "Junior Accountant",
				Description: "bookkeeping and invoicing",
			},
			expected: false,
		},
		{
			name: "case insensitive",
			job: source.Job{
				Title:       "ENTRY LEVEL BACKEND ENGINEER",
				Description: "PYTHON SERVICES",
			},
			expected: true,
		},
		{
			name: "substring not word match",
			job: source.Job{
				Title:       "aijunior analyst",
				Description: "daily standups, python scripting",
			},
			expected: true,
		},
		{
			name: "entry keyword from company name",
			job: source.Job{
				Title:       "Backend Developer",
				CompanyName: "New Grad Hiring Co",
				Description: "apis",
			},
			expected: true,
		},
		{
			name:     "empty record",
			job:      source.Job{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesInterest(tt.job)
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}
