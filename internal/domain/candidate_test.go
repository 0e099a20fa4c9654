package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateFirstSkill(t *testing.T) {
	cases := map[string]string{
		"Python, SQL":  "Python",
		"  Go ,Rust":   "Go",
		"Excel":        "Excel",
		"":             "",
		" , SQL":       "",
		"Data Science": "Data Science",
	}
	for skills, want := range cases {
		c := Candidate{Skills: skills}
		assert.Equal(t, want, c.FirstSkill(), "skills=%q", skills)
	}
}
