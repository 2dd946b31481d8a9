package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkillsFollowsVocabularyOrder(t *testing.T) {
	f := NewFeatureExtractor(nil)

	text := "Built pipelines in PyTorch, deployed with docker on AWS, wrote python daily."
	skills := f.ExtractSkills(text)

	assert.Equal(t, []string{"Python", "Docker", "AWS", "PyTorch"}, skills)
	assert.Equal(t, skills, f.ExtractSkills(text), "extraction must be deterministic")
}

func TestExtractSkillsWordBoundaries(t *testing.T) {
	f := NewFeatureExtractor(nil)

	assert.Empty(t, f.ExtractSkills("Gopher javascripting gitlab"))
	assert.Equal(t, []string{"Node.js", "CI/CD"}, f.ExtractSkills("node.js services behind ci/cd"))
	assert.Equal(t, []string{"REST API"}, f.ExtractSkills("designed a rest api"))
}

func TestExtractSkillsCustomVocabulary(t *testing.T) {
	f := NewFeatureExtractor(NewLexiconWith([]string{"Rust", "Elixir"}, nil))
	assert.Equal(t, []string{"Rust"}, f.ExtractSkills("python and rust"))
}

func TestExtractExperience(t *testing.T) {
	f := NewFeatureExtractor(nil)

	tests := []struct {
		name string
		text string
		want *int
	}{
		{name: "years of experience", text: "I have 5+ years of experience in Go", want: intPtr(5)},
		{name: "yrs experience", text: "3 yrs experience with SQL", want: intPtr(3)},
		{name: "experience of", text: "Experience of 7 years in retail", want: intPtr(7)},
		{name: "worked for", text: "Worked for 4 years at Acme", want: intPtr(4)},
		{name: "priority order", text: "worked for 9 years; 2 years experience", want: intPtr(2)},
		{name: "first match in text wins", text: "1 year experience then 6 years experience", want: intPtr(1)},
		{name: "overflow is clamped", text: "99999999999999999999 years of experience", want: intPtr(math.MaxInt)},
		{name: "no data", text: "Recent graduate with internship projects", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.ExtractExperience(tt.text)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestExtractEducationCaseInsensitive(t *testing.T) {
	f := NewFeatureExtractor(nil)

	for _, text := range []string{"PhD in Physics", "phd candidate", "Ph.D from MIT"} {
		assert.Contains(t, f.ExtractEducation(text), "phd", text)
	}
}

func TestExtractEducationMultipleLevels(t *testing.T) {
	f := NewFeatureExtractor(nil)

	levels := f.ExtractEducation("Bachelor of Science, then an MBA")
	assert.Equal(t, []string{"masters", "bachelors"}, levels)

	assert.Empty(t, f.ExtractEducation("Self taught developer"))
}

func TestCompareSkills(t *testing.T) {
	candidate := []string{"Python", "Docker", "Git"}
	required := []string{"Python", "Kubernetes", "Git", "AWS"}

	matched, missing := CompareSkills(candidate, required)

	assert.Equal(t, []string{"Python", "Git"}, matched)
	assert.Equal(t, []string{"Kubernetes", "AWS"}, missing)

	seen := map[string]bool{}
	for _, s := range matched {
		seen[s] = true
	}
	for _, s := range missing {
		assert.False(t, seen[s], "skill %s both matched and missing", s)
	}
}

func TestSimilarityDegenerateInput(t *testing.T) {
	s := NewSimilarityScorer(nil)

	long := "experienced python engineer building data platforms"
	assert.Equal(t, 0.0, s.Score("python engineer", long))
	assert.Equal(t, 0.0, s.Score(long, "one two three four"))
	assert.Equal(t, 0.0, s.Score("", ""))
}

func TestSimilarityScore(t *testing.T) {
	s := NewSimilarityScorer(nil)

	a := "experienced python engineer building data platforms"
	assert.InDelta(t, 1.0, s.Score(a, a), 1e-9)

	disjoint := s.Score(a, "chef cooking italian pasta dishes daily")
	assert.Equal(t, 0.0, disjoint)

	partial := s.Score(a, "senior python engineer wanted for web platforms")
	assert.Greater(t, partial, 0.0)
	assert.Less(t, partial, 1.0)
}

func TestSimilarityOnlyStopWords(t *testing.T) {
	s := NewSimilarityScorer(nil)
	assert.Equal(t, 0.0, s.Score("the and of to a is", "python engineer building data platforms"))
}

func TestSimilarityKeepsAccentedWordsWhole(t *testing.T) {
	s := NewSimilarityScorer(nil)

	counts := s.termCounts("Développeur expérimenté à Zürich, données réseau")
	assert.Equal(t, map[string]float64{
		"développeur": 1,
		"expérimenté": 1,
		"zürich":      1,
		"données":     1,
		"réseau":      1,
	}, counts)
}

func TestSimilarityAccentedText(t *testing.T) {
	s := NewSimilarityScorer(nil)

	resume := "Développeur expérimenté Zürich données réseau"
	job := "Ingénieur logiciel Genève sécurité données"
	assert.InDelta(t, 0.2, s.Score(resume, job), 1e-9)
}

func intPtr(v int) *int { return &v }
