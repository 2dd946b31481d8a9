package services

import (
	"errors"
	"math"
	"strconv"
)

// Signals are the deterministic features pulled from a resume.
type Signals struct {
	Skills          []string
	ExperienceYears *int
	Education       []string
}

type FeatureExtractor struct {
	lexicon *Lexicon
}

func NewFeatureExtractor(lexicon *Lexicon) *FeatureExtractor {
	if lexicon == nil {
		lexicon = NewLexicon()
	}
	return &FeatureExtractor{lexicon: lexicon}
}

func (f *FeatureExtractor) Extract(text string) Signals {
	return Signals{
		Skills:          f.ExtractSkills(text),
		ExperienceYears: f.ExtractExperience(text),
		Education:       f.ExtractEducation(text),
	}
}

// ExtractSkills returns the vocabulary terms found in text, in vocabulary order.
func (f *FeatureExtractor) ExtractSkills(text string) []string {
	skills := []string{}
	for _, s := range f.lexicon.skills {
		if s.re.MatchString(text) {
			skills = append(skills, s.name)
		}
	}
	return skills
}

// ExtractExperience returns the first year count captured by the first
// matching pattern, or nil when no pattern matches. Counts too large for an
// int are clamped to math.MaxInt.
func (f *FeatureExtractor) ExtractExperience(text string) *int {
	for _, re := range f.lexicon.experience {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		years, err := strconv.Atoi(m[1])
		if errors.Is(err, strconv.ErrRange) {
			years = math.MaxInt
		} else if err != nil {
			continue
		}
		return &years
	}
	return nil
}

// ExtractEducation reports every level with at least one keyword present.
// Several levels may match at once.
func (f *FeatureExtractor) ExtractEducation(text string) []string {
	levels := []string{}
	for _, ep := range f.lexicon.education {
		for _, re := range ep.patterns {
			if re.MatchString(text) {
				levels = append(levels, ep.level)
				break
			}
		}
	}
	return levels
}

// CompareSkills splits the required skills into those the candidate has and
// those they lack. Both slices keep the order of required.
func CompareSkills(candidate, required []string) (matched, missing []string) {
	have := make(map[string]struct{}, len(candidate))
	for _, s := range candidate {
		have[s] = struct{}{}
	}

	matched = []string{}
	missing = []string{}
	for _, s := range required {
		if _, ok := have[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}
