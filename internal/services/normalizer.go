package services

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"

	"alfredoptarigan/hr-toolkit/internal/models"
)

// ErrScoreNotFound is returned when a score reply contains no digits.
var ErrScoreNotFound = errors.New("no score found in model reply")

var (
	digitRun   = regexp.MustCompile(`\d+`)
	codeFences = regexp.MustCompile("```[a-zA-Z]*\\n?")
)

//go:embed feedback_verdict.schema.json
var feedbackVerdictSchema string

var feedbackSchema = mustSchema(feedbackVerdictSchema)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded schema: %v", err))
	}
	return schema
}

// ExtractScore reads the first run of digits in reply as a 0-100 score.
func ExtractScore(reply string) (int, error) {
	digits := digitRun.FindString(reply)
	if digits == "" {
		return 0, ErrScoreNotFound
	}

	score, err := strconv.Atoi(digits)
	if err != nil {
		// Only a range error is possible on a pure digit run.
		return 100, nil
	}

	return clampScore(score), nil
}

// StripCodeFences removes Markdown code fence markers anywhere in text.
func StripCodeFences(text string) string {
	cleaned := codeFences.ReplaceAllString(strings.TrimSpace(text), "")
	return strings.TrimSpace(strings.ReplaceAll(cleaned, "```", ""))
}

// FeedbackVerdict is the normalized model reply for a feedback analysis.
// Exactly one of Analysis and Err is set.
type FeedbackVerdict struct {
	Raw      string
	Parsed   map[string]any
	Analysis *models.FeedbackAnalysis
	Err      *models.AnalysisError
}

// ParseFeedbackVerdict never fails: malformed replies become an error record
// carrying the raw text.
func ParseFeedbackVerdict(raw string) FeedbackVerdict {
	verdict := FeedbackVerdict{Raw: raw}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &parsed); err != nil || parsed == nil {
		verdict.Err = &models.AnalysisError{
			Kind:   models.ErrorKindStructuredParse,
			Detail: "failed to parse response",
			Raw:    raw,
		}
		return verdict
	}
	verdict.Parsed = parsed

	missing, issues := validateVerdict(parsed)
	if len(missing) > 0 {
		verdict.Err = &models.AnalysisError{
			Kind:   models.ErrorKindFieldMissing,
			Detail: "response is missing required fields: " + strings.Join(missing, ", "),
			Raw:    raw,
			Fields: missing,
		}
		return verdict
	}

	analysis := &models.FeedbackAnalysis{Issues: issues}
	analysis.Sentiment = normalizeSentiment(parsed["sentiment"], analysis)
	analysis.RiskScore = normalizeRiskScore(parsed["risk_score"], analysis)
	analysis.RiskLevel = normalizeRiskLevel(parsed["risk_level"], analysis.RiskScore, analysis)
	analysis.Recommendations = normalizeRecommendations(parsed["recommendations"], analysis)

	verdict.Analysis = analysis
	return verdict
}

func validateVerdict(parsed map[string]any) (missing []string, issues []string) {
	result, err := feedbackSchema.Validate(gojsonschema.NewGoLoader(parsed))
	if err != nil {
		return nil, []string{fmt.Sprintf("schema validation skipped: %v", err)}
	}

	seen := map[string]bool{}
	for _, e := range result.Errors() {
		if e.Type() == "required" {
			if property, ok := e.Details()["property"].(string); ok && !seen[property] {
				seen[property] = true
				missing = append(missing, property)
			}
			continue
		}
		issues = append(issues, e.String())
	}

	for _, key := range feedbackRequiredFields {
		if value, ok := parsed[key]; ok && value == nil && !seen[key] {
			seen[key] = true
			missing = append(missing, key)
		}
	}

	sort.Strings(missing)
	return missing, issues
}

var feedbackRequiredFields = []string{"sentiment", "risk_score", "recommendations"}

func normalizeSentiment(v any, a *models.FeedbackAnalysis) models.Sentiment {
	var s string
	if err := mapstructure.WeakDecode(v, &s); err != nil {
		a.Issues = append(a.Issues, fmt.Sprintf("sentiment %v is not text; using neutral", v))
		return models.SentimentNeutral
	}

	switch sentiment := models.Sentiment(strings.ToLower(strings.TrimSpace(s))); sentiment {
	case models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral:
		return sentiment
	default:
		a.Issues = append(a.Issues, fmt.Sprintf("unknown sentiment %q; using neutral", s))
		return models.SentimentNeutral
	}
}

func normalizeRiskScore(v any, a *models.FeedbackAnalysis) int {
	var f float64
	if err := mapstructure.WeakDecode(v, &f); err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		a.Issues = append(a.Issues, fmt.Sprintf("risk_score %v is not a number; using 0", v))
		return 0
	}

	rounded := int(math.Round(math.Max(-1, math.Min(f, 101))))
	score := clampScore(rounded)
	if float64(score) != f {
		a.Issues = append(a.Issues, fmt.Sprintf("risk_score %v normalized to %d", v, score))
	}
	return score
}

func normalizeRiskLevel(v any, score int, a *models.FeedbackAnalysis) models.RiskLevel {
	derived := models.RiskLevelForScore(score)

	reported, _ := v.(string)
	if strings.TrimSpace(reported) == "" {
		a.Issues = append(a.Issues, fmt.Sprintf("risk_level missing; derived %s from risk_score", derived))
		return derived
	}

	if !strings.EqualFold(strings.TrimSpace(reported), string(derived)) {
		a.Issues = append(a.Issues, fmt.Sprintf("risk_level %q does not match risk_score %d; using %s", reported, score, derived))
	}
	return derived
}

func normalizeRecommendations(v any, a *models.FeedbackAnalysis) []string {
	recommendations := []string{}
	if err := mapstructure.WeakDecode(v, &recommendations); err != nil {
		a.Issues = append(a.Issues, "recommendations are not a list of text; dropped")
		return []string{}
	}
	return recommendations
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
