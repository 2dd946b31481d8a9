package models

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

type RiskLevel string

const (
	RiskLow     RiskLevel = "Low"
	RiskMedium  RiskLevel = "Medium"
	RiskHigh    RiskLevel = "High"
	RiskUnknown RiskLevel = "Unknown"
)

// RiskLevelForScore buckets a 0-100 attrition score: 0-40 Low, 41-70 Medium,
// 71-100 High.
func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score <= 40:
		return RiskLow
	case score <= 70:
		return RiskMedium
	default:
		return RiskHigh
	}
}

type ErrorKind string

const (
	ErrorKindExtraction      ErrorKind = "extraction_failure"
	ErrorKindEmptyInput      ErrorKind = "empty_input"
	ErrorKindStructuredParse ErrorKind = "structured_parse_failure"
	ErrorKindFieldMissing    ErrorKind = "field_missing"
)

// AnalysisError is the error half of an analysis outcome. Raw holds the
// unparsed model reply when one exists.
type AnalysisError struct {
	Kind   ErrorKind `json:"kind"`
	Detail string    `json:"detail"`
	Raw    string    `json:"raw,omitempty"`
	Fields []string  `json:"fields,omitempty"`
}

type ResumeAnalysis struct {
	MatchScore      int      `json:"match_score"`
	SkillsMatched   []string `json:"skills_matched"`
	SkillsMissing   []string `json:"skills_missing"`
	ExperienceYears *int     `json:"experience_years"`
	Education       []string `json:"education"`
	Similarity      float64  `json:"similarity"`
	Narrative       string   `json:"narrative"`
}

// ResumeOutcome carries a result, an error, or both when a fixed fallback
// result was produced.
type ResumeOutcome struct {
	RequestID string          `json:"request_id"`
	Result    *ResumeAnalysis `json:"result,omitempty"`
	Error     *AnalysisError  `json:"error,omitempty"`
}

type FeedbackAnalysis struct {
	Sentiment       Sentiment `json:"sentiment"`
	RiskScore       int       `json:"risk_score"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Recommendations []string  `json:"recommendations"`
	// Issues lists corrections the normalizer applied to the model reply.
	Issues []string `json:"issues,omitempty"`
}

type FeedbackOutcome struct {
	RequestID string            `json:"request_id"`
	Result    *FeedbackAnalysis `json:"result,omitempty"`
	Error     *AnalysisError    `json:"error,omitempty"`
}
