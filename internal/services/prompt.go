package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeEvaluationPrompt asks for the free-text recommendation.
func (pb *PromptBuilder) BuildResumeEvaluationPrompt(resumeText, jobDescription string, skillsMatched, skillsMissing []string) string {
	return fmt.Sprintf(`You are an HR assistant AI. Evaluate the following resume against the job description.

Task: Compare resumes with job descriptions and give a recommendation.

RESUME:
%s

JOB DESCRIPTION:
%s

Skills Matched: %s
Skills Missing: %s

Now follow these steps:
1. Compare the candidate's skills, experience and degree with the job requirements.
2. Provide a brief analysis of strengths and weaknesses.

Return the response in plain text with the following fields:
- recommendation: a short recommendation
- strengths: list of strengths
- weaknesses: list of weaknesses`,
		resumeText, referenceOrNone(jobDescription), formatSkills(skillsMatched), formatSkills(skillsMissing))
}

// BuildResumeScorePrompt asks for the match score alone, as strict JSON.
func (pb *PromptBuilder) BuildResumeScorePrompt(resumeText, jobDescription string, skillsMatched, skillsMissing []string) string {
	return fmt.Sprintf(`You are an HR assistant AI. Evaluate the following resume against the job description to generate a match score.

Task: Compare resumes with job descriptions and give a match score.

RESUME:
%s

JOB DESCRIPTION:
%s

Skills Matched: %s
Skills Missing: %s

Now follow these steps:
1. Compare the candidate's skills, experience and degree with the job requirements.
2. Provide a match score between 0-100.

Return only valid JSON with exactly this field:
{"match_score": <integer between 0 and 100>}`,
		resumeText, referenceOrNone(jobDescription), formatSkills(skillsMatched), formatSkills(skillsMissing))
}

// BuildFeedbackPrompt asks for sentiment, attrition risk and recommendations as strict JSON.
func (pb *PromptBuilder) BuildFeedbackPrompt(feedbackText string) string {
	return fmt.Sprintf(`You are an expert HR AI assistant.
Analyze the following employee feedback to predict attrition risk and suggest engagement strategies.

EMPLOYEE FEEDBACK:
%s

Instructions:
1. Analyze the sentiment (positive, negative, neutral).
2. Predict the attrition risk score (0-100).
3. Classify the risk level as Low, Medium, or High:
   - 0-40 = Low
   - 41-70 = Medium
   - 71-100 = High
4. Generate a list of 3-5 actionable recommendations to improve employee engagement.

Return only valid JSON with this exact structure:
{
  "sentiment": "positive | negative | neutral",
  "risk_score": <integer 0-100>,
  "risk_level": "Low | Medium | High",
  "recommendations": [
    "Recommendation 1",
    "Recommendation 2"
  ]
}`, feedbackText)
}

func formatSkills(skills []string) string {
	if len(skills) == 0 {
		return "None"
	}
	return strings.Join(skills, ", ")
}

func referenceOrNone(text string) string {
	if strings.TrimSpace(text) == "" {
		return "None provided."
	}
	return text
}
