package models

type ResumeRequest struct {
	JobDescription    string `form:"job_description" validate:"max=50000"`
	JobDescriptionURL string `form:"job_description_url" validate:"omitempty,url"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"max=20000"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
