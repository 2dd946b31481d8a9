package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var fieldNames = map[string]string{
	"JobDescription":    "job_description",
	"JobDescriptionURL": "job_description_url",
	"Feedback":          "feedback",
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request payload"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fieldNames[fe.Field()]
		if name == "" {
			name = fe.Field()
		}

		switch fe.Tag() {
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s exceeds %s characters", name, fe.Param()))
		case "url":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid URL", name))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", name))
		}
	}

	return strings.Join(msgs, "; ")
}
