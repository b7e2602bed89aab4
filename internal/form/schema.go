package form

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Draft is the submission payload shape. The tags define the schema every
// submission must satisfy; category membership is unconstrained (a post may
// have no categories).
type Draft struct {
	Title         string   `validate:"required,max=100"`
	Content       string   `validate:"required,max=5000"`
	CoverImageURL string   `validate:"required,url"`
	CategoryIDs   []string `validate:"-"`
}

// FieldError is a single field-scoped validation failure.
type FieldError struct {
	Field   string
	Message string
}

var validate = validator.New()

// Validate checks a draft against the submission schema. Failures come back
// as ordinary values, one per offending field; an empty slice means the draft
// is submittable.
func Validate(d Draft) []FieldError {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// validator.Struct only returns InvalidValidationError for non-struct
		// input, which cannot happen with a Draft value.
		return []FieldError{{Field: "draft", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldName(fe.Field()), Message: message(fe)})
	}
	return out
}

func fieldName(structField string) string {
	switch structField {
	case "Title":
		return "title"
	case "Content":
		return "content"
	case "CoverImageURL":
		return "coverImageUrl"
	default:
		return structField
	}
}

func message(fe validator.FieldError) string {
	switch fieldName(fe.Field()) {
	case "title":
		if fe.Tag() == "max" {
			return fmt.Sprintf("title must be at most %s characters", fe.Param())
		}
		return "title is required"
	case "content":
		if fe.Tag() == "max" {
			return fmt.Sprintf("content must be at most %s characters", fe.Param())
		}
		return "content is required"
	case "coverImageUrl":
		return "cover image must be a valid URL"
	default:
		return fmt.Sprintf("%s is invalid", fieldName(fe.Field()))
	}
}
