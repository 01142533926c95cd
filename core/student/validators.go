package student

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/progress/core"
)

var (
	firstNameTag  = "firstname"
	firstNameText = "incorrect first name"

	lastNameTag  = "lastname"
	lastNameText = "incorrect last name"

	emailTag  = "emailaddr"
	emailText = "incorrect email"

	// field (json name) -> Reason, in reporting priority
	fieldReasons = []struct {
		field  string
		reason Reason
	}{
		{"first_name", ReasonFirstName},
		{"last_name", ReasonLastName},
		{"email", ReasonEmail},
	}
)

// InitValidators registers the student validators and their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(firstNameTag, firstNameValidation)
	core.RegisterCustomTranslation(validate, translator, firstNameTag, firstNameText)

	_ = validate.RegisterValidation(lastNameTag, lastNameValidation)
	core.RegisterCustomTranslation(validate, translator, lastNameTag, lastNameText)

	_ = validate.RegisterValidation(emailTag, emailValidation)
	core.RegisterCustomTranslation(validate, translator, emailTag, emailText)
}

// Custom Validators

func firstNameValidation(fl validator.FieldLevel) bool {
	return isName(fl.Field().String())
}

func lastNameValidation(fl validator.FieldLevel) bool {
	return isLastName(fl.Field().String())
}

func emailValidation(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func isName(s string) bool {
	return nameRegex.MatchString(s)
}

// isLastName checks that `s` is one or more names separated by single whitespace.
func isLastName(s string) bool {
	rest := s
	for {
		token, after, ok := nextToken(rest)
		if !isName(token) {
			return false
		}
		if !ok {
			return true
		}
		rest = after
	}
}

// credentialsError converts validator errors into a core.ValidationError wrapping
// the *CredentialsError of the highest priority invalid field.
func (svc *Service) credentialsError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	failed := make(map[string]bool, len(verrs))
	fields := make([]core.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		failed[fe.Field()] = true
		fields = append(fields, core.FieldError{Field: fe.Field(), Error: fe.Translate(svc.translator)})
	}

	reason := ReasonUnparseable
	for _, fr := range fieldReasons {
		if failed[fr.field] {
			reason = fr.reason
			break
		}
	}
	return core.NewValidationError(newCredentialsError(reason), fields...)
}
