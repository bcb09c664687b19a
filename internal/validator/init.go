package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// "mark" accepts the two player identities tracked by the scoreboard.
	_ = validate.RegisterValidation("mark", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return v == "X" || v == "O"
	})
}

func GetValidator() *validator.Validate {
	return validate
}

// IsMark reports whether s names a scoreboard player.
func IsMark(s string) bool {
	return validate.Var(s, "required,mark") == nil
}
