package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// InitValidator registers the custom rules once. Call it from main
// (and TestMain) before any service validates a request.
func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Usernames: letters, digits and underscore, must start with a letter
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
	})
}
