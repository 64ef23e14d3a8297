package leaderboard

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/degenfarm/internal/domain"
)

// UsernameTag is the validator tag for farm usernames
const UsernameTag = "farm_username"

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the farm tags registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation(UsernameTag, ValidateUsernameField)
		validate = v
	})
	return validate
}

// ValidateUsernameField is the validator.Func behind UsernameTag
func ValidateUsernameField(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// ValidateUsername checks the 3-20 character [a-zA-Z0-9_] rule.
func ValidateUsername(username string) error {
	if err := Validator().Var(username, UsernameTag); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidUsername, username)
	}
	return nil
}
