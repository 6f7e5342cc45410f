package validatorx

import (
	"regexp"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex

	localPhonePattern = regexp.MustCompile(`^[0-9]{9}$`)
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("localphone", func(fl gpvalidator.FieldLevel) bool {
		return IsLocalPhone(fl.Field().String())
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// IsLocalPhone reports whether s is a 9-digit subscriber number without the leading zero.
func IsLocalPhone(s string) bool {
	return localPhonePattern.MatchString(s)
}
