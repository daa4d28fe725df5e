package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *gpvalidator.Validate
)

func instance() *gpvalidator.Validate {
	once.Do(func() {
		v = gpvalidator.New()
	})
	return v
}

// ValidateStruct runs the struct tags of s through go-playground/validator.
func ValidateStruct(s interface{}) error {
	return instance().Struct(s)
}
