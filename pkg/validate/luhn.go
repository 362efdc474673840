package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuhn checks a withdrawal destination card number.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
