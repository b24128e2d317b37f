package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuna reports whether s passes the Luhn check. Card-kind payout account
// numbers must pass it before a withdrawal method is accepted.
func IsLuna(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
