// Package password represents a password in the system.
package password

import "fmt"

const (
	minLength = 8
	maxLength = 72 // bcrypt input limit.
)

// Password represents a password in the system. The raw value is kept
// private so it never leaks through logging or marshalling.
type Password struct {
	value string
}

// String masks the value of the password.
func (p Password) String() string {
	return "********"
}

// Bytes returns the raw value for hashing.
func (p Password) Bytes() []byte {
	return []byte(p.value)
}

// Equal provides support for the go-cmp package and testing.
func (p Password) Equal(p2 Password) bool {
	return p.value == p2.value
}

// MarshalText provides support for logging and any marshal needs.
func (p Password) MarshalText() ([]byte, error) {
	return []byte("********"), nil
}

// =============================================================================

// Parse parses the string value and returns a password if the value complies
// with the rules for a password.
func Parse(value string) (Password, error) {
	if len(value) < minLength || len(value) > maxLength {
		return Password{}, fmt.Errorf("password must be between %d and %d characters", minLength, maxLength)
	}

	return Password{value}, nil
}

// MustParse parses the string value and returns a password if the value
// complies with the rules for a password. If an error occurs the function
// panics.
func MustParse(value string) Password {
	password, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return password
}
