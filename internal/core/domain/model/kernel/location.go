package kernel

import (
	"strings"
	"unicode/utf8"

	"photoflow/internal/pkg/errs"
	"photoflow/internal/pkg/guard"
)

// MaxLocationLength bounds the stored address in characters.
const MaxLocationLength = 500

var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is the address where a shoot takes place.
// Surrounding whitespace is trimmed; the remaining text must be non-empty.
type Location struct { //nolint:recvcheck //using for validation
	address string
	guard   guard.ConstructorGuard
}

// NewLocation validates and trims an address.
//
// Returns:
//   - ValueIsRequiredError when the address is blank
//   - ValueIsOutOfRangeError when it exceeds MaxLocationLength characters
func NewLocation(address string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := loc.setAddress(address); err != nil {
		return Location{}, err
	}

	return loc, nil
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Address() string {
	return l.address
}

func (l Location) String() string {
	return l.address
}

func (l Location) IsEqual(other Location) bool {
	return l.address == other.address
}

func (l *Location) setAddress(address string) error {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("location")
	}
	if n := utf8.RuneCountInString(trimmed); n > MaxLocationLength {
		return errs.NewValueIsOutOfRangeError("location", n, 1, MaxLocationLength)
	}

	l.address = trimmed
	return nil
}
