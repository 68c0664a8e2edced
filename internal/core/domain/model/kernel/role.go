package kernel

import (
	"fmt"
	"strings"

	"photoflow/internal/pkg/errs"
)

// Role is the authorization role of an actor.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdministrator
	RolePhotographer
	RoleEditor
	RoleBusiness
	// RoleSystem is held only by scheduled jobs. It is never parsed from storage.
	RoleSystem
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:       "UNKNOWN",
		RoleAdministrator: "ADMIN",
		RolePhotographer:  "PHOTOGRAPHER",
		RoleEditor:        "EDITOR",
		RoleBusiness:      "BUSINESS",
		RoleSystem:        "SYSTEM",
	}
}

// RoleFromString parses the role names stored in the users table.
// SYSTEM is rejected so that no stored user can impersonate a job.
func RoleFromString(s string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for role, name := range getRoleStrings() {
		if name == normalized && role != RoleUnknown && role != RoleSystem {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleSystem {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}
