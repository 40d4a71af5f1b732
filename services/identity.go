package services

import "github.com/Govind-619/Storefront/utils"

// Identity is the caller as resolved by the identity provider. It is passed
// into every operation rather than read from ambient state.
type Identity struct {
	Principal string
	IsAdmin   bool
}

// Authenticated reports whether the identity carries a principal
func (i Identity) Authenticated() bool {
	return i.Principal != ""
}

func requireAuthenticated(id Identity) error {
	if !id.Authenticated() {
		return utils.UnauthenticatedError("Not authenticated")
	}
	return nil
}

func requireAdmin(id Identity) error {
	if err := requireAuthenticated(id); err != nil {
		return err
	}
	if !id.IsAdmin {
		return utils.ForbiddenError("Admin access only")
	}
	return nil
}
