// Package entity contains the core business objects of the project.
package entity

// UserType represents the kind of account a user registered as.
type UserType string

const (
	// UserTypeCustomer indicates an account that rates shops.
	UserTypeCustomer UserType = "customer"
	// UserTypeShopOwner indicates an account that registers shops.
	UserTypeShopOwner UserType = "shop_owner"
)

// String returns the string representation of the UserType.
func (u UserType) String() string {
	return string(u)
}

// IsValid checks if the UserType is a valid value.
func (u UserType) IsValid() bool {
	switch u {
	case UserTypeCustomer, UserTypeShopOwner:
		return true
	default:
		return false
	}
}
