package model

// UserType is the role of an authenticated account.
type UserType string

const (
	RoleSeller  UserType = "seller"
	RoleWalmart UserType = "walmart"
	RoleAdmin   UserType = "admin"
)

// Identity carries the authenticated user supplied by the upstream identity
// provider. The order core never reads ambient session state; every
// operation receives the acting identity explicitly.
type Identity struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	CompanyName string   `json:"companyName,omitempty"`
	UserType    UserType `json:"userType"`
}

// DisplayName is the buyer-facing full name recorded on orders.
func (i Identity) DisplayName() string {
	switch {
	case i.FirstName == "":
		return i.LastName
	case i.LastName == "":
		return i.FirstName
	default:
		return i.FirstName + " " + i.LastName
	}
}

// Valid reports whether t is a known user type.
func (t UserType) Valid() bool {
	switch t {
	case RoleSeller, RoleWalmart, RoleAdmin:
		return true
	}
	return false
}
