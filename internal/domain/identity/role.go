package identity

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleOperator   Role = "operator"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleOperator, RoleAdmin, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// CrossTenant reports whether the role may read data outside its own tenant.
// This is the single documented bypass of tenant scoping.
func (r Role) CrossTenant() bool {
	return r == RoleSuperAdmin
}
