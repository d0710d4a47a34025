package entities

// Roles are the identity flags supplied by the auth provider.
type Roles struct {
	UserID       string
	IsAdmin      bool
	IsTechnician bool
}

// Capabilities are resolved once per request from Roles and passed down explicitly.
type Capabilities struct {
	CanViewFinancials bool
}

// Capabilities encodes the financial visibility rule: technicians never see
// financial data, even when they also hold the admin flag.
func (r Roles) Capabilities() Capabilities {
	return Capabilities{CanViewFinancials: r.IsAdmin && !r.IsTechnician}
}
