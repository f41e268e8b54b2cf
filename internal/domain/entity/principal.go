// Package entity contains the core business objects of the planner,
// each representing a unique, identifiable concept within the domain.
package entity

// Principal is the signed-in identity as reported by the identity provider.
// The planner never creates or destroys principals, it only observes them.
type Principal struct {
	ID            string // Opaque, stable identifier issued by the provider.
	DisplayName   string // Optional display name.
	Email         string // Optional primary email.
	EmailVerified bool   // Whether the provider has verified the email.
}

// SamePrincipal reports whether a and b identify the same account.
// Two absent principals are the same; attribute changes do not matter.
func SamePrincipal(a, b *Principal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.ID == b.ID
}

// ShortID returns the identifier truncated for logging.
func (p *Principal) ShortID() string {
	if p == nil {
		return ""
	}
	if len(p.ID) <= 8 {
		return p.ID
	}

	return p.ID[:8]
}

// Clone returns a copy of p.
func (p *Principal) Clone() *Principal {
	if p == nil {
		return nil
	}
	cp := *p

	return &cp
}
