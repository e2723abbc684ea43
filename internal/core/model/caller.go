package model

// Caller is the authenticated identity on behalf of which a command is
// executed. It is resolved by an external collaborator (the chat gateway)
// before any repository operation runs.
type Caller struct {
	Member      MemberID
	DisplayName string
	Roles       []RoleRef
}

func (c *Caller) HasRole(role RoleRef) bool {
	if c == nil {
		return false
	}

	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}

	return false
}
