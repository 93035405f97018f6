package domain

// User is a registered traveler. PasswordHash is a bcrypt digest of the
// secret the client submits; it is stripped from every list/login response.
type User struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	IdentityNo   string `json:"identityNo"`
}

// Sanitized returns a copy safe to hand to clients.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

type Admin struct {
	ID           string `json:"_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

func (a Admin) Sanitized() Admin {
	a.PasswordHash = ""
	return a
}
