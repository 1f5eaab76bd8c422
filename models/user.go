package models

// User is the public shape of an authenticated identity. Passwords never
// leave the session package, so they are not part of this struct.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Credential is a registered login record. Process-local and
// non-authoritative: seeded at startup and extended by signup.
type Credential struct {
	User
	Password string `json:"-"`
}
