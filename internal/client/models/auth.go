package models

// User holds the identity claims recovered from the bearer token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// AuthSession is the persisted authentication state. Token is empty when the
// visitor is anonymous.
type AuthSession struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// Anonymous returns the zero session used after logout and on first run.
func Anonymous() AuthSession {
	return AuthSession{}
}
