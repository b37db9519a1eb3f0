package model

// Credential is one saved site/username/password triple. ID is assigned by the
// store on save. Password is kept exactly as submitted.
type Credential struct {
	ID       int64
	Site     string
	Username string
	Password string
}
