package domain

// User is the display profile supplied by the identity provider at session
// start. The engine is keyed entirely by ID and has no opinion on how the
// profile was obtained.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
}
