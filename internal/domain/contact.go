package domain

// Contact is an entry of the identity/contact directory.
type Contact struct {
	ID          string
	DisplayName string
	Address     string
}
