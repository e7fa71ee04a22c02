package model

// User is a registered account. Email is unique across the registry, the
// database enforces it with a unique constraint.
type User struct {
	ID    int64
	Name  string
	Email string
}
