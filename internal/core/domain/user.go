package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username already exists")

// User models a tracked account. ID is the storage-assigned identifier
// rendered as a hex string. Users are never updated or deleted.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
