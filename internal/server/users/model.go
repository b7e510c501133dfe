package users

import "time"

// User is a stored account row. PasswordHash carries only the bcrypt digest;
// plaintext never reaches this struct.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
