package models

// StaffAccount represents a staff login row. Passwords are stored as bcrypt
// hashes only. Accounts are never deleted; only added, with replaceable
// passwords.
type StaffAccount struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"` // '-' means don't send in JSON response
}
