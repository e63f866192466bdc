package domain

// User is an account: the tenancy boundary. Every other entity is owned by
// exactly one user and is only ever visible to that user.
type User struct {
	UserID       string `json:"userID" db:"id"`
	Email        string `json:"email" db:"email"`
	FirstName    string `json:"firstName" db:"first_name"`
	LastName     string `json:"lastName" db:"last_name"`
	PasswordHash string `json:"-" db:"password_hash"`
	AuditFields
}
