package domain

// User is a registered account. The password hash never leaves the process:
// it is excluded from JSON and projected away on reads.
type User struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	Username     string `json:"username" bson:"username"`
	Firstname    string `json:"firstname,omitempty" bson:"firstname,omitempty"`
	Lastname     string `json:"lastname,omitempty" bson:"lastname,omitempty"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password,omitempty"`
}
