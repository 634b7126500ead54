package domain

// User is referenced by the forum entities via its id. PassHash is only
// populated on the storage path, never serialized outward.
type User struct {
	Id       string
	Username string
	Fullname string
	PassHash string
}

// Credentials is the register/login input after boundary validation.
type Credentials struct {
	Username string
	Password string
	Fullname string
}

// RegisteredUser is the confirmation returned after persisting a new user.
type RegisteredUser struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}
