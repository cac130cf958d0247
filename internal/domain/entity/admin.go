package entity

// AdminCredentialID is the fixed identifier of the single admin credential
// row. This surface only ever reads that one row.
const AdminCredentialID = 1

// AdminCredential holds the stored password hash for the admin account.
// It is never created or mutated through this API.
type AdminCredential struct {
	ID           int
	PasswordHash string
}

// TokenPair is the result of a successful admin login: a short-lived access
// token and a long-lived refresh token, both stateless.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
