// Package user holds the sample record served by the /test endpoint.
package user

// Record is the sample user returned by the /test endpoint.
//
// Password is sent in plaintext; the record is demo data only.
type Record struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Sample returns the fixed demo user.
func Sample() Record {
	return Record{
		Name:     "aflah",
		Password: "123456",
		Email:    "aflah@universe.com",
	}
}
