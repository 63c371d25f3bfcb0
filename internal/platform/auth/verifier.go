package auth

import "github.com/alexedwards/argon2id"

// CredentialVerifier checks a login password and produces whatever gets
// stored for a newly registered account. Swapping implementations never
// changes the authenticate contract, only the verification policy.
type CredentialVerifier interface {
	// Verify reports whether the supplied password is valid for an account
	// whose stored credential is storedHash.
	Verify(password, storedHash string) bool
	// HashForRegistration returns the credential to store for a new account.
	HashForRegistration(password string) (string, error)
}

// SharedPasswordVerifier accepts one constant password for every account and
// stores nothing at registration. This matches the demo credential policy:
// wrong email and wrong password are indistinguishable to the caller, and a
// registered user's chosen password is accepted but never checked again.
type SharedPasswordVerifier struct {
	Password string
}

func (v SharedPasswordVerifier) Verify(password, _ string) bool {
	return password == v.Password
}

func (v SharedPasswordVerifier) HashForRegistration(string) (string, error) {
	return "", nil
}

// Argon2idVerifier is the hardened policy: registration stores an argon2id
// hash and login compares against it. Seeded accounts without a hash cannot
// log in under this verifier.
type Argon2idVerifier struct{}

func (Argon2idVerifier) Verify(password, storedHash string) bool {
	if storedHash == "" {
		return false
	}
	ok, err := argon2id.ComparePasswordAndHash(password, storedHash)
	return err == nil && ok
}

func (Argon2idVerifier) HashForRegistration(password string) (string, error) {
	return argon2id.CreateHash(password, argon2id.DefaultParams)
}
