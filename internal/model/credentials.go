package model

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword fails closed: any error from bcrypt (wrong password,
// empty or truncated hash) yields false rather than a panic or a
// propagated error.
func checkPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
