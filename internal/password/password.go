// Copyright 2026 Docuvault Ltd.
// SPDX-License-Identifier: AGPL-3.0

package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Hash hashes a plaintext password using bcrypt.
func Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify compares a plaintext password with a stored hash.
// The comparison is constant time within bcrypt.
func Verify(hash, password string) error {
	if hash == "" {
		return errors.New("password hash is empty")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
