package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength longitud mínima aceptada al crear usuarios.
const MinPasswordLength = 8

// HashPassword genera el hash bcrypt de una contraseña en texto plano.
func HashPassword(plain string) (string, error) {
	if len(plain) < MinPasswordLength {
		return "", fmt.Errorf("auth: la contraseña debe tener al menos %d caracteres", MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash de contraseña: %w", err)
	}
	return string(hash), nil
}

// VerifyCredential compara la contraseña con el hash almacenado.
// Devuelve false ante cualquier error, incluido un hash malformado o vacío.
func VerifyCredential(plain, storedHash string) bool {
	if plain == "" || storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
}
