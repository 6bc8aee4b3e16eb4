package authutils

import (
	"golang.org/x/crypto/bcrypt"
)

// стоимость подобрана под исходный портал, bcrypt cost 10
const passwordHashCost = 10

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword сравнение за константное время внутри bcrypt
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
