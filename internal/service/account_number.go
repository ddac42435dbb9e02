package service

import "math/rand/v2"

const (
	accountNoLetters  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	accountNoDigits   = "0123456789"
	accountNoSpecials = "!@#$%^&*"
)

// AccountNumberGenerator produces candidate 7-character account numbers:
// three letters, three digits and one special character, shuffled so the
// class positions are not predictable.
type AccountNumberGenerator interface {
	Generate() string
}

type accountNumberGenerator struct{}

func NewAccountNumberGenerator() AccountNumberGenerator {
	return &accountNumberGenerator{}
}

func (g *accountNumberGenerator) Generate() string {
	chars := make([]byte, 0, 7)
	for i := 0; i < 3; i++ {
		chars = append(chars, accountNoLetters[rand.IntN(len(accountNoLetters))])
	}
	for i := 0; i < 3; i++ {
		chars = append(chars, accountNoDigits[rand.IntN(len(accountNoDigits))])
	}
	chars = append(chars, accountNoSpecials[rand.IntN(len(accountNoSpecials))])

	rand.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})

	return string(chars)
}
