package randomstringgenerator

import (
	"carshare/internal/core/domain/user"
	"crypto/rand"
	"math/big"
)

const sessionTokenChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Reset codes are typed in by hand, so the alphabet is limited to
// upper case letters and digits.
const resetCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const SESSION_TOKEN_LENGTH = 32
const RESET_CODE_LENGTH = 6

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateSessionToken() user.SessionToken {
	return user.SessionToken(randomString(sessionTokenChars, SESSION_TOKEN_LENGTH))
}

func (g *Generator) GenerateResetCode() user.ResetCode {
	return user.ResetCode(randomString(resetCodeChars, RESET_CODE_LENGTH))
}

func randomString(chars string, length int) string {
	b := make([]byte, length)
	max := big.NewInt(int64(len(chars)))
	for i := range b {
		ix, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("Could not read random bytes.")
		}
		b[i] = chars[ix.Int64()]
	}
	return string(b)
}
