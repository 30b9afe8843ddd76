package env

import (
	"crypto/subtle"
	"strings"
)

type PingEnvironment struct {
	Username string `validate:"required,min=16"`
	Password string `validate:"required,min=16"`
}

func (p PingEnvironment) HasInvalidCreds(username, password string) bool {
	userOk := subtle.ConstantTimeCompare([]byte(username), []byte(strings.TrimSpace(p.Username))) == 1
	passOk := subtle.ConstantTimeCompare([]byte(password), []byte(strings.TrimSpace(p.Password))) == 1

	return !userOk || !passOk
}
