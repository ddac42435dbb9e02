package service

import (
	"time"

	"github.com/aryadee/smart-bank/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer turns an authenticated account into a signed session token.
type TokenIssuer interface {
	Issue(accountNo string, admin bool) (string, time.Time, error)
}

type tokenIssuer struct {
	cfg config.Auth
}

func NewTokenIssuer(cfg config.Auth) TokenIssuer {
	return &tokenIssuer{cfg: cfg}
}

func (t *tokenIssuer) Issue(accountNo string, admin bool) (string, time.Time, error) {
	expiresAt := time.Now().Add(t.cfg.Expiry)

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["account_no"] = accountNo
	claims["admin"] = admin
	claims["exp"] = expiresAt.Unix()

	signed, err := token.SignedString([]byte(t.cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
