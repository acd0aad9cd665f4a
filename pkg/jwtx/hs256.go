package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken reports a token that failed signature or claim validation.
var ErrInvalidToken = errors.New("jwtx: invalid token")

// Signer signs session claims with a secret shared with the host framework.
// The invite add-on never holds asymmetric key material; key management is
// the host auth service's job.
type Signer struct {
	secret []byte
}

func NewSigner(secret []byte) *Signer {
	return &Signer{secret: secret}
}

func (s *Signer) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(s.secret)
}

// Verifier validates HS256 session tokens minted by this service or by the
// host framework with the same shared secret.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret []byte, issuer string) *Verifier {
	return &Verifier{secret: secret, issuer: issuer}
}

// Verify parses and validates raw, returning its claims. Expiry, not-before
// and issuer are all enforced.
func (v *Verifier) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}
	return claims, nil
}
