package server

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCookie = errors.New("invalid session cookie")

// cookieCodec signs the store token into the session cookie, so a browser
// can't pick somebody else's token.
type cookieCodec struct {
	name   string
	secret []byte
	maxAge int
	secure bool
}

func newCookieCodec(name, secret string, maxAge int, secure bool) (*cookieCodec, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("cant generate cookie secret: %w", err)
		}
	}

	return &cookieCodec{
		name:   name,
		secret: key,
		maxAge: maxAge,
		secure: secure,
	}, nil
}

// read returns the store token of the request's session cookie.
func (codec *cookieCodec) read(request *http.Request) (string, error) {
	cookie, err := request.Cookie(codec.name)
	if err != nil {
		return "", ErrInvalidCookie
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", ErrInvalidCookie
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(value, &claims, func(*jwt.Token) (interface{}, error) {
		return codec.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidCookie
	}
	if claims.Subject == "" {
		return "", ErrInvalidCookie
	}

	return claims.Subject, nil
}

func (codec *cookieCodec) encode(storeToken string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  storeToken,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString(codec.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session cookie: %w", err)
	}
	return signed, nil
}

func (codec *cookieCodec) write(responseWriter http.ResponseWriter, storeToken string) error {
	value, err := codec.encode(storeToken)
	if err != nil {
		return err
	}

	http.SetCookie(responseWriter, &http.Cookie{
		Name:     codec.name,
		Value:    value,
		Path:     "/",
		MaxAge:   codec.maxAge,
		HttpOnly: true,
		Secure:   codec.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
