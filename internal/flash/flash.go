// Package flash carries one-shot status messages from the request that
// produced them to the next rendered page. Messages travel in an
// HMAC-signed cookie so a redirect can hand them to the following request.
package flash

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Categories used by the handlers.
const (
	Info  = "message"
	Error = "error"
)

// CookieName is the cookie that carries messages across a redirect.
const CookieName = "stagebook_flash"

const (
	pendingKey = "flash.pending"
	cookieTTL  = 5 * time.Minute
)

// Message is a single flashed status line.
type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type claims struct {
	Messages []Message `json:"msgs"`
	jwt.RegisteredClaims
}

// Store signs and verifies flash cookies.
type Store struct {
	secret []byte
	secure bool
}

// NewStore returns a Store signing cookies with secret. secure marks the
// cookie Secure, for deployments behind TLS.
func NewStore(secret string, secure bool) *Store {
	return &Store{secret: []byte(secret), secure: secure}
}

// Add queues a message for the current request.
func (s *Store) Add(c echo.Context, category, text string) {
	pending, _ := c.Get(pendingKey).([]Message)
	c.Set(pendingKey, append(pending, Message{Category: category, Text: text}))
}

// Pop returns the messages carried in by the request cookie followed by the
// ones queued during this request, and forgets them. The cookie is expired
// when one was present.
func (s *Store) Pop(c echo.Context) []Message {
	var out []Message
	if ck, err := c.Cookie(CookieName); err == nil {
		out = append(out, s.decode(ck.Value)...)
		s.setCookie(c, "", -1)
	}
	if pending, ok := c.Get(pendingKey).([]Message); ok {
		out = append(out, pending...)
		c.Set(pendingKey, nil)
	}
	return out
}

// Save moves queued messages into the response cookie so they survive a
// redirect. Messages already waiting in the request cookie are kept.
func (s *Store) Save(c echo.Context) error {
	pending, _ := c.Get(pendingKey).([]Message)
	if len(pending) == 0 {
		return nil
	}
	var carried []Message
	if ck, err := c.Cookie(CookieName); err == nil {
		carried = s.decode(ck.Value)
	}
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Messages: append(carried, pending...),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cookieTTL)),
		},
	})
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return err
	}
	c.Set(pendingKey, nil)
	s.setCookie(c, signed, int(cookieTTL/time.Second))
	return nil
}

// decode verifies a cookie value. Tampered or expired cookies yield no
// messages.
func (s *Store) decode(raw string) []Message {
	var cl claims
	tok, err := jwt.ParseWithClaims(raw, &cl, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		return nil
	}
	return cl.Messages
}

func (s *Store) setCookie(c echo.Context, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
