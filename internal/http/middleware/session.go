package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khauvukhanh/web-clot/internal/api"
)

// SessionCfg configures the token cookie. The cookie holds the bearer
// token for the storefront API, HMAC-signed so a tampered value is
// treated as no session. The token itself is opaque: it is never
// parsed, refreshed or expiry-checked here; the API rejecting it is
// the only signal.
type SessionCfg struct {
	Secret     []byte
	CookieName string
	Secure     bool
	TTL        time.Duration
}

const ctxKeyCredentials = "credentials"

// Session resolves the request's API credentials from the cookie and
// stores them in context. Downstream code receives credentials
// explicitly; nothing reads the cookie again.
func Session(cfg SessionCfg) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := c.Cookie(cfg.CookieName)
		if err != nil || v == "" {
			c.Next()
			return
		}

		token, ok := decodeSessionValue(cfg.Secret, v)
		if !ok {
			// Bad signature or shape: clear it so we don't retry forever.
			clearCookie(c, cfg.CookieName, cfg.Secure)
			c.Next()
			return
		}

		c.Set(ctxKeyCredentials, api.Credentials{Token: token})
		c.Next()
	}
}

// Credentials returns the request's API credentials, if a session exists.
func Credentials(c *gin.Context) (api.Credentials, bool) {
	if v, ok := c.Get(ctxKeyCredentials); ok {
		if creds, ok := v.(api.Credentials); ok && creds.Token != "" {
			return creds, true
		}
	}
	return api.Credentials{}, false
}

// SetSessionCookie stores the bearer token in the signed session cookie.
func SetSessionCookie(c *gin.Context, cfg SessionCfg, token string) {
	val := encodeSessionValue(cfg.Secret, token)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, val, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)
}

// ClearSessionCookie is logout: drop the token, nothing else to revoke
// locally.
func ClearSessionCookie(c *gin.Context, cfg SessionCfg) {
	clearCookie(c, cfg.CookieName, cfg.Secure)
}

func clearCookie(c *gin.Context, name string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", secure, true)
}

// value format: base64(token).base64(hmac)
func encodeSessionValue(secret []byte, token string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(token))
	return payload + "." + signPayload(secret, payload)
}

func decodeSessionValue(secret []byte, v string) (string, bool) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok {
		return "", false
	}
	if !hmac.Equal([]byte(signPayload(secret, payload)), []byte(sig)) {
		return "", false
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil || len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

func signPayload(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
