package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/cookiesignature/pkg/signature"
)

const minSecretLength = 32

// Signer signs and verifies cookie values. *signature.Signer implements it.
type Signer interface {
	Sign(payload string, secret any) (string, error)
	Unsign(signed string, secret any) (payload string, ok bool, err error)
}

// interface guard
var _ Signer = (*signature.Signer)(nil)

type Manager struct {
	signer   Signer
	secrets  []string
	defaults Options
}

// New creates a Manager that signs with signature.Default().
func New(secrets []string, opts ...Option) (*Manager, error) {
	return NewWithSigner(signature.Default(), secrets, opts...)
}

// NewWithSigner creates a Manager that signs with s, or with
// signature.Default() when s is nil. The first secret signs new cookies and
// GetSigned accepts a value verified by any of them.
func NewWithSigner(s Signer, secrets []string, opts ...Option) (*Manager, error) {
	if sig, ok := s.(*signature.Signer); s == nil || (ok && sig == nil) {
		s = signature.Default()
	}

	secrets = slices.DeleteFunc(slices.Clone(secrets), func(v string) bool { return v == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	for i, secret := range secrets {
		if len(secret) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(secret), minSecretLength)
		}
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		signer:   s,
		secrets:  secrets,
		defaults: applyOptions(defaults, opts),
	}, nil
}

func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
	return nil
}

func (m *Manager) Get(r *http.Request, name string) (string, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return cookie.Value, nil
}

func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     m.defaults.Path,
		Domain:   m.defaults.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: m.defaults.HttpOnly,
		SameSite: m.defaults.SameSite,
		Secure:   m.defaults.Secure,
	})
}

// SetSigned signs value with the first secret and writes it. Payloads outside
// the cookie value alphabet are path-escaped; the signature is written as is.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	signed, err := m.signer.Sign(value, m.secrets[0])
	if err != nil {
		return fmt.Errorf("sign cookie %q: %w", name, err)
	}
	return m.Set(w, name, escapeValue(signed), opts...)
}

// GetSigned reads and verifies a signed cookie. The raw cookie value is
// checked first, so values signed elsewhere and stored unescaped are accepted;
// otherwise the path-unescaped value written by SetSigned is checked.
// It returns ErrInvalidSignature if no configured secret verifies it.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	raw, err := m.Get(r, name)
	if err != nil {
		return "", err
	}

	payload, err := m.verify(raw)
	if !errors.Is(err, ErrInvalidSignature) {
		return payload, err
	}

	signed, uerr := url.PathUnescape(raw)
	if uerr != nil || signed == raw {
		return "", ErrInvalidSignature
	}

	return m.verify(signed)
}

// escapeValue path-escapes v but keeps "/", which is valid in a cookie value
// and part of the base64 alphabet. A literal "%" is escaped to "%25", so every
// "%2F" in the escaped text comes from a "/".
func escapeValue(v string) string {
	return strings.ReplaceAll(url.PathEscape(v), "%2F", "/")
}

func (m *Manager) verify(signed string) (string, error) {
	for _, secret := range m.secrets {
		payload, ok, err := m.signer.Unsign(signed, secret)
		if err != nil {
			if errors.Is(err, signature.ErrInvalidSignedValue) {
				return "", ErrInvalidSignature
			}
			return "", err
		}
		if ok {
			return payload, nil
		}
	}
	return "", ErrInvalidSignature
}
