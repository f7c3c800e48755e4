package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// TokenStore persists the one durable piece of client state: the JWT string.
// It is a single file under the config dir; nothing else is ever stored.
type TokenStore struct {
	dir string
}

func NewTokenStore(dir string) TokenStore {
	return TokenStore{dir: dir}
}

func (t TokenStore) path() string {
	return filepath.Join(t.dir, "token")
}

// Token returns the persisted token, or ok=false when none is stored.
func (t TokenStore) Token() (string, bool) {
	b, err := os.ReadFile(t.path())
	if err != nil {
		return "", false
	}
	tok := strings.TrimSpace(string(b))
	if tok == "" {
		return "", false
	}
	return tok, true
}

// Store persists the token string. Side effect only; no validation.
func (t TokenStore) Store(token string) error {
	if err := os.MkdirAll(t.dir, 0o700); err != nil {
		return err
	}
	f, err := os.CreateTemp(t.dir, ".token-*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)
	if _, err := f.WriteString(strings.TrimSpace(token) + "\n"); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, t.path())
}

// Clear removes the persisted token. A missing file is not an error.
func (t TokenStore) Clear() error {
	err := os.Remove(t.path())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Identity is the client-side belief about who the token belongs to.
type Identity struct {
	SubjectID string
}

// DecodeIdentity extracts the subject id from a JWT payload without verifying
// the signature. Verification is the server's job; this result only decides
// which controls to render, never what the server permits. Any parse trouble
// means "no identity".
func DecodeIdentity(token string) (Identity, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, false
	}
	// Backend versions have used different claim names for the user id.
	for _, key := range []string{"_id", "userId", "sub"} {
		if v, ok := claims[key].(string); ok && strings.TrimSpace(v) != "" {
			return Identity{SubjectID: strings.TrimSpace(v)}, true
		}
	}
	return Identity{}, false
}
