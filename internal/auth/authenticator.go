package auth

import (
	"context"
	"errors"
	"strings"

	"access_gate/internal/store"
	"access_gate/internal/token"
)

// Authentication failure classes. All of them surface as the same 401
// externally; the split exists for logging and tests only.
var (
	// ErrCredentialsMissing: no Authorization header at all.
	ErrCredentialsMissing = errors.New("authentication credentials were not provided")
	// ErrHeaderMalformed: header present but not "Bearer <token>".
	ErrHeaderMalformed = errors.New("invalid authorization header format")
	// ErrInvalidToken covers bad signatures, expiry, unknown and
	// deactivated identities alike, so responses never reveal whether an
	// account exists.
	ErrInvalidToken = errors.New("invalid token")
)

const bearerPrefix = "Bearer "

// Authenticator turns a raw Authorization header value into an active
// identity. Identity state is re-read from the store on every call; a
// token stays structurally valid for its whole 24h window, so
// deactivation must take effect here, not at issuance.
type Authenticator struct {
	codec      *token.Codec
	identities store.IdentityStore
}

func NewAuthenticator(codec *token.Codec, identities store.IdentityStore) *Authenticator {
	return &Authenticator{codec: codec, identities: identities}
}

func (a *Authenticator) Authenticate(ctx context.Context, header string) (*store.Identity, error) {
	if header == "" {
		return nil, ErrCredentialsMissing
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, ErrHeaderMalformed
	}

	raw := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	claims, err := a.codec.Verify(raw)
	if err != nil {
		return nil, ErrInvalidToken
	}

	ident, err := a.identities.FindActiveByID(ctx, claims.UserID)
	if err != nil {
		// Store faults collapse into the same class as "not found":
		// the authentication boundary fails closed, never 500s.
		return nil, ErrInvalidToken
	}
	return ident, nil
}
