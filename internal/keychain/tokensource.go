package keychain

import (
	"fmt"

	"golang.org/x/oauth2"
)

// storedTokenSource reads the access token from the vault on every call.
type storedTokenSource struct {
	vault     *Vault
	account   string
	tokenType string
}

// TokenSource returns an oauth2.TokenSource backed by the token stored for account.
// The returned tokens carry no expiry; a new value is picked up after the next Save.
func (v *Vault) TokenSource(account, tokenType string) oauth2.TokenSource {
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return &storedTokenSource{vault: v, account: account, tokenType: tokenType}
}

// Token implements oauth2.TokenSource.
func (s *storedTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.vault.Read(s.account)
	if err != nil {
		return nil, fmt.Errorf("failed to read access token for %s: %w", s.account, err)
	}
	if token == "" {
		return nil, fmt.Errorf("failed to read access token for %s: %w", s.account, ErrNoPassword)
	}

	return &oauth2.Token{
		AccessToken: token,
		TokenType:   s.tokenType,
	}, nil
}
