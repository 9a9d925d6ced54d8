package keychain

import "errors"

// GoogleAccessToken is the account holding the Google OAuth access token.
const GoogleAccessToken = "googleAccessToken"

// Result is the outcome of a lookup. Callers decide how to collapse a failure.
type Result struct {
	Token string
	Err   error
}

// Or returns the token, or def when the lookup failed.
func (r Result) Or(def string) string {
	if r.Err != nil {
		return def
	}
	return r.Token
}

// Lookup reads account without deciding what a failure means.
func (v *Vault) Lookup(account string) Result {
	token, err := v.Read(account)
	return Result{Token: token, Err: err}
}

// TokenOr returns the stored token for account, or def on any failure.
// Failures other than a missing entry are logged at warn level.
func (v *Vault) TokenOr(account, def string) string {
	r := v.Lookup(account)
	if r.Err != nil && !errors.Is(r.Err, ErrNoPassword) {
		v.logger.Warn("token lookup failed, using default", "service", v.service, "account", account, "error", r.Err)
	}
	return r.Or(def)
}

// SaveQuietly stores token and reports whether it succeeded.
// The error is logged at warn level instead of returned.
func (v *Vault) SaveQuietly(account, token string) bool {
	if _, err := v.Save(account, token); err != nil {
		v.logger.Warn("token save failed", "service", v.service, "account", account, "error", err)
		return false
	}
	return true
}

// SaveGoogleAccess stores the Google access token on a best-effort basis.
func (v *Vault) SaveGoogleAccess(token string) bool {
	return v.SaveQuietly(GoogleAccessToken, token)
}

// GoogleAccess returns the Google access token, or "" when none can be read.
// Check for the empty string before using it.
func (v *Vault) GoogleAccess() string {
	return v.TokenOr(GoogleAccessToken, "")
}
