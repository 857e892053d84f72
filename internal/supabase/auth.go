package supabase

import (
	"errors"
	"net/url"
)

// GoogleScopes are the scopes requested from the provider on sign-in.
const GoogleScopes = "email profile"

// SignInWithGoogle returns the authorize URL that starts the hosted
// third-party sign-in flow for Google. The caller redirects the browser
// there; the backend handles the provider callback and code exchange and
// then sends the user on to redirectTo with a session. Unlike the data
// operations this helper propagates its error directly instead of an
// envelope.
func (c *Client) SignInWithGoogle(redirectTo string) (string, error) {
	return c.AuthorizeURL("google", redirectTo, GoogleScopes)
}

// AuthorizeURL builds the authorize URL for any provider supported by the
// backend. The parameter names (provider, redirect_to, scopes) are fixed by
// the auth service.
func (c *Client) AuthorizeURL(provider, redirectTo, scopes string) (string, error) {
	if provider == "" {
		return "", errors.New("supabase: provider is required")
	}
	u, err := url.Parse(c.baseURL + "/auth/v1/authorize")
	if err != nil {
		return "", err
	}
	q := url.Values{}
	q.Set("provider", provider)
	if redirectTo != "" {
		q.Set("redirect_to", redirectTo)
	}
	if scopes != "" {
		q.Set("scopes", scopes)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
