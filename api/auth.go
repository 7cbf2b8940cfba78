package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"bakeryctl/domain"
)

// Login authenticates with form-urlencoded credentials and, on success,
// re-queries the current-user endpoint to obtain the authenticated identity.
// On failure the server's message is surfaced verbatim when one exists.
func (c *Client) Login(ctx context.Context, username, password string) (domain.User, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	resp, err := c.do(ctx, http.MethodPost, "/login",
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return domain.User{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return domain.User{}, domain.NewLoginFailedError(errorMessage(b))
	}

	user, err := c.CurrentUser(ctx)
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// CurrentUser queries the session's identity. A non-2xx response or an
// unauthenticated payload both come back as AuthRequired.
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/current", nil, &user); err != nil {
		return domain.User{}, err
	}
	if !user.Authenticated {
		return domain.User{}, domain.NewAuthRequiredError()
	}
	return user, nil
}

// Logout invalidates the backend session.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/logout", nil, nil)
}
