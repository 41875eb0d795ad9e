package volunteer

import (
	"context"
	"net/http"
)

// View identifies which workspace the authenticated role is entitled to.
type View string

const (
	ViewUnauthenticated View = "unauthenticated"
	ViewVolunteer       View = "volunteer"
	ViewAdmin           View = "admin"
)

type authPayload struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	User         *User  `json:"user"`
}

// Login authenticates with email and password. On success the client holds
// the session token and subsequent calls are authenticated.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var payload authPayload
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &payload)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = payload.Token
	c.currentUser = payload.User
	c.mu.Unlock()

	return payload.User, nil
}

// Register creates a new account and logs it in.
func (c *Client) Register(ctx context.Context, name, email, password string) (*User, error) {
	var payload authPayload
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &payload)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = payload.Token
	c.currentUser = payload.User
	c.mu.Unlock()

	return payload.User, nil
}

// Logout discards the session. It is purely client-side: the token simply
// stops being presented. Requests still in flight are superseded; their
// results come back as ErrStaleResult rather than being applied.
func (c *Client) Logout() {
	c.mu.Lock()
	c.token = ""
	c.currentUser = nil
	c.mu.Unlock()

	c.discardPending()
}

// expireSession clears session state and fires the expiry hook. Called on
// any 401 so the caller lands back at the login view.
func (c *Client) expireSession() {
	c.mu.Lock()
	hadSession := c.token != ""
	c.token = ""
	c.currentUser = nil
	hook := c.onSessionExpired
	c.mu.Unlock()

	c.discardPending()

	if hadSession && hook != nil {
		hook()
	}
}

// Token returns the current session token, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// CurrentUser returns the authenticated account, nil when logged out.
func (c *Client) CurrentUser() *User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.currentUser == nil {
		return nil
	}
	u := *c.currentUser
	return &u
}

// IsAuthenticated reports whether a session is active.
func (c *Client) IsAuthenticated() bool {
	return c.Token() != ""
}

// CurrentView derives the workspace from the session state. There is no
// intermediate state: a session is either absent, a volunteer's, or an
// admin's.
func (c *Client) CurrentView() View {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch {
	case c.token == "" || c.currentUser == nil:
		return ViewUnauthenticated
	case c.currentUser.Role == "admin":
		return ViewAdmin
	default:
		return ViewVolunteer
	}
}

// GetProfile fetches the authenticated account's profile. The cached
// identity is only refreshed while the session that issued the request is
// still the active one.
func (c *Client) GetProfile(ctx context.Context) (*User, error) {
	session := c.Token()

	var u User
	if err := c.doRequest(ctx, http.MethodGet, "/api/users/profile", nil, &u); err != nil {
		return nil, err
	}

	c.applyProfile(session, &u)
	return &u, nil
}

func (c *Client) applyProfile(session string, u *User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != "" && c.token == session {
		c.currentUser = u
	}
}

// UpdateProfile replaces the editable profile fields. Email cannot be
// changed; the server ignores any attempt.
func (c *Client) UpdateProfile(ctx context.Context, name, phone, address string) (*User, error) {
	session := c.Token()

	var u User
	err := c.doRequest(ctx, http.MethodPut, "/api/users/profile", map[string]string{
		"name":    name,
		"phone":   phone,
		"address": address,
	}, &u)
	if err != nil {
		return nil, err
	}

	c.applyProfile(session, &u)
	return &u, nil
}
