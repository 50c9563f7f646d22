package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/arthurdotwork/atrium/internal/domain"
	"github.com/google/uuid"
)

// renewalMargin is how long before expiry the token renewal is attempted.
const renewalMargin = time.Minute

// Client is the control-channel adapter. It implements the AuthGateway
// and RoomAPI contracts plus the thin roster, admin and file endpoints
// the feature modules need.
type Client struct {
	baseURL    string
	creds      domain.Credentials
	bus        domain.Bus
	httpClient *http.Client

	mu        sync.RWMutex
	token     domain.Token
	expiresIn time.Duration
	survey    *time.Timer
}

func NewClient(baseURL string, creds domain.Credentials, bus domain.Bus) *Client {
	return &Client{
		baseURL:    baseURL,
		creds:      creds,
		bus:        bus,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type authResponse struct {
	UserID    string `json:"userId"`
	Address   string `json:"address"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// Authenticate exchanges the credentials for a session token and the
// logged-in identity.
func (c *Client) Authenticate(ctx context.Context) (domain.AuthSession, error) {
	var res authResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/login", map[string]string{
		"username": c.creds.Username,
		"password": c.creds.Password,
	}, &res); err != nil {
		return domain.AuthSession{}, fmt.Errorf("login: %w", err)
	}

	session := domain.AuthSession{
		Identity: domain.Identity{UserID: res.UserID, Address: res.Address},
		Token:    domain.Token{Value: res.Token},
	}

	c.mu.Lock()
	c.token = session.Token
	c.expiresIn = time.Duration(res.ExpiresIn) * time.Second
	c.mu.Unlock()

	return session, nil
}

// Reconnect renews the session token over the control channel.
func (c *Client) Reconnect(ctx context.Context) (domain.Token, error) {
	var res authResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/token/renew", nil, &res); err != nil {
		return domain.Token{}, fmt.Errorf("renew: %w", err)
	}

	token := domain.Token{Value: res.Token}

	c.mu.Lock()
	c.token = token
	c.expiresIn = time.Duration(res.ExpiresIn) * time.Second
	c.mu.Unlock()

	return token, nil
}

// StartTokenSurvey schedules a renewal attempt shortly before the token
// expires. The outcome is reported on the bus: token-renewed on success,
// token-expired when renewal failed.
func (c *Client) StartTokenSurvey(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.survey != nil {
		c.survey.Stop()
	}

	delay := c.expiresIn - renewalMargin
	if delay < 0 {
		delay = 0
	}

	c.survey = time.AfterFunc(delay, func() {
		surveyCtx := context.WithoutCancel(ctx)

		if _, err := c.Reconnect(surveyCtx); err != nil {
			slog.ErrorContext(surveyCtx, "error renewing token", "error", err)
			c.bus.Publish(surveyCtx, domain.TokenExpired{})
			return
		}

		c.bus.Publish(surveyCtx, domain.TokenRenewed{})
	})
}

type memberPayload struct {
	UserID    string `json:"userId"`
	Privilege string `json:"privilege"`
	Status    string `json:"status"`
}

type roomPayload struct {
	ID          string            `json:"id"`
	Address     string            `json:"jid"`
	Name        string            `json:"name"`
	Description string            `json:"topic"`
	CustomData  map[string]string `json:"customData"`
	Members     []memberPayload   `json:"users"`
}

func (p roomPayload) toDomain() domain.Room {
	room := domain.Room{
		ID:          p.ID,
		Address:     p.Address,
		Name:        p.Name,
		Description: p.Description,
		CustomData:  p.CustomData,
	}

	for _, m := range p.Members {
		room.Members = append(room.Members, domain.Membership{
			MemberID: m.UserID,
			Role:     domain.MemberRole(m.Privilege),
			Status:   domain.MembershipStatus(m.Status),
		})
	}

	return room
}

func (c *Client) CreateRoom(ctx context.Context, name, description string, withHistory bool) (domain.Room, error) {
	var res roomPayload
	if err := c.do(ctx, http.MethodPost, "/api/v1/rooms", map[string]any{
		"name":        name,
		"topic":       description,
		"withHistory": withHistory,
	}, &res); err != nil {
		return domain.Room{}, fmt.Errorf("create room: %w", err)
	}

	return res.toDomain(), nil
}

func (c *Client) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	var res roomPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/rooms/"+id, nil, &res); err != nil {
		return domain.Room{}, fmt.Errorf("get room: %w", err)
	}

	return res.toDomain(), nil
}

func (c *Client) GetRooms(ctx context.Context) ([]domain.Room, error) {
	var res []roomPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/rooms", nil, &res); err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}

	rooms := make([]domain.Room, 0, len(res))
	for _, p := range res {
		rooms = append(rooms, p.toDomain())
	}

	return rooms, nil
}

func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/rooms/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	return nil
}

func (c *Client) InviteMember(ctx context.Context, contactID, roomID string, asModerator, withInvitation bool, reason string) error {
	if err := c.do(ctx, http.MethodPost, "/api/v1/rooms/"+roomID+"/invitations", map[string]any{
		"userId":         contactID,
		"privilege":      privilege(asModerator),
		"withInvitation": withInvitation,
		"reason":         reason,
	}, nil); err != nil {
		return fmt.Errorf("invite member: %w", err)
	}

	return nil
}

func (c *Client) CancelInvitation(ctx context.Context, contactID, roomID string) (domain.Room, error) {
	var res roomPayload
	if err := c.do(ctx, http.MethodDelete, "/api/v1/rooms/"+roomID+"/invitations/"+contactID, nil, &res); err != nil {
		return domain.Room{}, fmt.Errorf("cancel invitation: %w", err)
	}

	return res.toDomain(), nil
}

func (c *Client) UnsubscribeMember(ctx context.Context, contactID, roomID string) (domain.Room, error) {
	var res roomPayload
	if err := c.do(ctx, http.MethodDelete, "/api/v1/rooms/"+roomID+"/members/"+contactID, nil, &res); err != nil {
		return domain.Room{}, fmt.Errorf("unsubscribe member: %w", err)
	}

	return res.toDomain(), nil
}

func (c *Client) LeaveRoom(ctx context.Context, roomID string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/rooms/"+roomID+"/members/me", nil, nil); err != nil {
		return fmt.Errorf("leave room: %w", err)
	}

	return nil
}

func (c *Client) AcceptInvitation(ctx context.Context, roomID string) error {
	if err := c.do(ctx, http.MethodPut, "/api/v1/rooms/"+roomID+"/invitations/me", map[string]string{
		"status": "accepted",
	}, nil); err != nil {
		return fmt.Errorf("accept invitation: %w", err)
	}

	return nil
}

func (c *Client) DeclineInvitation(ctx context.Context, roomID string) error {
	if err := c.do(ctx, http.MethodPut, "/api/v1/rooms/"+roomID+"/invitations/me", map[string]string{
		"status": "declined",
	}, nil); err != nil {
		return fmt.Errorf("decline invitation: %w", err)
	}

	return nil
}

func (c *Client) SetCustomData(ctx context.Context, roomID string, data map[string]string) (map[string]string, error) {
	var res struct {
		CustomData map[string]string `json:"customData"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/v1/rooms/"+roomID+"/custom-data", data, &res); err != nil {
		return nil, fmt.Errorf("set custom data: %w", err)
	}

	return res.CustomData, nil
}

type contactPayload struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Address     string `json:"jid"`
}

// GetRoster returns the identity/contact directory of the logged-in user.
func (c *Client) GetRoster(ctx context.Context) ([]domain.Contact, error) {
	var res []contactPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/contacts", nil, &res); err != nil {
		return nil, fmt.Errorf("get roster: %w", err)
	}

	contacts := make([]domain.Contact, 0, len(res))
	for _, p := range res {
		contacts = append(contacts, domain.Contact{ID: p.ID, DisplayName: p.DisplayName, Address: p.Address})
	}

	return contacts, nil
}

// CreateUser provisions a user through the administrative surface.
func (c *Client) CreateUser(ctx context.Context, username, displayName string) (domain.Contact, error) {
	var res contactPayload
	if err := c.do(ctx, http.MethodPost, "/api/v1/admin/users", map[string]string{
		"username":    username,
		"displayName": displayName,
	}, &res); err != nil {
		return domain.Contact{}, fmt.Errorf("create user: %w", err)
	}

	return domain.Contact{ID: res.ID, DisplayName: res.DisplayName, Address: res.Address}, nil
}

// DeleteUser removes a user through the administrative surface.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/admin/users/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

// UploadFile pushes a file attached to a room and returns its id.
func (c *Client) UploadFile(ctx context.Context, roomID, name string, data []byte) (string, error) {
	var res struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/rooms/"+roomID+"/files", map[string]any{
		"name": name,
		"data": data,
	}, &res); err != nil {
		return "", fmt.Errorf("upload file: %w", err)
	}

	return res.ID, nil
}

// DownloadFile fetches a previously uploaded file.
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	var res struct {
		Data []byte `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/files/"+fileID, nil, &res); err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}

	return res.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	c.mu.RLock()
	if c.token.Value != "" {
		req.Header.Set("Authorization", "Bearer "+c.token.Value)
	}
	c.mu.RUnlock()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s %s: status %d: %w", method, path, res.StatusCode, domain.ErrRemoteFailure)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}

func privilege(asModerator bool) string {
	if asModerator {
		return string(domain.RoleModerator)
	}

	return string(domain.RoleMember)
}
