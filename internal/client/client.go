package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sammyshhilt/tgbot-service/internal/model"
)

// Client talks to the notification service over its REST surface. All durable
// state (users, notes) lives on that side; this side only translates calls.
type Client struct {
	base string
	http *http.Client
	log  *slog.Logger
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// CreateUser registers a Telegram user with the notification service.
func (c *Client) CreateUser(ctx context.Context, id int64, nickname string) error {
	user := model.UserRef{ID: id, Nickname: nickname}
	c.log.Debug("notification service call", "method", "CreateUser", "user", user)
	err := c.do(ctx, http.MethodPost, "/users", user, nil)
	c.log.Debug("notification service result", "method", "CreateUser", "err", err)
	return err
}

// DeleteUser removes a user by nickname. A missing user maps to
// model.ErrNotFound.
func (c *Client) DeleteUser(ctx context.Context, nickname string) error {
	c.log.Debug("notification service call", "method", "DeleteUser", "nickname", nickname)
	err := c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(nickname), nil, nil)
	c.log.Debug("notification service result", "method", "DeleteUser", "err", err)
	return err
}

// CreateNotification stores a note and returns the stored copy.
func (c *Client) CreateNotification(ctx context.Context, n model.Notification) (model.Notification, error) {
	c.log.Debug("notification service call", "method", "CreateNotification", "day", n.Day, "userId", n.UserID)
	var stored model.Notification
	err := c.do(ctx, http.MethodPost, "/", n, &stored)
	c.log.Debug("notification service result", "method", "CreateNotification", "err", err)
	return stored, err
}

// ListNotifications returns every note belonging to userID.
func (c *Client) ListNotifications(ctx context.Context, userID int64) ([]model.Notification, error) {
	var notes []model.Notification
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/user/%d", userID), nil, &notes)
	return notes, err
}

// SearchNotifications runs a free-text search. An empty day leaves the day
// filter off.
func (c *Client) SearchNotifications(ctx context.Context, text, day string) ([]model.Notification, error) {
	q := url.Values{}
	q.Set("text", text)
	q.Set("day", day)
	var notes []model.Notification
	err := c.do(ctx, http.MethodGet, "/search?"+q.Encode(), nil, &notes)
	return notes, err
}

// SearchByUserAndDay returns userID's notes for one day of the month.
func (c *Client) SearchByUserAndDay(ctx context.Context, userID int64, day int) ([]model.Notification, error) {
	var notes []model.Notification
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/user/%d/day/%d", userID, day), nil, &notes)
	return notes, err
}

// ListUsersExcluding returns all registered users except the requester, for
// the admin deletion picker.
func (c *Client) ListUsersExcluding(ctx context.Context, requesterID int64) ([]model.UserRef, error) {
	q := url.Values{}
	q.Set("requesterId", strconv.FormatInt(requesterID, 10))
	var users []model.UserRef
	err := c.do(ctx, http.MethodGet, "/users/all?"+q.Encode(), nil, &users)
	return users, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, model.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
