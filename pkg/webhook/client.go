package webhook

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client posts reminder notifications to a configured webhook endpoint
// such as ntfy, Gotify, or a chat bridge that accepts JSON.
type Client struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient *http.Client
}

type Notification struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	TaskID   string `json:"task_id"`
	DueDate  string `json:"due_date"`
	Type     string `json:"type,omitempty"`   // popup, sound, both
	Sound    string `json:"sound,omitempty"`
	Volume   int    `json:"volume,omitempty"`
	Duration int    `json:"duration,omitempty"`
}

type NotifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewClient(baseURL, username, password string) *Client {
	return &Client{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Send delivers one notification.
func (c *Client) Send(notification Notification) (*NotifyResponse, error) {
	jsonData, err := json.Marshal(notification)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification: %w", err)
	}

	url := fmt.Sprintf("%s/notify", c.BaseURL)

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.Username != "" {
		auth := base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.Password))
		req.Header.Set("Authorization", "Basic "+auth)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("webhook returned %d: %s", resp.StatusCode, body)
	}

	var response NotifyResponse
	if len(body) > 0 {
		if err := json.Unmarshal(body, &response); err != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return &response, nil
}
