// Package iterable is the adapter for the remote marketing-automation API.
// It owns the wire formats, the credential check and the E.164 phone
// heuristic applied before transmission.
package iterable

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"offhire-sms-gateway/internal/config"
)

// ErrMissingAPIKey indicates the service credential is not configured. It is
// a configuration error, distinct from a remote-service rejection.
var ErrMissingAPIKey = errors.New("ITERABLE_API_KEY is not configured")

// APIError is a non-2xx response from the remote service. Message carries the
// remote "msg" payload when one was decodable.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	Config *config.Config
}

func NewClient(cfg *config.Config) *Client {
	return &Client{Config: cfg}
}

// --- Wire Structures ---

// User is one subscriber row as the remote user store expects it.
type User struct {
	Email        string            `json:"email"`
	DataFields   map[string]string `json:"dataFields,omitempty"`
	PreferUserID bool              `json:"preferUserId"`
}

// List is a remote contact list.
type List struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type createListRequest struct {
	Name string `json:"name"`
}

type createListResponse struct {
	ListID int64 `json:"listId"`
}

type bulkUpdateRequest struct {
	Users []User `json:"users"`
}

type subscriber struct {
	Email string `json:"email"`
}

type subscribeRequest struct {
	ListID      int64        `json:"listId"`
	Subscribers []subscriber `json:"subscribers"`
}

type listsResponse struct {
	Lists []List `json:"lists"`
}

type smsTargetRequest struct {
	RecipientEmail string            `json:"recipientEmail"`
	DataFields     map[string]string `json:"dataFields,omitempty"`
}

type workflowTriggerRequest struct {
	WorkflowID int64             `json:"workflowId"`
	Email      string            `json:"email"`
	DataFields map[string]string `json:"dataFields,omitempty"`
}

type campaignTriggerRequest struct {
	CampaignID     int64             `json:"campaignId"`
	RecipientEmail string            `json:"recipientEmail"`
	DataFields     map[string]string `json:"dataFields,omitempty"`
}

// --- Helper Functions ---

func (c *Client) sendRequest(method, path string, body interface{}) ([]byte, error) {
	if c.Config.IterableAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.Config.IterableAPIURL+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Api-Key", c.Config.IterableAPIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return respBody, remoteError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// remoteError surfaces the remote "msg" field verbatim when present, else a
// generic status-code message.
func remoteError(status int, body []byte) *APIError {
	var payload struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Msg != "" {
		return &APIError{Status: status, Message: payload.Msg}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("HTTP error: %d", status)}
}

// --- Gateway Methods ---

// CreateList creates a remote contact list and returns its id.
func (c *Client) CreateList(name string) (int64, error) {
	resp, err := c.sendRequest("POST", "/lists", createListRequest{Name: name})
	if err != nil {
		return 0, err
	}

	var result createListResponse
	if err := json.Unmarshal(resp, &result); err != nil {
		return 0, err
	}
	return result.ListID, nil
}

// BulkUpsertUsers upserts every user into the remote user store in one call.
func (c *Client) BulkUpsertUsers(users []User) error {
	_, err := c.sendRequest("POST", "/users/bulkUpdate", bulkUpdateRequest{Users: users})
	return err
}

// Subscribe adds the given emails to an existing list in one call.
func (c *Client) Subscribe(listID int64, emails []string) error {
	subs := make([]subscriber, 0, len(emails))
	for _, email := range emails {
		subs = append(subs, subscriber{Email: email})
	}
	_, err := c.sendRequest("POST", "/lists/subscribe", subscribeRequest{ListID: listID, Subscribers: subs})
	return err
}

// GetLists fetches all remote contact lists.
func (c *Client) GetLists() ([]List, error) {
	resp, err := c.sendRequest("GET", "/lists", nil)
	if err != nil {
		return nil, err
	}

	var result listsResponse
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, err
	}
	if result.Lists == nil {
		result.Lists = []List{}
	}
	return result.Lists, nil
}

// SendMessage dispatches a single resolved message. The remote service
// addresses SMS by email, so rows without one get a placeholder address
// derived from the phone digits.
func (c *Client) SendMessage(phone, message string, fields map[string]string) error {
	recipient := fields["email"]
	if recipient == "" {
		recipient = digitsOf(phone) + "@sms.placeholder.com"
	}

	dataFields := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		dataFields[k] = v
	}
	dataFields["smsMessage"] = message

	_, err := c.sendRequest("POST", "/sms/target", smsTargetRequest{
		RecipientEmail: recipient,
		DataFields:     dataFields,
	})
	return err
}

// TriggerWorkflow starts a remote workflow for one subscriber.
func (c *Client) TriggerWorkflow(workflowID int64, email string, fields map[string]string) error {
	_, err := c.sendRequest("POST", "/workflows/triggerWorkflow", workflowTriggerRequest{
		WorkflowID: workflowID,
		Email:      email,
		DataFields: fields,
	})
	return err
}

// TriggerCampaign sends an existing campaign to one subscriber.
func (c *Client) TriggerCampaign(campaignID int64, email string, fields map[string]string) error {
	_, err := c.sendRequest("POST", "/campaigns/trigger", campaignTriggerRequest{
		CampaignID:     campaignID,
		RecipientEmail: email,
		DataFields:     fields,
	})
	return err
}

func digitsOf(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
