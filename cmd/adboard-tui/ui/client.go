package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"adboard/app/dto"
)

// Client is a thin wrapper over the adboard HTTP API. The token obtained at
// login rides along on every later call.
type Client struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, http: &http.Client{Timeout: 10 * time.Second}}
}

func (c *Client) do(method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequest(method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) Login(name, password string) error {
	var tok dto.TokenResponse
	if err := c.do(http.MethodPost, "/login", dto.LoginRequest{Name: name, Password: password}, &tok); err != nil {
		return err
	}
	c.Token = tok.AccessToken
	return nil
}

func (c *Client) ListAdvertisements() ([]dto.AdvertisementResponse, error) {
	var ads []dto.AdvertisementResponse
	err := c.do(http.MethodGet, "/advertisements", nil, &ads)
	return ads, err
}

func (c *Client) GetAdvertisement(id uint) (*dto.AdvertisementResponse, error) {
	var ad dto.AdvertisementResponse
	if err := c.do(http.MethodGet, fmt.Sprintf("/advertisements/%d", id), nil, &ad); err != nil {
		return nil, err
	}
	return &ad, nil
}

func (c *Client) DeleteAdvertisement(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/advertisements/%d", id), nil, nil)
}

func (c *Client) Me() (*dto.UserResponse, error) {
	var u dto.UserResponse
	if err := c.do(http.MethodGet, "/users/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
