/*
 Ondemand, a controller for on-demand Minecraft servers.
 Copyright (C) 2024 Yannic Rieger <oss@76k.io>

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spacechunks/ondemand/controlplane/api"
	"github.com/spacechunks/ondemand/controlplane/backup"
	"github.com/spacechunks/ondemand/controlplane/lifecycle"
	"github.com/spacechunks/ondemand/controlplane/workflow"
)

// APIError is returned for every response of the control api that
// does not indicate success.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

type ActionResponse struct {
	Message      string `json:"message"`
	ExecutionArn string `json:"executionArn"`
}

// Client talks to the control api.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		http:     httpClient,
	}
}

func (c *Client) Start(ctx context.Context) (ActionResponse, error) {
	var resp ActionResponse
	if err := c.do(ctx, http.MethodPost, "/start", &resp); err != nil {
		return ActionResponse{}, err
	}
	return resp, nil
}

func (c *Client) Stop(ctx context.Context) (ActionResponse, error) {
	var resp ActionResponse
	if err := c.do(ctx, http.MethodPost, "/stop", &resp); err != nil {
		return ActionResponse{}, err
	}
	return resp, nil
}

func (c *Client) Status(ctx context.Context) (lifecycle.ServerStatus, error) {
	var resp lifecycle.ServerStatus
	if err := c.do(ctx, http.MethodGet, "/status", &resp); err != nil {
		return lifecycle.ServerStatus{}, err
	}
	return resp, nil
}

func (c *Client) Execution(ctx context.Context, id string) (workflow.Execution, error) {
	var resp workflow.Execution
	if err := c.do(ctx, http.MethodGet, "/executions/"+url.PathEscape(id), &resp); err != nil {
		return workflow.Execution{}, err
	}
	return resp, nil
}

func (c *Client) AbortExecution(ctx context.Context, id string) (workflow.Execution, error) {
	var resp workflow.Execution
	if err := c.do(ctx, http.MethodPost, "/executions/"+url.PathEscape(id)+"/abort", &resp); err != nil {
		return workflow.Execution{}, err
	}
	return resp, nil
}

func (c *Client) Backups(ctx context.Context) ([]backup.Backup, error) {
	var resp struct {
		Backups []backup.Backup `json:"backups"`
	}
	if err := c.do(ctx, http.MethodGet, "/backups", &resp); err != nil {
		return nil, err
	}
	return resp.Backups, nil
}

func (c *Client) Info(ctx context.Context) (api.Info, error) {
	var resp api.Info
	if err := c.do(ctx, http.MethodGet, "/info", &resp); err != nil {
		return api.Info{}, err
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		var body struct {
			Error string `json:"error"`
		}
		// the body is not guaranteed to be json, e.g. for proxy errors
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if body.Error == "" {
			body.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    body.Error,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
