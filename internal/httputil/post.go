// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides small HTTP helpers used by the AI gateway.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// PostJSON marshals payload and sends it as a JSON POST. When bearer is
// non-empty it is sent as an Authorization: Bearer token. The caller owns
// the response body.
func PostJSON(ctx context.Context, client *http.Client, url, bearer string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return client.Do(req)
}

// ReadBody drains a response body and returns it as a string. Read errors
// yield whatever was read before the error.
func ReadBody(resp *http.Response) string {
	data, _ := io.ReadAll(resp.Body)
	return string(data)
}
