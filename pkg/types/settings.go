// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AISettings is the connection bundle for the AI gateway. It is passed
// unchanged into every gateway call and persisted separately from the
// paper collection. The only validation is a presence check at call time.
type AISettings struct {
	// URL is the base endpoint of an OpenAI-compatible API
	// (e.g. "https://api.openai.com/v1").
	URL string `json:"url" yaml:"url"`

	// Key is the bearer token sent with every request.
	Key string `json:"key" yaml:"key"`

	// Model is the model identifier requested from the endpoint.
	Model string `json:"model" yaml:"model"`
}
