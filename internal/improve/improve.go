// Package improve provides network-backed text improvement with a
// guaranteed local fallback.
//
// The remote call is a best-effort enhancement: any failure, including a
// missing or malformed credential, falls through to the deterministic
// rewrite engine. Improve always returns usable text; the remote path's
// absence never changes the return type.
package improve

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/poyhsiao/notekeep/internal/logging"
	"github.com/poyhsiao/notekeep/internal/rewrite"
)

// Provider represents supported improvement providers.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

// Config holds improvement service configuration. A zero Config means
// local-only rewriting.
type Config struct {
	Provider    Provider `json:"provider"`
	APIEndpoint string   `json:"api_endpoint"`
	APIKey      string   `json:"api_key"`
	ModelName   string   `json:"model_name"`
	MaxTokens   int      `json:"max_tokens"`
}

// Improver runs the two-stage improve strategy.
type Improver struct {
	config     *Config
	httpClient *http.Client
	fallback   *rewrite.Engine
}

// NewImprover creates an Improver. config may be nil for local-only use.
func NewImprover(config *Config) *Improver {
	return &Improver{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		fallback: rewrite.NewEngine(),
	}
}

// actionPrompts instructs the remote model per rewrite action.
var actionPrompts = map[rewrite.Action]string{
	rewrite.ActionGrammar:      "Fix the spelling, grammar and punctuation of the following text. Respond with the corrected text only.",
	rewrite.ActionProfessional: "Rewrite the following text in a professional tone. Respond with the rewritten text only.",
	rewrite.ActionSimplify:     "Simplify the following text using plain, everyday words. Respond with the simplified text only.",
	rewrite.ActionExpand:       "Expand the following text with one or two additional sentences. Respond with the expanded text only.",
	rewrite.ActionReformat:     "Reformat the following text as structured markdown. Respond with the markdown only.",
}

// Improve returns improved text for the given action. It tries the remote
// provider first (bounded by the client timeout) and falls back to the
// local rewrite engine on any failure.
func (im *Improver) Improve(text string, action rewrite.Action) string {
	if text == "" {
		return text
	}

	improved, err := im.remoteImprove(text, action)
	if err != nil {
		logging.Debug("Remote improvement unavailable, using local rewrite",
			map[string]interface{}{"action": string(action), "reason": err.Error()})
		return im.fallback.Rewrite(text, action)
	}
	return improved
}

// Local applies only the deterministic local engine.
func (im *Improver) Local(text string, action rewrite.Action) string {
	return im.fallback.Rewrite(text, action)
}

// remoteImprove performs the provider call.
func (im *Improver) remoteImprove(text string, action rewrite.Action) (string, error) {
	if im.config == nil || im.config.Provider == "" {
		return "", fmt.Errorf("no improvement provider configured")
	}
	prompt, ok := actionPrompts[action]
	if !ok {
		return "", fmt.Errorf("unsupported action: %s", action)
	}

	switch im.config.Provider {
	case ProviderOpenAI:
		return im.improveOpenAI(prompt, text)
	case ProviderOllama:
		return im.improveOllama(prompt, text)
	default:
		return "", fmt.Errorf("unsupported provider: %s", im.config.Provider)
	}
}

// =====================================================
// OpenAI-compatible Integration
// =====================================================

type openAIRequest struct {
	Model     string    `json:"model"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (im *Improver) improveOpenAI(prompt, text string) (string, error) {
	if im.config.APIKey == "" {
		return "", fmt.Errorf("missing API key")
	}

	reqBody := openAIRequest{
		Model: im.config.ModelName,
		Messages: []message{
			{Role: "system", Content: prompt},
			{Role: "user", Content: text},
		},
		MaxTokens: im.config.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", im.config.APIEndpoint+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+im.config.APIKey)

	resp, err := im.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("improvement API returned %d: %s", resp.StatusCode, string(body))
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}
	if openAIResp.Error != nil {
		return "", fmt.Errorf("improvement API error: %s", openAIResp.Error.Message)
	}
	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from improvement API")
	}
	return openAIResp.Choices[0].Message.Content, nil
}

// =====================================================
// Ollama Integration (Local model)
// =====================================================

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

func (im *Improver) improveOllama(prompt, text string) (string, error) {
	reqBody := ollamaRequest{
		Model:  im.config.ModelName,
		Prompt: prompt + "\n\n" + text,
		Stream: false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", im.config.APIEndpoint+"/api/generate", bytes.NewReader(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := im.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama returned %d: %s", resp.StatusCode, string(body))
	}

	var ollamaResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return "", err
	}
	if ollamaResp.Error != "" {
		return "", fmt.Errorf("ollama error: %s", ollamaResp.Error)
	}
	return ollamaResp.Response, nil
}
