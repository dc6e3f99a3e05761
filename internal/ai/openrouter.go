package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrMissingAPIKey means the generation credential was never configured.
	ErrMissingAPIKey = errors.New("generation API key is not configured")
	// ErrEmptyCompletion means the endpoint answered 2xx with no usable text.
	ErrEmptyCompletion = errors.New("no description generated")
)

// Metadata is the job context a description is generated from. Title is
// required; everything else is optional color.
type Metadata struct {
	Title      string
	Location   string
	Experience string
	Salary     string
	Positions  int
	ImageURL   string
}

// Generator produces job-description prose from job metadata. A single
// synchronous attempt; no retries, no streaming.
type Generator interface {
	GenerateJobDescription(ctx context.Context, meta Metadata) (string, error)
}

// Chat request/response shapes for an OpenAI-compatible /chat/completions.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
	httpClient *http.Client
}

var _ Generator = (*Client)(nil)

func NewClient(apiKey, baseURL, model string) *Client {
	return &Client{
		apiKey:    apiKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		model:     model,
		maxTokens: 1024,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateJobDescription issues one chat-completions call and returns the
// trimmed text of the first choice.
func (c *Client) GenerateJobDescription(ctx context.Context, meta Metadata) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if meta.Title == "" {
		return "", errors.New("title is required")
	}

	system, prompt, temperature := buildPrompt(meta)

	reqBody := chatRequest{
		Model:       c.model,
		Temperature: temperature,
		MaxTokens:   c.maxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call generation endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// Keep the raw body for diagnostics; callers only see the status.
		errBody, _ := io.ReadAll(resp.Body)
		log.Printf("Generation endpoint error (%d): %s", resp.StatusCode, string(errBody))
		return "", fmt.Errorf("generation endpoint returned HTTP %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(cr.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}

// buildPrompt picks the prompt variant: a short title-only prompt when no
// extra metadata was supplied, otherwise the detailed variant that folds in
// location, experience, salary, headcount and the image reference.
func buildPrompt(meta Metadata) (system, prompt string, temperature float64) {
	if meta.Location == "" && meta.Experience == "" && meta.Salary == "" &&
		meta.Positions <= 1 && meta.ImageURL == "" {
		system = "You are an HR assistant writing concise, clear job descriptions with responsibilities and requirements."
		prompt = fmt.Sprintf(
			"Write a compelling job description for the role: %s. Include role overview, responsibilities, required skills, and application steps.",
			meta.Title,
		)
		return system, prompt, 0.6
	}

	system = "You are an HR assistant who writes engaging and accurate job descriptions."

	var sb strings.Builder
	sb.WriteString("You are an HR assistant who writes job descriptions based on a company's provided image and job details.\n\n")
	sb.WriteString("Based on the visual content and the job details below:\n")
	fmt.Fprintf(&sb, "- Job Title: %s\n", meta.Title)
	fmt.Fprintf(&sb, "- Location: %s\n", orDefault(meta.Location, "Not specified"))
	fmt.Fprintf(&sb, "- Experience Required: %s\n", orDefault(meta.Experience, "Any"))
	fmt.Fprintf(&sb, "- Salary Range: %s\n", orDefault(meta.Salary, "Negotiable"))
	positions := meta.Positions
	if positions <= 0 {
		positions = 1
	}
	fmt.Fprintf(&sb, "- Open Positions: %d\n", positions)
	if meta.ImageURL != "" {
		fmt.Fprintf(&sb, "- Company Image: %s\n", meta.ImageURL)
	}
	sb.WriteString("\nWrite a detailed, professional, and visually inspired job description including:\n")
	sb.WriteString("- Role Overview\n- Responsibilities\n- Required Skills\n")

	return system, sb.String(), 0.7
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
