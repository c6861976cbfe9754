package journal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel    = "gemini-1.5-flash"

	maxRemoteFollowUps = 3
)

// ErrEmptyResponse is returned when the API answers without any text.
var ErrEmptyResponse = errors.New("gemini: empty response")

// GeminiConfig configures a Gemini client. Endpoint is the API root
// including its version segment, e.g. DefaultGeminiEndpoint.
type GeminiConfig struct {
	APIKey   string
	Model    string
	Endpoint string
	Client   *http.Client
}

// Gemini generates journal replies with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a client. Empty model and endpoint use the defaults.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultGeminiEndpoint
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 30 * time.Second}
	}

	base, version := splitEndpoint(cfg.Endpoint)
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.Client,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    base,
			APIVersion: version,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Gemini{client: client, model: cfg.Model}, nil
}

// splitEndpoint separates the trailing version segment from the API root.
func splitEndpoint(endpoint string) (base, version string) {
	endpoint = strings.TrimSuffix(endpoint, "/")
	i := strings.LastIndex(endpoint, "/")
	if i < 0 || strings.HasSuffix(endpoint[:i], "/") {
		return endpoint + "/", ""
	}
	return endpoint[:i+1], endpoint[i+1:]
}

// Generate sends prompt and returns the text of the first candidate.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Response asks for a supportive response to entry.
func (g *Gemini) Response(ctx context.Context, entry string) (string, error) {
	return g.Generate(ctx, responsePrompt(entry))
}

// FollowUps asks for up to three reflection questions about entry.
func (g *Gemini) FollowUps(ctx context.Context, entry string) ([]string, error) {
	text, err := g.Generate(ctx, followUpPrompt(entry))
	if err != nil {
		return nil, err
	}

	var qs []string
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		qs = append(qs, line)
		if len(qs) == maxRemoteFollowUps {
			break
		}
	}
	return qs, nil
}

func responsePrompt(entry string) string {
	return `You are a compassionate, empathetic AI therapist providing supportive responses to someone's journal entry. Your role is to:

1. Validate their emotions without judgment
2. Offer gentle insights and perspective
3. Use therapeutic techniques like reflection, reframing, and grounding
4. Be warm, caring, and professional
5. Encourage self-compassion and healthy coping
6. Use metaphors and gentle language when appropriate
7. Keep responses to 2-3 paragraphs maximum
8. If someone expresses crisis-level distress, gently suggest professional help while still being supportive

Guidelines:
- Never diagnose or provide medical advice
- Focus on emotional support and validation
- Use "I" statements to show empathy ("I can sense...", "I hear...")
- Ask gentle, open-ended questions to encourage reflection
- Acknowledge their courage in sharing
- Offer hope while validating current struggles

Here is their journal entry:

"` + entry + `"

Please provide a thoughtful, therapeutic response that validates their experience and offers gentle support and insight.`
}

func followUpPrompt(entry string) string {
	return `Based on this journal entry, generate 2-3 thoughtful, therapeutic follow-up questions that would help the person explore their feelings deeper. The questions should be:

1. Open-ended and non-judgmental
2. Focused on self-reflection and insight
3. Encouraging of self-compassion
4. Relevant to their specific situation
5. Therapeutic in nature

Journal entry: "` + entry + `"

Please provide only the questions, one per line, without numbering or bullet points.`
}
