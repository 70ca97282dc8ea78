package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the Gemini API for the optional assistant features: bio
// suggestions and connection icebreakers. The application runs fine
// without it.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(apiKey string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// GenerateBio produces a short profile bio from the user's skills.
func (c *Client) GenerateBio(ctx context.Context, displayName string, taught, learned []string) (string, error) {
	prompt := fmt.Sprintf(`
		Write a short, friendly profile bio (2-3 sentences, first person) for a
		skill-exchange marketplace user.
		Name: %s
		Skills they can teach: %v
		Skills they want to learn: %v

		Output: just the bio text, no quotes or markdown.
	`, displayName, taught, learned)

	return c.generate(ctx, prompt)
}

// GenerateIcebreakers produces opening lines for a freshly accepted
// connection, based on what each side teaches.
func (c *Client) GenerateIcebreakers(ctx context.Context, requesterTeaches, recipientTeaches []string) ([]string, error) {
	prompt := fmt.Sprintf(`
		Generate 3 friendly icebreaker messages for two users who just connected
		on a skill-exchange marketplace.
		User 1 teaches: %v
		User 2 teaches: %v

		Task: suggest 3 distinct opening lines User 1 could send, referencing a
		possible skill trade.
		Output: JSON array of strings. Example: ["Hi...", "Hello..."]
	`, requesterTeaches, recipientTeaches)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	// Strip markdown code fences the model sometimes adds.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var icebreakers []string
	if err := json.Unmarshal([]byte(text), &icebreakers); err != nil {
		return nil, fmt.Errorf("parse icebreakers: %w", err)
	}
	return icebreakers, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
