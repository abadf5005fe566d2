package verdict

import (
	"context"
	"strings"

	"github.com/Aalzard/DRUNKPENGUINS/logging"
	"github.com/Aalzard/DRUNKPENGUINS/rating"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Fallback texts. Verdict generation is best-effort: it never returns an
// error and never blocks numeric aggregation.
const (
	fallbackNoKey      = "API Key not configured."
	fallbackNoData     = "Not enough data to form a verdict yet."
	fallbackEmptyReply = "Could not generate verdict."
	fallbackError      = "Error contacting the AI mainframe."
)

type textGenerator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	client *genai.Client
}

func (g *geminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Client produces prose summaries of a game's ratings through Gemini.
// With no API key configured it degrades to fixed fallback texts.
type Client struct {
	generator textGenerator
	directory rating.Directory
	scale     rating.Scale
}

func NewClient(ctx context.Context, apiKey string, directory rating.Directory, scale rating.Scale) *Client {
	c := &Client{directory: directory, scale: scale}
	if apiKey == "" {
		logging.Log.Warn("VERDICT: no API key configured, verdicts disabled")
		return c
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logging.Log.Errorf("VERDICT: failed to create genai client: %v", err)
		return c
	}
	c.generator = &geminiGenerator{client: client}
	return c
}

// GenerateVerdict returns the squad verdict for a game. Always returns a
// non-empty string; any failure degrades to a fallback text.
func (c *Client) GenerateVerdict(ctx context.Context, game rating.Game) string {
	if c.generator == nil {
		return fallbackNoKey
	}

	summary := ratingSummary(game, c.directory, c.scale)
	if summary == "" {
		return fallbackNoData
	}

	out, err := c.generator.generate(ctx, verdictPrompt(game.Name, summary))
	if err != nil {
		logging.Log.Errorf("VERDICT: generation failed for game %s: %v", game.ID, err)
		return fallbackError
	}
	if strings.TrimSpace(out) == "" {
		return fallbackEmptyReply
	}
	return out
}

// EnhanceDescription suggests a one-sentence hype line for a game name.
// Returns "" on any failure or missing configuration; callers treat an
// empty string as "no suggestion", never as an error.
func (c *Client) EnhanceDescription(ctx context.Context, gameName string) string {
	if c.generator == nil {
		return ""
	}

	out, err := c.generator.generate(ctx, describePrompt(gameName))
	if err != nil {
		logging.Log.Warnf("VERDICT: description suggestion failed for %q: %v", gameName, err)
		return ""
	}
	return strings.TrimSpace(out)
}
