package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/languageutil"
	"github.com/mrumy-dev/StyleMatcherAI-sub000/models"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

const maxStyleTips = 3

type StyleTipsProvider interface {
	Tips(ctx context.Context, outfit models.Outfit, weather *models.CurrentWeather) ([]string, error)
}

type styleTipsResponse struct {
	Tips []string `json:"tips"`
}

// GoogleStyleTipsProvider asks a Gemini model for short styling advice on a
// generated outfit.
type GoogleStyleTipsProvider struct {
	client *genai.Client
	model  string
	logger zerolog.Logger
}

func NewGoogleStyleTipsProvider(ctx context.Context, apiKey, model string, logger zerolog.Logger) (*GoogleStyleTipsProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GoogleStyleTipsProvider{
		client: client,
		model:  model,
		logger: logger.With().Str("component", "style_tips").Logger(),
	}, nil
}

func floatPointer(f float32) *float32 {
	return &f
}

func (p *GoogleStyleTipsProvider) Tips(ctx context.Context, outfit models.Outfit, weather *models.CurrentWeather) ([]string, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model, []*genai.Content{{
		Parts: []*genai.Part{{Text: buildTipsPrompt(outfit, weather)}},
	}}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		CandidateCount:   1,
		MaxOutputTokens:  1024,
		Temperature:      floatPointer(0.7),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{
				{Text: `You are a personal stylist. Give at most three short, practical styling tips for the outfit. Each tip is one sentence. Return JSON only.`},
			},
		},
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"tips": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"tips"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generate style tips: %w", err)
	}
	if err := checkSafety(result); err != nil {
		return nil, err
	}
	if result.UsageMetadata != nil {
		p.logger.Debug().
			Int32("input_tokens", result.UsageMetadata.PromptTokenCount).
			Int32("output_tokens", result.UsageMetadata.CandidatesTokenCount).
			Msg("style tips generated")
	}
	return parseTips(result.Text())
}

func checkSafety(result *genai.GenerateContentResponse) error {
	if result == nil {
		return errors.New("empty style tips response")
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return fmt.Errorf("style tips blocked: %s", result.PromptFeedback.BlockReasonMessage)
	}
	for _, cand := range result.Candidates {
		for _, rating := range cand.SafetyRatings {
			if rating.Blocked {
				return fmt.Errorf("style tips blocked by safety setting: %s", rating.Category)
			}
		}
	}
	return nil
}

func parseTips(text string) ([]string, error) {
	var resp styleTipsResponse
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &resp); err != nil {
		return nil, fmt.Errorf("decode style tips: %w", err)
	}
	tips := make([]string, 0, maxStyleTips)
	for _, tip := range resp.Tips {
		tip = strings.TrimSpace(tip)
		if tip == "" {
			continue
		}
		tips = append(tips, tip)
		if len(tips) == maxStyleTips {
			break
		}
	}
	return tips, nil
}

func buildTipsPrompt(outfit models.Outfit, weather *models.CurrentWeather) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Outfit: %s\n", outfit.Name)
	if outfit.Formality != "" {
		fmt.Fprintf(&b, "Formality: %s\n", languageutil.Title(string(outfit.Formality)))
	}
	if len(outfit.Occasions) > 0 {
		fmt.Fprintf(&b, "Occasions: %s\n", strings.Join(outfit.Occasions, ", "))
	}
	b.WriteString("Items:\n")
	for _, oi := range outfit.Items {
		if oi.Item == nil {
			continue
		}
		item := oi.Item
		fmt.Fprintf(&b, "- %s (%s", item.Name, item.Category)
		if colors := item.ColorNames(); len(colors) > 0 {
			fmt.Fprintf(&b, ", %s", strings.Join(colors, "/"))
		}
		if len(item.Materials) > 0 {
			fmt.Fprintf(&b, ", %s", strings.Join(item.Materials, "/"))
		}
		b.WriteString(")")
		if oi.Optional {
			b.WriteString(" optional")
		}
		b.WriteString("\n")
	}
	if weather != nil {
		fmt.Fprintf(&b, "Weather: %.0fC, %s, humidity %.0f%%, wind %.0f km/h\n",
			weather.Temperature, weather.Condition, weather.Humidity, weather.WindSpeed)
	}
	return b.String()
}
