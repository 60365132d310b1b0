package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

// OpenAI scores sentiment with the OpenAI Responses API using strict
// structured output, so the model can only answer with the Score shape.
// Provider errors are surfaced to the caller, which applies Fallback —
// analysis never blocks entry creation.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI-backed provider for the given model.
func NewOpenAI(apiKey, model string) *OpenAI {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAI{client: &client, model: model}
}

const scoreInstructions = `You are a sentiment scorer for dream journal entries.
Given a dream narrative, return its sentiment as JSON:
- polarity: a float in [-1.0, 1.0] (-1 deeply unpleasant, 0 neutral, 1 deeply pleasant)
- subjectivity: a float in [0.0, 1.0] (0 purely factual, 1 purely opinion/feeling)
Score the narrative itself, not how well it is written.`

var scoreSchema = generateSchema[Score]()

// Analyze asks the model for a Score and validates the bounds.
func (o *OpenAI) Analyze(ctx context.Context, text string) (Score, error) {
	if o.client == nil {
		return Score{}, fmt.Errorf("sentiment: openai client is nil")
	}
	if o.model == "" {
		return Score{}, fmt.Errorf("sentiment: model is empty")
	}

	params := responses.ResponseNewParams{
		Model:           o.model,
		MaxOutputTokens: openai.Int(200),
		Instructions:    openai.String(scoreInstructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(text, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Name:        "SentimentScore",
					Schema:      scoreSchema,
					Strict:      openai.Bool(true),
					Description: openai.String("Sentiment score JSON"),
					Type:        "json_schema",
				},
			},
		},
	}

	resp, err := callWithRetry(ctx, o.client, params)
	if err != nil {
		return Score{}, err
	}

	var s Score
	if err := json.Unmarshal([]byte(strings.TrimSpace(resp.OutputText())), &s); err != nil {
		return Score{}, fmt.Errorf("sentiment: unmarshal score: %w", err)
	}

	s.Polarity = clamp(s.Polarity, -1.0, 1.0)
	s.Subjectivity = clamp(s.Subjectivity, 0.0, 1.0)
	return s, nil
}

// callWithRetry retries rate-limit and server errors with staggered waits.
func callWithRetry(ctx context.Context, client *openai.Client, params responses.ResponseNewParams) (*responses.Response, error) {
	const maxRetries = 3
	rateLimitWaits := []time.Duration{5 * time.Second, 15 * time.Second, 30 * time.Second}
	serverErrorWaits := []time.Duration{2 * time.Second, 5 * time.Second, 10 * time.Second}

	for attempt := 0; attempt < maxRetries; attempt++ {
		resp, err := client.Responses.New(ctx, params)
		if err == nil {
			return resp, nil
		}
		if attempt == maxRetries-1 {
			return nil, err
		}

		var wait time.Duration
		switch {
		case isRateLimitError(err):
			wait = rateLimitWaits[attempt]
		case isServerError(err):
			wait = serverErrorWaits[attempt]
		default:
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, fmt.Errorf("sentiment: failed after %d attempts", maxRetries)
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "429") ||
		strings.Contains(s, "rate limit") ||
		strings.Contains(s, "too many requests")
}

func isServerError(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "500") ||
		strings.Contains(s, "internal server error") ||
		strings.Contains(s, "server_error")
}

// generateSchema reflects T into an OpenAI-compliant strict JSON schema
// (every object closed with additionalProperties=false, all fields required).
func generateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	b, err := reflector.Reflect(v).MarshalJSON()
	if err != nil {
		panic(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		panic(err)
	}
	ensureCompliance(m)
	return m
}

// ensureCompliance walks the schema closing every object and marking all
// properties required, which strict structured output demands.
func ensureCompliance(schema map[string]any) {
	if t, ok := schema["type"].(string); ok && t == "object" {
		schema["additionalProperties"] = false
		if props, ok := schema["properties"].(map[string]any); ok {
			var required []string
			for name := range props {
				required = append(required, name)
			}
			if len(required) > 0 {
				schema["required"] = required
			}
		}
	}
	if props, ok := schema["properties"].(map[string]any); ok {
		for _, p := range props {
			if pm, ok := p.(map[string]any); ok {
				ensureCompliance(pm)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		ensureCompliance(items)
	}
}
