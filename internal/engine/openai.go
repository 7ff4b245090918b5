package engine

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"teaching-server/internal/config"
	"teaching-server/internal/domain"
)

// openAIBackend implements Backend over the OpenAI chat completion API
// (or any compatible endpoint selected via AI_BASE_URL).
type openAIBackend struct {
	client *openaigo.Client
	model  string
	logger *zap.Logger
}

func newOpenAIBackend(cfg *config.Config, logger *zap.Logger) *openAIBackend {
	clientConfig := openaigo.DefaultConfig(cfg.AIAPIKey)
	clientConfig.BaseURL = cfg.AIBaseURL
	// Bounded timeout at the backend boundary so a hung call cannot block a
	// request forever.
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.AITimeout}

	return &openAIBackend{
		client: openaigo.NewClientWithConfig(clientConfig),
		model:  cfg.AIModel,
		logger: logger,
	}
}

func (b *openAIBackend) generate(ctx context.Context, stage, userPrompt string) (string, error) {
	start := time.Now()

	resp, err := b.client.CreateChatCompletion(ctx, openaigo.ChatCompletionRequest{
		Model: b.model,
		Messages: []openaigo.ChatCompletionMessage{
			{Role: openaigo.ChatMessageRoleSystem, Content: educatorSystemPrompt},
			{Role: openaigo.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	duration := time.Since(start)

	if err != nil {
		aiRequestsTotal.WithLabelValues("openai", stage, "error").Inc()
		b.logger.Error("AI request failed",
			zap.String("stage", stage), zap.Duration("duration", duration), zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		aiRequestsTotal.WithLabelValues("openai", stage, "error_empty_response").Inc()
		return "", fmt.Errorf("%w: empty response from backend", domain.ErrGenerationFailed)
	}

	aiRequestsTotal.WithLabelValues("openai", stage, "success").Inc()
	aiRequestDuration.WithLabelValues("openai", stage).Observe(duration.Seconds())
	if resp.Usage.TotalTokens > 0 {
		aiTokensTotal.WithLabelValues("openai", "prompt").Add(float64(resp.Usage.PromptTokens))
		aiTokensTotal.WithLabelValues("openai", "completion").Add(float64(resp.Usage.CompletionTokens))
	}

	b.logger.Debug("AI request completed",
		zap.String("stage", stage),
		zap.Duration("duration", duration),
		zap.Int("responseChars", len(resp.Choices[0].Message.Content)),
		zap.Int("totalTokens", resp.Usage.TotalTokens))

	return resp.Choices[0].Message.Content, nil
}

func (b *openAIBackend) Analyze(ctx context.Context, topic, language string, level domain.DifficultyLevel) (domain.Analysis, error) {
	raw, err := b.generate(ctx, "analyze", buildAnalyzePrompt(topic, language, level))
	if err != nil {
		return domain.Analysis{}, err
	}
	analysis, err := parseAnalysis(raw)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return analysis, nil
}

func (b *openAIBackend) Explain(ctx context.Context, topic string, analysis domain.Analysis, language string, level domain.DifficultyLevel) (string, error) {
	return b.generate(ctx, "explain", buildExplainPrompt(topic, analysis, language, level))
}

func (b *openAIBackend) Exemplify(ctx context.Context, topic string, concepts []string, language string) ([]domain.Example, error) {
	raw, err := b.generate(ctx, "exemplify", buildExemplifyPrompt(topic, concepts, language))
	if err != nil {
		return nil, err
	}
	examples, err := parseExamples(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return examples, nil
}

func (b *openAIBackend) Script(ctx context.Context, explanation string, examples []domain.Example, language string) ([]domain.Scene, error) {
	raw, err := b.generate(ctx, "script", buildScriptPrompt(explanation, examples, language))
	if err != nil {
		return nil, err
	}
	scenes, err := parseScenes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	return scenes, nil
}

var _ Backend = (*openAIBackend)(nil)
