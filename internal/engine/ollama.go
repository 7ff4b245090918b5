package engine

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/pkoukk/tiktoken-go"
	"go.uber.org/zap"

	"teaching-server/internal/config"
	"teaching-server/internal/domain"
)

// ollamaBackend implements Backend against a local Ollama server. Local
// models do not always report usage, so prompt tokens are estimated with
// tiktoken when the server omits them.
type ollamaBackend struct {
	client  *api.Client
	model   string
	timeout time.Duration
	encoder *tiktoken.Tiktoken
	logger  *zap.Logger
}

func newOllamaBackend(cfg *config.Config, logger *zap.Logger) (*ollamaBackend, error) {
	baseURL, err := url.Parse(cfg.OllamaHost)
	if err != nil {
		return nil, fmt.Errorf("invalid OLLAMA_HOST %q: %w", cfg.OllamaHost, err)
	}

	encoder, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding: %w", err)
	}

	return &ollamaBackend{
		client:  api.NewClient(baseURL, &http.Client{Timeout: cfg.AITimeout}),
		model:   cfg.AIModel,
		timeout: cfg.AITimeout,
		encoder: encoder,
		logger:  logger,
	}, nil
}

func (b *ollamaBackend) generate(ctx context.Context, stage, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	stream := false
	req := &api.ChatRequest{
		Model: b.model,
		Messages: []api.Message{
			{Role: "system", Content: educatorSystemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: &stream,
	}

	var sb strings.Builder
	var promptTokens, completionTokens int

	start := time.Now()
	err := b.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		if resp.Done {
			promptTokens = resp.PromptEvalCount
			completionTokens = resp.EvalCount
		}
		return nil
	})
	duration := time.Since(start)

	if err != nil {
		aiRequestsTotal.WithLabelValues("ollama", stage, "error").Inc()
		b.logger.Error("AI request failed",
			zap.String("stage", stage), zap.Duration("duration", duration), zap.Error(err))
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	content := sb.String()
	if content == "" {
		aiRequestsTotal.WithLabelValues("ollama", stage, "error_empty_response").Inc()
		return "", fmt.Errorf("%w: empty response from backend", domain.ErrGenerationFailed)
	}

	if promptTokens == 0 {
		promptTokens = len(b.encoder.Encode(educatorSystemPrompt+userPrompt, nil, nil))
	}
	aiRequestsTotal.WithLabelValues("ollama", stage, "success").Inc()
	aiRequestDuration.WithLabelValues("ollama", stage).Observe(duration.Seconds())
	aiTokensTotal.WithLabelValues("ollama", "prompt").Add(float64(promptTokens))
	aiTokensTotal.WithLabelValues("ollama", "completion").Add(float64(completionTokens))

	b.logger.Debug("AI request completed",
		zap.String("stage", stage),
		zap.Duration("duration", duration),
		zap.Int("responseChars", len(content)))

	return content, nil
}

func (b *ollamaBackend) Analyze(ctx context.Context, topic, language string, level domain.DifficultyLevel) (domain.Analysis, error) {
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

func (b *ollamaBackend) Explain(ctx context.Context, topic string, analysis domain.Analysis, language string, level domain.DifficultyLevel) (string, error) {
	return b.generate(ctx, "explain", buildExplainPrompt(topic, analysis, language, level))
}

func (b *ollamaBackend) Exemplify(ctx context.Context, topic string, concepts []string, language string) ([]domain.Example, error) {
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

func (b *ollamaBackend) Script(ctx context.Context, explanation string, examples []domain.Example, language string) ([]domain.Scene, error) {
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

var _ Backend = (*ollamaBackend)(nil)
