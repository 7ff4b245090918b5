package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"teaching-server/internal/domain"
)

// pgTeachingRepository implements TeachingRepository for PostgreSQL.
// Ordered list/object fields are stored as JSONB documents.
type pgTeachingRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

// NewPgTeachingRepository creates a PostgreSQL-backed repository.
func NewPgTeachingRepository(db *pgxpool.Pool, logger *zap.Logger) TeachingRepository {
	return &pgTeachingRepository{db: db, logger: logger}
}

func (r *pgTeachingRepository) CreateRequest(ctx context.Context, req *domain.InputRequest) error {
	req.ID = uuid.New()
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	query := `
        INSERT INTO input_requests
        (id, input_text, input_language, detected_language, language_confidence,
         input_type, difficulty_level, output_language, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	_, err := r.db.Exec(ctx, query,
		req.ID, req.InputText, req.InputLanguage, req.DetectedLanguage, req.LanguageConfidence,
		req.InputType, req.DifficultyLevel, req.OutputLanguage, req.Status, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert input request", zap.Stringer("requestID", req.ID), zap.Error(err))
		return fmt.Errorf("failed to insert input request: %w", err)
	}
	return nil
}

func (r *pgTeachingRepository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status domain.RequestStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE input_requests SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *pgTeachingRepository) GetRequest(ctx context.Context, id uuid.UUID) (*domain.InputRequest, error) {
	var req domain.InputRequest
	err := r.db.QueryRow(ctx, `
        SELECT id, input_text, input_language, detected_language, language_confidence,
               input_type, difficulty_level, output_language, status, created_at, updated_at
        FROM input_requests WHERE id = $1`, id,
	).Scan(
		&req.ID, &req.InputText, &req.InputLanguage, &req.DetectedLanguage, &req.LanguageConfidence,
		&req.InputType, &req.DifficultyLevel, &req.OutputLanguage, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load input request: %w", err)
	}
	return &req, nil
}

// SaveGenerationResult writes the explanation, the script and the completed
// status in one transaction so a mid-write failure cannot leave a partially
// linked chain.
func (r *pgTeachingRepository) SaveGenerationResult(ctx context.Context, req *domain.InputRequest, content *domain.GeneratedContent) (*domain.Explanation, *domain.TeachingScript, error) {
	now := time.Now().UTC()

	explanation := &domain.Explanation{
		ID:              uuid.New(),
		RequestID:       req.ID,
		Topic:           req.InputText,
		DifficultyLevel: req.DifficultyLevel,
		OutputLanguage:  req.OutputLanguage,
		CoreConcepts:    content.Analysis.CoreConcepts,
		Prerequisites:   content.Analysis.Prerequisites,
		KeyTerms:        content.Analysis.KeyTerms,
		ExplanationText: content.Explanation,
		Examples:        content.Examples,
		CreatedAt:       now,
	}
	script := &domain.TeachingScript{
		ID:                uuid.New(),
		ExplanationID:     explanation.ID,
		Scenes:            content.Scenes,
		TotalScenes:       len(content.Scenes),
		EstimatedDuration: domain.TotalDuration(content.Scenes),
		CreatedAt:         now,
	}

	coreConcepts, err := json.Marshal(explanation.CoreConcepts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal core concepts: %w", err)
	}
	prerequisites, err := json.Marshal(explanation.Prerequisites)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal prerequisites: %w", err)
	}
	keyTerms, err := json.Marshal(explanation.KeyTerms)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal key terms: %w", err)
	}
	examples, err := json.Marshal(explanation.Examples)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal examples: %w", err)
	}
	scriptData, err := json.Marshal(script.Scenes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal scenes: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        INSERT INTO explanations
        (id, request_id, topic, difficulty_level, output_language,
         core_concepts, prerequisites, key_terms, explanation_text, examples, summary, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		explanation.ID, explanation.RequestID, explanation.Topic, explanation.DifficultyLevel,
		explanation.OutputLanguage, coreConcepts, prerequisites, keyTerms,
		explanation.ExplanationText, examples, nullableText(explanation.Summary), explanation.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert explanation", zap.Stringer("requestID", req.ID), zap.Error(err))
		return nil, nil, fmt.Errorf("failed to insert explanation: %w", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO teaching_scripts
        (id, explanation_id, script_data, total_scenes, estimated_duration, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		script.ID, script.ExplanationID, scriptData, script.TotalScenes, script.EstimatedDuration, script.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to insert teaching script", zap.Stringer("requestID", req.ID), zap.Error(err))
		return nil, nil, fmt.Errorf("failed to insert teaching script: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE input_requests SET status = $1, updated_at = $2 WHERE id = $3`,
		domain.StatusCompleted, now, req.ID,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to complete request: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit generation result: %w", err)
	}

	req.Status = domain.StatusCompleted
	req.UpdatedAt = now
	return explanation, script, nil
}

// nullableText maps the empty string onto SQL NULL.
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}
