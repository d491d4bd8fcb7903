package mediator

//go:generate mockgen -destination=./service_mock_test.go -package=mediator -source=service.go Service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthai/internal/domain"
	"healthai/internal/interaction"
	"healthai/internal/logger"
	"healthai/internal/metrics"
)

var (
	// ErrNoTextResponse means the assistant replied without any text item.
	ErrNoTextResponse = errors.New("assistant reply has no text response")
	// ErrInvalidQuery means the validation hook rejected the query before dispatch.
	ErrInvalidQuery = errors.New("invalid query")
)

// Validator inspects a query before it is sent. A non-nil error stops the dispatch.
type Validator func(Query) error

// RequireText rejects queries whose text is blank.
func RequireText(q Query) error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: %s query has no text", ErrInvalidQuery, q.Mode)
	}
	return nil
}

// Service defines the mediation between user interactions and the assistant.
type Service interface {
	// Ask sends the query and returns the first text answer of the reply.
	Ask(ctx context.Context, q Query) (string, error)

	// Chat answers a free-text medical question.
	Chat(ctx context.Context, question string) (string, error)

	// PredictDisease asks for likely conditions given a symptom list.
	PredictDisease(ctx context.Context, symptoms string) (string, error)

	// TreatmentPlan asks for a plan for a diagnosed condition.
	TreatmentPlan(ctx context.Context, condition string, age int) (string, error)

	// AnalyzeHealthData asks for insight on the most recent records.
	AnalyzeHealthData(ctx context.Context, records []domain.HealthRecord) (string, error)
}

// Option configures the service.
type Option func(*service)

// WithValidator installs a validation hook. Without one every query is sent,
// including empty ones.
func WithValidator(v Validator) Option {
	return func(s *service) {
		s.validate = v
	}
}

// WithAnalyticsWindow sets how many trailing records analytics queries include.
func WithAnalyticsWindow(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.analyticsWindow = n
		}
	}
}

type service struct {
	assistant       AssistantClient
	logger          logger.Logger
	validate        Validator
	analyticsWindow int
}

// NewService is the constructor for the mediator.
func NewService(client AssistantClient, log logger.Logger, opts ...Option) Service {
	s := &service{
		assistant:       client,
		logger:          log,
		analyticsWindow: DefaultAnalyticsWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ask implements the Service interface.
func (s *service) Ask(ctx context.Context, q Query) (string, error) {
	mode := string(q.Mode)
	log := s.logger.With(map[string]interface{}{"mode": mode})
	if id, err := interaction.GetID(ctx); err == nil {
		log = log.With(map[string]interface{}{"interaction_id": id.String()})
	}

	if s.validate != nil {
		if err := s.validate(q); err != nil {
			metrics.AssistantRequests.WithLabelValues(mode, metrics.OutcomeRejected).Inc()
			log.Warn("query rejected", map[string]interface{}{"reason": err.Error()})
			if !errors.Is(err, ErrInvalidQuery) {
				err = fmt.Errorf("%w: %v", ErrInvalidQuery, err)
			}
			return "", err
		}
	}

	start := time.Now()
	reply, err := s.assistant.MessageStateless(ctx, q.Text)
	elapsed := time.Since(start)
	metrics.AssistantRequestDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
	if err != nil {
		metrics.AssistantRequests.WithLabelValues(mode, metrics.OutcomeTransport).Inc()
		log.WithError(err).Error("assistant request failed", nil)
		return "", fmt.Errorf("assistant request failed: %w", err)
	}

	answer, ok := reply.FirstText()
	if !ok {
		metrics.AssistantRequests.WithLabelValues(mode, metrics.OutcomeMalformed).Inc()
		log.Error("assistant reply has no text item", map[string]interface{}{"kinds": reply.Kinds()})
		return "", ErrNoTextResponse
	}

	metrics.AssistantRequests.WithLabelValues(mode, metrics.OutcomeSuccess).Inc()
	log.Info("assistant answered", map[string]interface{}{
		"duration_ms": elapsed.Milliseconds(),
		"answer_len":  len(answer),
	})
	return answer, nil
}

// Chat implements the Service interface.
func (s *service) Chat(ctx context.Context, question string) (string, error) {
	return s.Ask(ctx, BuildChatQuery(question))
}

// PredictDisease implements the Service interface.
func (s *service) PredictDisease(ctx context.Context, symptoms string) (string, error) {
	return s.Ask(ctx, BuildSymptomQuery(symptoms))
}

// TreatmentPlan implements the Service interface.
func (s *service) TreatmentPlan(ctx context.Context, condition string, age int) (string, error) {
	return s.Ask(ctx, BuildTreatmentQuery(condition, age))
}

// AnalyzeHealthData implements the Service interface.
func (s *service) AnalyzeHealthData(ctx context.Context, records []domain.HealthRecord) (string, error) {
	metrics.AnalyticsRecordsSummarized.Observe(float64(len(TailRecords(records, s.analyticsWindow))))
	return s.Ask(ctx, BuildAnalyticsQuery(records, s.analyticsWindow))
}
