package adaptive

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Shreyas250406/StudySaathi/internal/models"
	"github.com/google/uuid"
)

// Service runs one next-set cycle per request: update the score, plan the
// difficulty mix, select questions, evaluate escalation, return the set.
// It keeps no cross-request state of its own; the stores do.
type Service struct {
	scores      ScoreStore
	selector    *Selector
	history     *HistoryTracker
	escalations EscalationStore

	now func() time.Time
}

func NewService(scores ScoreStore, selector *Selector, history *HistoryTracker, escalations EscalationStore) *Service {
	return &Service{
		scores:      scores,
		selector:    selector,
		history:     history,
		escalations: escalations,
		now:         time.Now,
	}
}

// Process executes the full decision pipeline. Score lookup, answer
// validation, and question selection are fatal on failure; persisting the
// score, applying the escalation action, and recording history are
// advisory and only logged when they fail.
func (s *Service) Process(ctx context.Context, req models.NextSetRequest) (*models.NextSetResult, error) {
	if req.Grade < models.MinGrade || req.Grade > models.MaxGrade {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrade, req.Grade)
	}

	current, err := s.scores.GetScore(ctx, req.LearnerID)
	if err != nil {
		return nil, fmt.Errorf("get score for learner %s: %w", req.LearnerID, err)
	}

	newScore, err := UpdateScore(current, req.Answers)
	if err != nil {
		return nil, err
	}

	if err := s.scores.SetScore(ctx, req.LearnerID, newScore); err != nil {
		log.Printf("WARN: failed to persist score for learner %s: %v", req.LearnerID, err)
	}

	s.applyEscalation(ctx, req.LearnerID, req.TeacherID, newScore)

	mix := PlanDistribution(newScore)

	exclusions, err := s.history.ExclusionSet(ctx, req.LearnerID)
	if err != nil {
		return nil, fmt.Errorf("exclusion set for learner %s: %w", req.LearnerID, err)
	}

	questions, err := s.selector.Select(ctx, mix, req.Grade, req.Language, exclusions)
	if err != nil {
		return nil, err
	}

	s.recordServed(ctx, req.LearnerID, questions)

	served := make([]models.ServedQuestion, len(questions))
	for i, q := range questions {
		served[i] = q.ToServed()
	}

	return &models.NextSetResult{
		Score:        newScore,
		Distribution: mix,
		Questions:    served,
	}, nil
}

func (s *Service) applyEscalation(ctx context.Context, learnerID uuid.UUID, teacherID *uuid.UUID, score int) {
	action, record := EvaluateEscalation(learnerID, teacherID, score, s.now())

	switch action {
	case EscalationRaise:
		if err := s.escalations.Upsert(ctx, *record); err != nil {
			log.Printf("WARN: failed to raise escalation for learner %s: %v", learnerID, err)
		}
	case EscalationClear:
		if err := s.escalations.Delete(ctx, learnerID, *teacherID); err != nil {
			log.Printf("WARN: failed to clear escalation for learner %s: %v", learnerID, err)
		}
	}
}

func (s *Service) recordServed(ctx context.Context, learnerID uuid.UUID, questions []models.Question) {
	ids := make([]uuid.UUID, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	if err := s.history.Record(ctx, learnerID, ids, s.now()); err != nil {
		log.Printf("WARN: failed to record history for learner %s: %v", learnerID, err)
	}
	if err := s.selector.store.MarkServed(ctx, ids); err != nil {
		log.Printf("WARN: failed to bump serve counters: %v", err)
	}
}
