package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Shreyas250406/StudySaathi/internal/adaptive"
	"github.com/Shreyas250406/StudySaathi/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Store implements the engine's collaborator interfaces on Postgres.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ── Learner Scores ──────────────────────────────────────

func (s *Store) GetScore(ctx context.Context, learnerID uuid.UUID) (int, error) {
	var score int
	err := s.db.QueryRowContext(ctx,
		`SELECT score FROM learners WHERE id = $1`,
		learnerID,
	).Scan(&score)
	if err == sql.ErrNoRows {
		return 0, adaptive.ErrLearnerNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("get score: %w", err)
	}
	return score, nil
}

func (s *Store) SetScore(ctx context.Context, learnerID uuid.UUID, score int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE learners SET score = $1, updated_at = NOW() WHERE id = $2`,
		score, learnerID,
	)
	if err != nil {
		return fmt.Errorf("set score: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return adaptive.ErrLearnerNotFound
	}
	return nil
}

// ── Question Bank ───────────────────────────────────────

func (s *Store) Find(ctx context.Context, f adaptive.QuestionFilter) ([]models.Question, error) {
	var clauses []string
	var args []interface{}
	paramIdx := 1

	if f.Difficulty != nil {
		clauses = append(clauses, fmt.Sprintf("difficulty = $%d", paramIdx))
		args = append(args, *f.Difficulty)
		paramIdx++
	}
	if f.Grade != nil {
		clauses = append(clauses, fmt.Sprintf("grade = $%d", paramIdx))
		args = append(args, *f.Grade)
		paramIdx++
	}
	if f.Language != nil {
		clauses = append(clauses, fmt.Sprintf("language = $%d", paramIdx))
		args = append(args, *f.Language)
		paramIdx++
	}
	if len(f.ExcludeIDs) > 0 {
		clauses = append(clauses, fmt.Sprintf("NOT (id = ANY($%d))", paramIdx))
		args = append(args, pq.Array(uuidStrings(f.ExcludeIDs)))
		paramIdx++
	}

	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT id, difficulty, grade, language, prompt, options, answer, times_served, created_at
		 FROM questions %s
		 ORDER BY times_served ASC, id`, where),
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Difficulty, &q.Grade, &q.Language,
			&q.Prompt, pq.Array(&q.Options), &q.Answer, &q.TimesServed, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *Store) MarkServed(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE questions SET times_served = times_served + 1 WHERE id = ANY($1)`,
		pq.Array(uuidStrings(ids)),
	)
	return err
}

// ── Question History ────────────────────────────────────

func (s *Store) RecentQuestionIDs(ctx context.Context, learnerID uuid.UUID, limit int) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id FROM question_history
		 WHERE learner_id = $1
		 ORDER BY served_at DESC, id DESC
		 LIMIT $2`,
		learnerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent question ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan history id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) Append(ctx context.Context, learnerID, questionID uuid.UUID, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO question_history (learner_id, question_id, served_at)
		 VALUES ($1, $2, $3)`,
		learnerID, questionID, at,
	)
	return err
}

// ── Escalations ─────────────────────────────────────────

func (s *Store) Upsert(ctx context.Context, rec models.Escalation) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO escalations (learner_id, teacher_id, score_snapshot, reason, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (learner_id, teacher_id)
		 DO UPDATE SET score_snapshot = $3, reason = $4, updated_at = $5`,
		rec.LearnerID, rec.TeacherID, rec.ScoreSnapshot, rec.Reason, rec.UpdatedAt,
	)
	return err
}

func (s *Store) Delete(ctx context.Context, learnerID, teacherID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM escalations WHERE learner_id = $1 AND teacher_id = $2`,
		learnerID, teacherID,
	)
	return err
}

// ListByTeacher returns a teacher's active escalations, newest first.
func (s *Store) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]models.Escalation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT learner_id, teacher_id, score_snapshot, reason, updated_at
		 FROM escalations
		 WHERE teacher_id = $1
		 ORDER BY updated_at DESC`,
		teacherID,
	)
	if err != nil {
		return nil, fmt.Errorf("list escalations: %w", err)
	}
	defer rows.Close()

	var escalations []models.Escalation
	for rows.Next() {
		var e models.Escalation
		if err := rows.Scan(&e.LearnerID, &e.TeacherID, &e.ScoreSnapshot, &e.Reason, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan escalation: %w", err)
		}
		escalations = append(escalations, e)
	}
	return escalations, rows.Err()
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
