package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Shreyas250406/StudySaathi/internal/adaptive"
	"github.com/Shreyas250406/StudySaathi/internal/models"
	"github.com/Shreyas250406/StudySaathi/internal/store"
)

type Handler struct {
	service *adaptive.Service
	store   *store.Store
}

func NewHandler(service *adaptive.Service, st *store.Store) *Handler {
	return &Handler{service: service, store: st}
}

// Register mounts all routes on the given router.
func (h *Handler) Register(r *mux.Router) {
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/sessions/next-set", h.NextSet).Methods("POST")
	api.HandleFunc("/learners/{id}/score", h.GetLearnerScore).Methods("GET")
	api.HandleFunc("/teachers/{id}/escalations", h.ListEscalations).Methods("GET")

	r.HandleFunc("/health", h.Health).Methods("GET")
}

func (h *Handler) NextSet(w http.ResponseWriter, r *http.Request) {
	var req models.NextSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.LearnerID == uuid.Nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "learner_id is required"})
		return
	}
	if req.Language == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "language is required"})
		return
	}

	result, err := h.service.Process(r.Context(), req)
	if err != nil {
		status, msg := statusForError(err)
		if status == http.StatusInternalServerError {
			log.Printf("[api] next-set error: %v", err)
		}
		writeJSON(w, status, models.ErrorResponse{Error: msg})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) GetLearnerScore(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid learner ID"})
		return
	}

	score, err := h.store.GetScore(r.Context(), id)
	if err != nil {
		if errors.Is(err, adaptive.ErrLearnerNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Learner not found"})
			return
		}
		log.Printf("[api] get score error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get score"})
		return
	}

	writeJSON(w, http.StatusOK, models.LearnerScoreResponse{LearnerID: id, Score: score})
}

func (h *Handler) ListEscalations(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid teacher ID"})
		return
	}

	escalations, err := h.store.ListByTeacher(r.Context(), id)
	if err != nil {
		log.Printf("[api] list escalations error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list escalations"})
		return
	}

	if escalations == nil {
		escalations = []models.Escalation{}
	}
	writeJSON(w, http.StatusOK, models.EscalationListResponse{
		Escalations: escalations,
		Total:       len(escalations),
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, adaptive.ErrLearnerNotFound):
		return http.StatusNotFound, "Learner not found"
	case errors.Is(err, adaptive.ErrInvalidDifficulty):
		return http.StatusBadRequest, "difficulty must be 'easy', 'medium', or 'hard'"
	case errors.Is(err, adaptive.ErrInvalidGrade):
		return http.StatusBadRequest, "grade must be between 1 and 12"
	case errors.Is(err, adaptive.ErrNoQuestionsAvailable):
		return http.StatusServiceUnavailable, "No questions available for the requested filters"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
