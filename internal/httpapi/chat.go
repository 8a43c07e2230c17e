package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sagelearn/sage/internal/adaptive"
	"github.com/sagelearn/sage/internal/store"
	"github.com/sagelearn/sage/internal/tutor"
)

type chatHandler struct {
	tutor     *tutor.Service
	turns     store.TurnRepo
	snapshots store.SnapshotRepo
	paths     store.PathRepo
}

func (h *chatHandler) register(router *mux.Router) {
	router.HandleFunc("/chat", h.postMessage).Methods(http.MethodPost)
	router.HandleFunc("/chat/user/{userId}", h.listMessages).Methods(http.MethodGet)
	router.HandleFunc("/insights/user/{userId}", h.latestInsights).Methods(http.MethodGet)
}

// chatContext is the client-supplied lesson context for a chat turn.
type chatContext struct {
	CurrentLesson *struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Difficulty  string `json:"difficulty"`
	} `json:"currentLesson"`
	CurrentModule *struct {
		Title      string `json:"title"`
		Difficulty string `json:"difficulty"`
	} `json:"currentModule"`
	UserProgress *struct {
		Completed int `json:"completed"`
		Total     int `json:"total"`
	} `json:"userProgress"`
}

type chatMessageRequest struct {
	Message  string       `json:"message"`
	UserID   string       `json:"userId"`
	PathID   string       `json:"pathId"`
	LessonID string       `json:"lessonId"`
	Context  *chatContext `json:"context"`
}

func (h *chatHandler) postMessage(w http.ResponseWriter, r *http.Request) {
	var req chatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Message == "" || req.UserID == "" {
		writeError(w, http.StatusBadRequest, "Message and userId are required")
		return
	}

	chatReq := tutor.ChatRequest{
		UserID:   req.UserID,
		PathID:   req.PathID,
		LessonID: req.LessonID,
		Message:  req.Message,
	}
	if ctx := req.Context; ctx != nil {
		if ctx.CurrentLesson != nil {
			chatReq.Lesson = adaptive.LessonContext{
				ID:          ctx.CurrentLesson.ID,
				Title:       ctx.CurrentLesson.Title,
				Description: ctx.CurrentLesson.Description,
				Difficulty:  ctx.CurrentLesson.Difficulty,
			}
		}
		if ctx.CurrentModule != nil {
			chatReq.Module = adaptive.ModuleContext{
				Title:      ctx.CurrentModule.Title,
				Difficulty: ctx.CurrentModule.Difficulty,
			}
		}
		if ctx.UserProgress != nil {
			chatReq.Progress = adaptive.ProgressContext{
				Completed: ctx.UserProgress.Completed,
				Total:     ctx.UserProgress.Total,
			}
		}
	}

	resp, err := h.tutor.HandleMessage(r.Context(), chatReq)
	if err != nil {
		writeErrorDetail(w, http.StatusInternalServerError, "Failed to process chat message", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *chatHandler) listMessages(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	pathID := r.URL.Query().Get("pathId")

	messages, err := h.turns.ListByUserPath(r.Context(), userID, pathID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch chat messages")
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// latestInsights serves the most recent learner-state snapshot.
func (h *chatHandler) latestInsights(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	pathID := r.URL.Query().Get("pathId")

	snap, err := h.snapshots.Latest(r.Context(), userID, pathID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch insights")
		return
	}
	if snap == nil {
		writeError(w, http.StatusNotFound, "No insights recorded yet")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
