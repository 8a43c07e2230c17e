package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/sagelearn/sage/internal/curriculum"
	"github.com/sagelearn/sage/internal/store"
)

type pathHandler struct {
	paths      store.PathRepo
	curriculum *curriculum.Service
	logger     *zap.Logger
}

func (h *pathHandler) register(router *mux.Router) {
	router.HandleFunc("/onboarding/process", h.processOnboarding).Methods(http.MethodPost)

	router.HandleFunc("/learning-paths", h.createPath).Methods(http.MethodPost)
	router.HandleFunc("/learning-paths/user/{userId}", h.listUserPaths).Methods(http.MethodGet)
	router.HandleFunc("/learning-paths/{id}", h.getPath).Methods(http.MethodGet)

	router.HandleFunc("/modules/{id}", h.getModule).Methods(http.MethodGet)
	router.HandleFunc("/modules/{id}", h.patchModule).Methods(http.MethodPatch)

	router.HandleFunc("/lessons/{id}", h.getLesson).Methods(http.MethodGet)
	router.HandleFunc("/lessons/{id}", h.patchLesson).Methods(http.MethodPatch)
}

type onboardingRequest struct {
	Goal                string            `json:"goal"`
	ConversationHistory []curriculum.Turn `json:"conversationHistory"`
}

func (h *pathHandler) processOnboarding(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Goal == "" {
		writeError(w, http.StatusBadRequest, "Goal is required")
		return
	}

	result, err := h.curriculum.PlanPath(r.Context(), req.Goal, req.ConversationHistory)
	if err != nil {
		writeErrorDetail(w, http.StatusInternalServerError, "Failed to process onboarding goal", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// createPathRequest is the path fields plus the generated module
// structure from onboarding.
type createPathRequest struct {
	store.NewPath
	Modules []curriculum.PlanModule `json:"modules"`
}

func (h *pathHandler) createPath(w http.ResponseWriter, r *http.Request) {
	var req createPathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.UserID == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Invalid learning path data")
		return
	}

	path, err := h.paths.CreatePath(r.Context(), req.NewPath)
	if err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "Invalid learning path data", err)
		return
	}

	for _, m := range req.Modules {
		mod, err := h.paths.CreateModule(r.Context(), store.NewModule{
			PathID:       path.ID,
			Title:        m.Title,
			Description:  m.Description,
			OrderIndex:   m.OrderIndex,
			TotalLessons: len(m.Lessons),
		})
		if err != nil {
			writeErrorDetail(w, http.StatusInternalServerError, "Failed to create module", err)
			return
		}
		for _, l := range m.Lessons {
			if _, err := h.paths.CreateLesson(r.Context(), store.NewLesson{
				ModuleID:    mod.ID,
				Title:       l.Title,
				Description: l.Description,
				OrderIndex:  l.OrderIndex,
				Duration:    l.Duration,
			}); err != nil {
				writeErrorDetail(w, http.StatusInternalServerError, "Failed to create lesson", err)
				return
			}
		}
	}

	writeJSON(w, http.StatusOK, path)
}

func (h *pathHandler) listUserPaths(w http.ResponseWriter, r *http.Request) {
	paths, err := h.paths.ListUserPaths(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch learning paths")
		return
	}
	writeJSON(w, http.StatusOK, paths)
}

func (h *pathHandler) getPath(w http.ResponseWriter, r *http.Request) {
	path, err := h.paths.GetPath(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch learning path")
		return
	}
	if path == nil {
		writeError(w, http.StatusNotFound, "Learning path not found")
		return
	}

	modules, err := h.paths.ListPathModules(r.Context(), path.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch learning path")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		*store.LearningPath
		Modules []*store.Module `json:"modules"`
	}{path, modules})
}

func (h *pathHandler) getModule(w http.ResponseWriter, r *http.Request) {
	module, err := h.paths.GetModule(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch module")
		return
	}
	if module == nil {
		writeError(w, http.StatusNotFound, "Module not found")
		return
	}

	lessons, err := h.paths.ListModuleLessons(r.Context(), module.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch module")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		*store.Module
		Lessons []*store.Lesson `json:"lessons"`
	}{module, lessons})
}

func (h *pathHandler) patchModule(w http.ResponseWriter, r *http.Request) {
	var patch store.ModulePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	module, err := h.paths.UpdateModule(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update module")
		return
	}
	if module == nil {
		writeError(w, http.StatusNotFound, "Module not found")
		return
	}
	writeJSON(w, http.StatusOK, module)
}

// getLesson serves a lesson, generating its content on first access.
func (h *pathHandler) getLesson(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.paths.GetLesson(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch lesson")
		return
	}
	if lesson == nil {
		writeError(w, http.StatusNotFound, "Lesson not found")
		return
	}

	if len(lesson.Content) == 0 {
		if filled := h.fillLessonContent(r, lesson); filled != nil {
			lesson = filled
		}
	}

	writeJSON(w, http.StatusOK, lesson)
}

// fillLessonContent generates and persists content for a lesson that
// has none. Failure is soft: the lesson is served without content
// rather than erroring the read.
func (h *pathHandler) fillLessonContent(r *http.Request, lesson *store.Lesson) *store.Lesson {
	ctx := r.Context()

	module, err := h.paths.GetModule(ctx, lesson.ModuleID)
	if err != nil || module == nil {
		return nil
	}
	path, err := h.paths.GetPath(ctx, module.PathID)
	if err != nil || path == nil {
		return nil
	}

	content, err := h.curriculum.GenerateLessonContent(ctx, curriculum.LessonInfo{
		Title:       lesson.Title,
		Description: lesson.Description,
		Difficulty:  path.Difficulty,
		ModuleTitle: module.Title,
		PathGoal:    path.Goal,
	})
	if err != nil {
		h.logger.Warn("lesson content generation failed",
			zap.String("lesson_id", lesson.ID),
			zap.Error(err))
		return nil
	}

	updated, err := h.paths.UpdateLesson(ctx, lesson.ID, store.LessonPatch{Content: &content})
	if err != nil {
		h.logger.Warn("persist generated lesson content",
			zap.String("lesson_id", lesson.ID),
			zap.Error(err))
		return nil
	}
	return updated
}

func (h *pathHandler) patchLesson(w http.ResponseWriter, r *http.Request) {
	var patch store.LessonPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	lesson, err := h.paths.UpdateLesson(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update lesson")
		return
	}
	if lesson == nil {
		writeError(w, http.StatusNotFound, "Lesson not found")
		return
	}
	writeJSON(w, http.StatusOK, lesson)
}
