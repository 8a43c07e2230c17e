package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sagelearn/sage/internal/store"
)

type portfolioHandler struct {
	portfolio store.PortfolioRepo
}

func (h *portfolioHandler) register(router *mux.Router) {
	router.HandleFunc("/projects", h.createProject).Methods(http.MethodPost)
	router.HandleFunc("/projects/user/{userId}", h.listProjects).Methods(http.MethodGet)

	router.HandleFunc("/achievements", h.createAchievement).Methods(http.MethodPost)
	router.HandleFunc("/achievements/user/{userId}", h.listAchievements).Methods(http.MethodGet)

	router.HandleFunc("/skills", h.createSkill).Methods(http.MethodPost)
	router.HandleFunc("/skills/user/{userId}", h.listSkills).Methods(http.MethodGet)
}

func (h *portfolioHandler) createProject(w http.ResponseWriter, r *http.Request) {
	var req store.Project
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.UserID == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Invalid project data")
		return
	}

	project, err := h.portfolio.CreateProject(r.Context(), req)
	if err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "Invalid project data", err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *portfolioHandler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.portfolio.ListUserProjects(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *portfolioHandler) createAchievement(w http.ResponseWriter, r *http.Request) {
	var req store.Achievement
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.UserID == "" || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Invalid achievement data")
		return
	}

	achievement, err := h.portfolio.CreateAchievement(r.Context(), req)
	if err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "Invalid achievement data", err)
		return
	}
	writeJSON(w, http.StatusOK, achievement)
}

func (h *portfolioHandler) listAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.portfolio.ListUserAchievements(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch achievements")
		return
	}
	writeJSON(w, http.StatusOK, achievements)
}

func (h *portfolioHandler) createSkill(w http.ResponseWriter, r *http.Request) {
	var req store.Skill
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.UserID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Invalid skill data")
		return
	}

	skill, err := h.portfolio.CreateSkill(r.Context(), req)
	if err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "Invalid skill data", err)
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

func (h *portfolioHandler) listSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.portfolio.ListUserSkills(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch skills")
		return
	}
	writeJSON(w, http.StatusOK, skills)
}
