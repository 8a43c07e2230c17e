package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sagelearn/sage/internal/store"
)

type userHandler struct {
	users store.UserRepo
}

func (h *userHandler) register(router *mux.Router) {
	router.HandleFunc("/users", h.create).Methods(http.MethodPost)
	router.HandleFunc("/users/email/{email}", h.getByEmail).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}", h.get).Methods(http.MethodGet)
}

func (h *userHandler) create(w http.ResponseWriter, r *http.Request) {
	var req store.NewUser
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.Username == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Invalid user data")
		return
	}

	user, err := h.users.Create(r.Context(), req)
	if err != nil {
		writeErrorDetail(w, http.StatusBadRequest, "Invalid user data", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *userHandler) get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *userHandler) getByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetByEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
