package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/infra/http/middleware"
	"github.com/xavierca1/lead-intake/internal/usecase"
)

type LeadHandler struct {
	CreateLead     *usecase.CreateLeadUseCase
	ListLeads      *usecase.ListLeadsUseCase
	GetLead        *usecase.GetLeadUseCase
	UpdateLead     *usecase.UpdateLeadUseCase
	TransitionLead *usecase.TransitionLeadUseCase
	Logger         *slog.Logger
}

func NewLeadHandler(
	create *usecase.CreateLeadUseCase,
	list *usecase.ListLeadsUseCase,
	get *usecase.GetLeadUseCase,
	update *usecase.UpdateLeadUseCase,
	transition *usecase.TransitionLeadUseCase,
	logger *slog.Logger,
) *LeadHandler {
	return &LeadHandler{
		CreateLead:     create,
		ListLeads:      list,
		GetLead:        get,
		UpdateLead:     update,
		TransitionLead: transition,
		Logger:         logger,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type stateRequest struct {
	NewState string `json:"new_state"`
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	lead, err := h.CreateLead.Execute(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	middleware.RecordLeadCreated()
	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListLeadsInput{}

	skip, ok := queryInt(r, "skip", 0)
	if !ok {
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "skip must be an integer"})
		return
	}
	input.Skip = skip

	limit, ok := queryInt(r, "limit", usecase.DefaultListLimit)
	if !ok {
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "limit must be an integer"})
		return
	}
	input.Limit = limit

	if raw := r.URL.Query().Get("state"); raw != "" {
		state, err := entity.ParseLeadState(raw)
		if err != nil {
			respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "state must be PENDING or REACHED_OUT"})
			return
		}
		input.State = &state
	}

	leads, err := h.ListLeads.Execute(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if leads == nil {
		leads = []*entity.Lead{}
	}
	respondJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(w, r)
	if !ok {
		return
	}

	lead, err := h.GetLead.Execute(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(w, r)
	if !ok {
		return
	}

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	lead, err := h.UpdateLead.Execute(r.Context(), id, input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, lead)
}

// UpdateState accepts the new state either as a ?new_state= query
// parameter or as a {"new_state": ...} body.
func (h *LeadHandler) UpdateState(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(w, r)
	if !ok {
		return
	}

	newState := r.URL.Query().Get("new_state")
	if newState == "" {
		var req stateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			newState = req.NewState
		}
	}

	lead, err := h.TransitionLead.Execute(r.Context(), id, newState)
	if err != nil {
		h.writeError(w, err)
		return
	}

	middleware.RecordStateTransition(string(lead.State))
	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrLeadNotFound):
		respondJSON(w, http.StatusNotFound, ErrorResponse{Error: "lead not found"})

	case errors.Is(err, entity.ErrEmailAlreadyExists):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "lead with this email already exists"})

	default:
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == usecase.CodeValidation {
			respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: domainErr.Message})
			return
		}

		h.Logger.Error("lead request failed", slog.Any("err", err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func leadID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "id must be an integer"})
		return 0, false
	}
	return id, true
}

func queryInt(r *http.Request, name string, fallback int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
