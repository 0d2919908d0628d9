package users

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/simple-twitter/simple-twitter/internal/identity"
	"github.com/simple-twitter/simple-twitter/internal/platform/httpx"
)

// Handler wires HTTP endpoints for account flows.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers user routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/", h.register)
	r.Patch("/confirm", h.confirm)
	r.Post("/login", h.login)
	r.Patch("/", h.update)
	r.Get("/info", h.info)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Bad Request Exception", "request body is not valid", "json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondValidationError(w, err)
		return
	}
	if err := h.service.Register(r.Context(), req); err != nil {
		h.logger.Error("register user", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Bad Request Exception", "request body is not valid", "json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondValidationError(w, err)
		return
	}
	message, err := h.service.Confirm(r.Context(), req.Email)
	if err != nil {
		h.logger.Error("confirm user", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusAccepted, GenericResponse{Message: message})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Bad Request Exception", "request body is not valid", "json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondValidationError(w, err)
		return
	}
	response, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, response)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	principal := identity.PrincipalFromContext(r.Context())
	if principal == nil {
		httpx.Error(w, http.StatusUnauthorized, "Authentication Failure", "Token is not valid", "shared.ErrAuthentication")
		return
	}
	var req UpdateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Bad Request Exception", "request body is not valid", "json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.RespondValidationError(w, err)
		return
	}
	message, err := h.service.Update(r.Context(), principal.Subject, req)
	if err != nil {
		h.logger.Error("update user", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusAccepted, GenericResponse{Message: message})
}

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	principal := identity.PrincipalFromContext(r.Context())
	if principal == nil {
		httpx.Error(w, http.StatusUnauthorized, "Authentication Failure", "Token is not valid", "shared.ErrAuthentication")
		return
	}
	response, err := h.service.GetInfo(r.Context(), principal.Subject)
	if err != nil {
		h.logger.Error("user info", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, response)
}
