// internal/api/handler/usuario.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Bomfimdev/controle-financeiro/internal/domain"
	"github.com/Bomfimdev/controle-financeiro/internal/service"
)

// UsuarioHandler handles HTTP requests for the /usuarios resource.
type UsuarioHandler struct {
	service service.UsuarioService
	logger  *slog.Logger
}

// NewUsuarioHandler creates a new UsuarioHandler.
func NewUsuarioHandler(svc service.UsuarioService, logger *slog.Logger) *UsuarioHandler {
	return &UsuarioHandler{
		service: svc,
		logger:  logger,
	}
}

// UsuarioRequest is the inbound wire representation of a user.
// Senha is accepted here and nowhere serialized back.
type UsuarioRequest struct {
	ID        string  `json:"id,omitempty"`
	Nome      string  `json:"nome"`
	Sobrenome string  `json:"sobrenome"`
	Email     string  `json:"email"`
	Senha     string  `json:"senha"`
	AvatarURL *string `json:"avatarUrl"`
}

// UsuarioResponse is the outbound wire representation of a user.
// It deliberately has no senha field.
type UsuarioResponse struct {
	ID                string    `json:"id"`
	Nome              string    `json:"nome"`
	Sobrenome         string    `json:"sobrenome"`
	Email             string    `json:"email"`
	AvatarURL         *string   `json:"avatarUrl,omitempty"`
	DataCriacao       time.Time `json:"dataCriacao"`
	UltimaAtualizacao time.Time `json:"ultimaAtualizacao"`
}

func usuarioFromRequest(req *UsuarioRequest) *domain.Usuario {
	return &domain.Usuario{
		ID:        req.ID,
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Email:     req.Email,
		Senha:     req.Senha,
		AvatarURL: req.AvatarURL,
	}
}

func usuarioToResponse(usuario *domain.Usuario) UsuarioResponse {
	return UsuarioResponse{
		ID:                usuario.ID,
		Nome:              usuario.Nome,
		Sobrenome:         usuario.Sobrenome,
		Email:             usuario.Email,
		AvatarURL:         usuario.AvatarURL,
		DataCriacao:       usuario.DataCriacao,
		UltimaAtualizacao: usuario.UltimaAtualizacao,
	}
}

// ListarUsuarios handles GET /usuarios.
func (h *UsuarioHandler) ListarUsuarios(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.service.ListarUsuarios(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	resp := make([]UsuarioResponse, len(usuarios))
	for i := range usuarios {
		resp[i] = usuarioToResponse(&usuarios[i])
	}
	respondWithJSON(w, h.logger, http.StatusOK, resp)
}

// BuscarUsuario handles GET /usuarios/{id}.
func (h *UsuarioHandler) BuscarUsuario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	usuario, err := h.service.BuscarUsuario(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, usuarioToResponse(usuario))
}

// CriarUsuario handles POST /usuarios.
func (h *UsuarioHandler) CriarUsuario(w http.ResponseWriter, r *http.Request) {
	var req UsuarioRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	usuario, err := h.service.CriarUsuario(r.Context(), usuarioFromRequest(&req))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, usuarioToResponse(usuario))
}

// AtualizarUsuario handles PUT /usuarios/{id}.
func (h *UsuarioHandler) AtualizarUsuario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UsuarioRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	usuario, err := h.service.AtualizarUsuario(r.Context(), id, usuarioFromRequest(&req))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, usuarioToResponse(usuario))
}

// DeletarUsuario handles DELETE /usuarios/{id}.
func (h *UsuarioHandler) DeletarUsuario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeletarUsuario(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
