// internal/api/handler/conta.go
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Bomfimdev/controle-financeiro/internal/domain"
	"github.com/Bomfimdev/controle-financeiro/internal/service"
	"github.com/Bomfimdev/controle-financeiro/internal/util"
)

// ContaHandler handles HTTP requests for the /contas resource.
type ContaHandler struct {
	service service.ContaService
	logger  *slog.Logger
}

// NewContaHandler creates a new ContaHandler.
func NewContaHandler(svc service.ContaService, logger *slog.Logger) *ContaHandler {
	return &ContaHandler{
		service: svc,
		logger:  logger,
	}
}

// UsuarioRef is a shallow reference to an owning user.
type UsuarioRef struct {
	ID string `json:"id"`
}

// ContaRequest is the inbound wire representation of an account.
// Saldo is a pointer so a missing field can be told apart from zero.
type ContaRequest struct {
	ID      string           `json:"id,omitempty"`
	Nome    string           `json:"nome"`
	Saldo   *decimal.Decimal `json:"saldo"`
	Tipo    string           `json:"tipo"`
	Usuario *UsuarioRef      `json:"usuario"`
}

// ContaResponse is the outbound wire representation of an account.
type ContaResponse struct {
	ID              string          `json:"id"`
	Nome            string          `json:"nome"`
	Saldo           decimal.Decimal `json:"saldo"`
	Tipo            string          `json:"tipo"`
	Usuario         UsuarioRef      `json:"usuario"`
	DataCriacao     time.Time       `json:"dataCriacao"`
	DataAtualizacao *time.Time      `json:"dataAtualizacao"`
}

func contaFromRequest(req *ContaRequest) (*domain.Conta, error) {
	if req.Saldo == nil {
		return nil, fmt.Errorf("%w: saldo é obrigatório", util.ErrInvalidInput)
	}
	conta := &domain.Conta{
		ID:    req.ID,
		Nome:  req.Nome,
		Saldo: *req.Saldo,
		Tipo:  req.Tipo,
	}
	if req.Usuario != nil {
		conta.UsuarioID = req.Usuario.ID
	}
	return conta, nil
}

func contaToResponse(conta *domain.Conta) ContaResponse {
	return ContaResponse{
		ID:              conta.ID,
		Nome:            conta.Nome,
		Saldo:           conta.Saldo,
		Tipo:            conta.Tipo,
		Usuario:         UsuarioRef{ID: conta.UsuarioID},
		DataCriacao:     conta.DataCriacao,
		DataAtualizacao: conta.DataAtualizacao,
	}
}

// ListarContas handles GET /contas.
func (h *ContaHandler) ListarContas(w http.ResponseWriter, r *http.Request) {
	contas, err := h.service.ListarContas(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	resp := make([]ContaResponse, len(contas))
	for i := range contas {
		resp[i] = contaToResponse(&contas[i])
	}
	respondWithJSON(w, h.logger, http.StatusOK, resp)
}

// BuscarConta handles GET /contas/{id}.
func (h *ContaHandler) BuscarConta(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	conta, err := h.service.BuscarConta(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, contaToResponse(conta))
}

// CriarConta handles POST /contas.
func (h *ContaHandler) CriarConta(w http.ResponseWriter, r *http.Request) {
	var req ContaRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	conta, err := contaFromRequest(&req)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	conta, err = h.service.CriarConta(r.Context(), conta)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, contaToResponse(conta))
}

// AtualizarConta handles PUT /contas/{id}.
func (h *ContaHandler) AtualizarConta(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ContaRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	conta, err := contaFromRequest(&req)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	conta, err = h.service.AtualizarConta(r.Context(), id, conta)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, contaToResponse(conta))
}

// DeletarConta handles DELETE /contas/{id}.
func (h *ContaHandler) DeletarConta(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeletarConta(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
