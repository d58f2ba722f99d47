// internal/api/handler/transacao.go
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Bomfimdev/controle-financeiro/internal/domain"
	"github.com/Bomfimdev/controle-financeiro/internal/service"
)

// TransacaoHandler handles HTTP requests for the /transacoes resource.
type TransacaoHandler struct {
	service service.TransacaoService
	logger  *slog.Logger
}

// NewTransacaoHandler creates a new TransacaoHandler.
func NewTransacaoHandler(svc service.TransacaoService, logger *slog.Logger) *TransacaoHandler {
	return &TransacaoHandler{
		service: svc,
		logger:  logger,
	}
}

// ContaRef is a shallow reference to the owning account.
type ContaRef struct {
	ID string `json:"id"`
}

// TransacaoRequest is the inbound wire representation of a transaction.
type TransacaoRequest struct {
	ID        string           `json:"id,omitempty"`
	Descricao string           `json:"descricao"`
	Valor     *decimal.Decimal `json:"valor"`
	Data      domain.Date      `json:"data"`
	Tipo      string           `json:"tipo"`
	Categoria string           `json:"categoria"`
	Conta     *ContaRef        `json:"conta"`
	Usuario   *UsuarioRef      `json:"usuario"`
}

// TransacaoResponse is the outbound wire representation of a transaction.
type TransacaoResponse struct {
	ID                string          `json:"id"`
	Descricao         string          `json:"descricao"`
	Valor             decimal.Decimal `json:"valor"`
	Data              domain.Date     `json:"data"`
	Tipo              string          `json:"tipo"`
	Categoria         string          `json:"categoria"`
	Conta             ContaRef        `json:"conta"`
	Usuario           UsuarioRef      `json:"usuario"`
	DataCriacao       time.Time       `json:"dataCriacao"`
	UltimaAtualizacao time.Time       `json:"ultimaAtualizacao"`
}

func transacaoFromRequest(req *TransacaoRequest) *domain.Transacao {
	transacao := &domain.Transacao{
		ID:        req.ID,
		Descricao: req.Descricao,
		Data:      req.Data,
		Tipo:      domain.TipoTransacao(req.Tipo),
		Categoria: req.Categoria,
	}
	if req.Valor != nil {
		transacao.Valor = *req.Valor
	}
	if req.Conta != nil {
		transacao.ContaID = req.Conta.ID
	}
	if req.Usuario != nil {
		transacao.UsuarioID = req.Usuario.ID
	}
	return transacao
}

func transacaoToResponse(transacao *domain.Transacao) TransacaoResponse {
	return TransacaoResponse{
		ID:                transacao.ID,
		Descricao:         transacao.Descricao,
		Valor:             transacao.Valor,
		Data:              transacao.Data,
		Tipo:              string(transacao.Tipo),
		Categoria:         transacao.Categoria,
		Conta:             ContaRef{ID: transacao.ContaID},
		Usuario:           UsuarioRef{ID: transacao.UsuarioID},
		DataCriacao:       transacao.DataCriacao,
		UltimaAtualizacao: transacao.UltimaAtualizacao,
	}
}

// ListarTransacoes handles GET /transacoes.
func (h *TransacaoHandler) ListarTransacoes(w http.ResponseWriter, r *http.Request) {
	transacoes, err := h.service.ListarTransacoes(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	resp := make([]TransacaoResponse, len(transacoes))
	for i := range transacoes {
		resp[i] = transacaoToResponse(&transacoes[i])
	}
	respondWithJSON(w, h.logger, http.StatusOK, resp)
}

// BuscarTransacao handles GET /transacoes/{id}.
func (h *TransacaoHandler) BuscarTransacao(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	transacao, err := h.service.BuscarTransacao(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, transacaoToResponse(transacao))
}

// CriarTransacao handles POST /transacoes.
func (h *TransacaoHandler) CriarTransacao(w http.ResponseWriter, r *http.Request) {
	var req TransacaoRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	transacao, err := h.service.CriarTransacao(r.Context(), transacaoFromRequest(&req))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, transacaoToResponse(transacao))
}

// AtualizarTransacao handles PUT /transacoes/{id}.
func (h *TransacaoHandler) AtualizarTransacao(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req TransacaoRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	transacao, err := h.service.AtualizarTransacao(r.Context(), id, transacaoFromRequest(&req))
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, transacaoToResponse(transacao))
}

// DeletarTransacao handles DELETE /transacoes/{id}.
func (h *TransacaoHandler) DeletarTransacao(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeletarTransacao(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
