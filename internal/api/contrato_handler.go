package api

import (
	"errors"
	"net/http"
	"strconv"

	"fitmarket/personal-app/internal/domain"
	"fitmarket/personal-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ContratoHandler serves the contract screens: hiring, listing per
// role, cancellation.
type ContratoHandler struct {
	contratoService service.ContratoService
}

func NewContratoHandler(contratoService service.ContratoService) *ContratoHandler {
	return &ContratoHandler{contratoService: contratoService}
}

type HireRequest struct {
	ServicoID int `json:"servico_id" binding:"required"`
}

// Hire creates an active contract for the authenticated student.
func (h *ContratoHandler) Hire(c *gin.Context) {
	alunoCPF, err := getUserCPFFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return
	}

	var req HireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	ct, err := h.contratoService.Hire(c.Request.Context(), alunoCPF, req.ServicoID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create contrato")
		return
	}
	c.JSON(http.StatusCreated, toContratoResponse(ct))
}

// ListMine returns the contracts visible to the session: the student's
// own, or the ones on services the trainer owns.
func (h *ContratoHandler) ListMine(c *gin.Context) {
	cpf, err := getUserCPFFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return
	}
	role, err := getUserRoleFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get role from token")
		return
	}

	var contratos []domain.Contrato
	if role == domain.RoleAluno {
		contratos, err = h.contratoService.ListForAluno(c.Request.Context(), cpf)
	} else {
		contratos, err = h.contratoService.ListForPersonal(c.Request.Context(), cpf)
	}
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list contratos")
		return
	}

	out := make([]ContratoResponse, 0, len(contratos))
	for i := range contratos {
		out = append(out, toContratoResponse(&contratos[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Cancel moves a contract to cancelado; the transition is one-way.
func (h *ContratoHandler) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid contrato id")
		return
	}
	cpf, err := getUserCPFFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return
	}
	role, err := getUserRoleFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get role from token")
		return
	}

	ct, err := h.contratoService.Cancel(c.Request.Context(), id, cpf, role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContratoNotFound):
			abortWithError(c, http.StatusNotFound, "Contrato não encontrado")
		case errors.Is(err, service.ErrContratoNotVisible):
			abortWithError(c, http.StatusForbidden, "Contrato não pertence a este usuário")
		case errors.Is(err, service.ErrContratoCancelado):
			abortWithError(c, http.StatusConflict, "Contrato já cancelado")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to cancel contrato")
		}
		return
	}
	c.JSON(http.StatusOK, toContratoResponse(ct))
}
