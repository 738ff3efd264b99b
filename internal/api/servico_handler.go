package api

import (
	"errors"
	"net/http"
	"strconv"

	"fitmarket/personal-app/internal/service"
	"fitmarket/personal-app/internal/validation"

	"github.com/gin-gonic/gin"
)

// ServicoHandler serves the service-offering CRUD screens.
type ServicoHandler struct {
	servicoService service.ServicoService
}

func NewServicoHandler(servicoService service.ServicoService) *ServicoHandler {
	return &ServicoHandler{servicoService: servicoService}
}

type ServicoRequest struct {
	Tipo      string `json:"tipo"`
	Descricao string `json:"descricao"`
	Valor     string `json:"valor"`
}

func (r ServicoRequest) toForm() validation.ServicoForm {
	return validation.ServicoForm{Tipo: r.Tipo, Descricao: r.Descricao, Valor: r.Valor}
}

// Create registers an offering owned by the authenticated trainer.
func (h *ServicoHandler) Create(c *gin.Context) {
	ownerCPF, err := getUserCPFFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return
	}

	var req ServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sv, err := h.servicoService.Create(c.Request.Context(), ownerCPF, req.toForm())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toServicoResponse(sv))
}

// List returns every offering; students browse this to hire.
func (h *ServicoHandler) List(c *gin.Context) {
	servicos, err := h.servicoService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list servicos")
		return
	}
	out := make([]ServicoResponse, 0, len(servicos))
	for i := range servicos {
		out = append(out, toServicoResponse(&servicos[i]))
	}
	c.JSON(http.StatusOK, out)
}

// ListMine returns only the authenticated trainer's offerings.
func (h *ServicoHandler) ListMine(c *gin.Context) {
	ownerCPF, err := getUserCPFFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return
	}
	servicos, err := h.servicoService.GetByOwner(c.Request.Context(), ownerCPF)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list servicos")
		return
	}
	out := make([]ServicoResponse, 0, len(servicos))
	for i := range servicos {
		out = append(out, toServicoResponse(&servicos[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ServicoHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	sv, err := h.servicoService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toServicoResponse(sv))
}

func (h *ServicoHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ownerCPF, err := getUserCPFFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return
	}

	var req ServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sv, err := h.servicoService.Update(c.Request.Context(), id, ownerCPF, req.toForm())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toServicoResponse(sv))
}

func (h *ServicoHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ownerCPF, err := getUserCPFFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return
	}
	if err := h.servicoService.Delete(c.Request.Context(), id, ownerCPF); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServicoHandler) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid servico id")
		return 0, false
	}
	return id, true
}

func (h *ServicoHandler) respondError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	switch {
	case errors.As(err, &fieldErrs):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
	case errors.Is(err, service.ErrServicoNotFound):
		abortWithError(c, http.StatusNotFound, "Serviço não encontrado")
	case errors.Is(err, service.ErrNotServicoOwner):
		abortWithError(c, http.StatusForbidden, "Serviço pertence a outro personal")
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
