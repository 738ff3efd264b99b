package api

import (
	"errors"
	"net/http"

	"fitmarket/personal-app/internal/br"
	"fitmarket/personal-app/internal/service"
	"fitmarket/personal-app/internal/validation"

	"github.com/gin-gonic/gin"
)

// AlunoHandler serves the student CRUD screens.
type AlunoHandler struct {
	alunoService service.AlunoService
}

func NewAlunoHandler(alunoService service.AlunoService) *AlunoHandler {
	return &AlunoHandler{alunoService: alunoService}
}

func (h *AlunoHandler) List(c *gin.Context) {
	alunos, err := h.alunoService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list alunos")
		return
	}
	out := make([]AlunoResponse, 0, len(alunos))
	for i := range alunos {
		out = append(out, toAlunoResponse(&alunos[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *AlunoHandler) Get(c *gin.Context) {
	a, err := h.alunoService.GetByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		if errors.Is(err, service.ErrAlunoNotFound) {
			abortWithError(c, http.StatusNotFound, "Aluno não encontrado")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch aluno")
		return
	}
	c.JSON(http.StatusOK, toAlunoResponse(a))
}

func (h *AlunoHandler) Update(c *gin.Context) {
	if !h.requireSelf(c) {
		return
	}

	var req AlunoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	a, err := h.alunoService.Update(c.Request.Context(), c.Param("cpf"), req.toForm())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAlunoResponse(a))
}

func (h *AlunoHandler) Delete(c *gin.Context) {
	if !h.requireSelf(c) {
		return
	}
	if err := h.alunoService.Delete(c.Request.Context(), c.Param("cpf")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete aluno")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AlunoHandler) Desativar(c *gin.Context) {
	if !h.requireSelf(c) {
		return
	}
	a, err := h.alunoService.Deactivate(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAlunoResponse(a))
}

func (h *AlunoHandler) requireSelf(c *gin.Context) bool {
	sessionCPF, err := getUserCPFFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user from token")
		return false
	}
	if br.OnlyDigits(c.Param("cpf")) != sessionCPF {
		abortWithError(c, http.StatusForbidden, "Operação permitida apenas no próprio cadastro")
		return false
	}
	return true
}

func (h *AlunoHandler) respondError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	switch {
	case errors.As(err, &fieldErrs):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
	case errors.Is(err, service.ErrAlunoNotFound):
		abortWithError(c, http.StatusNotFound, "Aluno não encontrado")
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
