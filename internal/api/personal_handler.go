package api

import (
	"errors"
	"net/http"

	"fitmarket/personal-app/internal/br"
	"fitmarket/personal-app/internal/service"
	"fitmarket/personal-app/internal/validation"

	"github.com/gin-gonic/gin"
)

// PersonalHandler serves the trainer CRUD screens.
type PersonalHandler struct {
	personalService service.PersonalService
}

func NewPersonalHandler(personalService service.PersonalService) *PersonalHandler {
	return &PersonalHandler{personalService: personalService}
}

// List returns every trainer record.
func (h *PersonalHandler) List(c *gin.Context) {
	personals, err := h.personalService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list personals")
		return
	}
	out := make([]PersonalResponse, 0, len(personals))
	for i := range personals {
		out = append(out, toPersonalResponse(&personals[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *PersonalHandler) Get(c *gin.Context) {
	p, err := h.personalService.GetByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		if errors.Is(err, service.ErrPersonalNotFound) {
			abortWithError(c, http.StatusNotFound, "Personal não encontrado")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch personal")
		return
	}
	c.JSON(http.StatusOK, toPersonalResponse(p))
}

// Update edits the authenticated trainer's own record. The CPF in the
// path must match the session; the CPF itself is never edited.
func (h *PersonalHandler) Update(c *gin.Context) {
	if !h.requireSelf(c) {
		return
	}

	var req PersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, err := h.personalService.Update(c.Request.Context(), c.Param("cpf"), req.toForm())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPersonalResponse(p))
}

// Delete removes the record from the collection outright.
func (h *PersonalHandler) Delete(c *gin.Context) {
	if !h.requireSelf(c) {
		return
	}
	if err := h.personalService.Delete(c.Request.Context(), c.Param("cpf")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete personal")
		return
	}
	c.Status(http.StatusNoContent)
}

// Desativar keeps the record but marks it inactive.
func (h *PersonalHandler) Desativar(c *gin.Context) {
	if !h.requireSelf(c) {
		return
	}
	p, err := h.personalService.Deactivate(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPersonalResponse(p))
}

// requireSelf aborts unless the path CPF matches the session CPF.
func (h *PersonalHandler) requireSelf(c *gin.Context) bool {
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

func (h *PersonalHandler) respondError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	switch {
	case errors.As(err, &fieldErrs):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
	case errors.Is(err, service.ErrPersonalNotFound):
		abortWithError(c, http.StatusNotFound, "Personal não encontrado")
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
