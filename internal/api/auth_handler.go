package api

import (
	"errors"
	"net/http"

	"fitmarket/personal-app/internal/service"
	"fitmarket/personal-app/internal/validation"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
	suggester   service.PasswordSuggester
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, suggester service.PasswordSuggester) *AuthHandler {
	return &AuthHandler{authService: authService, suggester: suggester}
}

// --- Request/Response Structs ---

// PersonalRequest mirrors the trainer registration/edit form. Masked
// CPF and celular values are accepted; normalization happens after
// validation.
type PersonalRequest struct {
	CPF                     string  `json:"cpf"`
	Nome                    string  `json:"nome"`
	NomeSocial              string  `json:"nome_social"`
	DataNascimento          string  `json:"data_nascimento"`
	Email                   string  `json:"email"`
	Celular                 string  `json:"celular"`
	Sexo                    string  `json:"sexo"`
	Etnia                   string  `json:"etnia"`
	EstadoCivil             string  `json:"estado_civil"`
	RegistroProfissional    string  `json:"registro_profissional"`
	Especialidades          string  `json:"especialidades"`
	ExperienciaProfissional string  `json:"experiencia_profissional"`
	HorariosDisponiveis     float64 `json:"horarios_disponiveis"`
	LocaisDisponiveis       string  `json:"locais_disponiveis"`
	Conta                   int64   `json:"conta"`
	Agencia                 int64   `json:"agencia"`
	Senha                   string  `json:"senha"`
}

func (r PersonalRequest) toForm() validation.PersonalForm {
	return validation.PersonalForm{
		CPF:                     r.CPF,
		Nome:                    r.Nome,
		NomeSocial:              r.NomeSocial,
		DataNascimento:          r.DataNascimento,
		Email:                   r.Email,
		Celular:                 r.Celular,
		Sexo:                    r.Sexo,
		Etnia:                   r.Etnia,
		EstadoCivil:             r.EstadoCivil,
		RegistroProfissional:    r.RegistroProfissional,
		Especialidades:          r.Especialidades,
		ExperienciaProfissional: r.ExperienciaProfissional,
		HorariosDisponiveis:     r.HorariosDisponiveis,
		LocaisDisponiveis:       r.LocaisDisponiveis,
		Conta:                   r.Conta,
		Agencia:                 r.Agencia,
		Senha:                   r.Senha,
	}
}

// PessoaRequest is the personal-info block of the student form.
type PessoaRequest struct {
	CPF            string `json:"cpf"`
	Nome           string `json:"nome"`
	NomeSocial     string `json:"nome_social"`
	DataNascimento string `json:"data_nascimento"`
	Email          string `json:"email"`
	Celular        string `json:"celular"`
	Sexo           string `json:"sexo"`
	Etnia          string `json:"etnia"`
	EstadoCivil    string `json:"estado_civil"`
}

// AlunoRequest mirrors the student registration/edit form.
type AlunoRequest struct {
	Pessoa              PessoaRequest `json:"pessoa"`
	Bioimpedancia       float64       `json:"bioimpedancia"`
	Altura              float64       `json:"altura"`
	AguaCorporal        float64       `json:"agua_corporal"`
	Proteina            float64       `json:"proteina"`
	Minerais            float64       `json:"minerais"`
	GorduraCorporal     float64       `json:"gordura_corporal"`
	Peso                float64       `json:"peso"`
	MusculoEsqueletico  float64       `json:"musculo_esqueletico"`
	IMC                 float64       `json:"imc"`
	TaxaMetabolicaBasal int           `json:"taxa_metabolica_basal"`
	DataExame           string        `json:"data_exame"`
	HoraExame           string        `json:"hora_exame"`
	Senha               string        `json:"senha"`
}

func (r AlunoRequest) toForm() validation.AlunoForm {
	return validation.AlunoForm{
		Pessoa: validation.PessoaForm{
			CPF:            r.Pessoa.CPF,
			Nome:           r.Pessoa.Nome,
			NomeSocial:     r.Pessoa.NomeSocial,
			DataNascimento: r.Pessoa.DataNascimento,
			Email:          r.Pessoa.Email,
			Celular:        r.Pessoa.Celular,
			Sexo:           r.Pessoa.Sexo,
			Etnia:          r.Pessoa.Etnia,
			EstadoCivil:    r.Pessoa.EstadoCivil,
		},
		Bioimpedancia:       r.Bioimpedancia,
		Altura:              r.Altura,
		AguaCorporal:        r.AguaCorporal,
		Proteina:            r.Proteina,
		Minerais:            r.Minerais,
		GorduraCorporal:     r.GorduraCorporal,
		Peso:                r.Peso,
		MusculoEsqueletico:  r.MusculoEsqueletico,
		IMC:                 r.IMC,
		TaxaMetabolicaBasal: r.TaxaMetabolicaBasal,
		DataExame:           r.DataExame,
		HoraExame:           r.HoraExame,
		Senha:               r.Senha,
	}
}

type LoginRequest struct {
	CPF   string `json:"cpf" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// --- Handler Methods ---

// RegisterPersonal creates a trainer account.
func (h *AuthHandler) RegisterPersonal(c *gin.Context) {
	var req PersonalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, err := h.authService.RegisterPersonal(c.Request.Context(), req.toForm())
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPersonalResponse(p))
}

// RegisterAluno creates a student account.
func (h *AuthHandler) RegisterAluno(c *gin.Context) {
	var req AlunoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	a, err := h.authService.RegisterAluno(c.Request.Context(), req.toForm())
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAlunoResponse(a))
}

// LoginPersonal authenticates a trainer and issues the session token.
func (h *AuthHandler) LoginPersonal(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	token, p, err := h.authService.LoginPersonal(c.Request.Context(), req.CPF, req.Senha)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token, User: toPersonalResponse(p)})
}

// LoginAluno authenticates a student and issues the session token.
func (h *AuthHandler) LoginAluno(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	token, a, err := h.authService.LoginAluno(c.Request.Context(), req.CPF, req.Senha)
	if err != nil {
		respondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token, User: toAlunoResponse(a)})
}

// SuggestPassword proxies the third-party password generator. The
// suggestion is empty when the generator is unreachable or disabled;
// that is not an error from the caller's point of view.
func (h *AuthHandler) SuggestPassword(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"senha": h.suggester.Suggest(c.Request.Context())})
}

// respondAuthError maps service errors to HTTP status codes. A
// validation.Errors value carries the field map into the body.
func respondAuthError(c *gin.Context, err error) {
	var fieldErrs validation.Errors
	switch {
	case errors.As(err, &fieldErrs):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
	case errors.Is(err, service.ErrAlreadyRegistered):
		abortWithError(c, http.StatusConflict, "CPF já cadastrado")
	case errors.Is(err, service.ErrAuthenticationFailed):
		abortWithError(c, http.StatusUnauthorized, "CPF ou senha inválidos")
	default:
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
