package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitmarket/personal-app/internal/kv"
	"fitmarket/personal-app/internal/repository/kvstore"
	"fitmarket/personal-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testJWTSecret = "test-secret-key"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := kv.NewMemory()
	logger := zap.NewNop()

	personalRepo := kvstore.NewPersonalRepository(store, logger)
	alunoRepo := kvstore.NewAlunoRepository(store, logger)
	servicoRepo := kvstore.NewServicoRepository(store, logger)
	contratoRepo := kvstore.NewContratoRepository(store, logger)

	authService := service.NewAuthService(personalRepo, alunoRepo, testJWTSecret, time.Hour, logger)
	suggester := service.NewPasswordSuggester("", 0, logger)
	personalService := service.NewPersonalService(personalRepo, logger)
	alunoService := service.NewAlunoService(alunoRepo, logger)
	servicoService := service.NewServicoService(servicoRepo, logger)
	contratoService := service.NewContratoService(contratoRepo, servicoRepo, logger)
	backupService := service.NewBackupService(store, nil, logger)

	router := gin.New()
	SetupRoutes(router, testJWTSecret,
		authService, suggester, personalService, alunoService,
		servicoService, contratoService, backupService)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func personalPayload() gin.H {
	return gin.H{
		"cpf":                   "529.982.247-25",
		"nome":                  "Ana Silva",
		"data_nascimento":       "1990-05-10",
		"email":                 "ana@exemplo.com",
		"celular":               "11987654321",
		"sexo":                  "Feminino",
		"etnia":                 "Parda",
		"estado_civil":          "Solteira",
		"registro_profissional": "CREF12345",
		"horarios_disponiveis":  10.0,
		"locais_disponiveis":    "Zona Sul de São Paulo",
		"conta":                 123456,
		"agencia":               55,
		"senha":                 "segredo!@",
	}
}

func alunoPayload() gin.H {
	return gin.H{
		"pessoa": gin.H{
			"cpf":             "123.456.789-09",
			"nome":            "Bruno Costa",
			"data_nascimento": "1995-03-20",
			"email":           "bruno@exemplo.com",
			"celular":         "21998765432",
			"sexo":            "Masculino",
			"etnia":           "Branca",
			"estado_civil":    "Casado",
		},
		"bioimpedancia":         15.2,
		"altura":                1.78,
		"agua_corporal":         40.1,
		"proteina":              11.3,
		"minerais":              3.9,
		"gordura_corporal":      18.5,
		"peso":                  82.4,
		"musculo_esqueletico":   35.0,
		"imc":                   26.0,
		"taxa_metabolica_basal": 1700,
		"data_exame":            "2024-11-02",
		"hora_exame":            "08:30",
		"senha":                 "forte#1!",
	}
}

func registerAndLoginPersonal(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/personais/register", "", personalPayload())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/personais/login", "", gin.H{
		"cpf": "52998224725", "senha": "segredo!@",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func registerAndLoginAluno(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/alunos/register", "", alunoPayload())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/alunos/login", "", gin.H{
		"cpf": "12345678909", "senha": "forte#1!",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRegisterPersonal_DuplicateCPF(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/personais/register", "", personalPayload())
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Same CPF with a different mask still conflicts.
	payload := personalPayload()
	payload["cpf"] = "52998224725"
	rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/personais/register", "", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "CPF já cadastrado")
}

func TestRegisterPersonal_ValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	payload := personalPayload()
	payload["cpf"] = "111.111.111-11"
	payload["senha"] = "abc"
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/personais/register", "", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Errors, "cpf")
	assert.Contains(t, body.Errors, "senha")
	assert.NotContains(t, body.Errors, "nome")
}

func TestLogin_WrongSenha(t *testing.T) {
	router := newTestRouter(t)
	registerAndLoginPersonal(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/personais/login", "", gin.H{
		"cpf": "52998224725", "senha": "errada!!",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/personais", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_ReturnsSessionIdentity(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLoginPersonal(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		CPF  string `json:"cpf"`
		Role string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "52998224725", body.CPF)
	assert.Equal(t, "personal", body.Role)
}

func TestServicoAndContratoFlow(t *testing.T) {
	router := newTestRouter(t)
	trainerToken := registerAndLoginPersonal(t, router)
	studentToken := registerAndLoginAluno(t, router)

	// Trainer offers a service.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/servicos", trainerToken, gin.H{
		"tipo":      "Musculação",
		"descricao": "Treino de força com acompanhamento",
		"valor":     "150,00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created ServicoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)

	// Students cannot create services.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/servicos", studentToken, gin.H{
		"tipo": "Pilates", "descricao": "Aulas em grupo", "valor": "80,00",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Student hires it.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/contratos", studentToken, gin.H{
		"servico_id": created.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var contrato ContratoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &contrato))
	assert.Equal(t, "ativo", contrato.Status)

	// Both parties see the contract.
	for _, token := range []string{studentToken, trainerToken} {
		rec = doJSON(t, router, http.MethodGet, "/api/v1/contratos", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var list []ContratoResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Len(t, list, 1)
	}

	// Cancel is one-way.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/contratos/1/cancelar", studentToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/v1/contratos/1/cancelar", studentToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServicoRoutes_MeusAndByID(t *testing.T) {
	router := newTestRouter(t)
	trainerToken := registerAndLoginPersonal(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/servicos", trainerToken, gin.H{
		"tipo":      "Funcional",
		"descricao": "Circuito funcional ao ar livre",
		"valor":     "90,00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// The static /meus route coexists with the /:id parameter route.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/servicos/meus", trainerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var mine []ServicoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	assert.Len(t, mine, 1)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/servicos/1", trainerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got ServicoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Funcional", got.Tipo)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/servicos/99", trainerToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBackupDisabledReturnsNotImplemented(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLoginPersonal(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/backups", token, nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/backups?object_key=backups/x.json", token, nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}
