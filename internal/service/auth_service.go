package service

import (
	"context"
	"errors"
	"time"

	"fitmarket/personal-app/internal/br"
	"fitmarket/personal-app/internal/domain"
	"fitmarket/personal-app/internal/repository"
	"fitmarket/personal-app/internal/validation"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrAlreadyRegistered    = errors.New("a record with this CPF already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid CPF or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

// AuthService registers and authenticates both account kinds. A login
// yields a JWT carrying the CPF and exactly one role claim, which is
// what makes the trainer and student sessions mutually exclusive.
type AuthService interface {
	RegisterPersonal(ctx context.Context, form validation.PersonalForm) (*domain.Personal, error)
	RegisterAluno(ctx context.Context, form validation.AlunoForm) (*domain.Aluno, error)
	LoginPersonal(ctx context.Context, cpf, senha string) (token string, p *domain.Personal, err error)
	LoginAluno(ctx context.Context, cpf, senha string) (token string, a *domain.Aluno, err error)
	GetJWTSecret() string
}

type authService struct {
	personalRepo  repository.PersonalRepository
	alunoRepo     repository.AlunoRepository
	jwtSecret     string
	jwtExpiration time.Duration
	logger        *zap.Logger
}

// NewAuthService creates a new instance of authService.
func NewAuthService(
	personalRepo repository.PersonalRepository,
	alunoRepo repository.AlunoRepository,
	jwtSecret string,
	jwtExpiration time.Duration,
	logger *zap.Logger,
) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		personalRepo:  personalRepo,
		alunoRepo:     alunoRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		logger:        logger,
	}
}

// RegisterPersonal validates the form, normalizes the masked fields
// and persists a new trainer. A taken CPF maps to ErrAlreadyRegistered.
func (s *authService) RegisterPersonal(ctx context.Context, form validation.PersonalForm) (*domain.Personal, error) {
	if err := validation.ValidatePersonal(form, false).OrNil(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	p := &domain.Personal{
		CPF:                     br.OnlyDigits(form.CPF),
		Nome:                    form.Nome,
		NomeSocial:              form.NomeSocial,
		DataNascimento:          form.DataNascimento,
		Email:                   form.Email,
		Celular:                 br.OnlyDigits(form.Celular),
		Sexo:                    form.Sexo,
		Etnia:                   form.Etnia,
		EstadoCivil:             form.EstadoCivil,
		RegistroProfissional:    form.RegistroProfissional,
		Especialidades:          form.Especialidades,
		ExperienciaProfissional: form.ExperienciaProfissional,
		HorariosDisponiveis:     form.HorariosDisponiveis,
		LocaisDisponiveis:       form.LocaisDisponiveis,
		Conta:                   form.Conta,
		Agencia:                 form.Agencia,
		SenhaHash:               string(hash),
		Ativo:                   true,
	}

	if err := s.personalRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	s.logger.Info("personal registered", zap.String("cpf", p.CPF))
	return p, nil
}

// RegisterAluno validates the form, normalizes the masked fields and
// persists a new student. The repository assigns the sequential id.
func (s *authService) RegisterAluno(ctx context.Context, form validation.AlunoForm) (*domain.Aluno, error) {
	if err := validation.ValidateAluno(form, false).OrNil(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	a := &domain.Aluno{
		Pessoa: domain.Pessoa{
			CPF:            br.OnlyDigits(form.Pessoa.CPF),
			Nome:           form.Pessoa.Nome,
			NomeSocial:     form.Pessoa.NomeSocial,
			DataNascimento: form.Pessoa.DataNascimento,
			Email:          form.Pessoa.Email,
			Celular:        br.OnlyDigits(form.Pessoa.Celular),
			Sexo:           form.Pessoa.Sexo,
			Etnia:          form.Pessoa.Etnia,
			EstadoCivil:    form.Pessoa.EstadoCivil,
		},
		Bioimpedancia:       form.Bioimpedancia,
		Altura:              form.Altura,
		AguaCorporal:        form.AguaCorporal,
		Proteina:            form.Proteina,
		Minerais:            form.Minerais,
		GorduraCorporal:     form.GorduraCorporal,
		Peso:                form.Peso,
		MusculoEsqueletico:  form.MusculoEsqueletico,
		IMC:                 form.IMC,
		TaxaMetabolicaBasal: form.TaxaMetabolicaBasal,
		DataExame:           form.DataExame,
		HoraExame:           form.HoraExame,
		SenhaHash:           string(hash),
		Ativo:               true,
	}

	if err := s.alunoRepo.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	s.logger.Info("aluno registered", zap.String("cpf", a.Pessoa.CPF), zap.Int("id", a.ID))
	return a, nil
}

// LoginPersonal authenticates a trainer by normalized CPF and password.
// Not-found and wrong password both map to ErrAuthenticationFailed.
func (s *authService) LoginPersonal(ctx context.Context, cpf, senha string) (string, *domain.Personal, error) {
	if cpf == "" || senha == "" {
		return "", nil, ErrAuthenticationFailed
	}

	p, err := s.personalRepo.GetByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(p.SenhaHash), []byte(senha)) != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := s.generateJWT(p.CPF, domain.RolePersonal)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, p, nil
}

// LoginAluno authenticates a student by the nested pessoa CPF.
func (s *authService) LoginAluno(ctx context.Context, cpf, senha string) (string, *domain.Aluno, error) {
	if cpf == "" || senha == "" {
		return "", nil, ErrAuthenticationFailed
	}

	a, err := s.alunoRepo.GetByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(a.SenhaHash), []byte(senha)) != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := s.generateJWT(a.Pessoa.CPF, domain.RoleAluno)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, a, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	CPF  string      `json:"cpf"`
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(cpf string, role domain.Role) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		CPF:  cpf,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cpf,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "personal-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// GetJWTSecret returns the JWT secret for middleware authentication.
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
