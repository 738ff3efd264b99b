package domain

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RolePersonal Role = "personal"
	RoleAluno    Role = "aluno"
)

// Personal represents a trainer account. The CPF (digits only) is the
// natural key of the record; it never changes after registration.
type Personal struct {
	CPF                     string  `json:"cpf"`
	Nome                    string  `json:"nome"`
	NomeSocial              string  `json:"nome_social,omitempty"`
	DataNascimento          string  `json:"data_nascimento"` // YYYY-MM-DD
	Email                   string  `json:"email"`
	Celular                 string  `json:"celular"` // digits only
	Sexo                    string  `json:"sexo"`
	Etnia                   string  `json:"etnia"`
	EstadoCivil             string  `json:"estado_civil"`
	RegistroProfissional    string  `json:"registro_profissional"`
	Especialidades          string  `json:"especialidades,omitempty"`
	ExperienciaProfissional string  `json:"experiencia_profissional,omitempty"`
	HorariosDisponiveis     float64 `json:"horarios_disponiveis"`
	LocaisDisponiveis       string  `json:"locais_disponiveis"`
	Conta                   int64   `json:"conta"`
	Agencia                 int64   `json:"agencia"`
	SenhaHash               string  `json:"senha_hash"` // bcrypt, never exposed via the API
	Ativo                   bool    `json:"ativo"`
}

// Desativar marks the record logically inactive without removing it
// from the collection. Hard removal is a separate repository operation.
func (p *Personal) Desativar() {
	p.Ativo = false
}
