package domain

// Pessoa holds the personal-info block shared by student records.
// The nested CPF (digits only) is the natural key of the Aluno.
type Pessoa struct {
	CPF            string `json:"cpf"`
	Nome           string `json:"nome"`
	NomeSocial     string `json:"nome_social,omitempty"`
	DataNascimento string `json:"data_nascimento"` // YYYY-MM-DD
	Email          string `json:"email"`
	Celular        string `json:"celular"` // digits only
	Sexo           string `json:"sexo"`
	Etnia          string `json:"etnia"`
	EstadoCivil    string `json:"estado_civil"`
}

// Aluno represents a student account together with its latest
// health-exam measurements.
type Aluno struct {
	ID                  int     `json:"id"`
	Pessoa              Pessoa  `json:"pessoa"`
	Bioimpedancia       float64 `json:"bioimpedancia"`
	Altura              float64 `json:"altura"`
	AguaCorporal        float64 `json:"agua_corporal"`
	Proteina            float64 `json:"proteina"`
	Minerais            float64 `json:"minerais"`
	GorduraCorporal     float64 `json:"gordura_corporal"`
	Peso                float64 `json:"peso"`
	MusculoEsqueletico  float64 `json:"musculo_esqueletico"`
	IMC                 float64 `json:"imc"`
	TaxaMetabolicaBasal int     `json:"taxa_metabolica_basal"` // kcal
	DataExame           string  `json:"data_exame"`            // YYYY-MM-DD, before today
	HoraExame           string  `json:"hora_exame"`            // HH:MM
	SenhaHash           string  `json:"senha_hash"`
	Ativo               bool    `json:"ativo"`
}

func (a *Aluno) Desativar() {
	a.Ativo = false
}
