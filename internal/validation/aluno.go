package validation

// PessoaForm is the personal-info block shared by the student forms.
type PessoaForm struct {
	CPF            string
	Nome           string
	NomeSocial     string
	DataNascimento string
	Email          string
	Celular        string
	Sexo           string
	Etnia          string
	EstadoCivil    string
}

// AlunoForm is the raw registration/edit input for a student: the
// pessoa block plus the health-exam measurements.
type AlunoForm struct {
	Pessoa              PessoaForm
	Bioimpedancia       float64
	Altura              float64
	AguaCorporal        float64
	Proteina            float64
	Minerais            float64
	GorduraCorporal     float64
	Peso                float64
	MusculoEsqueletico  float64
	IMC                 float64
	TaxaMetabolicaBasal int
	DataExame           string
	HoraExame           string
	Senha               string
}

// ValidateAluno runs the student rule chains. Pessoa fields use the
// same rules as the trainer form; exam dates have no age ceiling.
func ValidateAluno(f AlunoForm, allowSenhaVazia bool) Errors {
	errs := Errors{}
	p := f.Pessoa
	errs.check("cpf", required(p.CPF), cpf(p.CPF))
	errs.check("nome", required(p.Nome), minLen(p.Nome, 3), maxLen(p.Nome, 100), nomeProprio(p.Nome))
	if p.NomeSocial != "" {
		errs.check("nome_social", minLen(p.NomeSocial, 3), maxLen(p.NomeSocial, 100), nomeProprio(p.NomeSocial))
	}
	errs.check("data_nascimento", required(p.DataNascimento), dataNascimento(p.DataNascimento))
	errs.check("email", required(p.Email), email(p.Email))
	errs.check("celular", required(p.Celular), celular(p.Celular))
	errs.check("sexo", required(p.Sexo))
	errs.check("etnia", required(p.Etnia))
	errs.check("estado_civil", required(p.EstadoCivil))

	errs.check("bioimpedancia", positivo(f.Bioimpedancia, "Bioimpedância"))
	errs.check("altura", positivo(f.Altura, "Altura"))
	errs.check("agua_corporal", positivo(f.AguaCorporal, "Água corporal"))
	errs.check("proteina", positivo(f.Proteina, "Proteína"))
	errs.check("minerais", positivo(f.Minerais, "Minerais"))
	errs.check("gordura_corporal", positivo(f.GorduraCorporal, "Gordura corporal"))
	errs.check("peso", positivo(f.Peso, "Peso"))
	errs.check("musculo_esqueletico", positivo(f.MusculoEsqueletico, "Músculo esquelético"))
	errs.check("imc", positivo(f.IMC, "IMC"))
	errs.check("taxa_metabolica_basal", positivoInt(f.TaxaMetabolicaBasal, "Taxa metabólica basal"))
	errs.check("data_exame", required(f.DataExame), dataExame(f.DataExame))
	errs.check("hora_exame", required(f.HoraExame), horaExame(f.HoraExame))
	if !(allowSenhaVazia && f.Senha == "") {
		errs.check("senha", senha(f.Senha))
	}
	return errs
}
