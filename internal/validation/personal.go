package validation

// PersonalForm is the raw registration/edit input for a trainer, as
// collected by the form: masked CPF and phone are accepted, senha is
// plaintext. Normalization happens after validation, in the service.
type PersonalForm struct {
	CPF                     string
	Nome                    string
	NomeSocial              string
	DataNascimento          string
	Email                   string
	Celular                 string
	Sexo                    string
	Etnia                   string
	EstadoCivil             string
	RegistroProfissional    string
	Especialidades          string
	ExperienciaProfissional string
	HorariosDisponiveis     float64
	LocaisDisponiveis       string
	Conta                   int64
	Agencia                 int64
	Senha                   string
}

// ValidatePersonal runs the trainer rule chains. Senha is skipped when
// empty and allowSenhaVazia is set (edit form keeps the old password).
func ValidatePersonal(f PersonalForm, allowSenhaVazia bool) Errors {
	errs := Errors{}
	errs.check("cpf", required(f.CPF), cpf(f.CPF))
	errs.check("nome", required(f.Nome), minLen(f.Nome, 3), maxLen(f.Nome, 100), nomeProprio(f.Nome))
	if f.NomeSocial != "" {
		errs.check("nome_social", minLen(f.NomeSocial, 3), maxLen(f.NomeSocial, 100), nomeProprio(f.NomeSocial))
	}
	errs.check("data_nascimento", required(f.DataNascimento), dataNascimento(f.DataNascimento))
	errs.check("email", required(f.Email), email(f.Email))
	errs.check("celular", required(f.Celular), celular(f.Celular))
	errs.check("sexo", required(f.Sexo))
	errs.check("etnia", required(f.Etnia))
	errs.check("estado_civil", required(f.EstadoCivil))
	errs.check("registro_profissional", required(f.RegistroProfissional), maxLen(f.RegistroProfissional, 10))
	if f.Especialidades != "" {
		errs.check("especialidades", maxLen(f.Especialidades, 500))
	}
	if f.ExperienciaProfissional != "" {
		errs.check("experiencia_profissional", maxLen(f.ExperienciaProfissional, 500))
	}
	errs.check("horarios_disponiveis", positivo(f.HorariosDisponiveis, "Horários disponíveis"))
	errs.check("locais_disponiveis", required(f.LocaisDisponiveis), minLen(f.LocaisDisponiveis, 5), maxLen(f.LocaisDisponiveis, 500))
	errs.check("conta", contaBancaria(f.Conta))
	errs.check("agencia", agencia(f.Agencia))
	if !(allowSenhaVazia && f.Senha == "") {
		errs.check("senha", senha(f.Senha))
	}
	return errs
}
