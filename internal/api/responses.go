package api

import (
	"time"

	"fitmarket/personal-app/internal/br"
	"fitmarket/personal-app/internal/domain"
)

// Response structs exclude the password hash and carry the masked
// renderings of CPF and celular alongside the stored digits.

type PersonalResponse struct {
	CPF                     string  `json:"cpf"`
	CPFFormatado            string  `json:"cpf_formatado"`
	Nome                    string  `json:"nome"`
	NomeSocial              string  `json:"nome_social,omitempty"`
	DataNascimento          string  `json:"data_nascimento"`
	Email                   string  `json:"email"`
	Celular                 string  `json:"celular"`
	CelularFormatado        string  `json:"celular_formatado"`
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
	Ativo                   bool    `json:"ativo"`
}

func toPersonalResponse(p *domain.Personal) PersonalResponse {
	return PersonalResponse{
		CPF:                     p.CPF,
		CPFFormatado:            br.FormatCPF(p.CPF),
		Nome:                    p.Nome,
		NomeSocial:              p.NomeSocial,
		DataNascimento:          p.DataNascimento,
		Email:                   p.Email,
		Celular:                 p.Celular,
		CelularFormatado:        br.FormatCelular(p.Celular),
		Sexo:                    p.Sexo,
		Etnia:                   p.Etnia,
		EstadoCivil:             p.EstadoCivil,
		RegistroProfissional:    p.RegistroProfissional,
		Especialidades:          p.Especialidades,
		ExperienciaProfissional: p.ExperienciaProfissional,
		HorariosDisponiveis:     p.HorariosDisponiveis,
		LocaisDisponiveis:       p.LocaisDisponiveis,
		Conta:                   p.Conta,
		Agencia:                 p.Agencia,
		Ativo:                   p.Ativo,
	}
}

type PessoaResponse struct {
	CPF              string `json:"cpf"`
	CPFFormatado     string `json:"cpf_formatado"`
	Nome             string `json:"nome"`
	NomeSocial       string `json:"nome_social,omitempty"`
	DataNascimento   string `json:"data_nascimento"`
	Email            string `json:"email"`
	Celular          string `json:"celular"`
	CelularFormatado string `json:"celular_formatado"`
	Sexo             string `json:"sexo"`
	Etnia            string `json:"etnia"`
	EstadoCivil      string `json:"estado_civil"`
}

type AlunoResponse struct {
	ID                  int            `json:"id"`
	Pessoa              PessoaResponse `json:"pessoa"`
	Bioimpedancia       float64        `json:"bioimpedancia"`
	Altura              float64        `json:"altura"`
	AguaCorporal        float64        `json:"agua_corporal"`
	Proteina            float64        `json:"proteina"`
	Minerais            float64        `json:"minerais"`
	GorduraCorporal     float64        `json:"gordura_corporal"`
	Peso                float64        `json:"peso"`
	MusculoEsqueletico  float64        `json:"musculo_esqueletico"`
	IMC                 float64        `json:"imc"`
	TaxaMetabolicaBasal int            `json:"taxa_metabolica_basal"`
	DataExame           string         `json:"data_exame"`
	HoraExame           string         `json:"hora_exame"`
	Ativo               bool           `json:"ativo"`
}

func toAlunoResponse(a *domain.Aluno) AlunoResponse {
	return AlunoResponse{
		ID: a.ID,
		Pessoa: PessoaResponse{
			CPF:              a.Pessoa.CPF,
			CPFFormatado:     br.FormatCPF(a.Pessoa.CPF),
			Nome:             a.Pessoa.Nome,
			NomeSocial:       a.Pessoa.NomeSocial,
			DataNascimento:   a.Pessoa.DataNascimento,
			Email:            a.Pessoa.Email,
			Celular:          a.Pessoa.Celular,
			CelularFormatado: br.FormatCelular(a.Pessoa.Celular),
			Sexo:             a.Pessoa.Sexo,
			Etnia:            a.Pessoa.Etnia,
			EstadoCivil:      a.Pessoa.EstadoCivil,
		},
		Bioimpedancia:       a.Bioimpedancia,
		Altura:              a.Altura,
		AguaCorporal:        a.AguaCorporal,
		Proteina:            a.Proteina,
		Minerais:            a.Minerais,
		GorduraCorporal:     a.GorduraCorporal,
		Peso:                a.Peso,
		MusculoEsqueletico:  a.MusculoEsqueletico,
		IMC:                 a.IMC,
		TaxaMetabolicaBasal: a.TaxaMetabolicaBasal,
		DataExame:           a.DataExame,
		HoraExame:           a.HoraExame,
		Ativo:               a.Ativo,
	}
}

type ServicoResponse struct {
	ID            int    `json:"id"`
	Tipo          string `json:"tipo"`
	Descricao     string `json:"descricao"`
	Valor         string `json:"valor"`
	CadastradoPor string `json:"cadastrado_por"`
}

func toServicoResponse(s *domain.Servico) ServicoResponse {
	return ServicoResponse{
		ID:            s.ID,
		Tipo:          s.Tipo,
		Descricao:     s.Descricao,
		Valor:         s.Valor,
		CadastradoPor: s.CadastradoPor,
	}
}

type ContratoResponse struct {
	ID              int       `json:"id"`
	AlunoCPF        string    `json:"aluno_cpf"`
	ServicoID       int       `json:"servico_id"`
	DataContratacao time.Time `json:"data_contratacao"`
	Status          string    `json:"status"`
}

func toContratoResponse(ct *domain.Contrato) ContratoResponse {
	return ContratoResponse{
		ID:              ct.ID,
		AlunoCPF:        ct.AlunoCPF,
		ServicoID:       ct.ServicoID,
		DataContratacao: ct.DataContratacao,
		Status:          string(ct.Status),
	}
}
