package domain

import "time"

// ContratoStatus enumerates the contract lifecycle states.
// The transition is one-way: ativo -> cancelado, never back.
type ContratoStatus string

const (
	ContratoAtivo     ContratoStatus = "ativo"
	ContratoCancelado ContratoStatus = "cancelado"
)

// Contrato records a student hiring a trainer's service offering.
// It is visible both to the student who created it (AlunoCPF) and to
// the trainer owning the referenced Servico.
type Contrato struct {
	ID              int            `json:"id"`
	AlunoCPF        string         `json:"aluno_cpf"` // digits only
	ServicoID       int            `json:"servico_id"`
	DataContratacao time.Time      `json:"data_contratacao"`
	Status          ContratoStatus `json:"status"`
}

func (c *Contrato) IsAtivo() bool {
	return c.Status == ContratoAtivo
}
