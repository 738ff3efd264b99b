package domain

// Servico is a service offering published by a trainer.
// Valor keeps the user-entered decimal string ("10,50" or "10.50");
// the parsed amount is validated before the record is persisted.
type Servico struct {
	ID            int    `json:"id"`
	Tipo          string `json:"tipo"`
	Descricao     string `json:"descricao"`
	Valor         string `json:"valor"`
	CadastradoPor string `json:"cadastrado_por"` // owning trainer CPF, digits only
}
