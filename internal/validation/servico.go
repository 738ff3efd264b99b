package validation

// ServicoForm is the raw input for a service offering.
type ServicoForm struct {
	Tipo      string
	Descricao string
	Valor     string
}

func ValidateServico(f ServicoForm) Errors {
	errs := Errors{}
	errs.check("tipo", required(f.Tipo), minLen(f.Tipo, 5))
	errs.check("descricao", required(f.Descricao), minLen(f.Descricao, 5))
	errs.check("valor", required(f.Valor), valorServico(f.Valor))
	return errs
}
