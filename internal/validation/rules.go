package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"fitmarket/personal-app/internal/br"
)

const dateLayout = "2006-01-02"

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func required(v string) string {
	if strings.TrimSpace(v) == "" {
		return "Campo obrigatório"
	}
	return ""
}

func minLen(v string, n int) string {
	if len([]rune(v)) < n {
		return fmt.Sprintf("Deve ter no mínimo %d caracteres", n)
	}
	return ""
}

func maxLen(v string, n int) string {
	if len([]rune(v)) > n {
		return fmt.Sprintf("Deve ter no máximo %d caracteres", n)
	}
	return ""
}

// nomeProprio restricts name-like text to letters (accented included)
// and spaces.
func nomeProprio(v string) string {
	for _, r := range v {
		if !unicode.IsLetter(r) && r != ' ' {
			return "Deve conter apenas letras e espaços"
		}
	}
	return ""
}

func cpf(v string) string {
	if !br.ValidCPF(v) {
		return "CPF inválido"
	}
	return ""
}

func email(v string) string {
	if !emailRe.MatchString(v) {
		return "E-mail inválido"
	}
	return ""
}

func celular(v string) string {
	if !br.ValidCelular(v) {
		return "Celular inválido"
	}
	return ""
}

// senha requires at least 5 characters, at least 2 of which are not
// alphanumeric.
func senha(v string) string {
	if len([]rune(v)) < 5 {
		return "A senha deve ter no mínimo 5 caracteres"
	}
	symbols := 0
	for _, r := range v {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			symbols++
		}
	}
	if symbols < 2 {
		return "A senha deve ter no mínimo 2 símbolos"
	}
	return ""
}

// dataNascimento parses v as a calendar date, requires it to be
// strictly in the past and the implied age to be at most 120 years.
// Exactly 120 years old today is accepted; 120 years plus any positive
// remainder is rejected.
func dataNascimento(v string) string {
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		return "Data de nascimento inválida"
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !d.Before(today) {
		return "A data de nascimento deve estar no passado"
	}
	if d.Before(today.AddDate(-120, 0, 0)) {
		return "Idade máxima de 120 anos"
	}
	return ""
}

// dataExame has no age ceiling, only a strictly-before-now check.
func dataExame(v string) string {
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		return "Data do exame inválida"
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !d.Before(today) {
		return "A data do exame deve ser anterior a hoje"
	}
	return ""
}

func horaExame(v string) string {
	if _, err := time.Parse("15:04", v); err != nil {
		return "Hora inválida, use o formato HH:MM"
	}
	return ""
}

func positivo(v float64, label string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return label + " deve ser um número maior que zero"
	}
	return ""
}

func positivoInt(v int, label string) string {
	if v < 1 {
		return label + " deve ser um número maior que zero"
	}
	return ""
}

// contaBancaria accepts positive account numbers of at most 10 digits.
func contaBancaria(v int64) string {
	if v < 1 || v > 9999999999 {
		return "Conta deve ser um número positivo de até 10 dígitos"
	}
	return ""
}

func agencia(v int64) string {
	if v < 1 || v > 200 {
		return "Agência deve ser um número entre 1 e 200"
	}
	return ""
}

// valorServico normalizes the decimal comma and requires a finite
// amount strictly greater than zero.
func valorServico(v string) string {
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return "Valor deve ser um número maior que zero"
	}
	return ""
}

// ParseValor converts a validated service value to its numeric amount.
func ParseValor(v string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
}
