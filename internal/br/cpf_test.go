package br

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCPF_Progressive(t *testing.T) {
	assert.Equal(t, "", FormatCPF(""))
	assert.Equal(t, "529", FormatCPF("529"))
	assert.Equal(t, "529.98", FormatCPF("52998"))
	assert.Equal(t, "529.982.24", FormatCPF("52998224"))
	assert.Equal(t, "529.982.247-25", FormatCPF("52998224725"))
	// Digits beyond 11 are dropped.
	assert.Equal(t, "529.982.247-25", FormatCPF("529982247259999"))
}

func TestFormatCPF_IdempotentRoundTrip(t *testing.T) {
	inputs := []string{"", "5", "529", "52998224725", "529.982.247-25", "abc529xyz98", "123.456"}
	for _, s := range inputs {
		once := FormatCPF(s)
		assert.Equal(t, once, FormatCPF(OnlyDigits(once)), "input %q", s)
	}
}

func TestOnlyDigits_NeverLosesDigits(t *testing.T) {
	digitOnly := []string{"", "1", "12", "123", "1234567", "12345678909", "52998224725"}
	for _, d := range digitOnly {
		assert.Equal(t, d, OnlyDigits(FormatCPF(d)), "digits %q", d)
	}
}

func TestValidCPF(t *testing.T) {
	assert.True(t, ValidCPF("52998224725"), "known-valid CPF")
	assert.True(t, ValidCPF("529.982.247-25"), "mask must be stripped before checking")
	assert.True(t, ValidCPF("12345678909"))

	assert.False(t, ValidCPF("11111111111"), "repeated-digit sequence")
	assert.False(t, ValidCPF("52998224724"), "corrupted check digit")
	assert.False(t, ValidCPF("5299822472"), "too short")
	assert.False(t, ValidCPF("529982247251"), "too long")
	assert.False(t, ValidCPF(""))
}
