// Package sunat reúne reglas tributarias peruanas usadas por facturación y planilla:
// validación de RUC y DNI y la tasa del IGV.
package sunat

import (
	"fmt"
	"unicode"

	"github.com/shopspring/decimal"
)

// IGVRate tasa del Impuesto General a las Ventas (16% IGV + 2% IPM).
var IGVRate = decimal.NewFromFloat(0.18)

// pesos del dígito verificador del RUC, aplicados a los 10 primeros dígitos.
var rucWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// prefijos válidos: 10 persona natural, 15/17 no domiciliados, 20 persona jurídica.
var rucPrefixes = map[string]bool{"10": true, "15": true, "17": true, "20": true}

// ValidateRUC valida longitud, prefijo y dígito verificador (módulo 11) de un RUC.
// Acepta separadores ("20-10007097-0"); solo cuentan los dígitos.
func ValidateRUC(ruc string) error {
	digits := extractDigits(ruc)
	if len(digits) != 11 {
		return fmt.Errorf("sunat: RUC debe tener 11 dígitos, se encontraron %d", len(digits))
	}
	if !rucPrefixes[string(digits[:2])] {
		return fmt.Errorf("sunat: prefijo de RUC inválido: %s", digits[:2])
	}
	expected := ComputeRUCCheckDigit(digits[:10])
	if digits[10] != expected {
		return fmt.Errorf("sunat: dígito verificador del RUC inválido: esperado %c, recibido %c", expected, digits[10])
	}
	return nil
}

// ComputeRUCCheckDigit calcula el dígito verificador para los 10 primeros dígitos.
// base debe contener exactamente 10 dígitos ASCII.
func ComputeRUCCheckDigit(base []byte) byte {
	var sum int
	for i, d := range base[:10] {
		sum += int(d-'0') * rucWeights[i]
	}
	check := 11 - sum%11
	switch check {
	case 10:
		check = 0
	case 11:
		check = 1
	}
	return byte('0' + check)
}

// ValidateDNI valida un DNI peruano: exactamente 8 dígitos.
func ValidateDNI(dni string) error {
	if len(dni) != 8 {
		return fmt.Errorf("sunat: DNI debe tener 8 dígitos, se recibieron %d caracteres", len(dni))
	}
	for _, r := range dni {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("sunat: DNI solo admite dígitos")
		}
	}
	return nil
}

// NormalizeRUC devuelve solo los dígitos del RUC.
func NormalizeRUC(ruc string) string {
	return string(extractDigits(ruc))
}

// ComputeIGV calcula el IGV y el total a partir de la base imponible, redondeados a 2 decimales.
func ComputeIGV(subtotal decimal.Decimal) (igv, total decimal.Decimal) {
	igv = subtotal.Mul(IGVRate).Round(2)
	total = subtotal.Round(2).Add(igv)
	return igv, total
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, byte(r))
		}
	}
	return out
}
