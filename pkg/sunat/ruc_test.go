package sunat_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pyme/pkg/sunat"
)

func TestValidateRUC_Validos(t *testing.T) {
	for _, ruc := range []string{"20100070970", "20600000005", "10123456781", "20-10007097-0"} {
		assert.NoError(t, sunat.ValidateRUC(ruc), ruc)
	}
}

func TestValidateRUC_DigitoIncorrecto(t *testing.T) {
	err := sunat.ValidateRUC("20100070971")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dígito verificador")
}

func TestValidateRUC_LongitudYPrefijo(t *testing.T) {
	assert.Error(t, sunat.ValidateRUC("2010007097"))
	assert.Error(t, sunat.ValidateRUC("30100070970"))
}

func TestValidateDNI(t *testing.T) {
	assert.NoError(t, sunat.ValidateDNI("45871236"))
	assert.Error(t, sunat.ValidateDNI("4587123"))
	assert.Error(t, sunat.ValidateDNI("4587123A"))
}

func TestComputeIGV(t *testing.T) {
	igv, total := sunat.ComputeIGV(decimal.RequireFromString("1000.00"))
	assert.True(t, igv.Equal(decimal.RequireFromString("180")), igv.String())
	assert.True(t, total.Equal(decimal.RequireFromString("1180")), total.String())
}
