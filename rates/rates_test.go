package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_KnownCode(t *testing.T) {
	table := Default()
	code, rate := table.Lookup("USD")
	assert.Equal(t, "USD", code)
	assert.Equal(t, float64(1), rate.Rate)
	assert.Equal(t, "$", rate.Symbol)
}

func TestLookup_UnknownCodeFallsBack(t *testing.T) {
	table := Default()
	code, rate := table.Lookup("AUD")
	assert.Equal(t, "IDR", code)
	assert.Equal(t, float64(16000), rate.Rate)
}

func TestLookup_EmptyCodeFallsBack(t *testing.T) {
	table := Default()
	code, _ := table.Lookup("")
	assert.Equal(t, "IDR", code)
}
