package der

import (
	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"math/big"
	"testing"
)

func bigInt(v int64) *big.Int {
	return big.NewInt(v)
}

func TestValidateUTCTime(t *testing.T) {
	for _, s := range []string{"9912312359Z", "991231235959Z", "9912312359+0100", "991231235959-0530"} {
		assert.NoError(t, ValidateUTCTime(s), s)
	}
	for _, s := range []string{"", "9912312359", "99123123595Z", "991231235959", "9912312359+01", "99123123x9Z", "991231235959Z0", "9912312359*0100"} {
		assert.True(t, merry.Is(ValidateUTCTime(s), ErrValueNotValid), s)
	}
}

func TestValidateGeneralizedTime(t *testing.T) {
	for _, s := range []string{"2024010112", "20240101120000Z", "202401011200Z", "20240101120000.123Z", "20240101120000,5", "20240101120000+0100", "2024010112-05"} {
		assert.NoError(t, ValidateGeneralizedTime(s), s)
	}
	for _, s := range []string{"", "202401011", "20240101120000.Z", "20240101120000+1", "20240101120000Zs", "2024O10112"} {
		assert.True(t, merry.Is(ValidateGeneralizedTime(s), ErrValueNotValid), s)
	}
}
