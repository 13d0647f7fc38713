package hamilton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/milliams/square-sum/hamilton"
)

func TestDeriveRand_Reproducible(t *testing.T) {
	a := hamilton.DeriveRand(17, 3)
	b := hamilton.DeriveRand(17, 3)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestDeriveRand_StreamsDiffer(t *testing.T) {
	a := hamilton.DeriveRand(17, 3).Int63()
	b := hamilton.DeriveRand(17, 4).Int63()
	c := hamilton.DeriveRand(18, 3).Int63()
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestDeriveRand_ZeroSeedIsDefault(t *testing.T) {
	assert.Equal(t, hamilton.DeriveRand(1, 9).Int63(), hamilton.DeriveRand(0, 9).Int63())
}
