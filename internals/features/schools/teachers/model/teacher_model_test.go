package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRank(t *testing.T) {
	assert.True(t, IsValidRank("Tidak Ada"))
	assert.True(t, IsValidRank("III.A"))
	assert.True(t, IsValidRank("IV.D"))
	assert.True(t, IsValidRank("IX"))

	assert.False(t, IsValidRank(""))
	assert.False(t, IsValidRank("V.A"))
	assert.False(t, IsValidRank("iii.a"))
}

func TestIsValidEmploymentType(t *testing.T) {
	assert.True(t, IsValidEmploymentType("PNS"))
	assert.True(t, IsValidEmploymentType("PPPK"))
	assert.True(t, IsValidEmploymentType("Guru Honorer"))

	assert.False(t, IsValidEmploymentType(""))
	assert.False(t, IsValidEmploymentType("Honorer"))
}
