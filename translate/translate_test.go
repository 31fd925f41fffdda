package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("register invalid", From("register invalid"))
	assert.Equal("line 12 'NOP'", From("line %d '%v'", 12, "NOP"))
	assert.Equal("bad word 0x3000", From("bad word 0x%04x", 0x3000))
}
