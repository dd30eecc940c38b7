package strings

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAnyOf(t *testing.T) {
	assert.True(t, AnyOf("byo-sip-trunk", "byo-sip-trunk", "byo-phone-number"))
	assert.False(t, AnyOf("BYO-SIP-TRUNK", "byo-sip-trunk"))
	assert.False(t, AnyOf("twilio"))
}
