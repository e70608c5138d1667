/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: normalize_test.go
Description: Unit tests for tag-name and address canonicalization, including
the idempotence property and the substring-collision guard.
*/

package normalize_test

import (
	"testing"

	"github.com/mesa-automation/io-crosscheck/pkg/domain"
	"github.com/mesa-automation/io-crosscheck/pkg/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cfg() domain.Config {
	return domain.DefaultConfig()
}

func TestCanonicalizeTagName_StripsColonThenSuffixThenUppers(t *testing.T) {
	c := cfg()
	assert.Equal(t, "TSV22", normalize.CanonicalizeTagName("TSV22_EV", c))
	assert.Equal(t, "AS611", normalize.CanonicalizeTagName("AS611_AUX", c))
	assert.Equal(t, "FT656B", normalize.CanonicalizeTagName("FT656B_Pulse", c))
	assert.Equal(t, "LT6110", normalize.CanonicalizeTagName("LT6110_Monitor", c))
	assert.Equal(t, "P621", normalize.CanonicalizeTagName("P621:I", c))
}

func TestCanonicalizeTagName_LongestSuffixWins(t *testing.T) {
	c := cfg()
	// "FOO_Input" loses the whole "_Input" and "BAR_In" loses "_In"; no shorter
	// or longer entry of the default list also ends either name.
	assert.Equal(t, "FOO", normalize.CanonicalizeTagName("FOO_Input", c))
	assert.Equal(t, "BAR", normalize.CanonicalizeTagName("BAR_In", c))
}

func TestCanonicalizeTagName_OnlyOneSuffixStripped(t *testing.T) {
	c := cfg()
	// Only one suffix may be stripped per call — "_AUX_Old" only loses "_Old".
	assert.Equal(t, "PUMP_AUX", normalize.CanonicalizeTagName("PUMP_AUX_Old", c))
}

func TestCanonicalizeTagName_Idempotent(t *testing.T) {
	c := cfg()
	inputs := []string{"TSV22_EV", "LT6110_Monitor", "  spaced_Out  ", "AlreadyUpper", ""}
	for _, in := range inputs {
		once := normalize.CanonicalizeTagName(in, c)
		twice := normalize.CanonicalizeTagName(once, c)
		assert.Equal(t, once, twice, "canonicalization must be idempotent for %q", in)
	}
}

func TestCanonicalizeTagName_SubstringCollisionGuard(t *testing.T) {
	c := cfg()
	lt611 := normalize.CanonicalizeTagName("LT611", c)
	lt6110 := normalize.CanonicalizeTagName("LT6110_Monitor", c)
	assert.NotEqual(t, lt611, lt6110, "LT611 must never canonicalize to the same key as LT6110")
}

func TestStripColonSuffix(t *testing.T) {
	c := cfg()
	assert.Equal(t, "P621", normalize.StripColonSuffix("P621:I", c))
	assert.Equal(t, "P621", normalize.StripColonSuffix("P621:I1", c))
	assert.Equal(t, "Rack0", normalize.StripColonSuffix("Rack0:O", c))
	assert.Equal(t, "", normalize.StripColonSuffix("", c))
}

func TestExtractENetPrefix(t *testing.T) {
	c := cfg()
	dev, ok := normalize.ExtractENetPrefix("E300_P621", c)
	require.True(t, ok)
	assert.Equal(t, "P621", dev)

	dev, ok = normalize.ExtractENetPrefix("VFD_M101", c)
	require.True(t, ok)
	assert.Equal(t, "M101", dev)

	_, ok = normalize.ExtractENetPrefix("P621", c)
	assert.False(t, ok)

	_, ok = normalize.ExtractENetPrefix("", c)
	assert.False(t, ok)
}

func TestDetectAddressFormat(t *testing.T) {
	assert.Equal(t, domain.AddressCLX, normalize.DetectAddressFormat("Rack0:I.Data[5].7"))
	assert.Equal(t, domain.AddressPLC5, normalize.DetectAddressFormat("Rack0_Group0_Slot0_IO.READ[14]"))
	assert.Equal(t, domain.AddressUnknown, normalize.DetectAddressFormat("garbage"))
	assert.Equal(t, domain.AddressUnknown, normalize.DetectAddressFormat(""))
}

func TestCanonicalizeAddress_CLX(t *testing.T) {
	key, ok := normalize.CanonicalizeAddress("Rack0:I.Data[5].7")
	require.True(t, ok)
	assert.Equal(t, "RACK0:I.DATA[5].7", key.Key)
	assert.Equal(t, "RACK0:I", key.Parent)
	assert.Equal(t, domain.AddressCLX, key.Format)
}

func TestCanonicalizeAddress_PLC5(t *testing.T) {
	key, ok := normalize.CanonicalizeAddress("Rack0_Group0_Slot0_IO.READ[14]")
	require.True(t, ok)
	assert.Equal(t, "RACK0_GROUP0_SLOT0_IO.READ[14]", key.Key)
	assert.Equal(t, domain.AddressPLC5, key.Format)
}

func TestCanonicalizeAddress_Unknown(t *testing.T) {
	_, ok := normalize.CanonicalizeAddress("not-an-address")
	assert.False(t, ok)
}

func TestCanonicalizeAddress_LeadingZerosMatchUnpadded(t *testing.T) {
	padded, ok := normalize.CanonicalizeAddress("Rack007:I.Data[05].7")
	require.True(t, ok)
	unpadded, ok := normalize.CanonicalizeAddress("Rack7:I.Data[5].7")
	require.True(t, ok)
	assert.Equal(t, unpadded.Key, padded.Key)
	assert.Equal(t, unpadded.Parent, padded.Parent)

	paddedPLC5, ok := normalize.CanonicalizeAddress("Rack00_Group1_Slot02_IO.READ[003]")
	require.True(t, ok)
	unpaddedPLC5, ok := normalize.CanonicalizeAddress("Rack0_Group1_Slot2_IO.READ[3]")
	require.True(t, ok)
	assert.Equal(t, unpaddedPLC5.Key, paddedPLC5.Key)
}

func TestCanonicalizeAddress_Idempotent(t *testing.T) {
	key, ok := normalize.CanonicalizeAddress("Rack0:I.Data[5].7")
	require.True(t, ok)
	again, ok := normalize.CanonicalizeAddress(key.Key)
	require.True(t, ok)
	assert.Equal(t, key.Key, again.Key)
}

func TestRackIONameKey(t *testing.T) {
	key, ok := normalize.RackIONameKey("Rack11:I")
	require.True(t, ok)
	assert.Equal(t, "RACK11:I", key)

	_, ok = normalize.RackIONameKey("Rack11:C")
	assert.False(t, ok)
}
