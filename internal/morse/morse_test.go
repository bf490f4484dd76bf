package morse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_SOS(t *testing.T) {
	assert.Equal(t, "... --- ...", Encode("SOS"))
}

func TestDecode_SOS(t *testing.T) {
	assert.Equal(t, "SOS", Decode("... --- ..."))
}

func TestEncode_LowercaseIsUppercased(t *testing.T) {
	assert.Equal(t, Encode("SOS"), Encode("sos"))
}

func TestEncode_WordBoundaryProducesSeparator(t *testing.T) {
	encoded := Encode("HI THERE")

	tokens := strings.Split(encoded, " ")
	assert.Contains(t, tokens, WordSeparator)
	assert.Equal(t, ".... .. / - .... . .-. .", encoded)
}

func TestEncode_DropsUnsupportedCharacters(t *testing.T) {
	assert.Equal(t, Encode("A1 "), Encode("A1 #"))
	assert.Equal(t, ".- .---- /", Encode("A1 #"))
	assert.Equal(t, "", Encode("#?!"))
}

func TestDecode_DropsUnknownTokens(t *testing.T) {
	assert.Equal(t, "SS", Decode("... ........ ..."))
	assert.Equal(t, "E", Decode("abc . x"))
}

func TestDecode_ToleratesRepeatedSpaces(t *testing.T) {
	assert.Equal(t, "SOS", Decode("...  ---   ..."))
}

func TestEmptyInput(t *testing.T) {
	assert.Equal(t, "", Encode(""))
	assert.Equal(t, "", Decode(""))
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"SOS",
		"hello world",
		"ATTACK AT 0600",
		"the quick brown fox jumps over the lazy dog 1234567890",
		" leading and trailing ",
		"",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, strings.ToUpper(in), Decode(Encode(in)))
		})
	}
}

func TestAlphabet_IsBijective(t *testing.T) {
	table := Alphabet()
	require.Len(t, table, 37)

	seen := make(map[string]rune, len(table))
	for r, code := range table {
		_, dup := seen[code]
		assert.False(t, dup, "code %q is shared", code)
		seen[code] = r
		assert.Equal(t, string(r), Decode(code))
	}
}

func TestAlphabet_ReturnsCopy(t *testing.T) {
	table := Alphabet()
	table['A'] = "broken"

	assert.Equal(t, ".-", Encode("A"))
}

func TestBuildReverse_PanicsOnDuplicateCode(t *testing.T) {
	assert.Panics(t, func() {
		buildReverse(map[rune]string{'A': ".-", 'B': ".-"})
	})
}
