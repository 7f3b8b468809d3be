package opreturn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMarker(t *testing.T) {
	assert.True(t, IsMarker("OP_RETURN"))
	assert.True(t, IsMarker("OP_RETURN OP_PUSHBYTES_4 74657374"))
	assert.True(t, IsMarker("OP_RETURN_186"), "prefix match is intended")
	assert.False(t, IsMarker("OP_0 OP_RETURN"))
	assert.False(t, IsMarker(" OP_RETURN"))
	assert.False(t, IsMarker("OP_DUP OP_HASH160 OP_PUSHBYTES_20 00 OP_EQUALVERIFY OP_CHECKSIG"))
	assert.False(t, IsMarker(""))
}

func TestExtractPayload(t *testing.T) {
	t.Run("decodes hex payload", func(t *testing.T) {
		p := ExtractPayload("OP_RETURN OP_PUSHBYTES_4 74657374")

		assert.Equal(t, "74657374", p.Hex)
		assert.Equal(t, "test", p.Text)
		assert.Equal(t, 4, p.TextLength())
		assert.Equal(t, 8, p.HexLength())
	})

	t.Run("accepts upper-case hex", func(t *testing.T) {
		p := ExtractPayload("OP_RETURN OP_PUSHBYTES_2 4F4B")

		assert.Equal(t, "4F4B", p.Hex)
		assert.Equal(t, "OK", p.Text)
	})

	t.Run("splits on any whitespace", func(t *testing.T) {
		p := ExtractPayload("OP_RETURN\tOP_PUSHBYTES_1   41 ")

		assert.Equal(t, "41", p.Hex)
		assert.Equal(t, "A", p.Text)
	})

	t.Run("invalid hex falls back to placeholder text", func(t *testing.T) {
		p := ExtractPayload("OP_RETURN OP_PUSHBYTES_2 zz")

		assert.Equal(t, "zz", p.Hex)
		assert.Equal(t, InvalidHexText, p.Text)
	})

	t.Run("trailing opcode is treated as invalid hex", func(t *testing.T) {
		p := ExtractPayload("OP_RETURN OP_0")

		assert.Equal(t, "OP_0", p.Hex)
		assert.Equal(t, "Invalid hex data", p.Text)
	})

	t.Run("bare marker carries no data", func(t *testing.T) {
		p := ExtractPayload("OP_RETURN")

		assert.Equal(t, "No data found", p.Hex)
		assert.Equal(t, "", p.Text)
		assert.Equal(t, 0, p.TextLength())
	})

	t.Run("empty script carries no data", func(t *testing.T) {
		p := ExtractPayload("   ")

		assert.Equal(t, NoDataHex, p.Hex)
		assert.Empty(t, p.Text)
	})

	t.Run("invalid utf-8 is replaced, not rejected", func(t *testing.T) {
		p := ExtractPayload("OP_RETURN OP_PUSHBYTES_3 41ff42")

		assert.Equal(t, "41ff42", p.Hex)
		assert.Equal(t, "A\uFFFDB", p.Text)
		assert.Equal(t, 3, p.TextLength())
	})

	t.Run("multi-byte characters count once", func(t *testing.T) {
		p := ExtractPayload("OP_RETURN OP_PUSHBYTES_4 f09f9880")

		assert.Equal(t, "\U0001F600", p.Text)
		assert.Equal(t, 1, p.TextLength())
		assert.Equal(t, 8, p.HexLength())
	})
}
