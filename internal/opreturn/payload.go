// Package opreturn finds OP_RETURN outputs in transactions, decodes the data
// they carry and folds the results into per-block statistics.
package opreturn

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	// MarkerToken is the opcode that starts a data-carrier output script.
	MarkerToken = "OP_RETURN"

	// InvalidHexText is the decoded text reported when the payload is not hex.
	InvalidHexText = "Invalid hex data"

	// NoDataHex is the encoded value reported when the script carries no payload.
	NoDataHex = "No data found"
)

// Payload is the data carried by an OP_RETURN output.
type Payload struct {
	Hex  string // Encoded form, as found in the script assembly
	Text string // Decoded form, invalid UTF-8 replaced by U+FFFD
}

// TextLength returns the decoded payload length in characters.
func (p Payload) TextLength() int {
	return utf8.RuneCountInString(p.Text)
}

// HexLength returns the encoded payload length in hex characters.
func (p Payload) HexLength() int {
	return len(p.Hex)
}

// IsMarker reports whether the script assembly starts with OP_RETURN.
func IsMarker(asm string) bool {
	return strings.HasPrefix(asm, MarkerToken)
}

// decodeLossy interprets b as UTF-8, replacing each invalid byte with U+FFFD.
func decodeLossy(b []byte) string {
	text, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}

	return string(text)
}

// ExtractPayload returns the payload carried by an OP_RETURN script assembly.
//
// The last whitespace-separated token is taken as the hex payload. When it is
// not valid hex, the token is still reported as the encoded value alongside
// InvalidHexText, unless it is the only token: then there is no payload and
// NoDataHex is reported with empty text.
func ExtractPayload(asm string) Payload {
	tokens := strings.Fields(asm)
	if len(tokens) == 0 {
		return Payload{Hex: NoDataHex}
	}

	candidate := tokens[len(tokens)-1]
	if data, err := hex.DecodeString(candidate); err == nil {
		return Payload{Hex: candidate, Text: decodeLossy(data)}
	}

	if len(tokens) > 1 {
		return Payload{Hex: candidate, Text: InvalidHexText}
	}

	return Payload{Hex: NoDataHex}
}
