package esplora

import (
	"net/http"
	"testing"

	"github.com/gabapcia/blockscan/internal/blockfetch"
	transporthttp "github.com/gabapcia/blockscan/internal/pkg/transport/http"
	"github.com/gabapcia/blockscan/internal/pkg/transport/rest"
	"github.com/gabapcia/blockscan/internal/pkg/types"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://explorer.test"

// newTestClient returns an explorer client whose HTTP traffic is served by a mock transport.
func newTestClient(t *testing.T) (*client, *httpmock.MockTransport) {
	t.Helper()

	transport := httpmock.NewMockTransport()
	httpClient := transporthttp.NewClient()
	httpClient.HTTPClient.Transport = transport

	return NewClient(rest.NewClient(httpClient, baseURL)), transport
}

func TestClient_TipHeight(t *testing.T) {
	t.Run("parses the plain-text height", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.RegisterResponder(http.MethodGet, baseURL+"/api/blocks/tip/height",
			httpmock.NewStringResponder(http.StatusOK, "912345\n"))

		height, err := c.TipHeight(t.Context())
		require.NoError(t, err)
		assert.Equal(t, types.Height(912345), height)
	})

	t.Run("non-numeric body is malformed", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.RegisterResponder(http.MethodGet, baseURL+"/api/blocks/tip/height",
			httpmock.NewStringResponder(http.StatusOK, "<html>maintenance</html>"))

		_, err := c.TipHeight(t.Context())
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("non-success status is an error", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.RegisterResponder(http.MethodGet, baseURL+"/api/blocks/tip/height",
			httpmock.NewStringResponder(http.StatusServiceUnavailable, "try later"))

		_, err := c.TipHeight(t.Context())
		assert.ErrorIs(t, err, rest.ErrUnexpectedStatus)
	})

	t.Run("transport failure is an error", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.RegisterResponder(http.MethodGet, baseURL+"/api/blocks/tip/height",
			httpmock.NewErrorResponder(assert.AnError))

		_, err := c.TipHeight(t.Context())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestClient_BlockHash(t *testing.T) {
	t.Run("returns the body verbatim", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.RegisterResponder(http.MethodGet, baseURL+"/api/block-height/840000",
			httpmock.NewStringResponder(http.StatusOK, "0000000000000000000320283a032748cef8227873ff4872689bf23f1cda83a5"))

		hash, err := c.BlockHash(t.Context(), 840000)
		require.NoError(t, err)
		assert.Equal(t, "0000000000000000000320283a032748cef8227873ff4872689bf23f1cda83a5", hash)
	})

	t.Run("unknown height is an error", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.RegisterResponder(http.MethodGet, baseURL+"/api/block-height/99999999",
			httpmock.NewStringResponder(http.StatusNotFound, "Block not found"))

		_, err := c.BlockHash(t.Context(), 99999999)
		assert.ErrorIs(t, err, rest.ErrUnexpectedStatus)
	})
}

func TestClient_Transactions(t *testing.T) {
	const pageBody = `[
		{"txid":"tx1","version":2,"vout":[{"scriptpubkey":"6a0474657374","scriptpubkey_asm":"OP_RETURN OP_PUSHBYTES_4 74657374","scriptpubkey_type":"op_return","value":0}]},
		{"txid":"tx2","vout":[{"scriptpubkey_asm":"OP_0 OP_PUSHBYTES_20 0011","value":1000},{"scriptpubkey_asm":"OP_RETURN","value":0}]}
	]`

	t.Run("decodes a page of transactions", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.RegisterResponder(http.MethodGet, baseURL+"/api/block/abc/txs/25",
			httpmock.NewStringResponder(http.StatusOK, pageBody))

		txs, err := c.Transactions(t.Context(), "abc", 25)
		require.NoError(t, err)
		require.Len(t, txs, 2)

		assert.Equal(t, blockfetch.Transaction{
			TxID:    "tx1",
			Outputs: []blockfetch.Output{{ScriptPubKeyASM: "OP_RETURN OP_PUSHBYTES_4 74657374"}},
		}, txs[0])
		assert.Equal(t, "tx2", txs[1].TxID)
		require.Len(t, txs[1].Outputs, 2)
		assert.Equal(t, "OP_RETURN", txs[1].Outputs[1].ScriptPubKeyASM)
		assert.Equal(t, 1, transport.GetTotalCallCount())
	})

	t.Run("end-of-pagination bodies", func(t *testing.T) {
		cases := []struct {
			name   string
			status int
			body   string
			reason blockfetch.EndReason
		}{
			{"empty body", http.StatusOK, "", blockfetch.EndEmptyBody},
			{"whitespace body", http.StatusOK, " \n\t", blockfetch.EndEmptyBody},
			{"not found message", http.StatusNotFound, "Block not found", blockfetch.EndNotFound},
			{"error message", http.StatusBadRequest, "Invalid hex string", blockfetch.EndMalformed},
			{"server error", http.StatusInternalServerError, "oops", blockfetch.EndMalformed},
			{"json object", http.StatusOK, `{"error":"x"}`, blockfetch.EndMalformed},
			{"empty list", http.StatusOK, "[]", blockfetch.EndNoTransactions},
			{"null", http.StatusOK, "null", blockfetch.EndNoTransactions},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				c, transport := newTestClient(t)
				transport.RegisterResponder(http.MethodGet, baseURL+"/api/block/abc/txs/0",
					httpmock.NewStringResponder(tc.status, tc.body))

				txs, err := c.Transactions(t.Context(), "abc", 0)
				assert.Nil(t, txs)
				require.ErrorIs(t, err, blockfetch.ErrEndOfPagination)

				var end *blockfetch.PaginationEnd
				require.ErrorAs(t, err, &end)
				assert.Equal(t, tc.reason, end.Reason)
			})
		}
	})

	t.Run("transport failure is not an end of pagination", func(t *testing.T) {
		c, transport := newTestClient(t)
		transport.RegisterResponder(http.MethodGet, baseURL+"/api/block/abc/txs/0",
			httpmock.NewErrorResponder(assert.AnError))

		_, err := c.Transactions(t.Context(), "abc", 0)
		require.Error(t, err)
		assert.NotErrorIs(t, err, blockfetch.ErrEndOfPagination)
	})
}
