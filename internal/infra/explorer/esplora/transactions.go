package esplora

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gabapcia/blockscan/internal/blockfetch"

	jsoniter "github.com/json-iterator/go"
)

const (
	// blockTxsPathFormat returns one page of a block's transactions as JSON.
	blockTxsPathFormat = "/api/block/%s/txs/%d"

	// blockNotFoundMessage is the body Esplora answers with for unknown blocks
	// and for offsets past the end of a block.
	blockNotFoundMessage = "Block not found"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	// OutputResponse represents a transaction output returned by the Esplora API.
	// Only the fields the scanner needs are decoded.
	OutputResponse struct {
		ScriptPubKey        string `json:"scriptpubkey"`
		ScriptPubKeyASM     string `json:"scriptpubkey_asm"`
		ScriptPubKeyType    string `json:"scriptpubkey_type"`
		ScriptPubKeyAddress string `json:"scriptpubkey_address"`
		Value               uint64 `json:"value"`
	}

	// TransactionResponse represents a transaction returned by the Esplora API.
	TransactionResponse struct {
		TxID    string           `json:"txid"`
		Version int32            `json:"version"`
		Size    int              `json:"size"`
		Weight  int              `json:"weight"`
		Fee     uint64           `json:"fee"`
		Vout    []OutputResponse `json:"vout"`
	}
)

// toBlockfetchTransaction converts a TransactionResponse to a blockfetch.Transaction.
func (t TransactionResponse) toBlockfetchTransaction() blockfetch.Transaction {
	outputs := make([]blockfetch.Output, len(t.Vout))
	for i, o := range t.Vout {
		outputs[i] = blockfetch.Output{ScriptPubKeyASM: o.ScriptPubKeyASM}
	}

	return blockfetch.Transaction{
		TxID:    t.TxID,
		Outputs: outputs,
	}
}

// parseTransactionsPage classifies a page body. The checks run in order:
// empty body, not-found message, JSON parse failure, empty list.
// The HTTP status is deliberately ignored: Esplora reports the end of a block
// with a 404 whose body is the not-found message.
func parseTransactionsPage(body []byte) ([]blockfetch.Transaction, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, blockfetch.NewPaginationEnd(blockfetch.EndEmptyBody, nil)
	}

	if string(body) == blockNotFoundMessage {
		return nil, blockfetch.NewPaginationEnd(blockfetch.EndNotFound, nil)
	}

	var page []TransactionResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, blockfetch.NewPaginationEnd(blockfetch.EndMalformed, err)
	}

	if len(page) == 0 {
		return nil, blockfetch.NewPaginationEnd(blockfetch.EndNoTransactions, nil)
	}

	transactions := make([]blockfetch.Transaction, len(page))
	for i, t := range page {
		transactions[i] = t.toBlockfetchTransaction()
	}

	return transactions, nil
}

// Transactions implements the blockfetch.Explorer interface.
func (c *client) Transactions(ctx context.Context, blockHash string, offset int) ([]blockfetch.Transaction, error) {
	res, err := c.conn.Get(ctx, fmt.Sprintf(blockTxsPathFormat, blockHash, offset))
	if err != nil {
		return nil, err
	}

	return parseTransactionsPage(res.Body)
}
