package blockscan

import (
	"github.com/gabapcia/blockscan/internal/blockfetch"
	"github.com/gabapcia/blockscan/internal/opreturn"
)

// toOpreturnTransaction converts a fetched transaction to the aggregator's view.
func toOpreturnTransaction(tx blockfetch.Transaction) opreturn.Transaction {
	outputs := make([]opreturn.Output, len(tx.Outputs))
	for i, o := range tx.Outputs {
		outputs[i] = opreturn.Output{ScriptPubKeyASM: o.ScriptPubKeyASM}
	}

	return opreturn.Transaction{
		TxID:    tx.TxID,
		Outputs: outputs,
	}
}

// toOpreturnTransactions converts fetched transactions, keeping their order.
func toOpreturnTransactions(txs []blockfetch.Transaction) []opreturn.Transaction {
	converted := make([]opreturn.Transaction, len(txs))
	for i, tx := range txs {
		converted[i] = toOpreturnTransaction(tx)
	}

	return converted
}
