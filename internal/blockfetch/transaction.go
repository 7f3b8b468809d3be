package blockfetch

// Output represents a single transaction output as described by the explorer.
type Output struct {
	ScriptPubKeyASM string // Assembly-like text representation of the output script
}

// Transaction represents a transaction included in a block.
type Transaction struct {
	TxID    string   // Transaction identifier
	Outputs []Output // Outputs in their on-chain order
}

// Page is one bounded batch of a block's transactions, as returned by the explorer.
type Page struct {
	Offset       int           // Index of the first transaction of the page within the block
	Transactions []Transaction // Transactions in block order
}
