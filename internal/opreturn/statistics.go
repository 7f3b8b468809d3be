package opreturn

// PayloadSize is the size of a payload in both of its forms.
type PayloadSize struct {
	Text int // Decoded length in characters
	Hex  int // Encoded length in hex characters
}

// Bytes returns the encoded size in bytes, two hex characters per byte.
func (s PayloadSize) Bytes() int {
	return s.Hex / 2
}

// Exemplar is the transaction holding the largest payload seen so far.
type Exemplar struct {
	TxID    string
	Payload Payload
}

// Statistics aggregates OP_RETURN usage over a sequence of transactions.
type Statistics struct {
	TotalTransactions int // Transactions observed
	TotalOccurrences  int // OP_RETURN outputs observed

	// Smallest is nil until the first OP_RETURN output is observed.
	Smallest *PayloadSize
	Largest  PayloadSize

	Exemplar Exemplar
}

// HasOccurrences reports whether at least one OP_RETURN output was observed.
func (s Statistics) HasOccurrences() bool {
	return s.TotalOccurrences > 0
}

// SmallestSize returns the smallest payload size, or the zero value when none was observed.
func (s Statistics) SmallestSize() PayloadSize {
	if s.Smallest == nil {
		return PayloadSize{}
	}

	return *s.Smallest
}

// observe folds one OP_RETURN payload found in transaction txid into the statistics.
func (s *Statistics) observe(txid string, p Payload) {
	s.TotalOccurrences++

	size := PayloadSize{Text: p.TextLength(), Hex: p.HexLength()}

	if s.Smallest == nil || size.Text < s.Smallest.Text {
		smallest := size
		s.Smallest = &smallest
	}

	if size.Text > s.Largest.Text {
		s.Largest = size
		s.Exemplar = Exemplar{TxID: txid, Payload: p}
	}
}
