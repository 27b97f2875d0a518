package transport

// Clause is one signed call descriptor: value transfer plus contract call
// data, matching what the wallet agent expects to sign.
type Clause struct {
	To      string `json:"to"`
	Value   string `json:"value"`
	Data    string `json:"data"`
	Comment string `json:"comment"`
}

// Receipt is the execution environment's record of a finalized transaction.
// Reverted means executed and rolled back, as opposed to never included.
type Receipt struct {
	TxID        string `json:"tx_id"`
	BlockHeight uint64 `json:"block_height"`
	Reverted    bool   `json:"reverted"`
}

// readRequest is the body for contract read calls.
type readRequest struct {
	Method  string `json:"method"`
	Payload string `json:"payload"`
}

// readResponse wraps the raw contract return value.
type readResponse struct {
	Result string `json:"result"`
}

// balanceResponse carries an account balance in scaled milli-units.
type balanceResponse struct {
	Account string `json:"account"`
	Asset   string `json:"asset"`
	Amount  int64  `json:"amount"`
}
