package errno

// Errno defines the coded error contract shared by the client packages. Every
// failure surfaced to the user maps onto exactly one of the values below, so
// the presentation layer can decide how to render it without string matching.
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// Decode tries to convert an error to Errno
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	switch typed := err.(type) {
	case *Errno:
		return typed.Code, typed.Message
	case Errno:
		return typed.Code, typed.Message
	default:
		return InternalError.Code, err.Error()
	}
}

// Common Errors
var (
	OK            = Errno{Code: 0, Message: "Success"}
	InternalError = Errno{Code: 10001, Message: "Internal error"}
)

// Submission Errors (20100+)
var (
	// ErrUserRejected: the wallet holder declined to sign the transaction.
	ErrUserRejected = Errno{Code: 20101, Message: "Signing rejected by user"}
	// ErrBroadcastFailed: the signed transaction could not be submitted to the network.
	ErrBroadcastFailed = Errno{Code: 20102, Message: "Transaction broadcast failed"}
	// ErrInvalidPayload: name/message/recipient failed client-side validation.
	ErrInvalidPayload = Errno{Code: 20103, Message: "Name and message must not be empty"}
	// ErrInvalidRecipient: the donation target is not a valid address.
	ErrInvalidRecipient = Errno{Code: 20104, Message: "Recipient is not a valid address"}
	// ErrNotConnected: no wallet session; submission must not be attempted.
	ErrNotConnected = Errno{Code: 20105, Message: "No wallet connected"}
	// ErrInsufficientPayment: the contract rejected the attached amount.
	ErrInsufficientPayment = Errno{Code: 20106, Message: "Payment must be exactly one unit"}
)

// Confirmation Errors (20200+)
var (
	// ErrConfirmationTimeout: no receipt within the configured bound. The
	// outcome is unknown, which is deliberately distinct from Reverted.
	ErrConfirmationTimeout = Errno{Code: 20201, Message: "Transaction confirmation timed out"}
	// ErrReverted: the transaction executed and was rolled back.
	ErrReverted = Errno{Code: 20202, Message: "Transaction reverted"}
)

// History Errors (20300+)
var (
	// ErrLedgerUnreachable: the donation history read could not complete.
	ErrLedgerUnreachable = Errno{Code: 20301, Message: "Donation ledger unreachable"}
)
