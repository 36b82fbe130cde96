package tokenconst

// Failure messages of the token contract. Every failure aborts the
// transaction, so callers match these as substrings of the fault exception.
const (
	ErrInvalidSymbol       = "invalid symbol name"
	ErrInvalidDecimals     = "invalid decimals"
	ErrInvalidQuantity     = "invalid quantity"
	ErrNonPositive         = "must use positive quantity"
	ErrSymbolMismatch      = "symbol precision mismatch"
	ErrSupplyExists        = "token with symbol already exists"
	ErrSupplyNotFound      = "token with symbol does not exist"
	ErrCapsExceedMax       = "max-supply must be greater than allocated transfers summation"
	ErrSelfTransfer        = "cannot transfer to self"
	ErrMemoTooLong         = "memo has more than 256 bytes"
	ErrAccountNotFound     = "to account does not exist"
	ErrNoBalance           = "no balance object found"
	ErrOverdrawn           = "overdrawn balance"
	ErrBucketExhausted     = "quantity exceeds available bucket supply"
	ErrGlobalSupply        = "quantity exceeds available supply"
	ErrCooldownNotElapsed  = "lock time not finished"
	ErrCirculatingExceeded = "quantity exceeds available circulating supply"
	ErrBlockedExceeded     = "quantity exceeds available blocked token"
	ErrUnknownBucket       = "unknown bucket"
	ErrInvalidIssuer       = "issuer account does not exist"
)
