package common

var (
	transferPrefix = []byte{0x01}
	disbursePrefix = []byte{0x02}
	burnPrefix     = []byte{0x03}
	blockPrefix    = []byte{0x04}
	unblockPrefix  = []byte{0x05}
)

// TransferDetails returns TransferX details of a peer-to-peer transfer.
func TransferDetails(memo string) []byte {
	return append(transferPrefix, []byte(memo)...)
}

// DisburseTransferDetails returns TransferX details of a disbursement from the
// named bucket.
func DisburseTransferDetails(bucket string) []byte {
	return append(disbursePrefix, []byte(bucket)...)
}

// BurnTransferDetails returns TransferX details of a burn.
func BurnTransferDetails(memo string) []byte {
	return append(burnPrefix, []byte(memo)...)
}

// BlockTransferDetails returns TransferX details of issuer funds being
// blocked.
func BlockTransferDetails() []byte {
	return blockPrefix
}

// UnblockTransferDetails returns TransferX details of issuer funds being
// unblocked.
func UnblockTransferDetails() []byte {
	return unblockPrefix
}
