package token

import (
	"github.com/amzchain/amz-token/common"
	"github.com/amzchain/amz-token/contracts/token/tokenconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

func checkSymbol(sym string) {
	if len(sym) == 0 || len(sym) > tokenconst.MaxSymbolLength {
		panic(tokenconst.ErrInvalidSymbol)
	}

	for i := 0; i < len(sym); i++ {
		c := sym[i]
		if c < 'A' || c > 'Z' {
			panic(tokenconst.ErrInvalidSymbol)
		}
	}
}

func checkQuantity(amount int) {
	if amount > tokenconst.MaxAmount || amount < -tokenconst.MaxAmount {
		panic(tokenconst.ErrInvalidQuantity)
	}
}

func checkPositive(amount int) {
	if amount <= 0 {
		panic(tokenconst.ErrNonPositive)
	}
}

// checkSymbolMatch checks that quantity symbol, code and precision, is the
// one of the token.
func checkSymbolMatch(st Stats, sym string, decimals int) {
	if st.Symbol != sym || st.Decimals != decimals {
		panic(tokenconst.ErrSymbolMismatch)
	}
}

func checkMemo(memo string) {
	if len(memo) > tokenconst.MaxMemoLength {
		panic(tokenconst.ErrMemoTooLong)
	}
}

// debit takes amount from the owner's record. The record is kept even if the
// balance drops to zero.
func debit(ctx storage.Context, owner interop.Hash160, amount int, sym string) {
	checkPositive(amount)

	key := accountKey(sym, owner)

	data := common.GetSerialized(ctx, key)
	if data == nil {
		panic(tokenconst.ErrNoBalance)
	}

	acc := data.(Account)
	if acc.Balance < amount {
		panic(tokenconst.ErrOverdrawn)
	}

	acc.Balance -= amount
	common.SetSerialized(ctx, key, acc)
}

// credit adds amount to the owner's record creating it with the given payer
// if there is none.
func credit(ctx storage.Context, owner interop.Hash160, amount int, sym string, payer interop.Hash160) {
	checkPositive(amount)

	key := accountKey(sym, owner)

	var acc Account

	data := common.GetSerialized(ctx, key)
	if data == nil {
		acc = Account{
			Balance: amount,
			Payer:   payer,
		}
	} else {
		acc = data.(Account)
		acc.Balance += amount
	}

	common.SetSerialized(ctx, key, acc)
}
