package supply

import (
	"math/big"

	"github.com/amzchain/amz-token/contracts/token/tokenconst"
	"github.com/amzchain/amz-token/rpc/token"
	"github.com/shopspring/decimal"
)

// Report is a human-readable breakdown of the token supply.
type Report struct {
	Symbol      string
	MaxSupply   decimal.Decimal
	Issued      decimal.Decimal
	Circulating decimal.Decimal
	Burned      decimal.Decimal
	Blocked     decimal.Decimal
	Held        decimal.Decimal
	Holders     int

	// IssuedShare is the issued part of the maximum supply.
	IssuedShare decimal.Decimal

	Buckets []BucketUsage
}

// BucketUsage describes how much of the bucket has been released.
type BucketUsage struct {
	Bucket    tokenconst.Bucket
	Name      string
	Allocated decimal.Decimal
	Cap       decimal.Decimal
	Share     decimal.Decimal
}

// NewReport builds supply report of the token. Amounts are scaled by the
// token precision. Supply record is expected to pass Verify.
func NewReport(st *token.Stats, accounts []token.AccountRecord) Report {
	exp := -int32(st.Decimals.Int64())

	held := new(big.Int)
	holders := 0
	for _, acc := range accounts {
		held.Add(held, acc.Balance)
		if acc.Balance.Sign() > 0 {
			holders++
		}
	}

	r := Report{
		Symbol:      st.Symbol,
		MaxSupply:   decimal.NewFromBigInt(st.MaxSupply, exp),
		Issued:      decimal.NewFromBigInt(st.Supply, exp),
		Circulating: decimal.NewFromBigInt(st.Circulating, exp),
		Burned:      decimal.NewFromBigInt(st.Burned, exp),
		Blocked:     decimal.NewFromBigInt(st.Blocked, exp),
		Held:        decimal.NewFromBigInt(held, exp),
		Holders:     holders,
	}
	r.IssuedShare = share(r.Issued, r.MaxSupply)

	for i := 0; i < tokenconst.BucketCount && i < len(st.Allocated) && i < len(st.Caps); i++ {
		u := BucketUsage{
			Bucket:    tokenconst.Bucket(i),
			Name:      tokenconst.BucketName(tokenconst.Bucket(i)),
			Allocated: decimal.NewFromBigInt(st.Allocated[i], exp),
			Cap:       decimal.NewFromBigInt(st.Caps[i], exp),
		}
		u.Share = share(u.Allocated, u.Cap)
		r.Buckets = append(r.Buckets, u)
	}

	return r
}

func share(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}

	return part.Div(whole).Round(4)
}
