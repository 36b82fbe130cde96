package token

import (
	"github.com/amzchain/amz-token/common"
	"github.com/amzchain/amz-token/contracts/token/tokenconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// TAirdrop releases tokens of the airdrop bucket to its wallet.
func TAirdrop(amount int, sym string, decimals int) {
	disburseToWallet(tokenconst.Airdrop, amount, sym, decimals)
}

// TIco releases tokens of the ICO bucket to its wallet.
func TIco(amount int, sym string, decimals int) {
	disburseToWallet(tokenconst.ICO, amount, sym, decimals)
}

// TPreIco releases tokens of the pre-ICO bucket to its wallet.
func TPreIco(amount int, sym string, decimals int) {
	disburseToWallet(tokenconst.PreICO, amount, sym, decimals)
}

// THistoryShareholder releases tokens of the history shareholder bucket to
// its wallet. The bucket is locked until a fixed moment.
func THistoryShareholder(amount int, sym string, decimals int) {
	disburseToWallet(tokenconst.HistoryShareholder, amount, sym, decimals)
}

// TInb releases tokens of the INB network bucket to its wallet. Releases are
// limited to one per interval.
func TInb(amount int, sym string, decimals int) {
	disburseToWallet(tokenconst.INBNetwork, amount, sym, decimals)
}

// TStakingBonus releases tokens of the staking bonus bucket to the given
// account.
func TStakingBonus(to interop.Hash160, amount int, sym string, decimals int) {
	if len(to) != interop.Hash160Len {
		panic(tokenconst.ErrAccountNotFound)
	}

	disburse(tokenconst.StakingBonus, to, amount, sym, decimals)
}

// TNewsletterSubscribers releases tokens of the history newsletter bucket to
// its wallet.
func TNewsletterSubscribers(amount int, sym string, decimals int) {
	disburseToWallet(tokenconst.HistoryNewsletter, amount, sym, decimals)
}

// TFoundation releases tokens of the foundation bucket to its wallet.
// Releases are limited to one per interval.
func TFoundation(amount int, sym string, decimals int) {
	disburseToWallet(tokenconst.Foundation, amount, sym, decimals)
}

// TMarketing releases tokens of the marketing bucket to its wallet. Releases
// are limited to one per interval.
func TMarketing(amount int, sym string, decimals int) {
	disburseToWallet(tokenconst.Marketing, amount, sym, decimals)
}

// TManagementTeam releases tokens of the management team bucket to its
// wallet. Releases are limited to one per interval.
func TManagementTeam(amount int, sym string, decimals int) {
	disburseToWallet(tokenconst.ManagementTeam, amount, sym, decimals)
}

// TOperatingCost releases tokens of the operating cost bucket to its wallet.
func TOperatingCost(amount int, sym string, decimals int) {
	disburseToWallet(tokenconst.OperatingCost, amount, sym, decimals)
}

// THistoryFollowers releases tokens of the history followers bucket to its
// wallet.
func THistoryFollowers(amount int, sym string, decimals int) {
	disburseToWallet(tokenconst.HistoryFollowers, amount, sym, decimals)
}

func disburseToWallet(b tokenconst.Bucket, amount int, sym string, decimals int) {
	to := getWallet(storage.GetReadOnlyContext(), b)
	disburse(b, to, amount, sym, decimals)
}

// disburse releases amount of the bucket to the account. It is the only way
// tokens enter circulation.
func disburse(b tokenconst.Bucket, to interop.Hash160, amount int, sym string, decimals int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(getOwner(ctx))

	checkSymbol(sym)

	st := getStats(ctx, sym)

	checkQuantity(amount)
	checkPositive(amount)
	checkSymbolMatch(st, sym, decimals)

	name := tokenconst.BucketName(b)

	if st.Allocated[b]+amount > st.Caps[b] {
		panic(tokenconst.ErrBucketExhausted + ": " + name)
	}

	if st.Supply+amount > st.MaxSupply {
		panic(tokenconst.ErrGlobalSupply)
	}

	now := runtime.GetTime() / 1000
	if !gateOpen(st, b, now) {
		panic(tokenconst.ErrCooldownNotElapsed + ": " + name)
	}

	st.Allocated[b] = st.Allocated[b] + amount
	st.LastRelease[b] = now
	st.Supply += amount
	st.Circulating += amount
	common.SetSerialized(ctx, statsPrefix+sym, st)

	credit(ctx, to, amount, sym, runtime.GetExecutingScriptHash())

	runtime.Notify("Disburse", sym, int(b), to, amount)
	emitTransfer(nil, to, amount, common.DisburseTransferDetails(name))
}

// gateOpen checks whether the bucket time lock allows release at now (unix
// seconds).
func gateOpen(st Stats, b tokenconst.Bucket, now int) bool {
	switch tokenconst.Gate(st.Gates[b]) {
	case tokenconst.GateOneShot:
		return now >= st.GateParams[b]
	case tokenconst.GateRolling:
		return now-st.LastRelease[b] >= st.GateParams[b]
	default:
		return true
	}
}
