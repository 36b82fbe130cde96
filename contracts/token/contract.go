package token

import (
	"github.com/amzchain/amz-token/common"
	"github.com/amzchain/amz-token/contracts/token/tokenconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Stats structure stores supply record of the token.
	Stats struct {
		Symbol   string
		Decimals int
		Issuer   interop.Hash160

		MaxSupply   int
		Supply      int
		Circulating int
		Burned      int
		Blocked     int

		// Per-bucket values indexed by tokenconst.Bucket.
		Allocated   []int
		Caps        []int
		Gates       []int
		GateParams  []int
		LastRelease []int
	}

	// Account structure stores balance of the owner. Payer is the account
	// that paid for the record creation, it never changes afterwards.
	Account struct {
		Balance int
		Payer   interop.Hash160
	}
)

const (
	ownerKey      = "owner"
	walletsKey    = "wallets"
	capsKey       = "caps"
	gatesKey      = "gates"
	gateParamsKey = "gateParams"

	statsPrefix   = "s"
	accountPrefix = "a"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner      interop.Hash160
		wallets    []interop.Hash160
		caps       []int
		gates      []int
		gateParams []int
	})

	if len(args.owner) != interop.Hash160Len {
		panic("incorrect length of owner script hash")
	}

	if len(args.wallets) != tokenconst.BucketCount {
		panic("incorrect number of bucket wallets")
	}

	for i := 0; i < tokenconst.BucketCount; i++ {
		if i == int(tokenconst.StakingBonus) {
			continue
		}
		if len(args.wallets[i]) != interop.Hash160Len {
			panic("incorrect wallet of " + tokenconst.BucketName(tokenconst.Bucket(i)) + " bucket")
		}
	}

	caps := args.caps
	if len(caps) == 0 {
		caps = defaultCaps()
	}

	gates := args.gates
	gateParams := args.gateParams
	if len(gates) == 0 && len(gateParams) == 0 {
		gates, gateParams = defaultGates()
	}

	checkBucketConfig(caps, gates, gateParams)

	ctx := storage.GetContext()
	storage.Put(ctx, ownerKey, args.owner)
	common.SetSerialized(ctx, walletsKey, args.wallets)
	common.SetSerialized(ctx, capsKey, caps)
	common.SetSerialized(ctx, gatesKey, gates)
	common.SetSerialized(ctx, gateParamsKey, gateParams)

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(nefFile, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	if !common.HasUpdateAccess(getOwner(ctx)) {
		panic("only owner can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// Owner returns script hash of the ledger owner who creates tokens and
// releases bucket allocations.
func Owner() interop.Hash160 {
	return getOwner(storage.GetReadOnlyContext())
}

// Wallet returns destination wallet of the bucket. Staking bonus bucket has
// no fixed destination, its wallet value is meaningless.
func Wallet(bucket int) interop.Hash160 {
	if bucket < 0 || bucket >= tokenconst.BucketCount {
		panic(tokenconst.ErrUnknownBucket)
	}

	return getWallet(storage.GetReadOnlyContext(), tokenconst.Bucket(bucket))
}

// Create method registers a new token with the given issuer, maximum supply
// and precision. It can be invoked only by the ledger owner. Bucket caps,
// gates and gate parameters are taken from the contract configuration.
//
// It produces Create notification.
func Create(issuer interop.Hash160, maxSupply int, sym string, decimals int) {
	ctx := storage.GetContext()

	common.CheckOwnerWitness(getOwner(ctx))

	if len(issuer) != interop.Hash160Len {
		panic(tokenconst.ErrInvalidIssuer)
	}

	checkSymbol(sym)

	if decimals < 0 || decimals > tokenconst.MaxDecimals {
		panic(tokenconst.ErrInvalidDecimals)
	}

	checkQuantity(maxSupply)
	checkPositive(maxSupply)

	caps := getInts(ctx, capsKey)
	sum := 0
	for i := 0; i < len(caps); i++ {
		sum += caps[i]
	}
	if maxSupply < sum {
		panic(tokenconst.ErrCapsExceedMax)
	}

	key := statsPrefix + sym
	if storage.Get(ctx, key) != nil {
		panic(tokenconst.ErrSupplyExists)
	}

	st := Stats{
		Symbol:      sym,
		Decimals:    decimals,
		Issuer:      issuer,
		MaxSupply:   maxSupply,
		Allocated:   zeroes(),
		Caps:        caps,
		Gates:       getInts(ctx, gatesKey),
		GateParams:  getInts(ctx, gateParamsKey),
		LastRelease: zeroes(),
	}
	common.SetSerialized(ctx, key, st)

	runtime.Notify("Create", sym, issuer, maxSupply)
}

// Transfer method moves tokens from one account to another. It can be invoked
// only by the sender, a contract sender can also call it directly. Record of the receiver is created on the first credit,
// the receiver is recorded as its payer if it has witnessed the call too,
// otherwise the sender is.
//
// It produces Transfer and TransferX notifications. TransferX details carry
// the memo.
func Transfer(from, to interop.Hash160, amount int, sym string, decimals int, memo string) {
	if from.Equals(to) {
		panic(tokenconst.ErrSelfTransfer)
	}

	common.CheckWitness(from)

	if len(to) != interop.Hash160Len {
		panic(tokenconst.ErrAccountNotFound)
	}

	checkSymbol(sym)

	ctx := storage.GetContext()
	st := getStats(ctx, sym)

	checkQuantity(amount)
	checkPositive(amount)
	checkSymbolMatch(st, sym, decimals)
	checkMemo(memo)

	payer := from
	if runtime.CheckWitness(to) {
		payer = to
	}

	debit(ctx, from, amount, sym)
	credit(ctx, to, amount, sym, payer)

	emitTransfer(from, to, amount, common.TransferDetails(memo))
}

// Burn method destroys issuer's tokens. It can be invoked only by the token
// issuer and takes tokens from the issuer's own balance.
//
// It produces Burn, Transfer and TransferX notifications.
func Burn(amount int, sym string, decimals int, memo string) {
	checkSymbol(sym)

	ctx := storage.GetContext()
	st := getStats(ctx, sym)

	common.CheckIssuerWitness(st.Issuer)

	checkQuantity(amount)
	checkPositive(amount)
	checkSymbolMatch(st, sym, decimals)
	checkMemo(memo)

	if amount > st.Circulating {
		panic(tokenconst.ErrCirculatingExceeded)
	}

	st.Circulating -= amount
	st.Burned += amount
	common.SetSerialized(ctx, statsPrefix+sym, st)

	debit(ctx, st.Issuer, amount, sym)

	runtime.Notify("Burn", sym, amount, memo)
	emitTransfer(st.Issuer, nil, amount, common.BurnTransferDetails(memo))
}

// Block method moves issuer's tokens out of circulation into the blocked
// pool. It can be invoked only by the token issuer.
//
// It produces Block, Transfer and TransferX notifications.
func Block(amount int, sym string, decimals int) {
	checkSymbol(sym)

	ctx := storage.GetContext()
	st := getStats(ctx, sym)

	common.CheckIssuerWitness(st.Issuer)

	checkQuantity(amount)
	checkPositive(amount)
	checkSymbolMatch(st, sym, decimals)

	if amount > st.Circulating {
		panic(tokenconst.ErrCirculatingExceeded)
	}

	st.Circulating -= amount
	st.Blocked += amount
	common.SetSerialized(ctx, statsPrefix+sym, st)

	debit(ctx, st.Issuer, amount, sym)

	runtime.Notify("Block", sym, amount)
	emitTransfer(st.Issuer, nil, amount, common.BlockTransferDetails())
}

// Unblock method returns tokens from the blocked pool to the issuer's
// balance. It can be invoked only by the token issuer.
//
// It produces Unblock, Transfer and TransferX notifications.
func Unblock(amount int, sym string, decimals int) {
	checkSymbol(sym)

	ctx := storage.GetContext()
	st := getStats(ctx, sym)

	common.CheckIssuerWitness(st.Issuer)

	checkQuantity(amount)
	checkPositive(amount)
	checkSymbolMatch(st, sym, decimals)

	if amount > st.Blocked {
		panic(tokenconst.ErrBlockedExceeded)
	}

	st.Blocked -= amount
	st.Circulating += amount
	common.SetSerialized(ctx, statsPrefix+sym, st)

	credit(ctx, st.Issuer, amount, sym, st.Issuer)

	runtime.Notify("Unblock", sym, amount)
	emitTransfer(nil, st.Issuer, amount, common.UnblockTransferDetails())
}

// GetSupply returns total amount of tokens released from the buckets.
func GetSupply(sym string) int {
	checkSymbol(sym)
	return getStats(storage.GetReadOnlyContext(), sym).Supply
}

// GetBalance returns balance of the owner, zero if there is no record.
func GetBalance(owner interop.Hash160, sym string) int {
	checkSymbol(sym)

	data := common.GetSerialized(storage.GetReadOnlyContext(), accountKey(sym, owner))
	if data == nil {
		return 0
	}

	return data.(Account).Balance
}

// GetAccount returns balance record of the owner. It fails if there is no
// record.
func GetAccount(owner interop.Hash160, sym string) Account {
	checkSymbol(sym)

	data := common.GetSerialized(storage.GetReadOnlyContext(), accountKey(sym, owner))
	if data == nil {
		panic(tokenconst.ErrNoBalance)
	}

	return data.(Account)
}

// GetStats returns supply record of the token.
func GetStats(sym string) Stats {
	checkSymbol(sym)
	return getStats(storage.GetReadOnlyContext(), sym)
}

// IterateAccounts method returns iterator over all balance records of the
// token. Keys are owner script hashes, values are Account structures.
func IterateAccounts(sym string) iterator.Iterator {
	checkSymbol(sym)

	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, accountPrefix+sym+".", storage.RemovePrefix|storage.DeserializeValues)
}

func getOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func getWallet(ctx storage.Context, b tokenconst.Bucket) interop.Hash160 {
	wallets := common.GetSerialized(ctx, walletsKey).([]interop.Hash160)
	return wallets[b]
}

func getInts(ctx storage.Context, key string) []int {
	return common.GetSerialized(ctx, key).([]int)
}

func getStats(ctx storage.Context, sym string) Stats {
	data := common.GetSerialized(ctx, statsPrefix+sym)
	if data == nil {
		panic(tokenconst.ErrSupplyNotFound)
	}

	return data.(Stats)
}

func accountKey(sym string, owner interop.Hash160) []byte {
	return append([]byte(accountPrefix+sym+"."), owner...)
}

// emitTransfer produces Transfer and TransferX notifications. Nil from or to
// stands for tokens entering or leaving circulation.
func emitTransfer(from, to interop.Hash160, amount int, details []byte) {
	runtime.Notify("Transfer", from, to, amount)
	runtime.Notify("TransferX", from, to, amount, details)
}

func zeroes() []int {
	res := []int{}
	for i := 0; i < tokenconst.BucketCount; i++ {
		res = append(res, 0)
	}

	return res
}

func defaultCaps() []int {
	res := []int{}
	for i := 0; i < tokenconst.BucketCount; i++ {
		res = append(res, tokenconst.DefaultCap(tokenconst.Bucket(i)))
	}

	return res
}

func defaultGates() ([]int, []int) {
	gates := []int{}
	params := []int{}
	for i := 0; i < tokenconst.BucketCount; i++ {
		g, p := tokenconst.DefaultGate(tokenconst.Bucket(i))
		gates = append(gates, int(g))
		params = append(params, p)
	}

	return gates, params
}

func checkBucketConfig(caps, gates, gateParams []int) {
	if len(caps) != tokenconst.BucketCount {
		panic("incorrect number of bucket caps")
	}
	if len(gates) != tokenconst.BucketCount || len(gateParams) != tokenconst.BucketCount {
		panic("incorrect number of bucket gates")
	}

	for i := 0; i < tokenconst.BucketCount; i++ {
		if caps[i] < 0 || caps[i] > tokenconst.MaxAmount {
			panic("incorrect cap of " + tokenconst.BucketName(tokenconst.Bucket(i)) + " bucket")
		}
		if gates[i] < int(tokenconst.GateNone) || gates[i] > int(tokenconst.GateRolling) || gateParams[i] < 0 {
			panic("incorrect gate of " + tokenconst.BucketName(tokenconst.Bucket(i)) + " bucket")
		}
	}
}
