// Package token contains RPC wrappers for AMZ token contract.
package token

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// Stats is a contract-specific token.Stats type used by its methods.
type Stats struct {
	Symbol      string
	Decimals    *big.Int
	Issuer      util.Uint160
	MaxSupply   *big.Int
	Supply      *big.Int
	Circulating *big.Int
	Burned      *big.Int
	Blocked     *big.Int
	Allocated   []*big.Int
	Caps        []*big.Int
	Gates       []*big.Int
	GateParams  []*big.Int
	LastRelease []*big.Int
}

// Account is a contract-specific token.Account type used by its methods.
type Account struct {
	Balance *big.Int
	Payer   util.Uint160
}

// TransferEvent represents "Transfer" event emitted by the contract.
type TransferEvent struct {
	From   util.Uint160
	To     util.Uint160
	Amount *big.Int
}

// TransferXEvent represents "TransferX" event emitted by the contract.
type TransferXEvent struct {
	From    util.Uint160
	To      util.Uint160
	Amount  *big.Int
	Details []byte
}

// CreateEvent represents "Create" event emitted by the contract.
type CreateEvent struct {
	Symbol    string
	Issuer    util.Uint160
	MaxSupply *big.Int
}

// DisburseEvent represents "Disburse" event emitted by the contract.
type DisburseEvent struct {
	Symbol string
	Bucket *big.Int
	To     util.Uint160
	Amount *big.Int
}

// BurnEvent represents "Burn" event emitted by the contract.
type BurnEvent struct {
	Symbol string
	Amount *big.Int
	Memo   string
}

// BlockEvent represents "Block" event emitted by the contract.
type BlockEvent struct {
	Symbol string
	Amount *big.Int
}

// UnblockEvent represents "Unblock" event emitted by the contract.
type UnblockEvent struct {
	Symbol string
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetAccount invokes `getAccount` method of contract.
func (c *ContractReader) GetAccount(owner util.Uint160, sym string) (*Account, error) {
	return itemToAccount(unwrap.Item(c.invoker.Call(c.hash, "getAccount", owner, sym)))
}

// GetBalance invokes `getBalance` method of contract.
func (c *ContractReader) GetBalance(owner util.Uint160, sym string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getBalance", owner, sym))
}

// GetStats invokes `getStats` method of contract.
func (c *ContractReader) GetStats(sym string) (*Stats, error) {
	return itemToStats(unwrap.Item(c.invoker.Call(c.hash, "getStats", sym)))
}

// GetSupply invokes `getSupply` method of contract.
func (c *ContractReader) GetSupply(sym string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getSupply", sym))
}

// IterateAccounts invokes `iterateAccounts` method of contract.
func (c *ContractReader) IterateAccounts(sym string) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateAccounts", sym))
}

// IterateAccountsExpanded is similar to IterateAccounts (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateAccountsExpanded(sym string, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateAccounts", _numOfIteratorItems, sym))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Wallet invokes `wallet` method of contract.
func (c *ContractReader) Wallet(bucket *big.Int) (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "wallet", bucket))
}

// Block creates a transaction invoking `block` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Block(amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "block", amount, sym, decimals)
}

// BlockTransaction creates a transaction invoking `block` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BlockTransaction(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "block", amount, sym, decimals)
}

// BlockUnsigned creates a transaction invoking `block` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BlockUnsigned(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "block", nil, amount, sym, decimals)
}

// Burn creates a transaction invoking `burn` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Burn(amount *big.Int, sym string, decimals *big.Int, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "burn", amount, sym, decimals, memo)
}

// BurnTransaction creates a transaction invoking `burn` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BurnTransaction(amount *big.Int, sym string, decimals *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "burn", amount, sym, decimals, memo)
}

// BurnUnsigned creates a transaction invoking `burn` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BurnUnsigned(amount *big.Int, sym string, decimals *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "burn", nil, amount, sym, decimals, memo)
}

// Create creates a transaction invoking `create` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Create(issuer util.Uint160, maxSupply *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "create", issuer, maxSupply, sym, decimals)
}

// CreateTransaction creates a transaction invoking `create` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateTransaction(issuer util.Uint160, maxSupply *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "create", issuer, maxSupply, sym, decimals)
}

// CreateUnsigned creates a transaction invoking `create` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateUnsigned(issuer util.Uint160, maxSupply *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "create", nil, issuer, maxSupply, sym, decimals)
}

// TAirdrop creates a transaction invoking `tAirdrop` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TAirdrop(amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "tAirdrop", amount, sym, decimals)
}

// TAirdropTransaction creates a transaction invoking `tAirdrop` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TAirdropTransaction(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "tAirdrop", amount, sym, decimals)
}

// TAirdropUnsigned creates a transaction invoking `tAirdrop` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TAirdropUnsigned(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "tAirdrop", nil, amount, sym, decimals)
}

// TFoundation creates a transaction invoking `tFoundation` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TFoundation(amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "tFoundation", amount, sym, decimals)
}

// TFoundationTransaction creates a transaction invoking `tFoundation` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TFoundationTransaction(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "tFoundation", amount, sym, decimals)
}

// TFoundationUnsigned creates a transaction invoking `tFoundation` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TFoundationUnsigned(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "tFoundation", nil, amount, sym, decimals)
}

// THistoryFollowers creates a transaction invoking `tHistoryFollowers` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) THistoryFollowers(amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "tHistoryFollowers", amount, sym, decimals)
}

// THistoryFollowersTransaction creates a transaction invoking `tHistoryFollowers` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) THistoryFollowersTransaction(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "tHistoryFollowers", amount, sym, decimals)
}

// THistoryFollowersUnsigned creates a transaction invoking `tHistoryFollowers` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) THistoryFollowersUnsigned(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "tHistoryFollowers", nil, amount, sym, decimals)
}

// THistoryShareholder creates a transaction invoking `tHistoryShareholder` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) THistoryShareholder(amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "tHistoryShareholder", amount, sym, decimals)
}

// THistoryShareholderTransaction creates a transaction invoking `tHistoryShareholder` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) THistoryShareholderTransaction(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "tHistoryShareholder", amount, sym, decimals)
}

// THistoryShareholderUnsigned creates a transaction invoking `tHistoryShareholder` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) THistoryShareholderUnsigned(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "tHistoryShareholder", nil, amount, sym, decimals)
}

// TIco creates a transaction invoking `tIco` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TIco(amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "tIco", amount, sym, decimals)
}

// TIcoTransaction creates a transaction invoking `tIco` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TIcoTransaction(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "tIco", amount, sym, decimals)
}

// TIcoUnsigned creates a transaction invoking `tIco` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TIcoUnsigned(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "tIco", nil, amount, sym, decimals)
}

// TInb creates a transaction invoking `tInb` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TInb(amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "tInb", amount, sym, decimals)
}

// TInbTransaction creates a transaction invoking `tInb` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TInbTransaction(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "tInb", amount, sym, decimals)
}

// TInbUnsigned creates a transaction invoking `tInb` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TInbUnsigned(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "tInb", nil, amount, sym, decimals)
}

// TManagementTeam creates a transaction invoking `tManagementTeam` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TManagementTeam(amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "tManagementTeam", amount, sym, decimals)
}

// TManagementTeamTransaction creates a transaction invoking `tManagementTeam` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TManagementTeamTransaction(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "tManagementTeam", amount, sym, decimals)
}

// TManagementTeamUnsigned creates a transaction invoking `tManagementTeam` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TManagementTeamUnsigned(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "tManagementTeam", nil, amount, sym, decimals)
}

// TMarketing creates a transaction invoking `tMarketing` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TMarketing(amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "tMarketing", amount, sym, decimals)
}

// TMarketingTransaction creates a transaction invoking `tMarketing` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TMarketingTransaction(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "tMarketing", amount, sym, decimals)
}

// TMarketingUnsigned creates a transaction invoking `tMarketing` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TMarketingUnsigned(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "tMarketing", nil, amount, sym, decimals)
}

// TNewsletterSubscribers creates a transaction invoking `tNewsletterSubscribers` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TNewsletterSubscribers(amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "tNewsletterSubscribers", amount, sym, decimals)
}

// TNewsletterSubscribersTransaction creates a transaction invoking `tNewsletterSubscribers` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TNewsletterSubscribersTransaction(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "tNewsletterSubscribers", amount, sym, decimals)
}

// TNewsletterSubscribersUnsigned creates a transaction invoking `tNewsletterSubscribers` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TNewsletterSubscribersUnsigned(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "tNewsletterSubscribers", nil, amount, sym, decimals)
}

// TOperatingCost creates a transaction invoking `tOperatingCost` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TOperatingCost(amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "tOperatingCost", amount, sym, decimals)
}

// TOperatingCostTransaction creates a transaction invoking `tOperatingCost` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TOperatingCostTransaction(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "tOperatingCost", amount, sym, decimals)
}

// TOperatingCostUnsigned creates a transaction invoking `tOperatingCost` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TOperatingCostUnsigned(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "tOperatingCost", nil, amount, sym, decimals)
}

// TPreIco creates a transaction invoking `tPreIco` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TPreIco(amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "tPreIco", amount, sym, decimals)
}

// TPreIcoTransaction creates a transaction invoking `tPreIco` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TPreIcoTransaction(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "tPreIco", amount, sym, decimals)
}

// TPreIcoUnsigned creates a transaction invoking `tPreIco` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TPreIcoUnsigned(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "tPreIco", nil, amount, sym, decimals)
}

// TStakingBonus creates a transaction invoking `tStakingBonus` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) TStakingBonus(to util.Uint160, amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "tStakingBonus", to, amount, sym, decimals)
}

// TStakingBonusTransaction creates a transaction invoking `tStakingBonus` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TStakingBonusTransaction(to util.Uint160, amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "tStakingBonus", to, amount, sym, decimals)
}

// TStakingBonusUnsigned creates a transaction invoking `tStakingBonus` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TStakingBonusUnsigned(to util.Uint160, amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "tStakingBonus", nil, to, amount, sym, decimals)
}

// Transfer creates a transaction invoking `transfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Transfer(from util.Uint160, to util.Uint160, amount *big.Int, sym string, decimals *big.Int, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transfer", from, to, amount, sym, decimals, memo)
}

// TransferTransaction creates a transaction invoking `transfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferTransaction(from util.Uint160, to util.Uint160, amount *big.Int, sym string, decimals *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transfer", from, to, amount, sym, decimals, memo)
}

// TransferUnsigned creates a transaction invoking `transfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferUnsigned(from util.Uint160, to util.Uint160, amount *big.Int, sym string, decimals *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transfer", nil, from, to, amount, sym, decimals, memo)
}

// Unblock creates a transaction invoking `unblock` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Unblock(amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "unblock", amount, sym, decimals)
}

// UnblockTransaction creates a transaction invoking `unblock` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UnblockTransaction(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "unblock", amount, sym, decimals)
}

// UnblockUnsigned creates a transaction invoking `unblock` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UnblockUnsigned(amount *big.Int, sym string, decimals *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "unblock", nil, amount, sym, decimals)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// itemToAccount converts stack item into *Account.
func itemToAccount(item stackitem.Item, err error) (*Account, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Account)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Account from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Account) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)

	index++
	res.Balance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Balance: %w", err)
	}

	index++
	res.Payer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Payer: %w", err)
	}

	return nil
}

// itemToStats converts stack item into *Stats.
func itemToStats(item stackitem.Item, err error) (*Stats, error) {
	if err != nil {
		return nil, err
	}
	var res = new(Stats)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of Stats from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *Stats) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 13 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)

	index++
	res.Symbol, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	res.Decimals, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Decimals: %w", err)
	}

	index++
	res.Issuer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Issuer: %w", err)
	}

	index++
	res.MaxSupply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxSupply: %w", err)
	}

	index++
	res.Supply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Supply: %w", err)
	}

	index++
	res.Circulating, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Circulating: %w", err)
	}

	index++
	res.Burned, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Burned: %w", err)
	}

	index++
	res.Blocked, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Blocked: %w", err)
	}

	index++
	res.Allocated, err = itemToBigInts(arr[index])
	if err != nil {
		return fmt.Errorf("field Allocated: %w", err)
	}

	index++
	res.Caps, err = itemToBigInts(arr[index])
	if err != nil {
		return fmt.Errorf("field Caps: %w", err)
	}

	index++
	res.Gates, err = itemToBigInts(arr[index])
	if err != nil {
		return fmt.Errorf("field Gates: %w", err)
	}

	index++
	res.GateParams, err = itemToBigInts(arr[index])
	if err != nil {
		return fmt.Errorf("field GateParams: %w", err)
	}

	index++
	res.LastRelease, err = itemToBigInts(arr[index])
	if err != nil {
		return fmt.Errorf("field LastRelease: %w", err)
	}

	return nil
}

// TransferEventsFromApplicationLog retrieves a set of all emitted events
// with "Transfer" name from the provided [result.ApplicationLog].
func TransferEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Transfer" {
				continue
			}
			event := new(TransferEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferEvent or
// returns an error if it's not possible to do to so.
func (e *TransferEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)

	index++
	e.From, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// TransferXEventsFromApplicationLog retrieves a set of all emitted events
// with "TransferX" name from the provided [result.ApplicationLog].
func TransferXEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferXEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferXEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "TransferX" {
				continue
			}
			event := new(TransferXEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferXEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferXEvent or
// returns an error if it's not possible to do to so.
func (e *TransferXEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)

	index++
	e.From, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Details, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Details: %w", err)
	}

	return nil
}

// CreateEventsFromApplicationLog retrieves a set of all emitted events
// with "Create" name from the provided [result.ApplicationLog].
func CreateEventsFromApplicationLog(log *result.ApplicationLog) ([]*CreateEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CreateEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Create" {
				continue
			}
			event := new(CreateEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CreateEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CreateEvent or
// returns an error if it's not possible to do to so.
func (e *CreateEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)

	index++
	e.Symbol, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Issuer, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Issuer: %w", err)
	}

	index++
	e.MaxSupply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxSupply: %w", err)
	}

	return nil
}

// DisburseEventsFromApplicationLog retrieves a set of all emitted events
// with "Disburse" name from the provided [result.ApplicationLog].
func DisburseEventsFromApplicationLog(log *result.ApplicationLog) ([]*DisburseEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*DisburseEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Disburse" {
				continue
			}
			event := new(DisburseEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize DisburseEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to DisburseEvent or
// returns an error if it's not possible to do to so.
func (e *DisburseEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)

	index++
	e.Symbol, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Bucket, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Bucket: %w", err)
	}

	index++
	e.To, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// BurnEventsFromApplicationLog retrieves a set of all emitted events
// with "Burn" name from the provided [result.ApplicationLog].
func BurnEventsFromApplicationLog(log *result.ApplicationLog) ([]*BurnEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BurnEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Burn" {
				continue
			}
			event := new(BurnEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BurnEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BurnEvent or
// returns an error if it's not possible to do to so.
func (e *BurnEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)

	index++
	e.Symbol, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Memo, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Memo: %w", err)
	}

	return nil
}

// BlockEventsFromApplicationLog retrieves a set of all emitted events
// with "Block" name from the provided [result.ApplicationLog].
func BlockEventsFromApplicationLog(log *result.ApplicationLog) ([]*BlockEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*BlockEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Block" {
				continue
			}
			event := new(BlockEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize BlockEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to BlockEvent or
// returns an error if it's not possible to do to so.
func (e *BlockEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)

	index++
	e.Symbol, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// UnblockEventsFromApplicationLog retrieves a set of all emitted events
// with "Unblock" name from the provided [result.ApplicationLog].
func UnblockEventsFromApplicationLog(log *result.ApplicationLog) ([]*UnblockEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UnblockEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Unblock" {
				continue
			}
			event := new(UnblockEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UnblockEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UnblockEvent or
// returns an error if it's not possible to do to so.
func (e *UnblockEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)

	index++
	e.Symbol, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// itemToUint160 decodes script hash from the stack item. Null item stands for
// the empty side of mint-like and burn-like transfers and is decoded as zero
// hash.
func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	if _, ok := item.(stackitem.Null); ok {
		return util.Uint160{}, nil
	}
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return util.Uint160{}, err
	}
	return u, nil
}

func itemToString(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err == nil && !utf8.Valid(b) {
		err = errors.New("not a UTF-8 string")
	}
	return string(b), err
}

func itemToBigInts(item stackitem.Item) ([]*big.Int, error) {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return nil, errors.New("not an array")
	}
	res := make([]*big.Int, len(arr))
	for i := range arr {
		v, err := arr[i].TryInteger()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		res[i] = v
	}
	return res, nil
}
