package tokenholder

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type Call struct {
	To     interop.Hash160
	Amount int
	Memo   string
}

// Send transfers tokens owned by this contract.
func Send(token, to interop.Hash160, amount int, sym string, decimals int, memo string) {
	contract.Call(token, "transfer", contract.All,
		runtime.GetExecutingScriptHash(), to, amount, sym, decimals, memo)

	storage.Put(storage.GetContext(), "key", std.Serialize(Call{
		To:     to,
		Amount: amount,
		Memo:   memo,
	}))
}

func Get() Call {
	val := storage.Get(storage.GetReadOnlyContext(), "key")
	if val == nil {
		return Call{}
	}
	return std.Deserialize(val.([]byte)).(Call)
}

func Verify() bool {
	return true
}
