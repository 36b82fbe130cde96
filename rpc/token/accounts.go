package token

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

const accountsBatchSize = 100

// AccountRecord is a balance record of the token together with its owner.
type AccountRecord struct {
	Owner util.Uint160
	Account
}

// Accounts returns all balance records of the token. It traverses the
// iterator returned by `iterateAccounts` method, so the RPC server must
// support sessions.
func (c *ContractReader) Accounts(sym string) ([]AccountRecord, error) {
	sess, iter, err := c.IterateAccounts(sym)
	if err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	defer func() {
		_ = c.invoker.TerminateSession(sess)
	}()

	var items []stackitem.Item
	for {
		batch, err := c.invoker.TraverseIterator(sess, &iter, accountsBatchSize)
		if err != nil {
			return nil, fmt.Errorf("traverse accounts iterator: %w", err)
		}

		items = append(items, batch...)
		if len(batch) < accountsBatchSize {
			break
		}
	}

	return AccountRecordsFromItems(items)
}

// AccountRecordsFromItems decodes key-value pairs produced by `iterateAccounts`
// method.
func AccountRecordsFromItems(items []stackitem.Item) ([]AccountRecord, error) {
	res := make([]AccountRecord, 0, len(items))
	for i := range items {
		kv, ok := items[i].Value().([]stackitem.Item)
		if !ok || len(kv) != 2 {
			return nil, fmt.Errorf("item %d: %w", i, errors.New("not a key-value pair"))
		}

		key, err := kv[0].TryBytes()
		if err != nil {
			return nil, fmt.Errorf("item %d: key: %w", i, err)
		}

		var rec AccountRecord

		rec.Owner, err = util.Uint160DecodeBytesBE(key)
		if err != nil {
			return nil, fmt.Errorf("item %d: owner: %w", i, err)
		}

		err = rec.Account.FromStackItem(kv[1])
		if err != nil {
			return nil, fmt.Errorf("item %d: account: %w", i, err)
		}

		res = append(res, rec)
	}

	return res, nil
}
