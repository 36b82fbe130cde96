package token

import (
	"fmt"
	"math/big"

	"github.com/amzchain/amz-token/contracts/token/tokenconst"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Bucket values to use as `wallet` method argument.
var (
	BucketAirdrop            = big.NewInt(int64(tokenconst.Airdrop))
	BucketICO                = big.NewInt(int64(tokenconst.ICO))
	BucketPreICO             = big.NewInt(int64(tokenconst.PreICO))
	BucketHistoryShareholder = big.NewInt(int64(tokenconst.HistoryShareholder))
	BucketINBNetwork         = big.NewInt(int64(tokenconst.INBNetwork))
	BucketStakingBonus       = big.NewInt(int64(tokenconst.StakingBonus))
	BucketHistoryNewsletter  = big.NewInt(int64(tokenconst.HistoryNewsletter))
	BucketFoundation         = big.NewInt(int64(tokenconst.Foundation))
	BucketMarketing          = big.NewInt(int64(tokenconst.Marketing))
	BucketManagementTeam     = big.NewInt(int64(tokenconst.ManagementTeam))
	BucketOperatingCost      = big.NewInt(int64(tokenconst.OperatingCost))
	BucketHistoryFollowers   = big.NewInt(int64(tokenconst.HistoryFollowers))
)

// DisburseMethod returns name of the contract method releasing tokens of the
// bucket.
func DisburseMethod(b tokenconst.Bucket) (string, error) {
	switch b {
	case tokenconst.Airdrop:
		return "tAirdrop", nil
	case tokenconst.ICO:
		return "tIco", nil
	case tokenconst.PreICO:
		return "tPreIco", nil
	case tokenconst.HistoryShareholder:
		return "tHistoryShareholder", nil
	case tokenconst.INBNetwork:
		return "tInb", nil
	case tokenconst.StakingBonus:
		return "tStakingBonus", nil
	case tokenconst.HistoryNewsletter:
		return "tNewsletterSubscribers", nil
	case tokenconst.Foundation:
		return "tFoundation", nil
	case tokenconst.Marketing:
		return "tMarketing", nil
	case tokenconst.ManagementTeam:
		return "tManagementTeam", nil
	case tokenconst.OperatingCost:
		return "tOperatingCost", nil
	case tokenconst.HistoryFollowers:
		return "tHistoryFollowers", nil
	default:
		return "", fmt.Errorf("%s: %d", tokenconst.ErrUnknownBucket, b)
	}
}

// Disburse releases tokens of any bucket. The destination is used for the
// staking bonus bucket only, other buckets pay to their configured wallets.
// The values returned are transaction hash, ValidUntilBlock value and error
// if any.
func (c *Contract) Disburse(b tokenconst.Bucket, to util.Uint160, amount *big.Int, sym string, decimals *big.Int) (util.Uint256, uint32, error) {
	method, err := DisburseMethod(b)
	if err != nil {
		return util.Uint256{}, 0, err
	}

	if b == tokenconst.StakingBonus {
		return c.actor.SendCall(c.hash, method, to, amount, sym, decimals)
	}

	return c.actor.SendCall(c.hash, method, amount, sym, decimals)
}
