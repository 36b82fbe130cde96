/*
Package tokenconst contains constants shared by the AMZ token contract and
the off-chain code working with it.
*/
package tokenconst

const (
	// MaxAmount is the largest valid token quantity.
	MaxAmount = 1<<62 - 1

	// MaxDecimals is the largest supported token precision.
	MaxDecimals = 18

	// MaxSymbolLength is the largest number of characters in a token symbol.
	MaxSymbolLength = 7

	// MaxMemoLength is the largest memo size in bytes.
	MaxMemoLength = 256
)

// Default bucket caps in the smallest token units.
const (
	DefaultAirdropCap            = 300000000000000
	DefaultICOCap                = 4600000000000000
	DefaultPreICOCap             = 500000000000000
	DefaultHistoryShareholderCap = 500000000000000
	DefaultINBNetworkCap         = 10000000000000000
	DefaultStakingBonusCap       = 4000000000000000
	DefaultHistoryNewsletterCap  = 100000000000000
	DefaultFoundationCap         = 1000000000000000
	DefaultMarketingCap          = 1000000000000000
	DefaultManagementTeamCap     = 1000000000000000
	DefaultOperatingCostCap      = 700000000000000
	DefaultHistoryFollowersCap   = 300000000000000
)

// Default gate parameters: unix seconds for one-shot gates, seconds for
// rolling ones.
const (
	DefaultHistoryShareholderUnlock = 1618464354
	DefaultINBNetworkInterval       = 86400
	DefaultFoundationInterval       = 31536000
	DefaultMarketingInterval        = 2592000
	DefaultManagementTeamInterval   = 15768000
)

// DefaultCap returns default cap of the bucket.
func DefaultCap(b Bucket) int {
	switch b {
	case Airdrop:
		return DefaultAirdropCap
	case ICO:
		return DefaultICOCap
	case PreICO:
		return DefaultPreICOCap
	case HistoryShareholder:
		return DefaultHistoryShareholderCap
	case INBNetwork:
		return DefaultINBNetworkCap
	case StakingBonus:
		return DefaultStakingBonusCap
	case HistoryNewsletter:
		return DefaultHistoryNewsletterCap
	case Foundation:
		return DefaultFoundationCap
	case Marketing:
		return DefaultMarketingCap
	case ManagementTeam:
		return DefaultManagementTeamCap
	case OperatingCost:
		return DefaultOperatingCostCap
	case HistoryFollowers:
		return DefaultHistoryFollowersCap
	default:
		return 0
	}
}

// DefaultGate returns default cooldown model of the bucket and its parameter.
func DefaultGate(b Bucket) (Gate, int) {
	switch b {
	case HistoryShareholder:
		return GateOneShot, DefaultHistoryShareholderUnlock
	case INBNetwork:
		return GateRolling, DefaultINBNetworkInterval
	case Foundation:
		return GateRolling, DefaultFoundationInterval
	case Marketing:
		return GateRolling, DefaultMarketingInterval
	case ManagementTeam:
		return GateRolling, DefaultManagementTeamInterval
	default:
		return GateNone, 0
	}
}
