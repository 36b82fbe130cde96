package tokenconst

// Bucket is an enumeration of treasury allocation categories. Bucket values
// are indexes into per-bucket arrays of the token stats record.
type Bucket int

// Allocation buckets.
const (
	Airdrop Bucket = iota
	ICO
	PreICO
	HistoryShareholder
	INBNetwork
	StakingBonus
	HistoryNewsletter
	Foundation
	Marketing
	ManagementTeam
	OperatingCost
	HistoryFollowers

	// BucketCount is the number of allocation buckets.
	BucketCount = 12
)

// BucketName returns human-readable bucket name used in failure messages and
// notifications.
func BucketName(b Bucket) string {
	switch b {
	case Airdrop:
		return "airdrop"
	case ICO:
		return "ico"
	case PreICO:
		return "pre-ico"
	case HistoryShareholder:
		return "history-shareholder"
	case INBNetwork:
		return "inb-network"
	case StakingBonus:
		return "staking-bonus"
	case HistoryNewsletter:
		return "history-newsletter"
	case Foundation:
		return "foundation"
	case Marketing:
		return "marketing"
	case ManagementTeam:
		return "management-team"
	case OperatingCost:
		return "operating-cost"
	case HistoryFollowers:
		return "history-followers"
	default:
		return "unknown"
	}
}
