package deploy

import (
	"testing"

	"github.com/amzchain/amz-token/contracts/token/tokenconst"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	c := DefaultConfig(util.Uint160{0xff})
	for i := range c.Wallets {
		c.Wallets[i] = util.Uint160{byte(i + 1)}
	}
	c.Wallets[tokenconst.PreICO] = util.Uint160{}
	c.Wallets[tokenconst.StakingBonus] = util.Uint160{}
	return c
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig(util.Uint160{1})
	require.EqualValues(t, tokenconst.DefaultMarketingCap, c.Caps[tokenconst.Marketing])
	require.Equal(t, tokenconst.GateOneShot, c.Gates[tokenconst.HistoryShareholder])
	require.EqualValues(t, tokenconst.DefaultHistoryShareholderUnlock, c.GateParams[tokenconst.HistoryShareholder])
	require.Equal(t, tokenconst.GateRolling, c.Gates[tokenconst.ManagementTeam])
	require.Equal(t, tokenconst.GateNone, c.Gates[tokenconst.ICO])
	require.Equal(t, "24000000000000000", c.CapsSum().String())
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tcs := []struct {
		name   string
		modify func(*Config)
	}{
		{"owner", func(c *Config) { c.Owner = util.Uint160{} }},
		{"wallet", func(c *Config) { c.Wallets[tokenconst.Foundation] = util.Uint160{} }},
		{"caps number", func(c *Config) { c.Caps = c.Caps[:5] }},
		{"negative cap", func(c *Config) { c.Caps[tokenconst.Airdrop] = -1 }},
		{"caps sum", func(c *Config) {
			c.Caps[tokenconst.Airdrop] = tokenconst.MaxAmount
			c.Caps[tokenconst.ICO] = tokenconst.MaxAmount
		}},
		{"gates mismatch", func(c *Config) { c.GateParams = nil }},
		{"gates number", func(c *Config) {
			c.Gates = c.Gates[:2]
			c.GateParams = c.GateParams[:2]
		}},
		{"unknown gate", func(c *Config) { c.Gates[tokenconst.Marketing] = 3 }},
		{"negative param", func(c *Config) { c.GateParams[tokenconst.Marketing] = -1 }},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.modify(&c)
			require.Error(t, c.Validate())
		})
	}

	t.Run("empty lists", func(t *testing.T) {
		c := validConfig()
		c.Caps, c.Gates, c.GateParams = nil, nil, nil
		require.NoError(t, c.Validate())
		require.Equal(t, "24000000000000000", c.CapsSum().String())
	})
}

func TestConfigDeployData(t *testing.T) {
	c := validConfig()
	data := c.DeployData()
	require.Len(t, data, 5)
	require.Equal(t, c.Owner, data[0])

	wallets := data[1].([]any)
	require.Len(t, wallets, tokenconst.BucketCount)
	require.Equal(t, c.Wallets[tokenconst.ICO], wallets[tokenconst.PreICO])
	require.Equal(t, c.Wallets[tokenconst.Airdrop], wallets[tokenconst.Airdrop])

	caps := data[2].([]any)
	require.Equal(t, int64(tokenconst.DefaultINBNetworkCap), caps[tokenconst.INBNetwork])

	gates := data[3].([]any)
	require.Equal(t, int64(tokenconst.GateRolling), gates[tokenconst.Foundation])

	preICO := util.Uint160{0xee}
	c.Wallets[tokenconst.PreICO] = preICO
	require.Equal(t, preICO, c.DeployData()[1].([]any)[tokenconst.PreICO])
}

func TestParseConfig(t *testing.T) {
	owner := util.Uint160{1, 2, 3}
	ico := util.Uint160{4, 5, 6}

	data := []byte(`
owner: ` + address.Uint160ToString(owner) + `
wallets:
  ico: ` + address.Uint160ToString(ico) + `
buckets:
  marketing:
    cap: 5
    gate: one-shot
    param: 1700000000
  inb-network:
    param: 10
`)

	c, err := ParseConfig(data)
	require.NoError(t, err)
	require.Equal(t, owner, c.Owner)
	require.Equal(t, ico, c.Wallets[tokenconst.ICO])
	require.EqualValues(t, 5, c.Caps[tokenconst.Marketing])
	require.Equal(t, tokenconst.GateOneShot, c.Gates[tokenconst.Marketing])
	require.EqualValues(t, 1700000000, c.GateParams[tokenconst.Marketing])
	require.Equal(t, tokenconst.GateRolling, c.Gates[tokenconst.INBNetwork])
	require.EqualValues(t, 10, c.GateParams[tokenconst.INBNetwork])
	require.EqualValues(t, tokenconst.DefaultAirdropCap, c.Caps[tokenconst.Airdrop])

	_, err = ParseConfig([]byte("owner: bad"))
	require.Error(t, err)

	_, err = ParseConfig([]byte("owner: " + address.Uint160ToString(owner) + "\nwallets:\n  team: " + address.Uint160ToString(ico)))
	require.ErrorContains(t, err, tokenconst.ErrUnknownBucket)

	_, err = ParseConfig([]byte("owner: " + address.Uint160ToString(owner) + "\nbuckets:\n  ico:\n    gate: weekly"))
	require.Error(t, err)
}
