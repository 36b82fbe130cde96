package deploy

import (
	"fmt"
	"os"

	"github.com/amzchain/amz-token/contracts/token/tokenconst"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Owner   string                `yaml:"owner"`
	Wallets map[string]string     `yaml:"wallets"`
	Buckets map[string]fileBucket `yaml:"buckets"`
}

type fileBucket struct {
	Cap   *int64 `yaml:"cap"`
	Gate  string `yaml:"gate"`
	Param *int64 `yaml:"param"`
}

// LoadConfig reads YAML configuration file. See ParseConfig for format.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration:
//
//	owner: NVTiAjNgagDkTr5HTzDmQP9kPwPHN5BgVq
//	wallets:
//	  airdrop: NfgHwwTi3wHAS8aFAN243C5vGbkYDpqLHP
//	  ico: ...
//	buckets:
//	  marketing:
//	    cap: 1000000000000000
//	    gate: rolling
//	    param: 2592000
//
// Wallets are Neo addresses keyed by bucket names. Buckets section overrides
// default caps and gates. The result is not validated.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig

	err := yaml.Unmarshal(data, &fc)
	if err != nil {
		return Config{}, fmt.Errorf("decode YAML: %w", err)
	}

	owner, err := address.StringToUint160(fc.Owner)
	if err != nil {
		return Config{}, fmt.Errorf("invalid owner address: %w", err)
	}

	c := DefaultConfig(owner)

	for name, addr := range fc.Wallets {
		b, err := bucketByName(name)
		if err != nil {
			return Config{}, err
		}

		c.Wallets[b], err = address.StringToUint160(addr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid wallet address of %s bucket: %w", name, err)
		}
	}

	for name, fb := range fc.Buckets {
		b, err := bucketByName(name)
		if err != nil {
			return Config{}, err
		}

		if fb.Cap != nil {
			c.Caps[b] = *fb.Cap
		}

		if fb.Gate != "" {
			c.Gates[b], err = gateByName(fb.Gate)
			if err != nil {
				return Config{}, fmt.Errorf("%s bucket: %w", name, err)
			}
		}

		if fb.Param != nil {
			c.GateParams[b] = *fb.Param
		}
	}

	return c, nil
}

func bucketByName(name string) (tokenconst.Bucket, error) {
	for i := 0; i < tokenconst.BucketCount; i++ {
		if tokenconst.BucketName(tokenconst.Bucket(i)) == name {
			return tokenconst.Bucket(i), nil
		}
	}

	return 0, fmt.Errorf("%s: %s", tokenconst.ErrUnknownBucket, name)
}

func gateByName(name string) (tokenconst.Gate, error) {
	switch name {
	case "none":
		return tokenconst.GateNone, nil
	case "one-shot":
		return tokenconst.GateOneShot, nil
	case "rolling":
		return tokenconst.GateRolling, nil
	default:
		return 0, fmt.Errorf("unknown gate %q", name)
	}
}
