/*
Package token implements AMZ token contract which is deployed to a Neo N3
chain.

Token contract is a fungible token ledger. Every token is registered by the
ledger owner with a maximum supply that is split between twelve allocation
buckets (airdrop, ICO, pre-ICO, history shareholder, INB network, staking
bonus, history newsletter, foundation, marketing, management team, operating
cost and history followers). Tokens enter circulation only when the owner
releases them from a bucket to the bucket wallet, staking bonus is released
to an arbitrary account. Some buckets are time locked: history shareholder
bucket is locked until a fixed moment, INB network, foundation, marketing and
management team buckets wait a fixed interval after the previous release.

Token issuer can take tokens out of circulation either permanently (Burn) or
temporarily (Block and Unblock). Holders move tokens with Transfer.

Methods moving tokens take quantity as amount, symbol and precision. The
quantity must have the precision the token was created with.

Any failed check aborts the whole transaction with a message from
tokenconst package, no state is changed in this case.

# Storage

Supply record of each token is stored under "s" + symbol key. Balance records
are stored under "a" + symbol + "." + owner key, they are never deleted.
Deployment configuration (owner, bucket wallets, caps and gates) is stored
under "owner", "wallets", "caps", "gates" and "gateParams" keys.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification. Empty from
means release from a bucket or unblock, empty to means burn or block.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

TransferX notification. This is an enhanced transfer notification with
details. First byte of details is the operation type (0x01 transfer, 0x02
release, 0x03 burn, 0x04 block, 0x05 unblock), the rest is the transfer memo,
the burn memo or the bucket name.

	TransferX:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: details
	    type: ByteArray

Create notification. It is produced when a new token is registered.

	Create:
	  - name: symbol
	    type: String
	  - name: issuer
	    type: Hash160
	  - name: maxSupply
	    type: Integer

Disburse notification. It is produced when tokens are released from a bucket.

	Disburse:
	  - name: symbol
	    type: String
	  - name: bucket
	    type: Integer
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Burn notification.

	Burn:
	  - name: symbol
	    type: String
	  - name: amount
	    type: Integer
	  - name: memo
	    type: String

Block and Unblock notifications.

	Block:
	  - name: symbol
	    type: String
	  - name: amount
	    type: Integer
	Unblock:
	  - name: symbol
	    type: String
	  - name: amount
	    type: Integer
*/
package token
