/*
Package supply checks supply accounting of the AMZ token against the state
read from the chain.

Verify checks that the supply record and balance records are consistent:
total issued tokens fit the maximum supply, circulating supply equals issued
tokens without burned and blocked ones, every bucket fits its cap, bucket
allocations sum up to the issued amount and balances sum up to the
circulating supply. NewReport builds a human-readable breakdown of the same
data.
*/
package supply
