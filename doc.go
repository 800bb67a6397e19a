/*
Package custody defines interfaces used throughout the app, such as: storage,
transactions, handlers etc. It also contains helpers to work with context,
addresses and time.

Custody holds value on behalf of a buyer until it is released to a seller,
refunded, or the agreement is cancelled before it was ever funded. The
extension implementing that agreement lives in x/escrow, every other package
is the framework it runs on. Look into this package to get a brief overview of
design decisions made around interfaces and extension building blocks.
*/
package custody
