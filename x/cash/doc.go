/*
Package cash defines a simple implementation of sending tokens
between wallets.

There is a single native token and every wallet holds an unsigned
balance of it. There is no logic in the token, except that the balance
of a wallet may not go below zero and may not overflow. Thus, this
implementation is referred to as cash. Simple and safe.

Other extensions move tokens through the Controller, which performs no
authorization. Handlers that expose movements to users must check the
signers themselves.
*/
package cash
