/*
Package x contains the extensions of the custody application.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together in package app to construct the
application. Sub-packages provide signature checks (sigs), token
wallets (cash) and the escrow state machine (escrow).
*/
package x
