/*
Package utils contains the decorators every custody chain wraps its handlers
with: panic recovery, per transaction logging and store savepoints that roll
back a failed escrow transition.
*/
package utils
