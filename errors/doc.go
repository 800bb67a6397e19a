/*
Package errors defines the error kinds reported by custody.

Every kind has a code that is unique across all extensions and becomes the
response code of a failed transaction or query. Extensions declare their
own kinds with Register, each in the code range it reserves:

	x/sigs    120 - 129
	x/cash    130 - 139
	x/escrow 1000 - 1099

Create errors with ErrXyz.New or Wrap at the point of failure. The first
wrap records a stack trace, which %+v prints.

Test the kind of an error with Is, which sees through any number of wraps:

	if escrow.ErrNotFunded.Is(err) {
		...
	}
*/
package errors
