/*
Package escrow implements a two party custody agreement with an optional
arbiter.

A buyer creates a record for a seller and later funds it. The funds are held
by an address that is derived from the buyer and the seller and that no key
can sign for. Only this package moves tokens out of it:

	Created --fund--> Funded
	Created --cancel--> (record removed, reserve returned to the buyer)
	Funded --release--> Released (funds sent to the seller)
	Funded --refund--> Refunded (funds returned to the buyer)

The buyer and the arbiter can release at any time. The seller can release
only once the timeout period elapsed since creation. Any of the three parties
can refund a funded record. This includes the buyer alone: a funded buyer can
take the funds back at any time without the consent of the seller, so the
seller is only protected once the record is released.

Every record keeps a storage reserve that is paid by the buyer on creation
and stays with the record address. Released and refunded records remain in
the store until the same buyer creates a new record for the same seller.
*/
package escrow
