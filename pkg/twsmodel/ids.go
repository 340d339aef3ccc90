// Package twsmodel holds the domain value types application code
// constructs and receives: contracts, orders, and the Event union
// produced by the inbound parsers.
package twsmodel

// RequestId scopes a response stream to the request that created it.
// Client-generated, monotonic, unique per connection. 0 is reserved for
// messages with no request scope.
type RequestId int64

// OrderId is server-seeded and client-incremented, a distinct identifier
// space from RequestId.
type OrderId int64

// ClientId identifies the client's session with the server, supplied at
// connect.
type ClientId int64
