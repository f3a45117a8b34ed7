// Package gateway defines the contract between the sync engine and the
// remote authoritative store: one generic [Table] per synchronised dataset,
// the [Authenticator] that yields the owner identity, and the error values
// every implementation reports through [RemoteError].
//
// Two implementations exist: the REST adapter in internal/adapter and the
// direct Postgres tables in internal/store.
package gateway
