// Package users provides the data-access layer for User records.
//
// # Overview
//
// Repository describes the five primitives the service layer relies on:
// Insert, Delete, Update, FindByID and FindAll. Every primitive runs against a
// session supplied by the caller (see dbx.Session); the repository never opens
// or closes sessions itself.
//
// # Transactions
//
// Insert, Delete and Update each run in exactly one transaction started with
// dbx.WithTx, so every path ends in either a commit or a rollback. Any failure
// is returned wrapped in common.ErrPersistenceFailure together with its cause.
// Deleting or updating an id that does not exist commits without changes and
// returns nil.
//
// FindByID and FindAll read without a transaction. FindByID reports a missing
// record through its boolean result rather than an error.
//
// # Dialects
//
// SQL is built with goqu for the dialect matching the driver the session comes
// from (dbx.DriverSQLite or dbx.DriverPostgres).
package users
