// Package client contains client-side building blocks for the contactbook CLI.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the contactbook backend: Login/Register and the contact operations
//     ListContacts, CreateContact, UpdateContact, DeleteContact.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches the
//     bearer token from a TokenSource, tags every request with an
//     X-Request-ID and maps HTTP failures to package errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Connectivity problems surface as ErrUnavailable and HTTP 401 as
// ErrUnauthorized; match them with errors.Is. A 400 response carrying
// {"error":{"message","field"}} is returned as *APIError, any other non-2xx
// status as *StatusError; match them with errors.As.
//
// Requests are never retried or cancelled by the client itself; the
// caller's context is the only way to abandon a call.
package client
