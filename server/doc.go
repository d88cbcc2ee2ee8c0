// Package server is the thin HTTP shim named in spec §6: a single
// POST /x12 endpoint fronting the engine. It owns no parsing logic of
// its own — request/response marshaling and chi routing only.
package server
