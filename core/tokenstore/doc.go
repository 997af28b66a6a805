// Package tokenstore persists the bearer token pair used to authenticate
// against the ResumeForge API.
//
// Tokens are opaque strings; the store never inspects or validates their
// contents. At most one pair is stored at a time and writing a new pair
// replaces the old one atomically.
//
// Two implementations are provided: MemoryStore for tests and ephemeral
// sessions, and FileStore which keeps the pair in a JSON file under the
// user's configuration directory so a session survives process restarts.
// Storage failures are deliberately soft: a pair that cannot be loaded is
// reported as absent and the session simply behaves as unauthenticated.
package tokenstore
