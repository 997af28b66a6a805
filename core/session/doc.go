// Package session implements the client-side authentication lifecycle as an
// explicit state machine: idle → loading → authenticated, unauthenticated,
// or failed.
//
// The manager owns the session state; the token pair itself is owned by
// core/tokenstore and the refresh protocol by core/apiclient. Transitions:
//
//   - Restore: persisted token → fetch current user → authenticated, or
//     "Session expired" failure with tokens cleared. No token → straight to
//     unauthenticated without touching the network.
//   - Login: token exchange, then current-user fetch, then authenticated.
//   - Register: success leaves the session unauthenticated on purpose —
//     email verification comes first — and fires the verification hook.
//   - Logout: unconditional; cannot fail.
//   - ClearError: failed → unauthenticated, pure state cleanup.
//
// Failed is equivalent to unauthenticated for access control; it only adds
// the user-visible error message from the last operation.
//
// Overlapping operations are last-write-wins on shared state by design;
// callers needing stricter ordering must serialize externally.
package session
