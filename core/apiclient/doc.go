// Package apiclient implements the authenticated HTTP transport for the
// ResumeForge REST API.
//
// The client owns the bearer-token protocol: it attaches the stored access
// token to every request, and on a 401 performs exactly one silent refresh
// through POST /token/refresh/ followed by one replay of the original
// request. When the refresh itself fails the stored credentials are cleared
// and the session-expired hook fires, degrading the session to
// unauthenticated instead of crashing. All other status codes pass through
// to the caller unmodified as *HTTPError values.
//
// The retried state lives in the call chain rather than on a mutable
// request object, which structurally rules out refresh loops on a
// permanently invalid session.
package apiclient
