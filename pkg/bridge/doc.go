// Package bridge manages the connection between an agent and a single
// controlled browser instance.
//
// The bridge owns three lazily-created resources: an OS-allocated debug
// port, a browser process bound to that port, and a protocol client
// attached to the same port. A Manager reconciles the three into one
// "ready" state on demand and hands out two always-ready handles: the
// page (for direct driver operations) and the protocol client (for
// named tool calls with structured arguments).
//
// # Lifecycle
//
// Callers never start the browser explicitly. The first call to
// GetPage or GetClient triggers EnsureReady, which repairs state in
// strict dependency order:
//
//  1. Port: allocated from the OS exactly once per Manager and then
//     reused for the Manager's whole lifetime, even across failures
//     in later stages.
//  2. Browser: launched with --remote-debugging-port=<port> when no
//     live browser is held; a dead browser is replaced together with
//     its page.
//  3. Client: registered under a name derived from the port and
//     connected if not already connected. Repeated ensures against
//     the same port resolve to the same registered client.
//
// Stage failures propagate unchanged to the caller; a later ensure
// retries only the stages that are not yet satisfied.
//
// # Concurrency
//
// EnsureReady, GetPage and GetClient are safe for concurrent use. A
// single mutex serializes lifecycle runs so concurrent callers cannot
// race between the "already satisfied" check and the store, which
// would otherwise leak a second browser or duplicate registration.
package bridge
