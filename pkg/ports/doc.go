/*
Package ports defines the driven ports (interfaces) for the Lattice client-state layer.

These interfaces decouple the orchestration gates from external implementations:
API clients, browser storage, analytics, the realtime collaboration socket and
notification presentation are all opaque collaborators behind these contracts.

# Key Interfaces

  - AuthClient: current-user profile fetch and sign-in trigger.
  - KeyValueStore: persistent string key-value storage.
  - Analytics: fire-and-forget identification and event tracking.
  - LiveClient: realtime collaboration socket acquisition.
  - Forker: sandbox fork operation used by the ownership gate.
  - ErrorReporter: centralized error reporting with a human message.
*/
package ports
