/*
Package domain contains the core domain models for the Lattice client-state layer.

It defines the entities shared by the app-load gate, the ownership gate and the
modal subsystem: the Session snapshot, the active Sandbox reference, the User
profile and the notification value types. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Session: the client session snapshot (bootstrap flags, user, contributors).
  - Sandbox: the currently edited resource with ownership and freeze metadata.
  - AuthLevel: the ordered authorization levels used by the ownership gate.
  - Notification: a user-facing notice with severity and optional actions.
*/
package domain
