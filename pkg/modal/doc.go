/*
Package modal implements the modal-flow subsystem: a registry of typed modals
sharing a single process-wide "current modal" slot, with a request/response
channel per open.

Open suspends the caller until the matching Close resolves it, the context is
cancelled, or another modal takes over the current slot. At most one modal is
current at a time, and at most one resolution is pending per modal name.
*/
package modal
