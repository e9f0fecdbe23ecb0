/*
Package flow implements the action-composition layer: the shared App context
handed to every action, and the higher-order gates that sequence bootstrap and
ownership checks in front of a wrapped continuation.

# Gates

  - WithLoadApp: runs the one-time app bootstrap (auth check, settings load,
    survey, contributor fetch) before the continuation, and skips it on every
    later call.
  - WithOwnedSandbox: lets the continuation run only when the active sandbox
    is owned or sufficiently permissioned, forking or prompting the user
    otherwise. All blocked paths return the cancellation action's result.

Actions are plain functions invoked with a context, the App and a payload.
The host dispatch layer decides when and from where they are called.
*/
package flow
