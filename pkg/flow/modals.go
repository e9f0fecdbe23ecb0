package flow

import (
	"github.com/lattice-dev/lattice/pkg/modal"
)

// FrozenChoice is the user's decision on the frozen-sandbox prompt.
type FrozenChoice string

const (
	ChoiceFork     FrozenChoice = "fork"
	ChoiceUnfreeze FrozenChoice = "unfreeze"
	ChoiceCancel   FrozenChoice = "cancel"
)

// ForkFrozenPrompt is the state shown by the frozen-sandbox modal.
type ForkFrozenPrompt struct {
	SandboxID string `json:"sandboxId"`
	Message   string `json:"message"`
}

// ModalForkFrozen is the registered name of the frozen-sandbox prompt.
const ModalForkFrozen = "forkFrozenSandbox"

// Modals is the registry of modals owned by this layer. Hosts may register
// additional modals on the same Controller; they share the current slot.
type Modals struct {
	Controller *modal.Controller

	// ForkFrozen asks what to do with a frozen sandbox: fork it, unfreeze the
	// session, or cancel. Closing without a payload means cancel.
	ForkFrozen *modal.Modal[ForkFrozenPrompt, FrozenChoice]
}

// NewModals registers the built-in modals on c.
func NewModals(c *modal.Controller) *Modals {
	return &Modals{
		Controller: c,
		ForkFrozen: modal.Register[ForkFrozenPrompt, FrozenChoice](c, ModalForkFrozen, ChoiceCancel),
	}
}
