package types

// Action identifies a Money Streaming Program operation as exposed to
// callers. The tags are client-side identifiers for documentation and UI
// use; the codec does not enforce them and the on-chain instruction tags
// are a separate numbering maintained in core/msclient.
type Action uint8

const (
	ActionCreateStream Action = iota + 1
	ActionAddFunds
	ActionWithdraw
	ActionProposeUpdate
	ActionAnswerUpdate
	ActionCloseStream
	ActionCloseTreasury
	ActionListStreams
	ActionGetStream
)

// ActionInfo contains metadata about a program action.
type ActionInfo struct {
	Tag         Action
	Name        string
	Available   bool // exposed to callers of this SDK
	Description string
}

// ActionRegistry maps each action to its metadata. Only createStream and
// addFunds are currently exposed as available; the rest are listed for
// completeness so UIs can render the full taxonomy.
var ActionRegistry = map[Action]ActionInfo{
	ActionCreateStream: {
		Tag:         ActionCreateStream,
		Name:        "createStream",
		Available:   true,
		Description: "Initialize a new money stream contract",
	},
	ActionAddFunds: {
		Tag:         ActionAddFunds,
		Name:        "addFunds",
		Available:   true,
		Description: "Add funds to an existing stream",
	},
	ActionWithdraw: {
		Tag:         ActionWithdraw,
		Name:        "withdraw",
		Available:   false,
		Description: "Withdraw vested funds from a stream",
	},
	ActionProposeUpdate: {
		Tag:         ActionProposeUpdate,
		Name:        "proposeUpdate",
		Available:   false,
		Description: "Propose new terms for a stream",
	},
	ActionAnswerUpdate: {
		Tag:         ActionAnswerUpdate,
		Name:        "answerUpdate",
		Available:   false,
		Description: "Approve or reject a proposed update",
	},
	ActionCloseStream: {
		Tag:         ActionCloseStream,
		Name:        "closeStream",
		Available:   false,
		Description: "Close a stream and settle escrow balances",
	},
	ActionCloseTreasury: {
		Tag:         ActionCloseTreasury,
		Name:        "closeTreasury",
		Available:   false,
		Description: "Close a stream treasury",
	},
	ActionListStreams: {
		Tag:         ActionListStreams,
		Name:        "listStreams",
		Available:   false,
		Description: "List stream accounts owned by the program",
	},
	ActionGetStream: {
		Tag:         ActionGetStream,
		Name:        "getStream",
		Available:   false,
		Description: "Fetch and decode a single stream account",
	},
}

func (a Action) String() string {
	if info, ok := ActionRegistry[a]; ok {
		return info.Name
	}
	return "unknown"
}

// Available reports whether the action is exposed to SDK callers.
func (a Action) Available() bool {
	return ActionRegistry[a].Available
}

// AvailableActions returns the actions currently exposed to callers, in
// tag order.
func AvailableActions() []Action {
	out := make([]Action, 0, 2)
	for a := ActionCreateStream; a <= ActionGetStream; a++ {
		if a.Available() {
			out = append(out, a)
		}
	}
	return out
}
