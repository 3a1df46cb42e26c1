package domain

// EntryFunctionPayload is a signable call descriptor for a contract entry
// function. Integers in Arguments are decimal strings, booleans are native.
type EntryFunctionPayload struct {
	Function      string   `json:"function"`
	TypeArguments []string `json:"type_arguments"`
	Arguments     []any    `json:"arguments"`
}

// ViewRequest describes a read-only contract view call.
type ViewRequest struct {
	Function      string   `json:"function"`
	TypeArguments []string `json:"type_arguments"`
	Arguments     []any    `json:"arguments"`
}

// UserProfile lists the campaigns an address created and the campaigns it
// donated to. An address without an on-chain profile has an empty one.
type UserProfile struct {
	CampaignIDs []uint64   `json:"campaigns_created"`
	Donations   []Campaign `json:"donations_made"`
}
