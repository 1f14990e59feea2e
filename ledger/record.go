package ledger

// Turn is the outcome of one ask.
type Turn struct {
	Mover    string `json:"mover"`
	Target   string `json:"target"`
	Value    string `json:"value"`
	Received int    `json:"received"` // cards handed over by the target
	Drew     bool   `json:"drew"`     // the mover went fishing and drew a card
	Sets     int    `json:"sets"`     // sets the mover put down afterwards
}

// Record is a Turn linked into the chain.
type Record struct {
	Index    int    `json:"index"`
	GameID   string `json:"game_id"`
	PrevHash string `json:"prev_hash"`
	Hash     string `json:"hash"`
	Turn     Turn   `json:"turn"`
}
