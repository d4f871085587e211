package entity

// TokenSymbol identifies a token with an enable prompt.
type TokenSymbol string

const (
	TokenTKN TokenSymbol = "TKN"
	TokenDXD TokenSymbol = "DXD"
)

// EnableState is the step of a token's enable flow.
type EnableState int

// EnableStateConfirmed is written when the user presses Continue after approval.
const EnableStateConfirmed EnableState = 4
