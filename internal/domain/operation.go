package domain

// OperationType identifies a kind of block the studio can place on the
// canvas. The set is closed; the rule table is keyed by it.
type OperationType string

const (
	OpGenerateKeys       OperationType = "generate-keys"
	OpFaucet             OperationType = "faucet"
	OpWaitForBalance     OperationType = "wait-for-balance"
	OpAddCredits         OperationType = "add-credits"
	OpWaitForCredits     OperationType = "wait-for-credits"
	OpCreateIdentity     OperationType = "create-identity"
	OpCreateTokenAccount OperationType = "create-token-account"
	OpSendTokens         OperationType = "send-tokens"
	OpCreateDataAccount  OperationType = "create-data-account"
	OpWriteData          OperationType = "write-data"
)
