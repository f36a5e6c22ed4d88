package domain

// ResourceKind is an abstract precondition/postcondition tag. Operations
// declare which kinds they require and which they produce; edges never
// produce resources themselves.
type ResourceKind string

const (
	ResourceKeypair      ResourceKind = "keypair"
	ResourceLiteAccount  ResourceKind = "lite-account"
	ResourceACMEBalance  ResourceKind = "acme-balance"
	ResourceCredits      ResourceKind = "credits"
	ResourceIdentity     ResourceKind = "identity"
	ResourceTokenAccount ResourceKind = "token-account"
	ResourceDataAccount  ResourceKind = "data-account"
	ResourceDataEntry    ResourceKind = "data-entry"
)
