// Package rules holds the prerequisite contract of every operation type: the
// resources it requires, the resources it produces, its canonical
// prerequisite chain, and its credit cost.
package rules

import (
	"github.com/accuflow/accuflow/internal/domain"
)

// fullChain is the canonical bootstrap sequence from a cold start up to a
// funded, credited key page. Operation recipes below are prefixes or
// extensions of it.
var fullChain = []domain.OperationType{
	domain.OpGenerateKeys,
	domain.OpFaucet,
	domain.OpWaitForBalance,
	domain.OpAddCredits,
	domain.OpWaitForCredits,
}

func defaultTable() map[domain.OperationType]domain.Rule {
	return map[domain.OperationType]domain.Rule{
		domain.OpGenerateKeys: {
			Produces: []domain.ResourceKind{
				domain.ResourceKeypair,
				domain.ResourceLiteAccount,
			},
		},

		domain.OpFaucet: {
			Requires: []domain.Requirement{
				requireKeypair(),
			},
			Produces:      []domain.ResourceKind{domain.ResourceACMEBalance},
			DefaultRecipe: fullChain[:1],
		},

		// Wait blocks re-produce the resource they confirm. That keeps them
		// in a minimal recipe even when the producing step already ran:
		// faucet settlement is asynchronous, and dropping the wait would
		// race the next transaction against it.
		domain.OpWaitForBalance: {
			Requires: []domain.Requirement{
				requireKeypair(),
				{
					Resource:    domain.ResourceACMEBalance,
					Label:       "a pending ACME deposit",
					Severity:    domain.SeverityWarning,
					SatisfiedBy: []domain.OperationType{domain.OpFaucet},
				},
			},
			Produces:      []domain.ResourceKind{domain.ResourceACMEBalance},
			DefaultRecipe: fullChain[:2],
		},

		domain.OpAddCredits: {
			Requires: []domain.Requirement{
				requireKeypair(),
				requireBalance(),
			},
			Produces:      []domain.ResourceKind{domain.ResourceCredits},
			DefaultRecipe: fullChain[:3],
		},

		domain.OpWaitForCredits: {
			Requires: []domain.Requirement{
				requireKeypair(),
				{
					Resource:    domain.ResourceCredits,
					Label:       "a pending credit purchase",
					Severity:    domain.SeverityWarning,
					SatisfiedBy: []domain.OperationType{domain.OpAddCredits},
				},
			},
			Produces:      []domain.ResourceKind{domain.ResourceCredits},
			DefaultRecipe: fullChain[:4],
		},

		domain.OpCreateIdentity: {
			Requires: []domain.Requirement{
				requireKeypair(),
				requireCredits(),
			},
			Produces:      []domain.ResourceKind{domain.ResourceIdentity},
			DefaultRecipe: fullChain,
			CreditCost:    500,
		},

		domain.OpCreateTokenAccount: {
			Requires: []domain.Requirement{
				requireIdentity(),
				requireCredits(),
			},
			Produces:      []domain.ResourceKind{domain.ResourceTokenAccount},
			DefaultRecipe: append(fullChain[:5:5], domain.OpCreateIdentity),
			CreditCost:    25,
		},

		domain.OpSendTokens: {
			Requires: []domain.Requirement{
				requireKeypair(),
				requireBalance(),
			},
			DefaultRecipe: fullChain[:3],
			CreditCost:    3,
		},

		domain.OpCreateDataAccount: {
			Requires: []domain.Requirement{
				requireIdentity(),
				requireCredits(),
			},
			Produces:      []domain.ResourceKind{domain.ResourceDataAccount},
			DefaultRecipe: append(fullChain[:5:5], domain.OpCreateIdentity),
			CreditCost:    25,
		},

		domain.OpWriteData: {
			Requires: []domain.Requirement{
				{
					Resource:    domain.ResourceDataAccount,
					Label:       "a data account",
					Severity:    domain.SeverityError,
					SatisfiedBy: []domain.OperationType{domain.OpCreateDataAccount},
				},
				requireCredits(),
			},
			Produces: []domain.ResourceKind{domain.ResourceDataEntry},
			DefaultRecipe: append(fullChain[:5:5],
				domain.OpCreateIdentity,
				domain.OpCreateDataAccount,
			),
			CreditCost: 0.1,
		},
	}
}

func requireKeypair() domain.Requirement {
	return domain.Requirement{
		Resource:    domain.ResourceKeypair,
		Label:       "a generated keypair",
		Severity:    domain.SeverityError,
		SatisfiedBy: []domain.OperationType{domain.OpGenerateKeys},
	}
}

func requireBalance() domain.Requirement {
	return domain.Requirement{
		Resource: domain.ResourceACMEBalance,
		Label:    "a funded lite account",
		Severity: domain.SeverityError,
		SatisfiedBy: []domain.OperationType{
			domain.OpFaucet,
			domain.OpWaitForBalance,
		},
	}
}

func requireCredits() domain.Requirement {
	return domain.Requirement{
		Resource: domain.ResourceCredits,
		Label:    "sufficient credits",
		Severity: domain.SeverityError,
		SatisfiedBy: []domain.OperationType{
			domain.OpAddCredits,
			domain.OpWaitForCredits,
		},
	}
}

func requireIdentity() domain.Requirement {
	return domain.Requirement{
		Resource:    domain.ResourceIdentity,
		Label:       "an identity (ADI)",
		Severity:    domain.SeverityError,
		SatisfiedBy: []domain.OperationType{domain.OpCreateIdentity},
	}
}
