package auth

import (
	"context"

	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

// Open lets any caller open a campaign for an asset it controls.
type Open struct{}

func (Open) CanCreateCampaign(context.Context, domain.Account) bool { return true }

// Operators restricts campaign creation to a fixed set of accounts.
type Operators struct {
	allowed map[domain.Account]struct{}
}

// NewOperators returns an authorizer allowing only the listed accounts.
func NewOperators(accounts ...string) *Operators {
	o := &Operators{allowed: make(map[domain.Account]struct{}, len(accounts))}
	for _, a := range accounts {
		if a != "" {
			o.allowed[domain.Account(a)] = struct{}{}
		}
	}
	return o
}

func (o *Operators) CanCreateCampaign(_ context.Context, caller domain.Account) bool {
	_, ok := o.allowed[caller]
	return ok
}

// FromList picks Operators when accounts is non-empty and Open otherwise.
func FromList(accounts []string) port.Authorizer {
	if len(accounts) == 0 {
		return Open{}
	}
	return NewOperators(accounts...)
}
