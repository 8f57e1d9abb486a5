package finance

import (
	"sort"

	"github.com/SscSPs/affiliate_ledger/internal/core/domain"
	"github.com/SscSPs/affiliate_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// SyntheticOwnerID stands in for the owner when a snapshot has no isSelf partner.
const SyntheticOwnerID = "self"

// partnerBook resolves partner ids and fixes the order partners are reported in:
// the owner first, then everyone else by id.
type partnerBook struct {
	owner    domain.Partner
	partners map[string]domain.Partner
	order    []domain.Partner
}

func newPartnerBook(s *domain.LedgerSnapshot, w *warnings) *partnerBook {
	owner, ok := s.Self()
	if !ok {
		owner = domain.Partner{ID: SyntheticOwnerID, Name: "Owner", IsSelf: true}
		w.add(domain.WarnMissingOwner, "", "workplace has no owner partner; owner amounts are reported under %q", SyntheticOwnerID)
	}

	b := &partnerBook{owner: owner, partners: s.PartnerByID()}
	b.partners[owner.ID] = owner

	others := make([]domain.Partner, 0, len(s.Partners))
	for _, p := range s.Partners {
		if p.ID != owner.ID {
			others = append(others, p)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].ID < others[j].ID })

	b.order = append([]domain.Partner{owner}, others...)
	return b
}

func (b *partnerBook) known(id string) bool {
	_, ok := b.partners[id]
	return ok
}

// split is a validated set of non-owner shares. The owner implicitly holds the remainder.
type split struct {
	shares    []domain.PartnerShare
	partnered bool
}

// resolveSplit determines the effective shares for a record: the project's shares when the record
// belongs to a partnered project, else the record's own shares, else 100% owner. A missing project,
// invalid shares or unknown partners fall back to the owner and are reported.
func (b *partnerBook) resolveSplit(w *warnings, projects map[string]domain.Project, recordID, projectID string,
	ownShares []domain.PartnerShare, ownPartnership bool) split {
	var shares []domain.PartnerShare

	switch {
	case projectID != "":
		p, ok := projects[projectID]
		if !ok {
			w.add(domain.WarnMissingProject, recordID, "project %s not found; amount attributed to owner", projectID)
			return split{}
		}
		if !p.IsPartnership {
			return split{}
		}
		shares = p.PartnerShares
	case ownPartnership:
		shares = ownShares
	default:
		return split{}
	}

	if len(shares) == 0 {
		return split{}
	}

	total, err := accounting.ValidateShares(shares)
	if err != nil {
		w.add(domain.WarnInvalidShares, recordID, "invalid partner shares (%v); amount attributed to owner", err)
		return split{}
	}
	if total.IsZero() {
		return split{}
	}

	out := split{partnered: true}
	for _, s := range shares {
		if s.PartnerID == b.owner.ID {
			continue
		}
		if !b.known(s.PartnerID) {
			w.add(domain.WarnUnknownPartner, recordID, "partner %s not found; their share is attributed to owner", s.PartnerID)
			continue
		}
		out.shares = append(out.shares, s)
	}
	return out
}

// apportion divides amount by the split. The owner receives whatever the other partners do not,
// so the parts always add up to amount exactly.
func (b *partnerBook) apportion(amount decimal.Decimal, sp split) map[string]decimal.Decimal {
	parts := make(map[string]decimal.Decimal, len(sp.shares)+1)
	rest := amount
	for _, s := range sp.shares {
		part := accounting.Percentage(amount, s.SharePercentage)
		parts[s.PartnerID] = parts[s.PartnerID].Add(part)
		rest = rest.Sub(part)
	}
	parts[b.owner.ID] = parts[b.owner.ID].Add(rest)
	return parts
}
