package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"campusdrop/internal/core/domain/model/item"
	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/core/domain/model/partner"
)

// ErrNoEligiblePartner is returned when no partner passes the eligibility
// filter for an item. Callers may retry later once partner state changes;
// the assigner itself never retries.
var ErrNoEligiblePartner = errors.New("no eligible partner found")

// heavyItemThresholdKg marks the weight above which "exceeds many partners'
// capacity" is reported as a likely cause of an empty candidate set.
const heavyItemThresholdKg = 2.5

// AssignmentResult carries the outcome of a partner selection together with
// a human-readable reason. The reason explains either why the selected
// partner qualified or the aggregate causes of failure; it never guesses
// which partner "almost" qualified.
type AssignmentResult struct {
	Success     bool
	PartnerID   *kernel.UUID
	PartnerName string
	Reason      string
}

// PartnerAssigner is a domain service that selects an eligible delivery
// partner for an item. It is a pure read-and-compute operation over the
// current partner set: no locking, no reservation. Two concurrent
// assignments for different items may select the same partner, since
// availability is read rather than atomically claimed.
//
// Selection is a filter-then-rank pipeline:
//  1. Eligibility filter: available, capacity covers the item's weight,
//     fragile-certified when the item is fragile. Eligibility is strict;
//     ranking never overrides it.
//  2. Rank: partners standing at the item's pickup location sort first;
//     ties break by partner identifier so selection is deterministic.
//  3. The first partner after ranking is chosen.
type PartnerAssigner struct{}

// NewPartnerAssigner creates a new PartnerAssigner instance.
func NewPartnerAssigner() PartnerAssigner {
	return PartnerAssigner{}
}

// Assign selects a partner for the given item out of the provided set.
//
// Returns:
//   - a successful AssignmentResult naming the partner and why it qualified
//   - a failed AssignmentResult with a diagnostic reason and
//     ErrNoEligiblePartner when the filter yields an empty set
//   - a validation error when the item or a partner is malformed
func (a PartnerAssigner) Assign(it *item.Item, partners []*partner.Partner) (AssignmentResult, error) {
	if err := it.Validate(); err != nil {
		return AssignmentResult{}, err
	}

	eligible, err := a.filterEligible(it, partners)
	if err != nil {
		return AssignmentResult{}, err
	}

	if len(eligible) == 0 {
		return AssignmentResult{
			Success: false,
			Reason:  buildNoPartnerReason(it),
		}, ErrNoEligiblePartner
	}

	selected := a.rank(it, eligible)[0]
	selectedID := selected.ID()

	fragileCertified := "No"
	if selected.CanHandleFragile() {
		fragileCertified = "Yes"
	}

	return AssignmentResult{
		Success:     true,
		PartnerID:   &selectedID,
		PartnerName: selected.Name(),
		Reason: fmt.Sprintf("Assigned to %s (Capacity: %gkg, Fragile-certified: %s)",
			selected.Name(), selected.MaxWeightKg(), fragileCertified),
	}, nil
}

// filterEligible applies the eligibility clauses to the full partner set.
// Any partner failing any clause is excluded; there are no partial matches.
func (a PartnerAssigner) filterEligible(
	it *item.Item,
	partners []*partner.Partner,
) ([]*partner.Partner, error) {
	eligible := make([]*partner.Partner, 0, len(partners))

	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		ok, err := p.CanCarry(it)
		if err != nil {
			return nil, err
		}
		if ok {
			eligible = append(eligible, p)
		}
	}

	return eligible, nil
}

// rank orders eligible partners: those at the item's pickup location first,
// then by partner identifier for a deterministic result.
func (a PartnerAssigner) rank(it *item.Item, eligible []*partner.Partner) []*partner.Partner {
	ranked := make([]*partner.Partner, len(eligible))
	copy(ranked, eligible)

	sort.SliceStable(ranked, func(i, j int) bool {
		iAtPickup := ranked[i].IsAtLocation(it.PickupLocationID())
		jAtPickup := ranked[j].IsAtLocation(it.PickupLocationID())
		if iAtPickup != jAtPickup {
			return iAtPickup
		}
		return ranked[i].ID().String() < ranked[j].ID().String()
	})

	return ranked
}

// buildNoPartnerReason explains the likely aggregate causes of an empty
// candidate set: the fragile-handling requirement and weight above the
// typical carry capacity.
func buildNoPartnerReason(it *item.Item) string {
	var reasons []string

	if it.Fragile() {
		reasons = append(reasons, "requires fragile handling")
	}
	if it.WeightKg() > heavyItemThresholdKg {
		reasons = append(reasons,
			fmt.Sprintf("weight (%gkg) exceeds many partners' capacity", it.WeightKg()))
	}

	if len(reasons) > 0 {
		return fmt.Sprintf("No available partner for %s: %s. Please try again later.",
			it.Name(), strings.Join(reasons, ", "))
	}

	return fmt.Sprintf("No available partner for %s. All partners are currently busy.", it.Name())
}
