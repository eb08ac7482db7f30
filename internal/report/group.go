package report

import (
	"time"

	"github.com/joseph-ayodele/claims-extract/constants"
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

// Synthesized/bookkeeping column names carried by group rows in addition to
// the registry fields.
const (
	ColClaimID     = "claim_id"
	ColPolicyID    = "policy_id"
	ColProcessDate = "process_date"
	ColStatus      = "status"
)

// GroupedTables is the five-way storage partition of a FlatRow.
type GroupedTables map[schema.Group]map[string]string

// GroupOptions supplies or overrides the identifiers attached to the grouped
// rows. Zero values are synthesized from the reference number.
type GroupOptions struct {
	PolicyID    string
	ClaimID     string
	ProcessDate string // YYYY-MM-DD; defaults to today
	Status      constants.ClaimStatus
}

// SynthesizeClaimID derives the deterministic claim id for a reference
// number. An empty reference yields "CLM_UNKNOWN", which callers must treat
// as a flag for manual reconciliation.
func SynthesizeClaimID(referenceNumber string) string {
	if referenceNumber == "" {
		return "CLM_UNKNOWN"
	}
	return "CLM_" + referenceNumber
}

// SynthesizePolicyID derives the deterministic policy id for a reference
// number, "POL_UNKNOWN" when the reference is empty.
func SynthesizePolicyID(referenceNumber string) string {
	if referenceNumber == "" {
		return "POL_UNKNOWN"
	}
	return "POL_" + referenceNumber
}

// Group partitions a flat row into the five storage tables per the registry's
// field->group assignment. Every group row carries claim_id; PERSONAL_INFO
// additionally carries policy_id, process_date and status. Fields not known
// to the registry are dropped (the registry is the source of truth).
func Group(flat FlatRow, opts GroupOptions) GroupedTables {
	ref := flat["reference_number"]

	claimID := opts.ClaimID
	if claimID == "" {
		claimID = SynthesizeClaimID(ref)
	}
	policyID := opts.PolicyID
	if policyID == "" {
		policyID = SynthesizePolicyID(ref)
	}
	processDate := opts.ProcessDate
	if processDate == "" {
		processDate = time.Now().UTC().Format("2006-01-02")
	}
	status := opts.Status
	if status == "" {
		status = constants.StatusPending
	}

	tables := make(GroupedTables, len(schema.Groups))
	for _, g := range schema.Groups {
		tables[g] = map[string]string{ColClaimID: claimID}
	}
	tables[schema.GroupPersonalInfo][ColPolicyID] = policyID
	tables[schema.GroupPersonalInfo][ColProcessDate] = processDate
	tables[schema.GroupPersonalInfo][ColStatus] = string(status)

	for name, value := range flat {
		g, ok := schema.GroupFor(name)
		if !ok {
			continue
		}
		tables[g][name] = value
	}

	// Catalog questions from absent sections still get their printed "No"
	// defaults so the stored answer columns stay complete.
	for name, value := range schema.DefaultAnswers() {
		if _, ok := flat[name]; ok {
			continue
		}
		g, ok := schema.GroupFor(name)
		if !ok {
			continue
		}
		tables[g][name] = value
	}
	return tables
}
