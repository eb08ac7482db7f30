package constants

// ClaimStatus is the canonical processing status stored on PERSONAL_INFO rows.
type ClaimStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending    ClaimStatus = "Pending"    // extracted, awaiting review
	StatusProcessing ClaimStatus = "Processing" // extraction in progress
	StatusImported   ClaimStatus = "Imported"   // all grouped tables written
	StatusFailed     ClaimStatus = "Failed"     // terminal failure
)
