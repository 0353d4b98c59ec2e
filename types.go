package x402check

// Severity classifies how a validation issue affects the verdict.
type Severity string

const (
	// SeverityError marks an issue that fails validation.
	SeverityError Severity = "error"

	// SeverityWarning marks an advisory issue that leaves the verdict
	// untouched unless strict mode is requested.
	SeverityWarning Severity = "warning"
)

// Format identifies the structural shape of a configuration document.
type Format string

const (
	// FormatCurrent is the canonical shape: x402Version and a top-level
	// resource descriptor alongside the accepts list.
	FormatCurrent Format = "current"

	// FormatPrevious is the earlier shape: an accepts list whose entries
	// carry maxAmountRequired and per-entry resource URLs.
	FormatPrevious Format = "previous"

	// FormatFlatLegacy is the oldest shape: payment fields directly at
	// the document root with no entry list.
	FormatFlatLegacy Format = "flat-legacy"

	// FormatUnrecognized is any document matching none of the above.
	FormatUnrecognized Format = "unrecognized"
)

// Issue codes reported by the validator. Codes are stable identifiers
// for machine consumption; messages may change between releases.
const (
	// CodeInvalidInput reports an unsupported input type on the public API.
	CodeInvalidInput = "invalid_input"

	// CodeInvalidJSON reports input that could not be parsed as JSON.
	CodeInvalidJSON = "invalid_json"

	// CodeInvalidDocument reports JSON that is not an object.
	CodeInvalidDocument = "invalid_document"

	// CodeUnrecognizedFormat reports a document matching no known shape.
	CodeUnrecognizedFormat = "unrecognized_format"

	// CodeUnsupportedVersion reports an x402Version outside the known set.
	CodeUnsupportedVersion = "unsupported_version"

	// CodeMissingVersion reports a previous-format document with no
	// x402Version field.
	CodeMissingVersion = "missing_version"

	// CodeMissingEntries reports a missing or non-list accepts field.
	CodeMissingEntries = "missing_entries"

	// CodeEmptyEntries reports an accepts list with no entries.
	CodeEmptyEntries = "empty_entries"

	// CodeInvalidResource reports a malformed resource descriptor.
	CodeInvalidResource = "invalid_resource"

	// CodeInvalidEntry reports an accepts member that is not an object.
	CodeInvalidEntry = "invalid_entry"

	// CodeLegacyFormat reports a document upgraded from an older shape.
	CodeLegacyFormat = "legacy_format"

	// CodeMissingField reports a required entry field that is absent.
	CodeMissingField = "missing_field"

	// CodeInvalidTimeout reports a maxTimeoutSeconds that is not a
	// positive integer.
	CodeInvalidTimeout = "invalid_timeout"

	// CodeInvalidAmount reports an amount that is not a positive decimal.
	CodeInvalidAmount = "invalid_amount"

	// CodeExcessPrecision reports more fractional digits than the asset
	// carries.
	CodeExcessPrecision = "excess_precision"

	// CodeInvalidNetwork reports a malformed or unresolvable network id.
	CodeInvalidNetwork = "invalid_network"

	// CodeUnregisteredNetwork reports a well-formed network id the
	// registry does not know.
	CodeUnregisteredNetwork = "unregistered_network"

	// CodeNetworkAlias reports a friendly name used in place of the
	// canonical network id.
	CodeNetworkAlias = "network_alias"

	// CodeInvalidAddress reports an address with the wrong shape for its
	// network's family.
	CodeInvalidAddress = "invalid_address"

	// CodeChecksumMismatch reports a mixed-case hex address whose casing
	// does not match its checksum encoding.
	CodeChecksumMismatch = "checksum_mismatch"

	// CodeUnverifiedChecksum reports a hex address with no case
	// information to check.
	CodeUnverifiedChecksum = "unverified_checksum"

	// CodeNoChecksum reports an address family that carries no checksum
	// at all, so only format and length were verified.
	CodeNoChecksum = "no_checksum"
)

// ValidationIssue describes one problem found in a configuration
// document. Issues are created once by a rule and never mutated.
type ValidationIssue struct {
	// Code is the machine-readable issue identifier (e.g., "checksum_mismatch").
	Code string `json:"code"`

	// Field is the path of the offending field in dot/bracket notation
	// (e.g., "entries[0].payTo"). Empty for document-level issues.
	Field string `json:"field"`

	// Message is a human-readable description of the problem.
	Message string `json:"message"`

	// Fix is the corrected value, or an example of the expected shape,
	// when one can be computed.
	Fix string `json:"fix,omitempty"`

	// Severity is either SeverityError or SeverityWarning.
	Severity Severity `json:"severity"`
}

// ValidationResult is the outcome of validating one configuration
// document.
type ValidationResult struct {
	// Valid reports whether no error-severity issue was found.
	Valid bool `json:"valid"`

	// Format is the detected document format.
	Format Format `json:"format"`

	// Errors holds every error-severity issue, in detection order.
	Errors []ValidationIssue `json:"errors"`

	// Warnings holds every warning-severity issue, in detection order.
	Warnings []ValidationIssue `json:"warnings"`

	// Normalized is the canonical form of the document. It is nil
	// exactly when the input never reached normalization (unparseable
	// input or an unrecognized format).
	Normalized *NormalizedConfig `json:"normalized"`
}

// NormalizedConfig is the canonical current-format shape every
// recognized document normalizes to. Amounts, addresses, and network
// identifiers are carried through verbatim from the input.
type NormalizedConfig struct {
	// X402Version is the protocol version of the canonical shape.
	X402Version int `json:"x402Version"`

	// Resource describes the paid resource, when the document names one.
	// It marshals as null rather than disappearing so the canonical JSON
	// keeps its structural markers.
	Resource *ResourceInfo `json:"resource"`

	// Entries are the accepted payment options, in document order. The
	// index of each entry matches the entries[i] field paths in reported
	// issues.
	Entries []PaymentRequirementEntry `json:"accepts"`
}

// PaymentRequirementEntry is one accepted payment option.
type PaymentRequirementEntry struct {
	// Scheme is the payment scheme identifier (e.g., "exact").
	Scheme string `json:"scheme"`

	// Network is the namespaced network identifier (e.g., "eip155:8453").
	Network string `json:"network"`

	// Amount is the payment amount in atomic units, as a decimal string.
	Amount string `json:"amount"`

	// Asset is the token contract address (EVM) or mint address (Solana).
	Asset string `json:"asset"`

	// PayTo is the recipient address for the payment.
	PayTo string `json:"payTo"`

	// TimeoutSeconds is the validity period for the payment
	// authorization, when the document sets one.
	TimeoutSeconds *int64 `json:"maxTimeoutSeconds,omitempty"`
}

// ResourceInfo describes the resource a configuration charges for.
type ResourceInfo struct {
	// URL locates the protected resource.
	URL string `json:"url" validate:"required,url"`

	// Description is an optional human-readable summary.
	Description string `json:"description,omitempty"`

	// MimeType is the content type of the protected resource.
	MimeType string `json:"mimeType,omitempty"`
}
