package secadvisor

// NoteKind is the type of analysis a note describes.
type NoteKind string

// Note kinds.
const (
	NoteKindFinding        NoteKind = "FINDING"
	NoteKindKPI            NoteKind = "KPI"
	NoteKindCard           NoteKind = "CARD"
	NoteKindCardConfigured NoteKind = "CARD_CONFIGURED"
	NoteKindSection        NoteKind = "SECTION"
)

// Severity is the severity of a finding.
type Severity string

// Severity levels.
const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Certainty is the confidence that a finding is a true positive.
type Certainty string

// Certainty levels.
const (
	CertaintyLow    Certainty = "LOW"
	CertaintyMedium Certainty = "MEDIUM"
	CertaintyHigh   Certainty = "HIGH"
)

// AggregationType is how KPI occurrences are combined.
type AggregationType string

// AggregationSum adds KPI values together.
const AggregationSum AggregationType = "SUM"

// CardElementKind discriminates CardElement variants.
type CardElementKind string

// Card element kinds.
const (
	CardElementNumeric    CardElementKind = "NUMERIC"
	CardElementBreakdown  CardElementKind = "BREAKDOWN"
	CardElementTimeSeries CardElementKind = "TIME_SERIES"
)

// ValueTypeKind discriminates ValueType variants.
type ValueTypeKind string

// Value type kinds.
const (
	ValueTypeKPI          ValueTypeKind = "KPI"
	ValueTypeFindingCount ValueTypeKind = "FINDING_COUNT"
)

// GraphContentType is the encoding of a graph query body.
type GraphContentType string

// Graph query content types.
const (
	GraphContentTypeGraphQL GraphContentType = "application/graphql"
	GraphContentTypeJSON    GraphContentType = "application/json"
)

// ChannelType is the delivery mechanism of a notification channel.
type ChannelType string

// ChannelTypeWebhook delivers notifications by HTTP POST.
const ChannelTypeWebhook ChannelType = "Webhook"

// Ptr returns a pointer to v, for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}
