package mustache

import (
	"github.com/itsatony/go-cuserr"
)

// Error code constants for categorization, mirroring the teacher's
// ErrCode* convention.
const (
	ErrCodeParse    = "MUSTACHE_PARSE"
	ErrCodeRender   = "MUSTACHE_RENDER"
	ErrCodeData     = "MUSTACHE_DATA"
	ErrCodePartials = "MUSTACHE_PARTIALS"
)

const (
	errMsgNotPartial   = "data is not a Partial"
	errMsgNotLambda    = "data is not a Lambda"
	errMsgPartialStore = "partial store lookup failed"
	metaKeyPartialName = "partial_name"
)

// newConfigError reports an invalid Option (e.g. malformed delimiters).
func newConfigError(msg string) error {
	return cuserr.NewValidationError(ErrCodeData, msg)
}

func newNotPartialError() error {
	return cuserr.NewValidationError(ErrCodeData, errMsgNotPartial)
}

func newNotLambdaError() error {
	return cuserr.NewValidationError(ErrCodeData, errMsgNotLambda)
}

// newPartialStoreError wraps a backend failure (filesystem, Postgres,
// cache) surfaced while resolving a named partial.
func newPartialStoreError(name string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodePartials, errMsgPartialStore).
		WithMetadata(metaKeyPartialName, name)
}

// newParseError wraps a *internal.ParseError (or any parse failure) with
// the engine's error code, preserving its message verbatim so the byte
// offset in §4.6/§7 remains visible to callers.
func newParseError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeParse, cause.Error())
}

// newRenderError wraps a render-time failure: a propagated sub-template
// parse/render error from a lambda or partial (§7 PropagatedSubTemplateError).
func newRenderError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRender, cause.Error())
}
