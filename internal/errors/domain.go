package errors

import "fmt"

// Metadata keys attached by the game rule helpers
const (
	MetaRequired    = "required"
	MetaAvailable   = "available"
	MetaResource    = "resource"
	MetaContentData = "content_data"
	MetaSyncFailed  = "sync_failed"
)

// Insufficient reports a rejected action because a resource (xp, points) is below
// the amount the action costs.
func Insufficient(resource string, required, available int) *Error {
	return Newf(CodeFailedPrecondition, "insufficient %s (required: %d, available: %d)",
		resource, required, available).
		WithMeta(MetaResource, resource).
		WithMeta(MetaRequired, required).
		WithMeta(MetaAvailable, available)
}

// ContentData reports broken static content, such as a stat range with min above max.
// Callers fall back (skip a slot, abort an encounter) instead of failing the request.
func ContentData(message string) *Error {
	return InvalidArgument(message).WithMeta(MetaContentData, true)
}

// ContentDataf reports broken static content with a formatted message
func ContentDataf(format string, args ...interface{}) *Error {
	return ContentData(fmt.Sprintf(format, args...))
}

// SyncFailed reports that a staged change could not be persisted and was not committed.
func SyncFailed(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return WrapWithCode(err, CodeAborted, message).WithMeta(MetaSyncFailed, true)
}

// IsInsufficient checks if an error was produced by Insufficient
func IsInsufficient(err error) bool {
	if !IsFailedPrecondition(err) {
		return false
	}
	_, ok := GetMeta(err)[MetaRequired]
	return ok
}

// IsContentData checks if an error was produced by ContentData
func IsContentData(err error) bool {
	v, ok := GetMeta(err)[MetaContentData].(bool)
	return ok && v
}

// IsSyncFailed checks if an error was produced by SyncFailed
func IsSyncFailed(err error) bool {
	v, ok := GetMeta(err)[MetaSyncFailed].(bool)
	return ok && v && IsAborted(err)
}
