// Package errors provides the structured error type used across entity-arena.
//
// Errors carry a code, a user-facing message, an optional cause and metadata:
//
//	err := errors.NotFound("owned entity not found").
//	    WithMeta("owned_entity_id", id).
//	    WithMeta("player_id", playerID)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load battle")
//	}
//
// # Game rule errors
//
// Three helpers describe the rule failures the engine can report:
//
//	errors.Insufficient("points", cost, balance)    // FAILED_PRECONDITION with required/available
//	errors.ContentData("min hp exceeds max hp")     // INVALID_ARGUMENT tagged content_data
//	errors.SyncFailed(err, "failed to save capture") // ABORTED tagged sync_failed
//
// A battle action attempted in the wrong state is not an error; orchestrators report it as
// an unapplied action instead.
//
// # Layer guidelines
//
// Repositories return NotFound/AlreadyExists/InvalidArgument and wrap Redis failures.
// Orchestrators validate input, check rule preconditions and wrap persistence failures in
// SyncFailed once local state has been staged. Handlers convert with ToGRPCError.
package errors
