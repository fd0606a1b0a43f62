// Package errors provides the structured error type used above the combat
// core: repositories, the orchestrator and the gRPC handlers.
//
// The combat rules themselves never fail. Errors only come from resolving
// handles (unknown character or gear IDs) and validating requests at the
// boundary.
//
// # Basic Usage
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.InvalidArgument("attacker and target must differ").
//	    WithMeta("character_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Update(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to store target")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err); clients recover the structured
// error with errors.FromGRPCError(err). Metadata travels as a
// structpb.Struct status detail.
package errors
