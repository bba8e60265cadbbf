// Package errors provides coded errors for the trainer.
//
// Every error carries a Code, a message, an optional cause and optional
// metadata. Codes map one to one onto gRPC status codes so the handler
// layer can return them unchanged.
//
// Creating errors:
//
//	err := errors.InvalidArgumentf("level %d out of range", lvl)
//	err := errors.FailedPrecondition("no usable weapon").
//	    WithMeta("attack", lvls.Attack)
//
// Wrapping keeps the code of a wrapped *Error:
//
//	if err := repo.Get(ctx, slot); err != nil {
//	    return errors.Wrapf(err, "failed to load slot %s", slot)
//	}
//
// Validating config and inputs:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("level_cap", cfg.LevelCap, 2, 127, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// Crossing the gRPC boundary:
//
//	return nil, errors.ToGRPCError(err)   // server
//	return nil, errors.FromGRPCError(err) // client
//
// Metadata is sent as a google.rpc.ErrorInfo detail; values arrive on the
// client side as strings.
package errors
