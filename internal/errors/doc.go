// Package errors provides structured errors for the tooltip add-on.
//
// Errors carry a Code, a short message, an optional cause and free-form
// metadata. Most of the add-on never surfaces an error to the host: failed
// lookups and malformed item data degrade to "nothing to show". The codes
// exist so that the degrade decision and its log level can be made in one
// place.
//
// # Basic Usage
//
//	err := errors.NotFound("item not found").WithMeta("item_id", id)
//	err := errors.InvalidArgumentf("unknown pack: %s", pack)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load actor")
//	}
//
// # Degrading
//
// Callers that must never fail (hover handlers, the tooltip controller) use
// LogLevel to pick how loudly a swallowed error is reported:
//
//	slog.Log(ctx, errors.LogLevel(err), "tooltip lookup failed", "error", err)
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Surface == nil {
//	    vb.RequiredField("Surface")
//	}
//	return vb.Build()
package errors
