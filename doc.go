package typefence

// Package typefence provides:
//
// - Call-time argument checking for wrapped functions based on declared type
//   expressions (primitives, unions, containers with optional deep checks)
// - A stable error model via Issues (argument pointer, code, message)
// - Private/Protected access guards that recover caller identity from the
//   live call stack
// - JSON argument checking (CheckJSON) and a declaration-file CLI
//
// Design policy:
// - Keep only public APIs in the root package; put frame parsing and type
//   description under internal/.
// - Place type expressions under hint/, value rules under rules/, and the
//   CLI under cmd/typefence.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	sig, err := typefence.SignatureOf(increment,
//	    typefence.P("x").Hint(hint.Union(hint.Of[int](), hint.Of[float64]())),
//	)
//	inc, err := typefence.Wrap(increment, sig)
//
//	v, err := inc(1) // 2, nil
//	_, err = inc("a") // Issues: union_mismatch at /x
//
// Wrapped calls add no shared mutable state; a Signature is immutable after
// construction, so wrapped functions are as thread-safe as the functions they
// delegate to.
