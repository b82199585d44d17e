// Package seq provides composable, lazily-evaluated query operators over
// generic sequences: generation, adaptation, materialization, quantifier
// tests, single-element selection and counting.
//
// # The sequence capability
//
// The central abstraction is the [Sequence] interface — "give me a fresh
// [Cursor]" — rather than a concrete container. Any ordered producer of
// elements can participate:
//
//	s := seq.From(1, 2, 3, 4, 5)          // slice-backed
//	r, _ := seq.Range(1, 100)             // generated on demand
//	g := seq.FromSeq(maps.Keys(m))        // any Go iterator
//
// Each operator obtains exactly one cursor per invocation (two for the
// lockstep walk of [SequenceEqual]), consumes it within that call, and never
// mutates the source.
//
// # Lazy and eager operators
//
// Generators ([Empty], [Repeat], [Range]) and adaptors ([AsSequence],
// [Cast]) are lazy: elements are produced one per cursor advance, and a
// failing element — such as a value that does not satisfy a [Cast] — only
// surfaces when iteration reaches it. Materializers ([ToSlice], [ToList],
// [ToMap], [KeyBy]) are the deliberate end of laziness and consume their
// source completely.
//
// # Error reporting
//
// Operators that can fail return an error alongside their result, and every
// failure is a distinguishable sentinel (see [ErrNoMatch],
// [ErrAmbiguousMatch], [ErrInvalidCast], …) matchable with errors.Is:
//
//	v, err := seq.Single(users, func(u User) bool { return u.Admin })
//	switch {
//	case errors.Is(err, seq.ErrNoMatch):        // zero admins
//	case errors.Is(err, seq.ErrAmbiguousMatch): // more than one
//	}
//
// Selectors come in pairs: First/[FirstOrZero], Last/[LastOrZero],
// Single/[SingleOrZero], ElementAt/[ElementAtOrZero]. The plain form treats
// "nothing matched" as an error ([ErrNoMatch], or [ErrIndexOutOfRange] for a
// position); the OrZero form returns the element type's zero value instead. Failures that are not a mere absence — an
// ambiguous [Single], a nil argument, a cast failure in the source — are
// reported by both forms alike.
//
// # Concurrency
//
// Everything here is synchronous and single-threaded. A [Cursor] belongs to
// exactly one goroutine; independent cursors over the same restartable
// sequence are safe to drive concurrently for every sequence this package
// constructs.
package seq
