// Package verify provides structural checks for pooled list storage.
//
// # Overview
//
// A storage threads every slot onto exactly one of two chains: the live chain
// starting at Head and the free chain starting at FreeHead. This package walks
// both chains through the read-only storage.Inspector view and reports the first
// broken invariant. It is used by tests and by list.List.Validate.
//
// Invariants checked by Chains:
//   - The live chain reaches Nil after exactly Len() steps
//   - The free chain reaches Nil after exactly Cap()-Len() steps
//   - No ref appears twice, and every ref in [0, Cap()) is on one chain
//   - Live-chain slots are live, free-chain slots are not
//
// # Quick Start
//
//	if err := verify.Chains(s); err != nil {
//	    var verr *verify.ValidationError
//	    if errors.As(err, &verr) {
//	        fmt.Printf("%s at ref %d\n", verr.Type, verr.Ref)
//	    }
//	}
//
// Growth checks a capacity transition against the growth rule:
//
//	err := verify.Growth(3, 5) // nil
//	err = verify.Growth(3, 4)  // *ValidationError
package verify
