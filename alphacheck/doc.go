// Package alphacheck offline-verifies a gadget's equivalence contract:
// that its Source and Mapped patterns have restricted weighted MIS
// tensors differing by exactly the gadget's declared MISOverhead, pin
// configuration by pin configuration. This is a property check run
// over the fixed catalog (package gadget), not a production code path —
// nothing in the forward or inverse driver calls it.
//
// Tensor returns one entry per pin configuration bitmask: the weighted
// MIS of the pattern with its pins fixed to that configuration's bits,
// or a sentinel for infeasible configurations (two adjacent pins both
// fixed to 1). Equivalent compares a gadget's Source and Mapped
// tensors, after dropping configurations infeasible on either side, and
// reports whether every surviving entry differs by exactly
// -MISOverhead.
package alphacheck
