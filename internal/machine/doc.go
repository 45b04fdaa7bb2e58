// Package machine holds the validated data model handed to backends: tape
// symbols, head directions and immutable transitions.
//
// Every Transition that leaves the semantic core satisfies:
//   - len(Reads) == len(Writes) == len(Shifts);
//   - no Variable symbol remains: variables are Canonical(i) with i >= 1;
//   - canonical indices in Reads are numbered 1..k in order of first
//     appearance, and every Canonical in Writes also appears in Reads.
package machine
