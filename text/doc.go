// Package text provides byte strings with short string optimization and
// an error model based on poisoning instead of explicit failures.
//
// # Overview
//
// String holds ASCII or UTF-8 content. Up to 23 bytes live inline in the
// struct with no heap allocation; longer content moves to a heap buffer
// that always ends in a zero byte, so Data is directly usable for C
// interop. Wrap borrows an existing zero-terminated buffer with no copy
// at all, which suits parsing workloads that slice large inputs.
//
// # Poison Protocol
//
// Operations that cannot complete — invalid arguments, truncation at the
// length ceiling, transcoding failures — mark the string poisoned rather
// than returning an error at every call site. The flag is sticky and
// propagates from operands to results, so a whole chain of work can be
// validated once at the end:
//
//	s := text.New("report-")
//	s.Append(name).AppendString(".txt")
//	if !s.Valid() {
//	    // handle the failure once
//	}
//
// Unpollute, Clear and Burn reset the flag.
//
// # Companions
//
// WideString carries UTF-16 content for Windows interop, with conversion
// both ways. Free functions cover comparison and search (case-sensitive
// and ASCII case-insensitive), search-and-replace, number formatting and
// file path manipulation.
//
// Strings are values: assignment shares long buffers the way slices do,
// so use Clone or Assign when an independent copy is needed. Instances
// are not safe for concurrent mutation.
package text
