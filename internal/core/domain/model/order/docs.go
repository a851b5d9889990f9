// Package order contains the Order aggregate root and its owned audit
// trail. An order is created once by intake, then mutated by status
// transitions and courier assignment; every accepted transition appends
// exactly one history entry, and entries are never rewritten.
//
// The aggregate keeps attribution as a tagged Actor value and renders it
// to text only when an audit entry is appended or a message is built.
package order
