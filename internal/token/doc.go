// Package token defines the token definitions shared by the generated lexer tables.
// Invariants:
//   - A Def is immutable once constructed: Name is the symbolic constant name,
//     Text is either the exact source spelling or a category label.
//   - Names are valid identifiers for both ANTLR and Go.
//   - An ID is derived from catalog position only (index + Base); nothing in this
//     package assigns IDs from content.
//   - Special and Operators are fixed tables; reordering them renumbers every
//     token that follows.
package token
