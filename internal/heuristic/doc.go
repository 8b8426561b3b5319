// Package heuristic scores how close a string is to a numeric literal.
//
// The scores guide a search-based test generator when an intercepted parse
// call (byte, short, int, long or floating point) fails: instead of a binary
// outcome the search gets a value in (BaseScore, 1] that grows as the input
// approaches the target grammar. An absent argument scores
// UnreachableNullScore, an empty one BaseScore.
//
// Every function here is pure and safe for concurrent use.
package heuristic
