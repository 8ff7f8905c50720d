// Package evaluator is the stateless arithmetic service behind every front end.
//
// It enforces an input length limit, delegates parsing and interpretation to
// package expr and reports outcomes as domain.Result values.
package evaluator
