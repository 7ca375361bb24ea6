// Package intercept drives the search-interception round loop.
//
// Flow per round:
//
//	build tool list -> provider call -> classify response
//	  no search call                -> return response (terminal)
//	  search + concrete tool call   -> grow discovered set, return as-is
//	  search only                   -> grow discovered set, extend the
//	                                   transcript, next round
//
// The round budget is the only bound on looping; a budget exhausted on
// search-only rounds returns the last response unresolved. Provider errors
// propagate untouched; the loop never retries.
package intercept
