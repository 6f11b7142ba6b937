// Package framework contains the low-level test harness infrastructure that can
// be reused for different kinds of suites.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to
// accumulate success/failure results outside of the Go test runner.
//
// 2. Every case that the suite declares produces exactly one TestResult per
// run, whether it passed, failed, errored, or was skipped (by a filter or by
// the run-level timeout). Aggregated counts therefore always sum to the number
// of declared cases.
//
// The domain-specific code that knows what is being tested is responsible for
// building the cases and for providing a domain-specific API on top of the
// test context.
package framework
