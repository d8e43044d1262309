// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions record a test failure and allow the test to continue.
// The Demand functions end the test immediately on failure. Demand is useful
// when a failed expectation would make the remainder of the test meaningless.
package test
