// Package dataset produces and consumes flight-planning workloads:
//
//   - Generate builds a random flight set; RandomCase adds a random query.
//   - ReadCases / WriteCases speak the plain-text test-case format.
//   - Solve runs all three criteria for each case; WriteReport prints the
//     per-case summary; Compare diffs two reports and reports the first
//     mismatch, skipping the "Test Case" header lines.
//
// Test-case format (whitespace separated integers, one record per line):
//
//	<number of cases>
//	<number of flights>                       ┐
//	<flight_no> <start> <dep> <end> <arr> <fare> │ repeated per case
//	...                                          │
//	<start> <end> <t1> <t2>                   ┘
//
// Report format, per case:
//
//	Test Case <i> :
//	Route 1: <hops>, <arrival | No route>
//	Route 2: <fare>
//	Route 3: <hops>, <fare>
//	<blank>
package dataset
