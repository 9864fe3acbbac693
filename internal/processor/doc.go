// Package processor drives a generation run.
//
// A Processor is fed one element batch per compilation pass. Non-terminal
// passes classify, match and record elements; the terminal pass renders
// spring.factories and spring-devtools.properties and writes both through
// the output. Redundant passes are harmless because recording is
// idempotent.
//
//	COLLECTING --(final pass)--> FINALIZING --> DONE
//	                                  \
//	                                   --> FAILED
//
// A Processor is not safe for concurrent use.
package processor
