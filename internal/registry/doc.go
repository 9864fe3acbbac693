// Package registry aggregates matched implementors per registry key and
// renders them in the spring.factories line format.
//
// The Aggregator keeps an insertion-ordered map of key to ordered set,
// plus a set of every recorded implementor so that the global uniqueness
// check is a single map lookup. Output is deterministic for a given
// sequence of Record calls.
//
// # Output format
//
//	org.springframework.boot.autoconfigure.EnableAutoConfiguration=com.example.AppConfig,com.example.WebConfig
//
// With continuation enabled each value gets its own line:
//
//	org.springframework.boot.autoconfigure.EnableAutoConfiguration=\
//	  com.example.AppConfig,\
//	  com.example.WebConfig
package registry
