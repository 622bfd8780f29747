// Package registry provides a generic immutable registry for values indexed by key.
//
// A Registry is populated once from a map and never changes afterwards. Because
// nothing mutates it after construction, it is safe to share across any number
// of goroutines without locking.
//
// # Basic Usage
//
// Build a registry from a literal table and look values up:
//
//	r := registry.New(map[string]string{
//	    "acme.0": "Shipped the billing service",
//	    "acme.1": "Led the storage migration",
//	})
//
//	text, ok := r.Get("acme.0")
//	if ok {
//	    fmt.Println(text) // Output: Shipped the billing service
//	}
//
// # Enumeration
//
// Keys are returned in ascending order, so listings are stable within a process
// and across runs:
//
//	for _, k := range r.Keys() {
//	    fmt.Println(k)
//	}
//
// Range visits entries in the same order and stops early when fn returns false:
//
//	r.Range(func(key, text string) bool {
//	    fmt.Printf("%s: %s\n", key, text)
//	    return true
//	})
//
// # Immutability
//
// New copies its input, so later changes to the source map are not observed.
// Keys and Filter return fresh slices the caller may modify freely.
package registry
