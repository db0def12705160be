// Package dotmap reads and writes deeply nested map[string]any structures
// using dot-separated key paths, and bridges them to the facade types in
// the collections package.
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//
//	dotmap.Get(m, "user.address.city") // → "London", true
//	dotmap.Set(m, "user.age", 30)
//	dotmap.Has(m, "user.name")         // → true
//	dotmap.Forget(m, "user.address")
//
// [Flatten] and [Expand] convert between nested and single-level
// dot-keyed forms.
//
// # Facade bridges
//
// A nested map is a key/value source and sink like any other; [Open] and
// [Gather] expose it through the generic lookup and ingestion facades:
//
//	x := dotmap.Open(m)
//	city, ok := x.Get("user.address.city")
//
//	g := dotmap.Gather(m)
//	g.Add("user.address.postcode", "EC1")
package dotmap
