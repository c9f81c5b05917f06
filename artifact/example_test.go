package artifact_test

import (
	"fmt"

	"github.com/jonwraymond/styleops/artifact"
)

func ExampleKeyOf() {
	key := artifact.KeyOf("token", "dark", "v5")
	fmt.Println(key.Path())
	// Output:
	// token%dark%v5
}

func ExampleStore_Update() {
	store := artifact.NewStore[string]()
	key := artifact.KeyOf("css", "button")

	// First holder: create with a refcount of one.
	store.Update(key, func(prev *artifact.Entry[string]) *artifact.Entry[string] {
		if prev == nil {
			return &artifact.Entry[string]{Refs: 1, Value: ".btn{color:blue}"}
		}
		return &artifact.Entry[string]{Refs: prev.Refs + 1, Value: prev.Value}
	})

	// Second holder: increment.
	store.Update(key, func(prev *artifact.Entry[string]) *artifact.Entry[string] {
		return &artifact.Entry[string]{Refs: prev.Refs + 1, Value: prev.Value}
	})

	entry, ok := store.Get(key)
	fmt.Println("found:", ok)
	fmt.Println("refs:", entry.Refs)

	// Last holder leaves: remove by returning nil.
	store.Update(key, func(prev *artifact.Entry[string]) *artifact.Entry[string] {
		if prev.Refs <= 2 {
			return nil
		}
		return &artifact.Entry[string]{Refs: prev.Refs - 2, Value: prev.Value}
	})
	fmt.Println("len:", store.Len())
	// Output:
	// found: true
	// refs: 2
	// len: 0
}
