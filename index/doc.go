// Package index keeps the word index and the tag index consistent with
// the item lifecycle.
//
// A Manager owns two trie indexes of the same backend. Creating an item
// adds each of its words to the word index and each of its tags to the tag
// index. Completing an item removes it from the word index; whether it is
// also removed from the tag index is a policy (WithTagPurge). The default
// keeps completed items searchable by tag.
//
// # Usage
//
//	m, err := index.New(trie.BackendRadix)
//	m.OnCreate(0, []string{"buy", "milk"}, []string{"errand"})
//	ids := m.Lookup(model.Word("bu")) // {0}
//	m.OnComplete(0)
package index
