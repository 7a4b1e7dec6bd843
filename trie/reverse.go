package trie

import "github.com/hupe1980/triedo/model"

// reverseMap records, per identifier, the nodes it was inserted into.
type reverseMap map[model.ID][]uint32

func (r reverseMap) record(id model.ID, node uint32) {
	r[id] = append(r[id], node)
}

// take returns and forgets the nodes recorded for id.
func (r reverseMap) take(id model.ID) ([]uint32, bool) {
	nodes, ok := r[id]
	if ok {
		delete(r, id)
	}
	return nodes, ok
}
