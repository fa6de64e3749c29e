// ABOUTME: Read-only reference pools and choice sets with uniform random draws.
// ABOUTME: Empty or missing pools resolve to a deterministic placeholder entity.

package refdata

import (
	"math/rand/v2"
	"slices"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Well-known pool names.
const (
	PoolUser            = "sys_user"
	PoolGroup           = "sys_user_group"
	PoolService         = "cmdb_ci_service"
	PoolServiceOffering = "service_offering"
	PoolCI              = "cmdb_ci"
	PoolAccount         = "account"
	PoolContact         = "contact"
	PoolHRService       = "hr_service"
	PoolKnowledgeBase   = "kb_knowledge_base"
)

// Entity is one row of a reference pool. Links point at IDs in other pools,
// e.g. a configuration item's cmdb_ci_service or a user's sys_user_group.
type Entity struct {
	ID      string              `yaml:"id"`
	Display string              `yaml:"display"`
	Links   map[string][]string `yaml:"links,omitempty"`
}

// Choice is a value/display pair such as state 4 = "Resolved".
type Choice struct {
	Value   int    `yaml:"value"`
	Display string `yaml:"display"`
}

// Data is the raw material for a Store: pools plus the three choice-set shapes.
type Data struct {
	Pools  map[string][]Entity            `yaml:"pools"`
	Lists  map[string][]string            `yaml:"lists"`
	Values map[string][]Choice            `yaml:"values"`
	Nested map[string]map[string][]string `yaml:"nested"`
}

// Merge returns a copy of d where every pool or set named in other replaces
// the one in d.
func (d Data) Merge(other Data) Data {
	out := Data{
		Pools:  mergeMap(d.Pools, other.Pools),
		Lists:  mergeMap(d.Lists, other.Lists),
		Values: mergeMap(d.Values, other.Values),
		Nested: mergeMap(d.Nested, other.Nested),
	}
	return out
}

func mergeMap[V any](base, over map[string]V) map[string]V {
	out := make(map[string]V, len(base)+len(over))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Store serves random draws over immutable reference data. It is safe for
// concurrent use.
type Store struct {
	pools  map[string][]Entity
	index  map[string]map[string]int
	lists  map[string][]string
	values map[string][]Choice
	nested map[string]map[string][]string
}

// New copies d into a Store. Later changes to d are not observed.
func New(d Data) *Store {
	s := &Store{
		pools:  make(map[string][]Entity, len(d.Pools)),
		index:  make(map[string]map[string]int, len(d.Pools)),
		lists:  make(map[string][]string, len(d.Lists)),
		values: make(map[string][]Choice, len(d.Values)),
		nested: make(map[string]map[string][]string, len(d.Nested)),
	}
	for name, entities := range d.Pools {
		pool := make([]Entity, len(entities))
		idx := make(map[string]int, len(entities))
		for i, e := range entities {
			pool[i] = Entity{ID: e.ID, Display: e.Display, Links: copyLinks(e.Links)}
			idx[e.ID] = i
		}
		s.pools[name] = pool
		s.index[name] = idx
	}
	for name, list := range d.Lists {
		s.lists[name] = slices.Clone(list)
	}
	for name, choices := range d.Values {
		s.values[name] = slices.Clone(choices)
	}
	for name, m := range d.Nested {
		inner := make(map[string][]string, len(m))
		for k, v := range m {
			inner[k] = slices.Clone(v)
		}
		s.nested[name] = inner
	}
	return s
}

func copyLinks(links map[string][]string) map[string][]string {
	if len(links) == 0 {
		return nil
	}
	out := make(map[string][]string, len(links))
	for k, v := range links {
		out[k] = slices.Clone(v)
	}
	return out
}

// Pools lists pool names in sorted order.
func (s *Store) Pools() []string {
	names := make([]string, 0, len(s.pools))
	for name := range s.pools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the number of entities in pool.
func (s *Store) Size(pool string) int {
	return len(s.pools[pool])
}

// Placeholder is the entity returned for an empty or unknown pool. The ID is a
// name-based UUID of the pool name so repeated calls agree.
func Placeholder(pool string) Entity {
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("recgen/"+pool))
	return Entity{
		ID:      strings.ReplaceAll(id.String(), "-", ""),
		Display: "Default " + pool + " value",
	}
}

// RandomEntity draws uniformly from pool.
func (s *Store) RandomEntity(pool string) Entity {
	entities := s.pools[pool]
	if len(entities) == 0 {
		return Placeholder(pool)
	}
	return entities[rand.IntN(len(entities))]
}

// Resolve looks up an entity by ID.
func (s *Store) Resolve(pool, id string) (Entity, bool) {
	i, ok := s.index[pool][id]
	if !ok {
		return Entity{}, false
	}
	return s.pools[pool][i], true
}

// RandomLinked draws uniformly from the entities of pool whose links into
// linkPool contain id, e.g. the members of a group. When none match it falls
// back to RandomEntity(pool).
func (s *Store) RandomLinked(pool, linkPool, id string) Entity {
	var matches []int
	for i, e := range s.pools[pool] {
		if slices.Contains(e.Links[linkPool], id) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return s.RandomEntity(pool)
	}
	return s.pools[pool][matches[rand.IntN(len(matches))]]
}

// RandomLink follows one of e's links into pool, e.g. the service a
// configuration item belongs to. Dangling or absent links fall back to
// RandomEntity(pool).
func (s *Store) RandomLink(e Entity, pool string) Entity {
	ids := e.Links[pool]
	if len(ids) > 0 {
		if linked, ok := s.Resolve(pool, ids[rand.IntN(len(ids))]); ok {
			return linked
		}
	}
	return s.RandomEntity(pool)
}

// RandomChoice draws from a flat choice set. For a value/display set it
// returns the display of a random choice. Unknown sets yield "".
func (s *Store) RandomChoice(set string) string {
	if list := s.lists[set]; len(list) > 0 {
		return list[rand.IntN(len(list))]
	}
	return s.RandomValue(set).Display
}

// RandomChoiceWhere draws from the entries of a flat set accepted by keep, or
// from the whole set when keep accepts none.
func (s *Store) RandomChoiceWhere(set string, keep func(string) bool) string {
	var matches []string
	for _, v := range s.lists[set] {
		if keep(v) {
			matches = append(matches, v)
		}
	}
	if len(matches) == 0 {
		return s.RandomChoice(set)
	}
	return matches[rand.IntN(len(matches))]
}

// RandomValue draws from a value/display choice set. Unknown sets yield the
// zero Choice.
func (s *Store) RandomValue(set string) Choice {
	choices := s.values[set]
	if len(choices) == 0 {
		return Choice{}
	}
	return choices[rand.IntN(len(choices))]
}

// RandomValueWhere draws from the choices of set accepted by keep, or from the
// whole set when keep accepts none.
func (s *Store) RandomValueWhere(set string, keep func(Choice) bool) Choice {
	var matches []Choice
	for _, c := range s.values[set] {
		if keep(c) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return s.RandomValue(set)
	}
	return matches[rand.IntN(len(matches))]
}

// RandomSubcategory draws an incident subcategory for category.
func (s *Store) RandomSubcategory(category string) string {
	return s.RandomSubcategoryIn("subcategory", category)
}

// RandomSubcategoryIn draws from the list mapped to category in a two-level
// set, returning "" when the set or category is unknown.
func (s *Store) RandomSubcategoryIn(set, category string) string {
	subs := s.nested[set][category]
	if len(subs) == 0 {
		return ""
	}
	return subs[rand.IntN(len(subs))]
}
