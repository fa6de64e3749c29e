package refdata

import (
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomEntity_Membership(t *testing.T) {
	s := Default()
	for _, pool := range s.Pools() {
		require.Positive(t, s.Size(pool), pool)
		for i := 0; i < 50; i++ {
			e := s.RandomEntity(pool)
			_, ok := s.Resolve(pool, e.ID)
			assert.True(t, ok, "%s drew unknown id %s", pool, e.ID)
		}
	}
}

func TestPlaceholder_Idempotent(t *testing.T) {
	s := New(Data{})
	a := s.RandomEntity("problem")
	b := s.RandomEntity("problem")
	assert.Equal(t, a, b)
	assert.Len(t, a.ID, 32)
	assert.Equal(t, "Default problem value", a.Display)
	assert.NotEqual(t, a.ID, Placeholder("incident").ID)
}

func TestRandomLinked_GroupMembers(t *testing.T) {
	s := Default()
	for i := 0; i < 100; i++ {
		group := s.RandomEntity(PoolGroup)
		u := s.RandomLinked(PoolUser, PoolGroup, group.ID)
		_, ok := s.Resolve(PoolUser, u.ID)
		require.True(t, ok)
		if slices.Contains(u.Links[PoolGroup], group.ID) {
			continue
		}
		// Only groups without members may fall back to any user.
		for _, other := range s.pools[PoolUser] {
			assert.NotContains(t, other.Links[PoolGroup], group.ID, "group %s has members", group.Display)
		}
	}
}

func TestRandomLink_CIService(t *testing.T) {
	s := Default()
	for i := 0; i < 100; i++ {
		ci := s.RandomEntity(PoolCI)
		svc := s.RandomLink(ci, PoolService)
		assert.Contains(t, ci.Links[PoolService], svc.ID)
	}
}

func TestRandomLink_DanglingFallsBack(t *testing.T) {
	s := New(Data{Pools: map[string][]Entity{
		PoolService: {{ID: "svc1", Display: "Email"}},
	}})
	e := Entity{ID: "ci1", Links: map[string][]string{PoolService: {"missing"}}}
	assert.Equal(t, "svc1", s.RandomLink(e, PoolService).ID)
}

func TestChoiceSets(t *testing.T) {
	s := Default()
	assert.Contains(t, []string{"Network", "Hardware", "Software", "Database", "Security",
		"Email", "Telephony", "Authentication", "Storage", "Web"}, s.RandomChoice("category"))
	assert.NotEmpty(t, s.RandomChoice("state"), "pair sets render their display")
	assert.Empty(t, s.RandomChoice("nope"))
	assert.Equal(t, Choice{}, s.RandomValue("nope"))
	assert.Empty(t, s.RandomSubcategory("Plumbing"))
	assert.Empty(t, s.RandomSubcategoryIn("nope", "Network"))
	assert.Contains(t, []string{"Connectivity", "VPN", "Wireless", "DNS", "DHCP"}, s.RandomSubcategory("Network"))
}

func TestRandomValueWhere(t *testing.T) {
	s := Default()
	for i := 0; i < 50; i++ {
		c := s.RandomValueWhere("state", func(c Choice) bool { return c.Display == "Resolved" })
		assert.Equal(t, 6, c.Value)
	}
	c := s.RandomValueWhere("impact", func(Choice) bool { return false })
	assert.Contains(t, []int{1, 2, 3}, c.Value)
}

func TestNew_CopiesInput(t *testing.T) {
	d := Data{Lists: map[string][]string{"color": {"red"}}}
	s := New(d)
	d.Lists["color"][0] = "blue"
	assert.Equal(t, "red", s.RandomChoice("color"))
}

func TestStore_ConcurrentReads(t *testing.T) {
	s := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				ci := s.RandomEntity(PoolCI)
				s.RandomLink(ci, PoolService)
				s.RandomValue("state")
			}
		}()
	}
	wg.Wait()
}

func TestOpen_MergesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refs.yaml")
	yml := `pools:
  sys_user_group:
    - id: g1
      display: Platform Team
  sys_user:
    - id: u1
      display: Ada Admin
      links:
        sys_user_group: [g1]
lists:
  category: [Billing]
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Size(PoolUser))
	assert.Equal(t, "Billing", s.RandomChoice("category"))
	assert.Equal(t, "u1", s.RandomLinked(PoolUser, PoolGroup, "g1").ID)
	assert.Equal(t, Default().Size(PoolCI), s.Size(PoolCI), "untouched pools keep defaults")
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pools:\n  cmdb_ci:\n    - display: no id\n"), 0o644))
	_, err = LoadFile(path)
	assert.ErrorContains(t, err, "has no id")
}
