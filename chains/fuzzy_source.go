package chains

import (
	"fmt"
	"sort"
	"strings"
)

type ChainDesc struct {
	ID   string
	Name string
}

// FuzzySource adapts the known-chain table to sahilm/fuzzy's Source
// interface for the chain lookup command.
type FuzzySource []ChainDesc

func (self FuzzySource) Len() int {
	return len(self)
}

func (self FuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", strings.Replace(self[i].Name, " ", "_", -1), self[i].ID)
}

func NewFuzzySource() FuzzySource {
	result := FuzzySource{}
	for id, name := range KnownChains() {
		result = append(result, ChainDesc{
			ID:   id,
			Name: name,
		})
	}
	// map iteration order is random; keep listings stable
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
