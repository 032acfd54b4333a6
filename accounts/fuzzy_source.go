package accounts

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// FuzzySource adapts a slice of account records to the fuzzy.Source
// interface. Each entry is searchable by both its address and its name.
type FuzzySource []AccDesc

func (fs FuzzySource) Len() int {
	return len(fs)
}

func (fs FuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", fs[i].Address, strings.ReplaceAll(fs[i].Desc, " ", "_"))
}

// NewFuzzySource builds a FuzzySource over the whole stored address book.
func NewFuzzySource() FuzzySource {
	return FuzzySource(GetAccounts())
}

// fuzzySearch returns the indices of source entries matching query, ranked
// best first.
func fuzzySearch(query string, source FuzzySource) []int {
	matches := fuzzy.FindFrom(query, source)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Index)
	}
	return out
}
