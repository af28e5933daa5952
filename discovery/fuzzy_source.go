package discovery

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// FuzzySource adapts a snapshot's entries to sahilm/fuzzy's Source
// interface so operators can look contracts up by approximate name.
type FuzzySource []Entry

func (s FuzzySource) Len() int {
	return len(s)
}

func (s FuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", strings.Replace(s[i].Name, " ", "_", -1), s[i].Address)
}

// NewFuzzySource builds a FuzzySource from every entry in the snapshot,
// contracts first so they rank ahead of wallets and tokens on equal scores.
func NewFuzzySource(o *Output) FuzzySource {
	result := FuzzySource{}
	for _, e := range o.Entries {
		if e.Type == TypeContract {
			result = append(result, e)
		}
	}
	for _, e := range o.Entries {
		if e.Type != TypeContract {
			result = append(result, e)
		}
	}
	return result
}

// Search fuzzy-matches input against entry names and addresses and returns
// at most 10 entries with their match scores, best first.
func (o *Output) Search(input string) ([]Entry, []int) {
	source := NewFuzzySource(o)
	matches := fuzzy.FindFrom(strings.Replace(input, " ", "_", -1), source)
	result := []Entry{}
	scores := []int{}
	for i := 0; i < 10 && i < len(matches); i++ {
		result = append(result, source[matches[i].Index])
		scores = append(scores, matches[i].Score)
	}
	return result, scores
}
