// Package index provides a full-text search index over the discovered
// contracts of a snapshot, so operators can find a contract by approximate
// name or by the name of a function it exposes.
package index

import (
	"fmt"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/blevesearch/bleve/analysis/lang/en"
	"github.com/blevesearch/bleve/mapping"

	"github.com/hexsight/prospector/discovery"
)

// ContractDoc is the indexed view of one discovered contract. Desc holds
// the searchable text: the contract name plus every function name in its
// ABI.
type ContractDoc struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Desc    string `json:"desc"`
}

// Index is an in-memory bleve index over one snapshot. Snapshots are
// request-scoped inputs, so the index is rebuilt per run rather than
// persisted.
type Index struct {
	index bleve.Index
	docs  map[string]ContractDoc
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = en.AnalyzerName

	defaultMapping := bleve.NewDocumentMapping()
	defaultMapping.AddFieldMappingsAt("desc", textFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", defaultMapping)

	indexMapping.TypeField = "type"
	indexMapping.DefaultAnalyzer = "en"

	return indexMapping
}

// New builds an in-memory index over every contract in the snapshot.
func New(graph *discovery.Output) (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating contract index: %w", err)
	}

	result := &Index{
		index: idx,
		docs:  map[string]ContractDoc{},
	}

	batch := idx.NewBatch()
	for _, entry := range graph.Contracts() {
		var functions []string
		for _, sig := range graph.ABIOf(entry.Address) {
			if name, ok := discovery.FunctionName(sig); ok {
				functions = append(functions, name)
			}
		}
		doc := ContractDoc{
			Address: entry.Address,
			Name:    entry.Name,
			Desc:    strings.TrimSpace(entry.Name + " " + strings.Join(functions, " ")),
		}
		result.docs[entry.Address] = doc
		if err := batch.Index(entry.Address, doc); err != nil {
			return nil, fmt.Errorf("indexing %s: %w", entry.Address, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("flushing contract index: %w", err)
	}
	return result, nil
}

// Search runs a match+fuzzy disjunction query against the index and returns
// the matching contracts with their scores (scaled to ints), best first.
func (x *Index) Search(input string) ([]ContractDoc, []int) {
	matchQuery := bleve.NewMatchPhraseQuery(input)
	fuzzyQuery := bleve.NewFuzzyQuery(input)
	fuzzyQuery.Fuzziness = 1
	query := bleve.NewDisjunctionQuery(matchQuery, fuzzyQuery)
	request := bleve.NewSearchRequest(query)

	searchResults, err := x.index.Search(request)
	if err != nil {
		return []ContractDoc{}, []int{}
	}

	results := []ContractDoc{}
	scores := []int{}
	for _, hit := range searchResults.Hits {
		doc, ok := x.docs[hit.ID]
		if !ok {
			continue
		}
		results = append(results, doc)
		scores = append(scores, int(hit.Score*1000000))
	}
	return results, scores
}

// Close releases the underlying bleve index.
func (x *Index) Close() error {
	return x.index.Close()
}
