// Package mock provides test doubles for the lexicon capability interfaces.
//
// MockProvider is a lexicon.SenseProvider whose senses, lemmas, and pairwise
// similarity scores are declared by the test, so disambiguation outcomes can
// be controlled exactly. NewFixtureTaxonomy returns a small real Taxonomy
// shaped like a fragment of the WordNet noun hierarchy.
//
// # Usage in Tests
//
//	provider := mock.NewMockProvider()
//	provider.AddSense("apple", "apple.n.01", "apple", "eating_apple")
//	provider.AddSense("pie", "pie.n.01", "pie")
//	provider.SetSimilarity("apple.n.01", "pie.n.01", 0.6)
//
//	// Count similarity evaluations
//	calls := provider.SimilarityCalls()
//
// # Default Behavior
//
// Undeclared words have no senses, undeclared pairs score 0, and a sense is
// always 1.0 similar to itself.
package mock
