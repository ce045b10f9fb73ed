// Package ingestion imports a WordNet database into a synset repository.
//
// The Pipeline type reads the index and data files for one part of speech
// (index.noun and data.noun by default), including:
//   - Parsing index entries into ordered word-to-senses lists
//   - Parsing data records into synsets with hypernym links and glosses
//   - Naming each synset "<lemma>.<pos>.<sense number>" from the index order
//
// Data records are decoded and written concurrently using a worker pool.
// The first decode or write error cancels the import and is returned.
package ingestion
