// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingestion

import "errors"

var (
	// ErrRepositoryRequired is returned when a synset repository is not provided.
	ErrRepositoryRequired = errors.New("synset repository required")

	// ErrMalformedIndexLine is returned when an index file line cannot be parsed.
	ErrMalformedIndexLine = errors.New("malformed index line")

	// ErrMalformedDataLine is returned when a data file line cannot be parsed.
	ErrMalformedDataLine = errors.New("malformed data line")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("batch size must be greater than 0")
)
