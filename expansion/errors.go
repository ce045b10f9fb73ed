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

package expansion

import "errors"

var (
	// ErrSenseProviderRequired is returned when a sense provider is not provided.
	ErrSenseProviderRequired = errors.New("sense provider required")

	// ErrQueryTooLong is returned when a query has more content tokens than
	// the configured ceiling and truncation is disabled.
	ErrQueryTooLong = errors.New("query has too many content tokens")

	// ErrInvalidMaxTokens is returned when the content token ceiling is negative.
	ErrInvalidMaxTokens = errors.New("max tokens must not be negative")

	// ErrInvalidMaxSynonyms is returned when the per-word synonym cap is negative.
	ErrInvalidMaxSynonyms = errors.New("max synonyms per word must not be negative")
)
