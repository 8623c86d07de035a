// Copyright 2025 nuls Authors
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

package listing

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// PathExists reports whether path exists. The returned error is non-nil
// only when the existence check itself failed (e.g. permission denied on
// a parent), which is a different condition from the path being absent.
func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ReadEntries lists one directory's immediate entries with a metadata
// snapshot for each. The whole-directory read fails soft: an unlistable
// path yields an empty slice. Entries whose metadata cannot be fetched
// are skipped; the rest of the listing proceeds.
func ReadEntries(path string) []Entry {
	dirents, err := os.ReadDir(path)
	if err != nil {
		log.Debugf("reading %s: %v", path, err)
		return nil
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		info, err := os.Stat(filepath.Join(path, de.Name()))
		if err != nil {
			log.Debugf("skipping %s: %v", de.Name(), err)
			continue
		}
		entries = append(entries, Entry{Name: de.Name(), Meta: metadataFromInfo(info)})
	}
	return entries
}
