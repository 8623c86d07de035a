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
	"os/user"
	"strconv"
)

// Identity resolves a numeric owner id to a human-readable name.
type Identity interface {
	Lookup(uid uint32) (string, error)
}

type osIdentity struct{}

// OSIdentity returns the platform identity directory.
func OSIdentity() Identity {
	return osIdentity{}
}

func (osIdentity) Lookup(uid uint32) (string, error) {
	u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return "", err
	}
	return u.Username, nil
}
