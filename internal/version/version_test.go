// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.HasPrefix(info, "pdfsearch "+Version) {
		t.Errorf("unexpected prefix: %q", info)
	}
	if !strings.Contains(info, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("expected platform in %q", info)
	}
}
