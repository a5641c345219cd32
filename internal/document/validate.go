// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ValidatingLoader checks a file's structure with pdfcpu before handing it to
// the wrapped loader
type ValidatingLoader struct {
	next      Loader
	pdfConfig *model.Configuration
}

// NewValidatingLoader wraps next with relaxed pdfcpu validation
func NewValidatingLoader(next Loader) *ValidatingLoader {
	// pdfcpu otherwise installs a config directory under the user's home on first use
	api.DisableConfigDir()

	pdfConfig := model.NewDefaultConfiguration()
	pdfConfig.ValidationMode = model.ValidationRelaxed

	return &ValidatingLoader{
		next:      next,
		pdfConfig: pdfConfig,
	}
}

// Load validates path and then loads it with the wrapped loader
func (v *ValidatingLoader) Load(path string) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = &LoadError{Path: path, Err: fmt.Errorf("invalid PDF file: %v", r)}
		}
	}()

	if err := api.ValidateFile(path, v.pdfConfig); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("invalid PDF file: %w", err)}
	}
	return v.next.Load(path)
}
