// SPDX-License-Identifier: GPL-3.0-or-later

package oui

import (
	"os"
	"path"
)

// GetDefaultVendorRepo returns the default implementation of VendorRepo
// which uses github.com/klauspost/oui
func GetDefaultVendorRepo() (*OUIVendorRepo, error) {
	ouiTxt, err := GetDefaultOuiTxtPath()

	if err != nil {
		return nil, err
	}

	return NewOUIVendorRepo(*ouiTxt)
}

// GetDefaultOuiTxtPath returns the default path for the static oui.txt database
func GetDefaultOuiTxtPath() (*string, error) {
	home, err := os.UserHomeDir()

	if err != nil {
		return nil, err
	}

	ouiTxt := path.Join(home, ".config", "omniscan", "oui.txt")

	return &ouiTxt, nil
}
