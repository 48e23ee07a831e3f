// SPDX-License-Identifier: GPL-3.0-or-later

package info

// VERSION of omniscan
const VERSION = "v0.1.0"
