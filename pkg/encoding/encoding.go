// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package encoding

import (
	"errors"
	"regexp"
	"strconv"
)

var (
	hexPattern      = regexp.MustCompile(`^\$[0-9A-F]{1,4}$`)
	registerPattern = regexp.MustCompile(`^R[0-7]$`)
	labelPattern    = regexp.MustCompile(`^\w+$`)
)

var ErrInvalidHex = errors.New("Invalid hex string")

// IsHex reports whether s is a hex literal: '$' followed by one to four
// upper-case hex digits.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Decodes a hexidecimal string in the formats: $FFFF, $FF, $F
func DecodeHex(s string) (uint16, error) {
	if !IsHex(s) {
		return 0, ErrInvalidHex
	}

	result, err := strconv.ParseUint(s[1:], 16, 16)

	if err != nil {
		return 0, err
	}

	return uint16(result), nil
}

func IsRegister(s string) bool {
	return registerPattern.MatchString(s)
}

// Decodes a register name R0-R7 into its 3-bit index
func DecodeRegister(s string) (uint16, bool) {
	if !IsRegister(s) {
		return 0, false
	}

	return uint16(s[1] - '0'), true
}

// IsLabel reports whether s is made only of alphanumerics and underscores.
// Register names are also labels by this definition.
func IsLabel(s string) bool {
	return labelPattern.MatchString(s)
}

// IsNumber reports whether s can stand where a number is required: a hex
// literal or a label reference, but never a register.
func IsNumber(s string) bool {
	return (IsHex(s) || IsLabel(s)) && !IsRegister(s)
}
