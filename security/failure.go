/*
 * MIT License
 *
 * Copyright (c) 2025 Salim ABOUARAM
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package security

import (
	"strings"
)

// FailureType classifies a validation violation. Suspicious pattern findings
// carry the attack family as a distinct value; IsSuspiciousPattern groups
// them back into one class.
type FailureType uint8

const (
	// FailurePathTraversal is raised when dot-segment resolution would
	// escape above the path root.
	FailurePathTraversal FailureType = iota
	// FailureNullByte is raised for a literal NUL byte or a %00 sequence.
	FailureNullByte
	// FailureInvalidEncoding is raised for malformed percent sequences.
	FailureInvalidEncoding
	// FailureDoubleEncoding is raised when a decoded value still contains
	// percent sequences resolving to encoding-significant characters.
	FailureDoubleEncoding
	// FailureInvalidCharacter is raised for characters outside the
	// whitelist of the validation type.
	FailureInvalidCharacter
	// FailureControlCharacter is raised for control characters where the
	// configuration does not admit them.
	FailureControlCharacter
	// FailureSuspiciousXSS ... FailureSuspiciousTemplate are the attack
	// signature families of the pattern matching stage.
	FailureSuspiciousXSS
	FailureSuspiciousSQL
	FailureSuspiciousCommand
	FailureSuspiciousLDAP
	FailureSuspiciousProtocol
	FailureSuspiciousTemplate
	FailureSuspiciousHeader
	// FailureLengthExceeded is raised when an input exceeds the maximum
	// length configured for its validation type.
	FailureLengthExceeded
	// FailureCountExceeded is raised when a collection exceeds the maximum
	// number of items configured for its kind.
	FailureCountExceeded
	// FailureCookiePrefix is raised when a __Host- or __Secure- cookie
	// misses one of the attributes mandated by its prefix.
	FailureCookiePrefix
	// FailureInvalidInput is raised for structurally unusable input, like
	// an empty cookie name.
	FailureInvalidInput
)

// failureTypeMax bounds the contiguous FailureType values.
const failureTypeMax = int(FailureInvalidInput) + 1

// FailureTypeCount is the number of values in the failure taxonomy.
const FailureTypeCount = failureTypeMax

// FailureTypes returns all failure types in declaration order.
func FailureTypes() []FailureType {
	var l = make([]FailureType, 0, failureTypeMax)

	for i := 0; i < failureTypeMax; i++ {
		l = append(l, FailureType(i))
	}

	return l
}

// Index returns the position of the failure type in the contiguous taxonomy.
func (f FailureType) Index() int {
	return int(f)
}

// IsValid reports whether the value is part of the taxonomy.
func (f FailureType) IsValid() bool {
	return int(f) < failureTypeMax
}

// IsSuspiciousPattern reports whether the failure is one of the attack
// signature families detected by the pattern matching stage.
func (f FailureType) IsSuspiciousPattern() bool {
	switch f {
	case FailureSuspiciousXSS, FailureSuspiciousSQL, FailureSuspiciousCommand,
		FailureSuspiciousLDAP, FailureSuspiciousProtocol, FailureSuspiciousTemplate,
		FailureSuspiciousHeader:
		return true
	}

	return false
}

func (f FailureType) String() string {
	switch f {
	case FailurePathTraversal:
		return "PATH_TRAVERSAL_DETECTED"
	case FailureNullByte:
		return "NULL_BYTE_INJECTION"
	case FailureInvalidEncoding:
		return "INVALID_ENCODING"
	case FailureDoubleEncoding:
		return "DOUBLE_ENCODING"
	case FailureInvalidCharacter:
		return "INVALID_CHARACTER"
	case FailureControlCharacter:
		return "CONTROL_CHARACTER"
	case FailureSuspiciousXSS:
		return "SUSPICIOUS_PATTERN_DETECTED_XSS"
	case FailureSuspiciousSQL:
		return "SUSPICIOUS_PATTERN_DETECTED_SQLI"
	case FailureSuspiciousCommand:
		return "SUSPICIOUS_PATTERN_DETECTED_COMMAND_INJECTION"
	case FailureSuspiciousLDAP:
		return "SUSPICIOUS_PATTERN_DETECTED_LDAP"
	case FailureSuspiciousProtocol:
		return "SUSPICIOUS_PATTERN_DETECTED_PROTOCOL_HANDLER"
	case FailureSuspiciousTemplate:
		return "SUSPICIOUS_PATTERN_DETECTED_TEMPLATE"
	case FailureSuspiciousHeader:
		return "SUSPICIOUS_PATTERN_DETECTED_HEADER_INJECTION"
	case FailureLengthExceeded:
		return "LENGTH_EXCEEDED"
	case FailureCountExceeded:
		return "COUNT_EXCEEDED"
	case FailureCookiePrefix:
		return "COOKIE_PREFIX_VIOLATION"
	case FailureInvalidInput:
		return "INVALID_INPUT"
	}

	return "UNKNOWN"
}

// NewFailureFromString returns the FailureType matching the given string,
// case insensitively. Unknown strings return FailureInvalidInput and false.
func NewFailureFromString(s string) (FailureType, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))

	for i := 0; i < failureTypeMax; i++ {
		if FailureType(i).String() == s {
			return FailureType(i), true
		}
	}

	return FailureInvalidInput, false
}

// MarshalText implements encoding.TextMarshaler.
func (f FailureType) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
