// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parse

import (
	"regexp"
	"strconv"
	"strings"

	"robpike.io/mcal/value"
)

// registerRE matches a register reference such as $3.
var registerRE = regexp.MustCompile(`\$(\d+)`)

// Resolve replaces each register reference $N in text with history[N-1].
func Resolve(text string, history []string) (string, error) {
	matches := registerRE.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		return text, nil
	}
	var b strings.Builder
	prev := 0
	for _, m := range matches {
		digits := text[m[2]:m[3]]
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 || n > len(history) {
			return "", value.Errorf(value.RegisterOutOfRange, "$%s: %d results in history", digits, len(history))
		}
		b.WriteString(text[prev:m[0]])
		b.WriteString(history[n-1])
		prev = m[1]
	}
	b.WriteString(text[prev:])
	return b.String(), nil
}
