/*
Package notoize determines, for a body of text, the minimal set of Noto font
variants needed to render every character.

The Noto font ecosystem is organized by Unicode script: one family (often with
a sans and a serif member, sometimes with further stylistic alternates) per
writing system. Given text and a preference configuration, notoize classifies
each character, selects one variant per script, and returns a deduplicated
font stack in first-occurrence order:

	result, err := notoize.Stack("Hello, سلام!", notoize.NewSans())
	// result.Fonts = [NotoSans NotoSansArabic]

Sourcing the font binaries, shaping and rendering are not part of this module.
Sub-package uscript holds the Unicode classification table, sub-package
catalog the static font inventory.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package notoize

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'noto.resolve'
func tracer() tracing.Trace {
	return tracing.Select("noto.resolve")
}
