/*
Package uscript classifies Unicode scalar values by writing system, for the
purpose of selecting Noto fonts.

The classification is close to, but not identical with, the Unicode `Script`
property: it only knows writing systems the Noto ecosystem has fonts for, it
groups some scripts which share a font family (Latin/Greek/Cyrillic become LGC,
the CJK scripts become a single CJK entry), and it carves out a handful of
pseudo-scripts for symbol blocks which Unicode files under `Common`
(mathematical notation, symbols, music, Mayan numerals, …). Codepoints outside
all of these classify as Unclassified — classification is total and never
fails.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package uscript

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'noto.uscript'
func tracer() tracing.Trace {
	return tracing.Select("noto.uscript")
}
