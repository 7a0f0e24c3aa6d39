/*
Package catalog describes the Noto font ecosystem: which font variants exist
for each script, which of them belong to the sans and serif families, and
which variant is the default for a given style preference.

The catalog is pure data, fixed at build time. It is kept separate from the
resolution logic in the root package so it can be regenerated from the Noto
release inventory without touching the engine.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package catalog

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'noto.catalog'
func tracer() tracing.Trace {
	return tracing.Select("noto.catalog")
}
