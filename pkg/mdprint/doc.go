// Package mdprint writes tutorial output as a sequence of self-contained
// markdown blocks.
//
// Every unit of output is wrapped in an opening marker line and a closing
// marker line followed by one blank line:
//
//	<markdown>
//	body
//	</markdown>
//
// A Printer emits plain blocks, inline-math expressions, and tables. A
// Figures value is bound to one base name and saves plot figures to
// numbered files (<base>-1.svg, <base>-2.svg, ...), emitting an <img> block
// that references each file by name.
//
// Printer and Figures are not safe for concurrent use. Output is produced in
// call order.
package mdprint
