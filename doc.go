// Package obsidian2latex converts Obsidian markdown documents to LaTeX
// section fragments suitable for \input{} inclusion in a larger document.
//
// # Quick Start
//
// Create a converter and convert a file:
//
//	conv := obsidian2latex.NewConverter(
//	    obsidian2latex.WithFiguresDir("figures"),
//	    obsidian2latex.WithLevelAdjust(1),
//	)
//	latex, err := conv.ConvertFile("my_note.md")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := conv.Save("sections/my_note.tex", latex); err != nil {
//	    log.Fatal(err)
//	}
//
// Or run conversion, save, and attachment copying in one step:
//
//	err := conv.ConvertAndSave("my_note.md", "sections/my_note.tex")
//
// # Conversion Pipeline
//
// Conversion is an ordered sequence of whole-text rewrite passes, not a
// structural parse:
//
//  1. Frontmatter extraction (metadata) and stripping
//  2. %%comment%% removal
//  3. Header leveling with a clamped level adjustment
//  4. List building (dash bullets into itemize blocks)
//  5. Image resolution (![[...]] and ![](...) into figure blocks)
//  6. Link resolution (wikilinks into italics, markdown links into \href)
//  7. Emphasis (bold, italic, strikethrough)
//  8. Code blocks (fenced into verbatim/lstlisting, inline into \texttt)
//  9. Math passthrough (existing LaTeX math is left untouched)
//  10. Provenance header comment injection
//
// Each pass sees only the previous pass's output. A failing pass logs and
// carries its input forward unchanged, so conversion never aborts midway.
//
// # Output Requirements
//
// The emitted fragment assumes the including document's preamble provides
// the listings, graphicx, hyperref, and ulem packages. No preamble
// directives are emitted.
//
// # Concurrency
//
// A Converter holds the metadata of its last conversion; use one Converter
// per concurrent conversion.
package obsidian2latex
