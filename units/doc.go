// Package units ships the built-in demonstration units: nine
// self-contained walkthroughs of Go language topics, one per phase of
// the curriculum, from syntax fundamentals to ecosystem practice.
//
// Every unit writes only through the io.Writer it is given and leaves
// no state behind, so units can run in any order or subset.
package units
