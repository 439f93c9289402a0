// Package slides turns ordered sections into renderable slide
// descriptors.
//
// [Assembler.Assemble] paginates each section against a layout oracle
// and emits one descriptor per chunk, carrying the deck title, the
// section heading as topic and subtitle, and a pagination suffix such
// as "(2/3)" when a section spans several slides. Descriptor IDs derive
// from section and chunk position, so recomputing an unchanged deck
// yields the same IDs and navigation state survives re-renders.
//
// [NavIndex] summarizes a descriptor list into topic groups for a
// navigation rail. [AttachSpans] fills descriptor span lists with
// formatted runs; it is a render-time pass, separate from assembly.
package slides
