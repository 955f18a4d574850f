// Package generator renders project metadata into a generated source file.
//
// Generation is a single linear pass:
//  1. Validate the metadata (a malformed version stops everything)
//  2. Render the embedded template for the target language
//  3. Skip the write if the stamp file shows the same inputs and an intact output
//  4. Create the output directory and write the file, then the stamp
//
// Identical inputs always produce byte-identical output. Concurrent writers to
// the same path are not coordinated; the last one wins.
package generator
