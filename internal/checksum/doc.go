// Package checksum provides content hashing for incremental generation.
//
// Two digests are used:
//
//   - Raw checksum: Hash of the exact bytes of a generated file (detects edits
//     or truncation of the output since the last run)
//   - Fields checksum: Hash of an ordered list of input values (detects any
//     change to the metadata or output options)
//
// # Field Encoding
//
// Each field is written as its decimal byte length, a colon, then the bytes.
// This keeps ("ab", "c") and ("a", "bc") distinct.
//
// # Example Usage
//
//	calculator := checksum.New()
//	inputs := calculator.CalculateFields("v1", "go", "com.example", "demo", "1.2.3", "")
//	output := calculator.CalculateRaw(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
