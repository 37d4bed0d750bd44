// Package version resolves the target library's detected version: the four
// 16-bit fields of its embedded version-information resource packed into one
// uint64 and compared as a plain unsigned integer against literal thresholds.
//
// The packing is a precise historical contract, not semantic versioning:
// low 32 bits from the LS half, high 32 bits from the MS half, exactly as the
// fixed file-version block stores them. Never interpret the value as a
// semver range.
package version
