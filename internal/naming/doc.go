// Package naming classifies symbol filenames into structural signatures.
//
// A stem (filename without extension) is scanned for two independent
// patterns:
//
//   - a varicolor marker: "vari" (any case), an optional space, underscore
//     or hyphen, then a number, as in "Tree vari_01";
//   - a trailing numeric suffix, as in "Orc 03".
//
// The marker and its number are removed before the suffix is looked for, so
// "Tree 2 vari_01" is varicolor index 1 of "Tree 2" and number 2 of "Tree".
// A varicolor stem with no other trailing number reuses its varicolor index
// as the number.
//
// [Classify] is pure: it returns a [ClassifiedName] value and has no side
// effects, so the grouping layer can call it freely.
package naming
