// Package textnorm provides Unicode-aware string comparison and diacritic
// stripping.
//
// Strings that look identical can differ in their code points: "café" may
// end in U+00E9 or in "e" followed by the combining acute accent U+0301.
// Comparing after normalization removes that difference.
//
// # Comparison
//
//	textnorm.NormalizedEqual("caf\u00e9", "cafe\u0301") // true
//	textnorm.NormalizedEqual("A", "a")                  // false
//	textnorm.FoldedEqual("Straße", "strasse")           // true
//
// # Stripping marks
//
//	textnorm.StripMarks("“Herr Voß: • ½ cup of Œtker™ caffè latte”")
//	textnorm.StripMarksLatinOnly("Ζέφυρος, Zéfiro") // "Ζέφυρος, Zefiro"
//
// StripMarks removes every combining mark regardless of script, which also
// changes text where marks are essential. StripMarksLatinOnly only removes
// marks that follow an ASCII letter.
//
// All functions are pure and safe for concurrent use.
package textnorm
