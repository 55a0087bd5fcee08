// Package rules provides the curated lint rules for goharper.
//
// # Rules
//
//   - SpellCheck: words missing from the dictionary for the group's dialect
//   - RepeatedWords: the same word twice in a row
//   - SentenceCapitalization: sentences starting with a lowercase letter
//   - AnA: "a" before a vowel sound or "an" before a consonant sound
//   - Spaces: runs of more than one space between words
//   - SpaceBeforePunctuation: a space before a comma, period or similar
//   - MissingSpaceAfterPunctuation: a word directly after a comma or similar
//   - CorrectNumberSuffix: ordinal suffixes such as "2th"
//   - LongSentences: sentences longer than max_words words
//
// Every rule is enabled by default. Rules never inspect unlintable tokens.
package rules
