// Package corpus generates synthetic log files for exercising the counting
// pipeline at realistic sizes.
//
// Each line mimics a service log: a slowly increasing epoch timestamp, a
// weighted log level, an ip= and code= field, a burst of vocabulary words,
// and a trailing user id and tag. Word frequencies follow a rank-weighted
// distribution, weight 1/rank^skew, so a small head of the vocabulary
// dominates the way natural text does, and a slice of words carries
// log-style mutations (numeric suffixes, inserted digits, capitalized first
// letters) to keep tokenization honest.
//
// Generation is deterministic: the same Params, including a nonzero Seed,
// produce byte-identical files, which makes generated corpora usable as
// fixtures in benchmarks and cross-configuration tests. Files are written
// through a large buffer and truncated to exactly the requested size.
package corpus
