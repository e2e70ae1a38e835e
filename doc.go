// Package budget provides the types and operations of a personal finance
// ledger. It is designed to be local-first: the whole ledger is a single,
// human-readable JSON file that the user owns.
//
// The core functionalities include:
//   - Transactions: dated income or expense entries with a category, a
//     positive amount and an optional note.
//   - Ledger operations: adding, filtering, summarizing, updating and
//     deleting transactions of an in-memory Ledger.
//   - Data Persistence: loading and saving the full ledger to and from a
//     JSON file, with an atomic replace on save and a safe empty fallback
//     on load.
//
// Raw user input is accepted as strings and normalized here, so that the
// `bgt` command-line tool never has to validate values itself.
package budget
