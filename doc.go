// Package ledger provides the types and computations of a personal finance
// ledger: accounts, incomes, expenses, subscriptions, loans and investments.
//
// Every derived value is computed on demand from a snapshot of records:
//   - Balances: the current balance of each account, from its opening balance
//     and the incomes and expenses that reference it by name (see Resolve).
//   - Cash-flow series: incomes and expenses aggregated into contiguous,
//     calendar aligned buckets ending on a reference day (see BuildSeries).
//   - Registers: a list of entries narrowed by a text search, a category and
//     a time window, with its total and share of the unfiltered total (see Analyze).
//   - Valuations: the current value of investments merged from market quotes,
//     and their return on investment (see MergeQuotes and Syncer).
//
// Computations never read the clock, the reference day is always a parameter.
//
// This package serves as the foundational logic for the `cfo` command-line tool.
package ledger
