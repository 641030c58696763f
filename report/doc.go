// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package report renders ordered tally results as plain text, one option
// per line with its score and the voters who weighed in:
//
//	1st (3) Pizza (ann[3], bob[1])
//	2nd (2) Sushi (ann[2], bob[3])
package report
