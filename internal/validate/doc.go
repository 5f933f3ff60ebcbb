// Package validate turns raw user input into values the racing package
// accepts: car names split from comma-delimited text and a positive round
// count.
//
// Errors carry a human-readable message that the view prints verbatim.
package validate
