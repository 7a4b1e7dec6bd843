// Package command parses and executes the line-oriented todo grammar.
//
//	add "<words>" #tag ...   creates an item, prints its id
//	done <id>                completes an item, prints "done" or "not found"
//	search <term> ...        prints "<n> item(s) found" then one line per item
//
// A search term starting with '#' is a tag term, otherwise a word term.
// Results can be rendered as text or, through package codec, as one JSON
// object per command.
package command
