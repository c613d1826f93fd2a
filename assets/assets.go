// Package assets holds the files embedded into the game binaries.
package assets

import _ "embed"

// Help is the operator's manual shown by the help command.
//
//go:embed help.txt
var Help string
