// Package all registers every built-in rule with the default registry.
// Import it for side effects:
//
//	import _ "github.com/wharflab/jstyle/internal/rules/all"
package all

import (
	// Whitespace rules.
	_ "github.com/wharflab/jstyle/internal/rules/filetabcharacter"
	_ "github.com/wharflab/jstyle/internal/rules/nowhitespacebefore"
	_ "github.com/wharflab/jstyle/internal/rules/whitespaceafter"
	_ "github.com/wharflab/jstyle/internal/rules/whitespacearound"

	// Block rules.
	_ "github.com/wharflab/jstyle/internal/rules/avoidnestedblocks"
	_ "github.com/wharflab/jstyle/internal/rules/emptyblock"
	_ "github.com/wharflab/jstyle/internal/rules/emptycatchblock"
	_ "github.com/wharflab/jstyle/internal/rules/needbraces"

	// Modifier rules.
	_ "github.com/wharflab/jstyle/internal/rules/modifierorder"

	// Import rules.
	_ "github.com/wharflab/jstyle/internal/rules/redundantimport"
	_ "github.com/wharflab/jstyle/internal/rules/unusedimports"

	// Coding rules.
	_ "github.com/wharflab/jstyle/internal/rules/emptystatement"
	_ "github.com/wharflab/jstyle/internal/rules/missingswitchdefault"
	_ "github.com/wharflab/jstyle/internal/rules/multiplevariabledeclarations"
	_ "github.com/wharflab/jstyle/internal/rules/nestedtrydepth"
	_ "github.com/wharflab/jstyle/internal/rules/onestatementperline"
	_ "github.com/wharflab/jstyle/internal/rules/stringliteralequality"

	// Naming rules.
	_ "github.com/wharflab/jstyle/internal/rules/constantname"
	_ "github.com/wharflab/jstyle/internal/rules/localvariablename"
	_ "github.com/wharflab/jstyle/internal/rules/membername"
	_ "github.com/wharflab/jstyle/internal/rules/methodname"
	_ "github.com/wharflab/jstyle/internal/rules/parametername"
	_ "github.com/wharflab/jstyle/internal/rules/staticvariablename"
	_ "github.com/wharflab/jstyle/internal/rules/typename"

	// Size rules.
	_ "github.com/wharflab/jstyle/internal/rules/linelength"
	_ "github.com/wharflab/jstyle/internal/rules/methodlength"

	// Style rules.
	_ "github.com/wharflab/jstyle/internal/rules/upperell"
)
