package all

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wharflab/jstyle/internal/rules"
)

func TestEveryModuleRegistered(t *testing.T) {
	expected := []string{
		"AvoidNestedBlocks",
		"ConstantName",
		"EmptyBlock",
		"EmptyCatchBlock",
		"EmptyStatement",
		"FileTabCharacter",
		"LineLength",
		"LocalVariableName",
		"MemberName",
		"MethodLength",
		"MethodName",
		"MissingSwitchDefault",
		"ModifierOrder",
		"MultipleVariableDeclarations",
		"NeedBraces",
		"NestedTryDepth",
		"NoWhitespaceBefore",
		"OneStatementPerLine",
		"ParameterName",
		"RedundantImport",
		"StaticVariableName",
		"StringLiteralEquality",
		"TypeName",
		"UnusedImports",
		"UpperEll",
		"WhitespaceAfter",
		"WhitespaceAround",
	}
	assert.Equal(t, expected, rules.DefaultRegistry().ModuleNames())
}

func TestFactoriesTolerateArbitraryProperties(t *testing.T) {
	junk := rules.Properties{
		"someFutureProperty": "whatever",
		"max":                "not-a-number",
		"format":             "([", // malformed regex
	}
	for _, name := range rules.DefaultRegistry().ModuleNames() {
		rule := rules.DefaultRegistry().Create(name, junk)
		assert.NotNil(t, rule, name)
		assert.Equal(t, name, rule.Name())
	}
}
