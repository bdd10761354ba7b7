package diag

import "sort"

// allDiags lists the zero value of every diagnostic type, in catalog
// order. The array is the single source of truth for TypeCount, All
// and ByCode.
var allDiags = [...]Diag{
	AssignmentBeforeVariableDeclaration{},
	AssignmentToConstGlobalVariable{},
	AssignmentToConstVariable{},
	AssignmentToConstVariableBeforeItsDeclaration{},
	AssignmentToUndeclaredVariable{},
	AwaitOperatorOutsideAsync{},
	BigIntLiteralContainsDecimalPoint{},
	BigIntLiteralContainsExponent{},
	CStyleForLoopIsMissingThirdComponent{},
	CannotAssignToVariableNamedAsyncInForOfLoop{},
	CannotDeclareAwaitInAsyncFunction{},
	CannotDeclareClassNamedLet{},
	CannotDeclareVariableNamedLetWithLet{},
	CannotDeclareVariableWithKeywordName{},
	CannotDeclareYieldInGeneratorFunction{},
	CannotExportDefaultVariable{},
	CannotExportLet{},
	CannotExportVariableNamedKeyword{},
	CannotImportLet{},
	CannotImportVariableNamedKeyword{},
	CannotReferToPrivateVariableWithoutObject{},
	CannotUpdateVariableDuringDeclaration{},
	CatchWithoutTry{},
	ClassStatementNotAllowedInBody{},
	CharacterDisallowedInIdentifiers{},
	CommaNotAllowedAfterSpreadParameter{},
	ElseHasNoIf{},
	EscapedCharacterDisallowedInIdentifiers{},
	EscapedCodePointInIdentifierOutOfRange{},
	ExtraCommaNotAllowedBetweenArguments{},
	ExpectedAsBeforeImportedNamespaceAlias{},
	ExpectedCommaToSeparateObjectLiteralEntries{},
	ExpectedExpressionBeforeNewline{},
	ExpectedExpressionForSwitchCase{},
	ExpectedExpressionBeforeSemicolon{},
	ExpectedFromAndModuleSpecifier{},
	ExpectedFromBeforeModuleSpecifier{},
	ExpectedHexDigitsInUnicodeEscape{},
	ExpectedLeftCurly{},
	ExpectedRightParenForFunctionCall{},
	ExpectedParenthesesAroundDoWhileCondition{},
	ExpectedParenthesisAroundDoWhileCondition{},
	ExpectedParenthesesAroundIfCondition{},
	ExpectedParenthesisAroundIfCondition{},
	ExpectedParenthesesAroundSwitchCondition{},
	ExpectedParenthesisAroundSwitchCondition{},
	ExpectedParenthesesAroundWhileCondition{},
	ExpectedParenthesisAroundWhileCondition{},
	ExpectedParenthesesAroundWithExpression{},
	ExpectedParenthesisAroundWithExpression{},
	ExpectedVariableNameForCatch{},
	ExportingRequiresDefault{},
	ExportingRequiresCurlies{},
	ExportingStringNameOnlyAllowedForExportFrom{},
	FinallyWithoutTry{},
	FunctionStatementNotAllowedInBody{},
	GeneratorFunctionStarBelongsBeforeName{},
	InDisallowedInCStyleForLoop{},
	IndexingRequiresExpression{},
	InvalidBindingInLetStatement{},
	InvalidExpressionLeftOfAssignment{},
	InvalidHexEscapeSequence{},
	InvalidLoneLiteralInObjectLiteral{},
	InvalidRHSForDotOperator{},
	InvalidUTF8Sequence{},
	KeywordsCannotContainEscapeSequences{},
	LegacyOctalLiteralMayNotBeBigInt{},
	LegacyOctalLiteralMayNotContainUnderscores{},
	LetWithNoBindings{},
	LexicalDeclarationNotAllowedInBody{},
	MethodsShouldNotUseFunctionKeyword{},
	MissingArrayClose{},
	MissingArrowFunctionParameterList{},
	MissingBodyForCatchClause{},
	MissingBodyForClass{},
	MissingBodyForDoWhileStatement{},
	MissingBodyForFinallyClause{},
	MissingBodyForForStatement{},
	MissingBodyForIfStatement{},
	MissingBodyForSwitchStatement{},
	MissingBodyForTryStatement{},
	MissingBodyForWhileStatement{},
	MissingCatchOrFinallyForTryStatement{},
	MissingCatchVariableBetweenParentheses{},
	MissingCommaBetweenObjectLiteralEntries{},
	MissingCommaBetweenVariableDeclarations{},
	MissingColonInConditionalExpression{},
	MissingConditionForIfStatement{},
	MissingConditionForWhileStatement{},
	MissingConditionForSwitchStatement{},
	MissingExpressionBetweenParentheses{},
	MissingForLoopHeader{},
	MissingForLoopRHSOrComponentsAfterExpression{},
	MissingForLoopRHSOrComponentsAfterDeclaration{},
	MissingFunctionParameterList{},
	MissingHeaderOfForLoop{},
	MissingKeyForObjectEntry{},
	MissingNameInFunctionStatement{},
	MissingNameInClassStatement{},
	MissingNameOfExportedClass{},
	MissingNameOfExportedFunction{},
	MissingNameOrParenthesesForFunction{},
	MissingOperandForOperator{},
	MissingOperatorBetweenExpressionAndArrowFunction{},
	MissingPropertyNameForDotOperator{},
	MissingSemicolonAfterStatement{},
	MissingSemicolonBetweenForLoopConditionAndUpdate{},
	MissingSemicolonBetweenForLoopInitAndCondition{},
	MissingTokenAfterExport{},
	MissingValueForObjectLiteralEntry{},
	MissingVariableNameInDeclaration{},
	MissingWhileAndConditionForDoWhileStatement{},
	NumberLiteralContainsConsecutiveUnderscores{},
	NumberLiteralContainsTrailingUnderscores{},
	OctalLiteralMayNotHaveExponent{},
	OctalLiteralMayNotHaveDecimal{},
	PrivatePropertiesAreNotAllowedInObjectLiterals{},
	RedeclarationOfGlobalVariable{},
	RedeclarationOfVariable{},
	RegexpLiteralFlagsCannotContainUnicodeEscapes{},
	StrayCommaInLetStatement{},
	TypescriptEnumNotImplemented{},
	UnclosedBlockComment{},
	UnclosedCodeBlock{},
	UnclosedIdentifierEscapeSequence{},
	UnclosedObjectLiteral{},
	UnclosedRegexpLiteral{},
	UnclosedStringLiteral{},
	UnclosedTemplate{},
	UnexpectedAtCharacter{},
	UnexpectedArrowAfterExpression{},
	UnexpectedArrowAfterLiteral{},
	UnexpectedBackslashInIdentifier{},
	UnexpectedCaseOutsideSwitchStatement{},
	UnexpectedCharactersInNumber{},
	UnexpectedControlCharacter{},
	UnexpectedCharactersInBinaryNumber{},
	UnexpectedCharactersInOctalNumber{},
	UnexpectedCharactersInHexNumber{},
	UnexpectedDefaultOutsideSwitchStatement{},
	UnexpectedLiteralInParameterList{},
	UnexpectedSemicolonInCStyleForLoop{},
	UnexpectedSemicolonInForInLoop{},
	UnexpectedSemicolonInForOfLoop{},
	NoDigitsInBinaryNumber{},
	NoDigitsInHexNumber{},
	NoDigitsInOctalNumber{},
	UnexpectedHashCharacter{},
	UnexpectedIdentifier{},
	UnexpectedIdentifierInExpression{},
	UnexpectedToken{},
	UnexpectedTokenAfterExport{},
	UnexpectedTokenInVariableDeclaration{},
	UnmatchedIndexingBracket{},
	UnmatchedParenthesis{},
	UnmatchedRightCurly{},
	UseOfUndeclaredVariable{},
	VariableUsedBeforeDeclaration{},
	InvalidBreak{},
	InvalidContinue{},
}

// TypeCount is the number of diagnostic types in the catalog.
const TypeCount = len(allDiags)

var byCode map[Code]Diag

func init() {
	byCode = make(map[Code]Diag, TypeCount)
	for _, d := range allDiags {
		if _, dup := byCode[d.Code()]; dup {
			panic("diag: duplicate code " + string(d.Code()))
		}
		byCode[d.Code()] = d
	}
}

// All returns the zero value of every diagnostic type, in catalog
// order. The returned slice is shared; callers must not modify it.
func All() []Diag {
	return allDiags[:]
}

// ByCode looks up the catalog entry registered under c.
func ByCode(c Code) (Diag, bool) {
	d, ok := byCode[c]
	return d, ok
}

// Templates returns the untranslated message templates of d, one per
// message part, in part order.
func Templates(d Diag) []string {
	var b MessageBuilder
	d.Message(&b)
	parts := b.Parts()
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.Template
	}
	return out
}

// AllTemplates returns every distinct message template in the catalog,
// sorted. Translation tables use these strings as their keys.
func AllTemplates() []string {
	seen := make(map[string]struct{})
	for _, d := range allDiags {
		for _, tmpl := range Templates(d) {
			seen[tmpl] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for tmpl := range seen {
		out = append(out, tmpl)
	}
	sort.Strings(out)
	return out
}
