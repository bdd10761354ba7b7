package diag

import (
	"flint/internal/source"
)

// Diag is the closed sum of every diagnostic the analyzer can emit. Each
// variant is a plain struct carrying the evidence its message needs: spans
// and identifiers into the analyzed buffer, statement kinds, or single
// characters. Variants are data only; rendering happens in Renderer and
// dispatch in Reporter implementations.
//
// The marker method seals the set: new variants are added here, next to
// their code and message recipe, and registered in allDiags.
type Diag interface {
	isDiag()
	Code() Code
	Message(b *MessageBuilder)
}

type AssignmentBeforeVariableDeclaration struct {
	Assignment  source.Ident
	Declaration source.Ident
}

func (AssignmentBeforeVariableDeclaration) isDiag()    {}
func (AssignmentBeforeVariableDeclaration) Code() Code { return "E001" }
func (d AssignmentBeforeVariableDeclaration) Message(b *MessageBuilder) {
	b.Error("variable assigned before its declaration", d.Assignment).
		Note("variable declared here", d.Declaration)
}

type AssignmentToConstGlobalVariable struct {
	Assignment source.Ident
}

func (AssignmentToConstGlobalVariable) isDiag()    {}
func (AssignmentToConstGlobalVariable) Code() Code { return "E002" }
func (d AssignmentToConstGlobalVariable) Message(b *MessageBuilder) {
	b.Error("assignment to const global variable", d.Assignment)
}

type AssignmentToConstVariable struct {
	Declaration source.Ident
	Assignment  source.Ident
}

func (AssignmentToConstVariable) isDiag()    {}
func (AssignmentToConstVariable) Code() Code { return "E003" }
func (d AssignmentToConstVariable) Message(b *MessageBuilder) {
	b.Error("assignment to const variable", d.Assignment).
		Note("const variable declared here", d.Declaration)
}

type AssignmentToConstVariableBeforeItsDeclaration struct {
	Declaration source.Ident
	Assignment  source.Ident
}

func (AssignmentToConstVariableBeforeItsDeclaration) isDiag()    {}
func (AssignmentToConstVariableBeforeItsDeclaration) Code() Code { return "E004" }
func (d AssignmentToConstVariableBeforeItsDeclaration) Message(b *MessageBuilder) {
	b.Error("assignment to const variable before its declaration", d.Assignment).
		Note("const variable declared here", d.Declaration)
}

type AssignmentToUndeclaredVariable struct {
	Assignment source.Ident
}

func (AssignmentToUndeclaredVariable) isDiag()    {}
func (AssignmentToUndeclaredVariable) Code() Code { return "E059" }
func (d AssignmentToUndeclaredVariable) Message(b *MessageBuilder) {
	b.Warning("assignment to undeclared variable", d.Assignment)
}

type AwaitOperatorOutsideAsync struct {
	AwaitOperator source.Span
}

func (AwaitOperatorOutsideAsync) isDiag()    {}
func (AwaitOperatorOutsideAsync) Code() Code { return "E162" }
func (d AwaitOperatorOutsideAsync) Message(b *MessageBuilder) {
	b.Error("'await' is only allowed in async functions", d.AwaitOperator)
}

type BigIntLiteralContainsDecimalPoint struct {
	Where source.Span
}

func (BigIntLiteralContainsDecimalPoint) isDiag()    {}
func (BigIntLiteralContainsDecimalPoint) Code() Code { return "E005" }
func (d BigIntLiteralContainsDecimalPoint) Message(b *MessageBuilder) {
	b.Error("BigInt literal contains decimal point", d.Where)
}

type BigIntLiteralContainsExponent struct {
	Where source.Span
}

func (BigIntLiteralContainsExponent) isDiag()    {}
func (BigIntLiteralContainsExponent) Code() Code { return "E006" }
func (d BigIntLiteralContainsExponent) Message(b *MessageBuilder) {
	b.Error("BigInt literal contains exponent", d.Where)
}

type CStyleForLoopIsMissingThirdComponent struct {
	ExpectedLastComponent source.Span
}

func (CStyleForLoopIsMissingThirdComponent) isDiag()    {}
func (CStyleForLoopIsMissingThirdComponent) Code() Code { return "E093" }
func (d CStyleForLoopIsMissingThirdComponent) Message(b *MessageBuilder) {
	b.Error("C-style for loop is missing its third component", d.ExpectedLastComponent)
}

type CannotAssignToVariableNamedAsyncInForOfLoop struct {
	AsyncIdentifier source.Ident
}

func (CannotAssignToVariableNamedAsyncInForOfLoop) isDiag()    {}
func (CannotAssignToVariableNamedAsyncInForOfLoop) Code() Code { return "E082" }
func (d CannotAssignToVariableNamedAsyncInForOfLoop) Message(b *MessageBuilder) {
	b.Error("assigning to 'async' in a for-of loop requires parentheses", d.AsyncIdentifier)
}

type CannotDeclareAwaitInAsyncFunction struct {
	Name source.Ident
}

func (CannotDeclareAwaitInAsyncFunction) isDiag()    {}
func (CannotDeclareAwaitInAsyncFunction) Code() Code { return "E069" }
func (d CannotDeclareAwaitInAsyncFunction) Message(b *MessageBuilder) {
	b.Error("cannot declare 'await' inside async function", d.Name)
}

type CannotDeclareClassNamedLet struct {
	Name source.Span
}

func (CannotDeclareClassNamedLet) isDiag()    {}
func (CannotDeclareClassNamedLet) Code() Code { return "E007" }
func (d CannotDeclareClassNamedLet) Message(b *MessageBuilder) {
	b.Error("classes cannot be named 'let'", d.Name)
}

type CannotDeclareVariableNamedLetWithLet struct {
	Name source.Span
}

func (CannotDeclareVariableNamedLetWithLet) isDiag()    {}
func (CannotDeclareVariableNamedLetWithLet) Code() Code { return "E008" }
func (d CannotDeclareVariableNamedLetWithLet) Message(b *MessageBuilder) {
	b.Error("let statement cannot declare variables named 'let'", d.Name)
}

type CannotDeclareVariableWithKeywordName struct {
	Keyword source.Span
}

func (CannotDeclareVariableWithKeywordName) isDiag()    {}
func (CannotDeclareVariableWithKeywordName) Code() Code { return "E124" }
func (d CannotDeclareVariableWithKeywordName) Message(b *MessageBuilder) {
	b.Error("cannot declare variable named keyword '{0}'", d.Keyword)
}

type CannotDeclareYieldInGeneratorFunction struct {
	Name source.Ident
}

func (CannotDeclareYieldInGeneratorFunction) isDiag()    {}
func (CannotDeclareYieldInGeneratorFunction) Code() Code { return "E071" }
func (d CannotDeclareYieldInGeneratorFunction) Message(b *MessageBuilder) {
	b.Error("cannot declare 'yield' inside generator function", d.Name)
}

type CannotExportDefaultVariable struct {
	DeclaringToken source.Span
}

func (CannotExportDefaultVariable) isDiag()    {}
func (CannotExportDefaultVariable) Code() Code { return "E076" }
func (d CannotExportDefaultVariable) Message(b *MessageBuilder) {
	b.Error("cannot declare and export variable with 'export default'", d.DeclaringToken)
}

type CannotExportLet struct {
	ExportName source.Span
}

func (CannotExportLet) isDiag()    {}
func (CannotExportLet) Code() Code { return "E009" }
func (d CannotExportLet) Message(b *MessageBuilder) {
	b.Error("cannot export variable named 'let'", d.ExportName)
}

type CannotExportVariableNamedKeyword struct {
	ExportName source.Ident
}

func (CannotExportVariableNamedKeyword) isDiag()    {}
func (CannotExportVariableNamedKeyword) Code() Code { return "E144" }
func (d CannotExportVariableNamedKeyword) Message(b *MessageBuilder) {
	b.Error("cannot export variable named keyword '{0}'", d.ExportName)
}

type CannotImportLet struct {
	ImportName source.Span
}

func (CannotImportLet) isDiag()    {}
func (CannotImportLet) Code() Code { return "E010" }
func (d CannotImportLet) Message(b *MessageBuilder) {
	b.Error("cannot import 'let'", d.ImportName)
}

type CannotImportVariableNamedKeyword struct {
	ImportName source.Ident
}

func (CannotImportVariableNamedKeyword) isDiag()    {}
func (CannotImportVariableNamedKeyword) Code() Code { return "E145" }
func (d CannotImportVariableNamedKeyword) Message(b *MessageBuilder) {
	b.Error("cannot import variable named keyword '{0}'", d.ImportName)
}

type CannotReferToPrivateVariableWithoutObject struct {
	PrivateIdentifier source.Ident
}

func (CannotReferToPrivateVariableWithoutObject) isDiag()    {}
func (CannotReferToPrivateVariableWithoutObject) Code() Code { return "E155" }
func (d CannotReferToPrivateVariableWithoutObject) Message(b *MessageBuilder) {
	b.Error("cannot reference private variables without object; use 'this.'", d.PrivateIdentifier)
}

type CannotUpdateVariableDuringDeclaration struct {
	DeclaringToken   source.Span
	UpdatingOperator source.Span
}

func (CannotUpdateVariableDuringDeclaration) isDiag()    {}
func (CannotUpdateVariableDuringDeclaration) Code() Code { return "E136" }
func (d CannotUpdateVariableDuringDeclaration) Message(b *MessageBuilder) {
	b.Error("cannot update variable with '{0}' while declaring it", d.UpdatingOperator).
		Note("remove '{0}' to update an existing variable", d.DeclaringToken)
}

type CatchWithoutTry struct {
	CatchToken source.Span
}

func (CatchWithoutTry) isDiag()    {}
func (CatchWithoutTry) Code() Code { return "E117" }
func (d CatchWithoutTry) Message(b *MessageBuilder) {
	b.Error("unexpected 'catch' without 'try'", d.CatchToken)
}

type ClassStatementNotAllowedInBody struct {
	KindOfStatement StatementKind
	ExpectedBody    source.Span
	ClassKeyword    source.Span
}

func (ClassStatementNotAllowedInBody) isDiag()    {}
func (ClassStatementNotAllowedInBody) Code() Code { return "E149" }
func (d ClassStatementNotAllowedInBody) Message(b *MessageBuilder) {
	b.Error("missing body for {1:headlinese}", d.ExpectedBody, d.KindOfStatement).
		Note("a class statement is not allowed as the body of {1:singular}", d.ClassKeyword, d.KindOfStatement)
}

type CharacterDisallowedInIdentifiers struct {
	Character source.Span
}

func (CharacterDisallowedInIdentifiers) isDiag()    {}
func (CharacterDisallowedInIdentifiers) Code() Code { return "E011" }
func (d CharacterDisallowedInIdentifiers) Message(b *MessageBuilder) {
	b.Error("character is not allowed in identifiers", d.Character)
}

type CommaNotAllowedAfterSpreadParameter struct {
	Comma source.Span
}

func (CommaNotAllowedAfterSpreadParameter) isDiag()    {}
func (CommaNotAllowedAfterSpreadParameter) Code() Code { return "E070" }
func (d CommaNotAllowedAfterSpreadParameter) Message(b *MessageBuilder) {
	b.Error("commas are not allowed after spread parameter", d.Comma)
}

type ElseHasNoIf struct {
	ElseToken source.Span
}

func (ElseHasNoIf) isDiag()    {}
func (ElseHasNoIf) Code() Code { return "E065" }
func (d ElseHasNoIf) Message(b *MessageBuilder) {
	b.Error("'else' has no corresponding 'if'", d.ElseToken)
}

type EscapedCharacterDisallowedInIdentifiers struct {
	EscapeSequence source.Span
}

func (EscapedCharacterDisallowedInIdentifiers) isDiag()    {}
func (EscapedCharacterDisallowedInIdentifiers) Code() Code { return "E012" }
func (d EscapedCharacterDisallowedInIdentifiers) Message(b *MessageBuilder) {
	b.Error("escaped character is not allowed in identifiers", d.EscapeSequence)
}

type EscapedCodePointInIdentifierOutOfRange struct {
	EscapeSequence source.Span
}

func (EscapedCodePointInIdentifierOutOfRange) isDiag()    {}
func (EscapedCodePointInIdentifierOutOfRange) Code() Code { return "E013" }
func (d EscapedCodePointInIdentifierOutOfRange) Message(b *MessageBuilder) {
	b.Error("code point out of range", d.EscapeSequence)
}

type ExtraCommaNotAllowedBetweenArguments struct {
	Comma source.Span
}

func (ExtraCommaNotAllowedBetweenArguments) isDiag()    {}
func (ExtraCommaNotAllowedBetweenArguments) Code() Code { return "E068" }
func (d ExtraCommaNotAllowedBetweenArguments) Message(b *MessageBuilder) {
	b.Error("extra ',' is not allowed between function call arguments", d.Comma)
}

type ExpectedAsBeforeImportedNamespaceAlias struct {
	Alias     source.Span
	StarToken source.Span
}

func (ExpectedAsBeforeImportedNamespaceAlias) isDiag()    {}
func (ExpectedAsBeforeImportedNamespaceAlias) Code() Code { return "E126" }
func (d ExpectedAsBeforeImportedNamespaceAlias) Message(b *MessageBuilder) {
	b.Error("expected 'as' between '{1}' and '{2}'",
		d.StarToken.To(d.Alias), d.StarToken, d.Alias)
}

type ExpectedCommaToSeparateObjectLiteralEntries struct {
	UnexpectedToken source.Span
}

func (ExpectedCommaToSeparateObjectLiteralEntries) isDiag()    {}
func (ExpectedCommaToSeparateObjectLiteralEntries) Code() Code { return "E131" }
func (d ExpectedCommaToSeparateObjectLiteralEntries) Message(b *MessageBuilder) {
	b.Error("expected ',' between object literal entries", d.UnexpectedToken)
}

type ExpectedExpressionBeforeNewline struct {
	Where source.Span
}

func (ExpectedExpressionBeforeNewline) isDiag()    {}
func (ExpectedExpressionBeforeNewline) Code() Code { return "E014" }
func (d ExpectedExpressionBeforeNewline) Message(b *MessageBuilder) {
	b.Error("expected expression before newline", d.Where)
}

type ExpectedExpressionForSwitchCase struct {
	CaseToken source.Span
}

func (ExpectedExpressionForSwitchCase) isDiag()    {}
func (ExpectedExpressionForSwitchCase) Code() Code { return "E140" }
func (d ExpectedExpressionForSwitchCase) Message(b *MessageBuilder) {
	b.Error("expected expression after 'case'", d.CaseToken)
}

type ExpectedExpressionBeforeSemicolon struct {
	Where source.Span
}

func (ExpectedExpressionBeforeSemicolon) isDiag()    {}
func (ExpectedExpressionBeforeSemicolon) Code() Code { return "E015" }
func (d ExpectedExpressionBeforeSemicolon) Message(b *MessageBuilder) {
	b.Error("expected expression before semicolon", d.Where)
}

type ExpectedFromAndModuleSpecifier struct {
	Where source.Span
}

func (ExpectedFromAndModuleSpecifier) isDiag()    {}
func (ExpectedFromAndModuleSpecifier) Code() Code { return "E129" }
func (d ExpectedFromAndModuleSpecifier) Message(b *MessageBuilder) {
	b.Error("expected 'from \"name_of_module.mjs\"'", d.Where)
}

type ExpectedFromBeforeModuleSpecifier struct {
	ModuleSpecifier source.Span
}

func (ExpectedFromBeforeModuleSpecifier) isDiag()    {}
func (ExpectedFromBeforeModuleSpecifier) Code() Code { return "E128" }
func (d ExpectedFromBeforeModuleSpecifier) Message(b *MessageBuilder) {
	b.Error("expected 'from' before module specifier", d.ModuleSpecifier)
}

type ExpectedHexDigitsInUnicodeEscape struct {
	EscapeSequence source.Span
}

func (ExpectedHexDigitsInUnicodeEscape) isDiag()    {}
func (ExpectedHexDigitsInUnicodeEscape) Code() Code { return "E016" }
func (d ExpectedHexDigitsInUnicodeEscape) Message(b *MessageBuilder) {
	b.Error("expected hexadecimal digits in Unicode escape sequence", d.EscapeSequence)
}

type ExpectedLeftCurly struct {
	ExpectedLeftCurly source.Span
}

func (ExpectedLeftCurly) isDiag()    {}
func (ExpectedLeftCurly) Code() Code { return "E107" }
func (d ExpectedLeftCurly) Message(b *MessageBuilder) {
	b.Error("expected '{{'", d.ExpectedLeftCurly)
}

type ExpectedRightParenForFunctionCall struct {
	ExpectedRightParen source.Span
	LeftParen          source.Span
}

func (ExpectedRightParenForFunctionCall) isDiag()    {}
func (ExpectedRightParenForFunctionCall) Code() Code { return "E141" }
func (d ExpectedRightParenForFunctionCall) Message(b *MessageBuilder) {
	b.Error("expected ')' to close function call", d.ExpectedRightParen).
		Note("function call started here", d.LeftParen)
}

type ExpectedParenthesesAroundDoWhileCondition struct {
	Condition source.Span
}

func (ExpectedParenthesesAroundDoWhileCondition) isDiag()    {}
func (ExpectedParenthesesAroundDoWhileCondition) Code() Code { return "E084" }
func (d ExpectedParenthesesAroundDoWhileCondition) Message(b *MessageBuilder) {
	b.Error("do-while loop needs parentheses around condition", d.Condition)
}

type ExpectedParenthesisAroundDoWhileCondition struct {
	Where source.Span
	Token byte
}

func (ExpectedParenthesisAroundDoWhileCondition) isDiag()    {}
func (ExpectedParenthesisAroundDoWhileCondition) Code() Code { return "E085" }
func (d ExpectedParenthesisAroundDoWhileCondition) Message(b *MessageBuilder) {
	b.Error("do-while loop is missing '{1}' around condition", d.Where, d.Token)
}

type ExpectedParenthesesAroundIfCondition struct {
	Condition source.Span
}

func (ExpectedParenthesesAroundIfCondition) isDiag()    {}
func (ExpectedParenthesesAroundIfCondition) Code() Code { return "E017" }
func (d ExpectedParenthesesAroundIfCondition) Message(b *MessageBuilder) {
	b.Error("if statement needs parentheses around condition", d.Condition)
}

type ExpectedParenthesisAroundIfCondition struct {
	Where source.Span
	Token byte
}

func (ExpectedParenthesisAroundIfCondition) isDiag()    {}
func (ExpectedParenthesisAroundIfCondition) Code() Code { return "E018" }
func (d ExpectedParenthesisAroundIfCondition) Message(b *MessageBuilder) {
	b.Error("if statement is missing '{1}' around condition", d.Where, d.Token)
}

type ExpectedParenthesesAroundSwitchCondition struct {
	Condition source.Span
}

func (ExpectedParenthesesAroundSwitchCondition) isDiag()    {}
func (ExpectedParenthesesAroundSwitchCondition) Code() Code { return "E091" }
func (d ExpectedParenthesesAroundSwitchCondition) Message(b *MessageBuilder) {
	b.Error("switch statement needs parentheses around condition", d.Condition)
}

type ExpectedParenthesisAroundSwitchCondition struct {
	Where source.Span
	Token byte
}

func (ExpectedParenthesisAroundSwitchCondition) isDiag()    {}
func (ExpectedParenthesisAroundSwitchCondition) Code() Code { return "E092" }
func (d ExpectedParenthesisAroundSwitchCondition) Message(b *MessageBuilder) {
	b.Error("switch statement is missing '{1}' around condition", d.Where, d.Token)
}

type ExpectedParenthesesAroundWhileCondition struct {
	Condition source.Span
}

func (ExpectedParenthesesAroundWhileCondition) isDiag()    {}
func (ExpectedParenthesesAroundWhileCondition) Code() Code { return "E087" }
func (d ExpectedParenthesesAroundWhileCondition) Message(b *MessageBuilder) {
	b.Error("while loop needs parentheses around condition", d.Condition)
}

type ExpectedParenthesisAroundWhileCondition struct {
	Where source.Span
	Token byte
}

func (ExpectedParenthesisAroundWhileCondition) isDiag()    {}
func (ExpectedParenthesisAroundWhileCondition) Code() Code { return "E088" }
func (d ExpectedParenthesisAroundWhileCondition) Message(b *MessageBuilder) {
	b.Error("while loop is missing '{1}' around condition", d.Where, d.Token)
}

type ExpectedParenthesesAroundWithExpression struct {
	Expression source.Span
}

func (ExpectedParenthesesAroundWithExpression) isDiag()    {}
func (ExpectedParenthesesAroundWithExpression) Code() Code { return "E089" }
func (d ExpectedParenthesesAroundWithExpression) Message(b *MessageBuilder) {
	b.Error("with statement needs parentheses around expression", d.Expression)
}

type ExpectedParenthesisAroundWithExpression struct {
	Where source.Span
	Token byte
}

func (ExpectedParenthesisAroundWithExpression) isDiag()    {}
func (ExpectedParenthesisAroundWithExpression) Code() Code { return "E090" }
func (d ExpectedParenthesisAroundWithExpression) Message(b *MessageBuilder) {
	b.Error("with statement is missing '{1}' around expression", d.Where, d.Token)
}

type ExpectedVariableNameForCatch struct {
	UnexpectedToken source.Span
}

func (ExpectedVariableNameForCatch) isDiag()    {}
func (ExpectedVariableNameForCatch) Code() Code { return "E135" }
func (d ExpectedVariableNameForCatch) Message(b *MessageBuilder) {
	b.Error("expected variable name for 'catch'", d.UnexpectedToken)
}

type ExportingRequiresDefault struct {
	Expression source.Span
}

func (ExportingRequiresDefault) isDiag()    {}
func (ExportingRequiresDefault) Code() Code { return "E067" }
func (d ExportingRequiresDefault) Message(b *MessageBuilder) {
	b.Error("exporting requires 'default'", d.Expression)
}

type ExportingRequiresCurlies struct {
	Names source.Span
}

func (ExportingRequiresCurlies) isDiag()    {}
func (ExportingRequiresCurlies) Code() Code { return "E066" }
func (d ExportingRequiresCurlies) Message(b *MessageBuilder) {
	b.Error("exporting requires '{{' and '}'", d.Names)
}

type ExportingStringNameOnlyAllowedForExportFrom struct {
	ExportName source.Span
}

func (ExportingStringNameOnlyAllowedForExportFrom) isDiag()    {}
func (ExportingStringNameOnlyAllowedForExportFrom) Code() Code { return "E153" }
func (d ExportingStringNameOnlyAllowedForExportFrom) Message(b *MessageBuilder) {
	b.Error("forwarding exports are only allowed in export-from", d.ExportName)
}

type FinallyWithoutTry struct {
	FinallyToken source.Span
}

func (FinallyWithoutTry) isDiag()    {}
func (FinallyWithoutTry) Code() Code { return "E118" }
func (d FinallyWithoutTry) Message(b *MessageBuilder) {
	b.Error("unexpected 'finally' without 'try'", d.FinallyToken)
}

type FunctionStatementNotAllowedInBody struct {
	KindOfStatement  StatementKind
	ExpectedBody     source.Span
	FunctionKeywords source.Span
}

func (FunctionStatementNotAllowedInBody) isDiag()    {}
func (FunctionStatementNotAllowedInBody) Code() Code { return "E148" }
func (d FunctionStatementNotAllowedInBody) Message(b *MessageBuilder) {
	b.Error("missing body for {1:headlinese}", d.ExpectedBody, d.KindOfStatement).
		Note("a function statement is not allowed as the body of {1:singular}", d.FunctionKeywords, d.KindOfStatement)
}

type GeneratorFunctionStarBelongsBeforeName struct {
	Star source.Span
}

func (GeneratorFunctionStarBelongsBeforeName) isDiag()    {}
func (GeneratorFunctionStarBelongsBeforeName) Code() Code { return "E133" }
func (d GeneratorFunctionStarBelongsBeforeName) Message(b *MessageBuilder) {
	b.Error("generator function '*' belongs before function name", d.Star)
}

type InDisallowedInCStyleForLoop struct {
	InToken source.Span
}

func (InDisallowedInCStyleForLoop) isDiag()    {}
func (InDisallowedInCStyleForLoop) Code() Code { return "E108" }
func (d InDisallowedInCStyleForLoop) Message(b *MessageBuilder) {
	b.Error("'in' disallowed in C-style for loop initializer", d.InToken)
}

type IndexingRequiresExpression struct {
	Squares source.Span
}

func (IndexingRequiresExpression) isDiag()    {}
func (IndexingRequiresExpression) Code() Code { return "E075" }
func (d IndexingRequiresExpression) Message(b *MessageBuilder) {
	b.Error("indexing requires an expression", d.Squares)
}

type InvalidBindingInLetStatement struct {
	Where source.Span
}

func (InvalidBindingInLetStatement) isDiag()    {}
func (InvalidBindingInLetStatement) Code() Code { return "E019" }
func (d InvalidBindingInLetStatement) Message(b *MessageBuilder) {
	b.Error("invalid binding in let statement", d.Where)
}

type InvalidExpressionLeftOfAssignment struct {
	Where source.Span
}

func (InvalidExpressionLeftOfAssignment) isDiag()    {}
func (InvalidExpressionLeftOfAssignment) Code() Code { return "E020" }
func (d InvalidExpressionLeftOfAssignment) Message(b *MessageBuilder) {
	b.Error("invalid expression left of assignment", d.Where)
}

type InvalidHexEscapeSequence struct {
	EscapeSequence source.Span
}

func (InvalidHexEscapeSequence) isDiag()    {}
func (InvalidHexEscapeSequence) Code() Code { return "E060" }
func (d InvalidHexEscapeSequence) Message(b *MessageBuilder) {
	b.Error("invalid hex escape sequence: {0}", d.EscapeSequence)
}

type InvalidLoneLiteralInObjectLiteral struct {
	Where source.Span
}

func (InvalidLoneLiteralInObjectLiteral) isDiag()    {}
func (InvalidLoneLiteralInObjectLiteral) Code() Code { return "E021" }
func (d InvalidLoneLiteralInObjectLiteral) Message(b *MessageBuilder) {
	b.Error("invalid lone literal in object literal", d.Where)
}

type InvalidRHSForDotOperator struct {
	Dot source.Span
}

func (InvalidRHSForDotOperator) isDiag()    {}
func (InvalidRHSForDotOperator) Code() Code { return "E074" }
func (d InvalidRHSForDotOperator) Message(b *MessageBuilder) {
	b.Error("'.' operator needs a key name; use + to concatenate strings; use [] to access with a dynamic key", d.Dot)
}

type InvalidUTF8Sequence struct {
	Sequence source.Span
}

func (InvalidUTF8Sequence) isDiag()    {}
func (InvalidUTF8Sequence) Code() Code { return "E022" }
func (d InvalidUTF8Sequence) Message(b *MessageBuilder) {
	b.Error("invalid UTF-8 sequence", d.Sequence)
}

type KeywordsCannotContainEscapeSequences struct {
	EscapeSequence source.Span
}

func (KeywordsCannotContainEscapeSequences) isDiag()    {}
func (KeywordsCannotContainEscapeSequences) Code() Code { return "E023" }
func (d KeywordsCannotContainEscapeSequences) Message(b *MessageBuilder) {
	b.Error("keywords cannot contain escape sequences", d.EscapeSequence)
}

type LegacyOctalLiteralMayNotBeBigInt struct {
	Characters source.Span
}

func (LegacyOctalLiteralMayNotBeBigInt) isDiag()    {}
func (LegacyOctalLiteralMayNotBeBigInt) Code() Code { return "E032" }
func (d LegacyOctalLiteralMayNotBeBigInt) Message(b *MessageBuilder) {
	b.Error("legacy octal literal may not be BigInt", d.Characters)
}

type LegacyOctalLiteralMayNotContainUnderscores struct {
	Underscores source.Span
}

func (LegacyOctalLiteralMayNotContainUnderscores) isDiag()    {}
func (LegacyOctalLiteralMayNotContainUnderscores) Code() Code { return "E152" }
func (d LegacyOctalLiteralMayNotContainUnderscores) Message(b *MessageBuilder) {
	b.Error("legacy octal literals may not contain underscores", d.Underscores)
}

type LetWithNoBindings struct {
	Where source.Span
}

func (LetWithNoBindings) isDiag()    {}
func (LetWithNoBindings) Code() Code { return "E024" }
func (d LetWithNoBindings) Message(b *MessageBuilder) {
	b.Error("let with no bindings", d.Where)
}

type LexicalDeclarationNotAllowedInBody struct {
	KindOfStatement  StatementKind
	ExpectedBody     source.Span
	DeclaringKeyword source.Span
}

func (LexicalDeclarationNotAllowedInBody) isDiag()    {}
func (LexicalDeclarationNotAllowedInBody) Code() Code { return "E150" }
func (d LexicalDeclarationNotAllowedInBody) Message(b *MessageBuilder) {
	b.Error("missing body for {1:headlinese}", d.ExpectedBody, d.KindOfStatement).
		Note("a lexical declaration is not allowed as the body of {1:singular}", d.DeclaringKeyword, d.KindOfStatement)
}

type MethodsShouldNotUseFunctionKeyword struct {
	FunctionToken source.Span
}

func (MethodsShouldNotUseFunctionKeyword) isDiag()    {}
func (MethodsShouldNotUseFunctionKeyword) Code() Code { return "E072" }
func (d MethodsShouldNotUseFunctionKeyword) Message(b *MessageBuilder) {
	b.Error("methods should not use the 'function' keyword", d.FunctionToken)
}

type MissingArrayClose struct {
	LeftSquare          source.Span
	ExpectedRightSquare source.Span
}

func (MissingArrayClose) isDiag()    {}
func (MissingArrayClose) Code() Code { return "E157" }
func (d MissingArrayClose) Message(b *MessageBuilder) {
	b.Error("missing end of array; expected ']'", d.ExpectedRightSquare).
		Note("array started here", d.LeftSquare)
}

type MissingArrowFunctionParameterList struct {
	Arrow source.Span
}

func (MissingArrowFunctionParameterList) isDiag()    {}
func (MissingArrowFunctionParameterList) Code() Code { return "E105" }
func (d MissingArrowFunctionParameterList) Message(b *MessageBuilder) {
	b.Error("missing parameters for arrow function", d.Arrow)
}

type MissingBodyForCatchClause struct {
	CatchToken source.Span
}

func (MissingBodyForCatchClause) isDiag()    {}
func (MissingBodyForCatchClause) Code() Code { return "E119" }
func (d MissingBodyForCatchClause) Message(b *MessageBuilder) {
	b.Error("missing body for catch clause", d.CatchToken)
}

type MissingBodyForClass struct {
	ClassKeywordAndNameAndHeritage source.Span
}

func (MissingBodyForClass) isDiag()    {}
func (MissingBodyForClass) Code() Code { return "E111" }
func (d MissingBodyForClass) Message(b *MessageBuilder) {
	b.Error("missing body for class", d.ClassKeywordAndNameAndHeritage)
}

type MissingBodyForDoWhileStatement struct {
	DoToken source.Span
}

func (MissingBodyForDoWhileStatement) isDiag()    {}
func (MissingBodyForDoWhileStatement) Code() Code { return "E101" }
func (d MissingBodyForDoWhileStatement) Message(b *MessageBuilder) {
	b.Error("missing body for do-while loop", d.DoToken)
}

type MissingBodyForFinallyClause struct {
	FinallyToken source.Span
}

func (MissingBodyForFinallyClause) isDiag()    {}
func (MissingBodyForFinallyClause) Code() Code { return "E121" }
func (d MissingBodyForFinallyClause) Message(b *MessageBuilder) {
	b.Error("missing body for finally clause", d.FinallyToken)
}

type MissingBodyForForStatement struct {
	ForAndHeader source.Span
}

func (MissingBodyForForStatement) isDiag()    {}
func (MissingBodyForForStatement) Code() Code { return "E094" }
func (d MissingBodyForForStatement) Message(b *MessageBuilder) {
	b.Error("missing body for 'for' loop", d.ForAndHeader)
}

type MissingBodyForIfStatement struct {
	IfAndCondition source.Span
}

func (MissingBodyForIfStatement) isDiag()    {}
func (MissingBodyForIfStatement) Code() Code { return "E064" }
func (d MissingBodyForIfStatement) Message(b *MessageBuilder) {
	b.Error("missing body for 'if' statement", d.IfAndCondition)
}

type MissingBodyForSwitchStatement struct {
	SwitchAndCondition source.Span
}

func (MissingBodyForSwitchStatement) isDiag()    {}
func (MissingBodyForSwitchStatement) Code() Code { return "E106" }
func (d MissingBodyForSwitchStatement) Message(b *MessageBuilder) {
	b.Error("missing body for 'switch' statement", d.SwitchAndCondition)
}

type MissingBodyForTryStatement struct {
	TryToken source.Span
}

func (MissingBodyForTryStatement) isDiag()    {}
func (MissingBodyForTryStatement) Code() Code { return "E120" }
func (d MissingBodyForTryStatement) Message(b *MessageBuilder) {
	b.Error("missing body for try statement", d.TryToken)
}

type MissingBodyForWhileStatement struct {
	WhileAndCondition source.Span
}

func (MissingBodyForWhileStatement) isDiag()    {}
func (MissingBodyForWhileStatement) Code() Code { return "E104" }
func (d MissingBodyForWhileStatement) Message(b *MessageBuilder) {
	b.Error("missing body for while loop", d.WhileAndCondition)
}

type MissingCatchOrFinallyForTryStatement struct {
	ExpectedCatchOrFinally source.Span
	TryToken               source.Span
}

func (MissingCatchOrFinallyForTryStatement) isDiag()    {}
func (MissingCatchOrFinallyForTryStatement) Code() Code { return "E122" }
func (d MissingCatchOrFinallyForTryStatement) Message(b *MessageBuilder) {
	b.Error("missing catch or finally clause for try statement", d.ExpectedCatchOrFinally).
		Note("try statement starts here", d.TryToken)
}

type MissingCatchVariableBetweenParentheses struct {
	LeftParen  source.Span
	RightParen source.Span
}

func (MissingCatchVariableBetweenParentheses) isDiag()    {}
func (MissingCatchVariableBetweenParentheses) Code() Code { return "E130" }
func (d MissingCatchVariableBetweenParentheses) Message(b *MessageBuilder) {
	b.Error("missing catch variable name between parentheses", d.LeftParen.To(d.RightParen))
}

type MissingCommaBetweenObjectLiteralEntries struct {
	Where source.Span
}

func (MissingCommaBetweenObjectLiteralEntries) isDiag()    {}
func (MissingCommaBetweenObjectLiteralEntries) Code() Code { return "E025" }
func (d MissingCommaBetweenObjectLiteralEntries) Message(b *MessageBuilder) {
	b.Error("missing comma between object literal entries", d.Where)
}

type MissingCommaBetweenVariableDeclarations struct {
	ExpectedComma source.Span
}

func (MissingCommaBetweenVariableDeclarations) isDiag()    {}
func (MissingCommaBetweenVariableDeclarations) Code() Code { return "E132" }
func (d MissingCommaBetweenVariableDeclarations) Message(b *MessageBuilder) {
	b.Error("missing ',' between variable declarations", d.ExpectedComma)
}

type MissingColonInConditionalExpression struct {
	ExpectedColon source.Span
	Question      source.Span
}

func (MissingColonInConditionalExpression) isDiag()    {}
func (MissingColonInConditionalExpression) Code() Code { return "E146" }
func (d MissingColonInConditionalExpression) Message(b *MessageBuilder) {
	b.Error("missing ':' in conditional expression", d.ExpectedColon).
		Note("'?' creates a conditional expression", d.Question)
}

type MissingConditionForIfStatement struct {
	IfKeyword source.Span
}

func (MissingConditionForIfStatement) isDiag()    {}
func (MissingConditionForIfStatement) Code() Code { return "E138" }
func (d MissingConditionForIfStatement) Message(b *MessageBuilder) {
	b.Error("missing condition for if statement", d.IfKeyword)
}

type MissingConditionForWhileStatement struct {
	WhileKeyword source.Span
}

func (MissingConditionForWhileStatement) isDiag()    {}
func (MissingConditionForWhileStatement) Code() Code { return "E139" }
func (d MissingConditionForWhileStatement) Message(b *MessageBuilder) {
	b.Error("missing condition for while statement", d.WhileKeyword)
}

type MissingConditionForSwitchStatement struct {
	SwitchKeyword source.Span
}

func (MissingConditionForSwitchStatement) isDiag()    {}
func (MissingConditionForSwitchStatement) Code() Code { return "E137" }
func (d MissingConditionForSwitchStatement) Message(b *MessageBuilder) {
	b.Error("missing condition for switch statement", d.SwitchKeyword)
}

type MissingExpressionBetweenParentheses struct {
	LeftParen  source.Span
	RightParen source.Span
}

func (MissingExpressionBetweenParentheses) isDiag()    {}
func (MissingExpressionBetweenParentheses) Code() Code { return "E078" }
func (d MissingExpressionBetweenParentheses) Message(b *MessageBuilder) {
	b.Error("missing expression between parentheses", d.LeftParen.To(d.RightParen))
}

type MissingForLoopHeader struct {
	ForToken source.Span
}

func (MissingForLoopHeader) isDiag()    {}
func (MissingForLoopHeader) Code() Code { return "E125" }
func (d MissingForLoopHeader) Message(b *MessageBuilder) {
	b.Error("missing header and body for 'for' loop", d.ForToken)
}

type MissingForLoopRHSOrComponentsAfterExpression struct {
	Header   source.Span
	ForToken source.Span
}

func (MissingForLoopRHSOrComponentsAfterExpression) isDiag()    {}
func (MissingForLoopRHSOrComponentsAfterExpression) Code() Code { return "E097" }
func (d MissingForLoopRHSOrComponentsAfterExpression) Message(b *MessageBuilder) {
	b.Error("for loop needs an iterable, or condition and update clauses", d.Header).
		Note("use 'while' instead to loop until a condition is false", d.ForToken)
}

type MissingForLoopRHSOrComponentsAfterDeclaration struct {
	Header source.Span
}

func (MissingForLoopRHSOrComponentsAfterDeclaration) isDiag()    {}
func (MissingForLoopRHSOrComponentsAfterDeclaration) Code() Code { return "E098" }
func (d MissingForLoopRHSOrComponentsAfterDeclaration) Message(b *MessageBuilder) {
	b.Error("for loop needs an iterable, or condition and update clauses", d.Header)
}

type MissingFunctionParameterList struct {
	FunctionName source.Span
}

func (MissingFunctionParameterList) isDiag()    {}
func (MissingFunctionParameterList) Code() Code { return "E073" }
func (d MissingFunctionParameterList) Message(b *MessageBuilder) {
	b.Error("missing function parameter list", d.FunctionName)
}

type MissingHeaderOfForLoop struct {
	Where source.Span
}

func (MissingHeaderOfForLoop) isDiag()    {}
func (MissingHeaderOfForLoop) Code() Code { return "E096" }
func (d MissingHeaderOfForLoop) Message(b *MessageBuilder) {
	b.Error("missing for loop header", d.Where)
}

type MissingKeyForObjectEntry struct {
	Expression source.Span
}

func (MissingKeyForObjectEntry) isDiag()    {}
func (MissingKeyForObjectEntry) Code() Code { return "E154" }
func (d MissingKeyForObjectEntry) Message(b *MessageBuilder) {
	b.Error("unexpected expression; missing key for object entry", d.Expression)
}

type MissingNameInFunctionStatement struct {
	Where source.Span
}

func (MissingNameInFunctionStatement) isDiag()    {}
func (MissingNameInFunctionStatement) Code() Code { return "E061" }
func (d MissingNameInFunctionStatement) Message(b *MessageBuilder) {
	b.Error("missing name in function statement", d.Where)
}

type MissingNameInClassStatement struct {
	ClassKeyword source.Span
}

func (MissingNameInClassStatement) isDiag()    {}
func (MissingNameInClassStatement) Code() Code { return "E080" }
func (d MissingNameInClassStatement) Message(b *MessageBuilder) {
	b.Error("missing name of class", d.ClassKeyword)
}

type MissingNameOfExportedClass struct {
	ClassKeyword source.Span
}

func (MissingNameOfExportedClass) isDiag()    {}
func (MissingNameOfExportedClass) Code() Code { return "E081" }
func (d MissingNameOfExportedClass) Message(b *MessageBuilder) {
	b.Error("missing name of exported class", d.ClassKeyword)
}

type MissingNameOfExportedFunction struct {
	FunctionKeyword source.Span
}

func (MissingNameOfExportedFunction) isDiag()    {}
func (MissingNameOfExportedFunction) Code() Code { return "E079" }
func (d MissingNameOfExportedFunction) Message(b *MessageBuilder) {
	b.Error("missing name of exported function", d.FunctionKeyword)
}

type MissingNameOrParenthesesForFunction struct {
	Where source.Span
}

func (MissingNameOrParenthesesForFunction) isDiag()    {}
func (MissingNameOrParenthesesForFunction) Code() Code { return "E062" }
func (d MissingNameOrParenthesesForFunction) Message(b *MessageBuilder) {
	b.Error("missing name or parentheses for function", d.Where)
}

type MissingOperandForOperator struct {
	Where source.Span
}

func (MissingOperandForOperator) isDiag()    {}
func (MissingOperandForOperator) Code() Code { return "E026" }
func (d MissingOperandForOperator) Message(b *MessageBuilder) {
	b.Error("missing operand for operator", d.Where)
}

type MissingOperatorBetweenExpressionAndArrowFunction struct {
	Where source.Span
}

func (MissingOperatorBetweenExpressionAndArrowFunction) isDiag()    {}
func (MissingOperatorBetweenExpressionAndArrowFunction) Code() Code { return "E063" }
func (d MissingOperatorBetweenExpressionAndArrowFunction) Message(b *MessageBuilder) {
	b.Error("missing operator between expression and arrow function", d.Where)
}

type MissingPropertyNameForDotOperator struct {
	Dot source.Span
}

func (MissingPropertyNameForDotOperator) isDiag()    {}
func (MissingPropertyNameForDotOperator) Code() Code { return "E142" }
func (d MissingPropertyNameForDotOperator) Message(b *MessageBuilder) {
	b.Error("missing property name after '.' operator", d.Dot)
}

type MissingSemicolonAfterStatement struct {
	Where source.Span
}

func (MissingSemicolonAfterStatement) isDiag()    {}
func (MissingSemicolonAfterStatement) Code() Code { return "E027" }
func (d MissingSemicolonAfterStatement) Message(b *MessageBuilder) {
	b.Error("missing semicolon after statement", d.Where)
}

type MissingSemicolonBetweenForLoopConditionAndUpdate struct {
	ExpectedSemicolon source.Span
}

func (MissingSemicolonBetweenForLoopConditionAndUpdate) isDiag()    {}
func (MissingSemicolonBetweenForLoopConditionAndUpdate) Code() Code { return "E100" }
func (d MissingSemicolonBetweenForLoopConditionAndUpdate) Message(b *MessageBuilder) {
	b.Error("missing semicolon between condition and update parts of for loop", d.ExpectedSemicolon)
}

type MissingSemicolonBetweenForLoopInitAndCondition struct {
	ExpectedSemicolon source.Span
}

func (MissingSemicolonBetweenForLoopInitAndCondition) isDiag()    {}
func (MissingSemicolonBetweenForLoopInitAndCondition) Code() Code { return "E099" }
func (d MissingSemicolonBetweenForLoopInitAndCondition) Message(b *MessageBuilder) {
	b.Error("missing semicolon between init and condition parts of for loop", d.ExpectedSemicolon)
}

type MissingTokenAfterExport struct {
	ExportToken source.Span
}

func (MissingTokenAfterExport) isDiag()    {}
func (MissingTokenAfterExport) Code() Code { return "E113" }
func (d MissingTokenAfterExport) Message(b *MessageBuilder) {
	b.Error("incomplete export; expected 'export default ...' or 'export {{name}' or 'export * from ...' or 'export class' or 'export function' or 'export let'", d.ExportToken)
}

type MissingValueForObjectLiteralEntry struct {
	Key source.Span
}

func (MissingValueForObjectLiteralEntry) isDiag()    {}
func (MissingValueForObjectLiteralEntry) Code() Code { return "E083" }
func (d MissingValueForObjectLiteralEntry) Message(b *MessageBuilder) {
	b.Error("missing value for object property", d.Key)
}

type MissingVariableNameInDeclaration struct {
	EqualToken source.Span
}

func (MissingVariableNameInDeclaration) isDiag()    {}
func (MissingVariableNameInDeclaration) Code() Code { return "E123" }
func (d MissingVariableNameInDeclaration) Message(b *MessageBuilder) {
	b.Error("missing variable name", d.EqualToken)
}

type MissingWhileAndConditionForDoWhileStatement struct {
	DoToken       source.Span
	ExpectedWhile source.Span
}

func (MissingWhileAndConditionForDoWhileStatement) isDiag()    {}
func (MissingWhileAndConditionForDoWhileStatement) Code() Code { return "E103" }
func (d MissingWhileAndConditionForDoWhileStatement) Message(b *MessageBuilder) {
	b.Error("missing 'while (condition)' for do-while statement", d.ExpectedWhile).
		Note("do-while statement starts here", d.DoToken)
}

type NumberLiteralContainsConsecutiveUnderscores struct {
	Underscores source.Span
}

func (NumberLiteralContainsConsecutiveUnderscores) isDiag()    {}
func (NumberLiteralContainsConsecutiveUnderscores) Code() Code { return "E028" }
func (d NumberLiteralContainsConsecutiveUnderscores) Message(b *MessageBuilder) {
	b.Error("number literal contains consecutive underscores", d.Underscores)
}

type NumberLiteralContainsTrailingUnderscores struct {
	Underscores source.Span
}

func (NumberLiteralContainsTrailingUnderscores) isDiag()    {}
func (NumberLiteralContainsTrailingUnderscores) Code() Code { return "E029" }
func (d NumberLiteralContainsTrailingUnderscores) Message(b *MessageBuilder) {
	b.Error("number literal contains trailing underscore(s)", d.Underscores)
}

type OctalLiteralMayNotHaveExponent struct {
	Characters source.Span
}

func (OctalLiteralMayNotHaveExponent) isDiag()    {}
func (OctalLiteralMayNotHaveExponent) Code() Code { return "E030" }
func (d OctalLiteralMayNotHaveExponent) Message(b *MessageBuilder) {
	b.Error("octal literal may not have exponent", d.Characters)
}

type OctalLiteralMayNotHaveDecimal struct {
	Characters source.Span
}

func (OctalLiteralMayNotHaveDecimal) isDiag()    {}
func (OctalLiteralMayNotHaveDecimal) Code() Code { return "E031" }
func (d OctalLiteralMayNotHaveDecimal) Message(b *MessageBuilder) {
	b.Error("octal literal may not have decimal", d.Characters)
}

type PrivatePropertiesAreNotAllowedInObjectLiterals struct {
	PrivateIdentifier source.Ident
}

func (PrivatePropertiesAreNotAllowedInObjectLiterals) isDiag()    {}
func (PrivatePropertiesAreNotAllowedInObjectLiterals) Code() Code { return "E156" }
func (d PrivatePropertiesAreNotAllowedInObjectLiterals) Message(b *MessageBuilder) {
	b.Error("private properties are not allowed in object literals", d.PrivateIdentifier)
}

type RedeclarationOfGlobalVariable struct {
	Redeclaration source.Ident
}

func (RedeclarationOfGlobalVariable) isDiag()    {}
func (RedeclarationOfGlobalVariable) Code() Code { return "E033" }
func (d RedeclarationOfGlobalVariable) Message(b *MessageBuilder) {
	b.Error("redeclaration of global variable", d.Redeclaration)
}

type RedeclarationOfVariable struct {
	Redeclaration       source.Ident
	OriginalDeclaration source.Ident
}

func (RedeclarationOfVariable) isDiag()    {}
func (RedeclarationOfVariable) Code() Code { return "E034" }
func (d RedeclarationOfVariable) Message(b *MessageBuilder) {
	b.Error("redeclaration of variable: {0}", d.Redeclaration).
		Note("variable already declared here", d.OriginalDeclaration)
}

type RegexpLiteralFlagsCannotContainUnicodeEscapes struct {
	EscapeSequence source.Span
}

func (RegexpLiteralFlagsCannotContainUnicodeEscapes) isDiag()    {}
func (RegexpLiteralFlagsCannotContainUnicodeEscapes) Code() Code { return "E035" }
func (d RegexpLiteralFlagsCannotContainUnicodeEscapes) Message(b *MessageBuilder) {
	b.Error("RegExp literal cannot contain Unicode escapes", d.EscapeSequence)
}

type StrayCommaInLetStatement struct {
	Where source.Span
}

func (StrayCommaInLetStatement) isDiag()    {}
func (StrayCommaInLetStatement) Code() Code { return "E036" }
func (d StrayCommaInLetStatement) Message(b *MessageBuilder) {
	b.Error("stray comma in let statement", d.Where)
}

type TypescriptEnumNotImplemented struct {
	EnumKeyword source.Span
}

func (TypescriptEnumNotImplemented) isDiag()    {}
func (TypescriptEnumNotImplemented) Code() Code { return "E127" }
func (d TypescriptEnumNotImplemented) Message(b *MessageBuilder) {
	b.Error("TypeScript's 'enum' feature is not yet implemented", d.EnumKeyword)
}

type UnclosedBlockComment struct {
	CommentOpen source.Span
}

func (UnclosedBlockComment) isDiag()    {}
func (UnclosedBlockComment) Code() Code { return "E037" }
func (d UnclosedBlockComment) Message(b *MessageBuilder) {
	b.Error("unclosed block comment", d.CommentOpen)
}

type UnclosedCodeBlock struct {
	BlockOpen source.Span
}

func (UnclosedCodeBlock) isDiag()    {}
func (UnclosedCodeBlock) Code() Code { return "E134" }
func (d UnclosedCodeBlock) Message(b *MessageBuilder) {
	b.Error("unclosed code block; expected '}' by end of file", d.BlockOpen)
}

type UnclosedIdentifierEscapeSequence struct {
	EscapeSequence source.Span
}

func (UnclosedIdentifierEscapeSequence) isDiag()    {}
func (UnclosedIdentifierEscapeSequence) Code() Code { return "E038" }
func (d UnclosedIdentifierEscapeSequence) Message(b *MessageBuilder) {
	b.Error("unclosed identifier escape sequence", d.EscapeSequence)
}

type UnclosedObjectLiteral struct {
	ObjectOpen          source.Span
	ExpectedObjectClose source.Span
}

func (UnclosedObjectLiteral) isDiag()    {}
func (UnclosedObjectLiteral) Code() Code { return "E161" }
func (d UnclosedObjectLiteral) Message(b *MessageBuilder) {
	b.Error("unclosed object literal; expected '}'", d.ExpectedObjectClose).
		Note("object literal started here", d.ObjectOpen)
}

type UnclosedRegexpLiteral struct {
	RegexpLiteral source.Span
}

func (UnclosedRegexpLiteral) isDiag()    {}
func (UnclosedRegexpLiteral) Code() Code { return "E039" }
func (d UnclosedRegexpLiteral) Message(b *MessageBuilder) {
	b.Error("unclosed regexp literal", d.RegexpLiteral)
}

type UnclosedStringLiteral struct {
	StringLiteral source.Span
}

func (UnclosedStringLiteral) isDiag()    {}
func (UnclosedStringLiteral) Code() Code { return "E040" }
func (d UnclosedStringLiteral) Message(b *MessageBuilder) {
	b.Error("unclosed string literal", d.StringLiteral)
}

type UnclosedTemplate struct {
	IncompleteTemplate source.Span
}

func (UnclosedTemplate) isDiag()    {}
func (UnclosedTemplate) Code() Code { return "E041" }
func (d UnclosedTemplate) Message(b *MessageBuilder) {
	b.Error("unclosed template", d.IncompleteTemplate)
}

type UnexpectedAtCharacter struct {
	Character source.Span
}

func (UnexpectedAtCharacter) isDiag()    {}
func (UnexpectedAtCharacter) Code() Code { return "E042" }
func (d UnexpectedAtCharacter) Message(b *MessageBuilder) {
	b.Error("unexpected '@'", d.Character)
}

type UnexpectedArrowAfterExpression struct {
	Arrow      source.Span
	Expression source.Span
}

func (UnexpectedArrowAfterExpression) isDiag()    {}
func (UnexpectedArrowAfterExpression) Code() Code { return "E160" }
func (d UnexpectedArrowAfterExpression) Message(b *MessageBuilder) {
	b.Error("unexpected '{0}'", d.Arrow).
		Note("expected parameter for arrow function, but got an expression instead", d.Expression)
}

type UnexpectedArrowAfterLiteral struct {
	Arrow            source.Span
	LiteralParameter source.Span
}

func (UnexpectedArrowAfterLiteral) isDiag()    {}
func (UnexpectedArrowAfterLiteral) Code() Code { return "E158" }
func (d UnexpectedArrowAfterLiteral) Message(b *MessageBuilder) {
	b.Error("unexpected '{0}'", d.Arrow).
		Note("expected parameter for arrow function, but got a literal instead", d.LiteralParameter)
}

type UnexpectedBackslashInIdentifier struct {
	Backslash source.Span
}

func (UnexpectedBackslashInIdentifier) isDiag()    {}
func (UnexpectedBackslashInIdentifier) Code() Code { return "E043" }
func (d UnexpectedBackslashInIdentifier) Message(b *MessageBuilder) {
	b.Error("unexpected '\\' in identifier", d.Backslash)
}

type UnexpectedCaseOutsideSwitchStatement struct {
	CaseToken source.Span
}

func (UnexpectedCaseOutsideSwitchStatement) isDiag()    {}
func (UnexpectedCaseOutsideSwitchStatement) Code() Code { return "E115" }
func (d UnexpectedCaseOutsideSwitchStatement) Message(b *MessageBuilder) {
	b.Error("unexpected 'case' outside switch statement", d.CaseToken)
}

type UnexpectedCharactersInNumber struct {
	Characters source.Span
}

func (UnexpectedCharactersInNumber) isDiag()    {}
func (UnexpectedCharactersInNumber) Code() Code { return "E044" }
func (d UnexpectedCharactersInNumber) Message(b *MessageBuilder) {
	b.Error("unexpected characters in number literal", d.Characters)
}

type UnexpectedControlCharacter struct {
	Character source.Span
}

func (UnexpectedControlCharacter) isDiag()    {}
func (UnexpectedControlCharacter) Code() Code { return "E045" }
func (d UnexpectedControlCharacter) Message(b *MessageBuilder) {
	b.Error("unexpected control character", d.Character)
}

type UnexpectedCharactersInBinaryNumber struct {
	Characters source.Span
}

func (UnexpectedCharactersInBinaryNumber) isDiag()    {}
func (UnexpectedCharactersInBinaryNumber) Code() Code { return "E046" }
func (d UnexpectedCharactersInBinaryNumber) Message(b *MessageBuilder) {
	b.Error("unexpected characters in binary literal", d.Characters)
}

type UnexpectedCharactersInOctalNumber struct {
	Characters source.Span
}

func (UnexpectedCharactersInOctalNumber) isDiag()    {}
func (UnexpectedCharactersInOctalNumber) Code() Code { return "E047" }
func (d UnexpectedCharactersInOctalNumber) Message(b *MessageBuilder) {
	b.Error("unexpected characters in octal literal", d.Characters)
}

type UnexpectedCharactersInHexNumber struct {
	Characters source.Span
}

func (UnexpectedCharactersInHexNumber) isDiag()    {}
func (UnexpectedCharactersInHexNumber) Code() Code { return "E048" }
func (d UnexpectedCharactersInHexNumber) Message(b *MessageBuilder) {
	b.Error("unexpected characters in hex literal", d.Characters)
}

type UnexpectedDefaultOutsideSwitchStatement struct {
	DefaultToken source.Span
}

func (UnexpectedDefaultOutsideSwitchStatement) isDiag()    {}
func (UnexpectedDefaultOutsideSwitchStatement) Code() Code { return "E116" }
func (d UnexpectedDefaultOutsideSwitchStatement) Message(b *MessageBuilder) {
	b.Error("unexpected 'default' outside switch statement", d.DefaultToken)
}

type UnexpectedLiteralInParameterList struct {
	Literal source.Span
}

func (UnexpectedLiteralInParameterList) isDiag()    {}
func (UnexpectedLiteralInParameterList) Code() Code { return "E159" }
func (d UnexpectedLiteralInParameterList) Message(b *MessageBuilder) {
	b.Error("unexpected literal in parameter list; expected parameter name", d.Literal)
}

type UnexpectedSemicolonInCStyleForLoop struct {
	Semicolon source.Span
}

func (UnexpectedSemicolonInCStyleForLoop) isDiag()    {}
func (UnexpectedSemicolonInCStyleForLoop) Code() Code { return "E102" }
func (d UnexpectedSemicolonInCStyleForLoop) Message(b *MessageBuilder) {
	b.Error("C-style for loops have only three semicolon-separated components", d.Semicolon)
}

type UnexpectedSemicolonInForInLoop struct {
	Semicolon source.Span
}

func (UnexpectedSemicolonInForInLoop) isDiag()    {}
func (UnexpectedSemicolonInForInLoop) Code() Code { return "E110" }
func (d UnexpectedSemicolonInForInLoop) Message(b *MessageBuilder) {
	b.Error("for-in loop expression cannot have semicolons", d.Semicolon)
}

type UnexpectedSemicolonInForOfLoop struct {
	Semicolon source.Span
}

func (UnexpectedSemicolonInForOfLoop) isDiag()    {}
func (UnexpectedSemicolonInForOfLoop) Code() Code { return "E109" }
func (d UnexpectedSemicolonInForOfLoop) Message(b *MessageBuilder) {
	b.Error("for-of loop expression cannot have semicolons", d.Semicolon)
}

type NoDigitsInBinaryNumber struct {
	Characters source.Span
}

func (NoDigitsInBinaryNumber) isDiag()    {}
func (NoDigitsInBinaryNumber) Code() Code { return "E049" }
func (d NoDigitsInBinaryNumber) Message(b *MessageBuilder) {
	b.Error("binary number literal has no digits", d.Characters)
}

type NoDigitsInHexNumber struct {
	Characters source.Span
}

func (NoDigitsInHexNumber) isDiag()    {}
func (NoDigitsInHexNumber) Code() Code { return "E050" }
func (d NoDigitsInHexNumber) Message(b *MessageBuilder) {
	b.Error("hex number literal has no digits", d.Characters)
}

type NoDigitsInOctalNumber struct {
	Characters source.Span
}

func (NoDigitsInOctalNumber) isDiag()    {}
func (NoDigitsInOctalNumber) Code() Code { return "E051" }
func (d NoDigitsInOctalNumber) Message(b *MessageBuilder) {
	b.Error("octal number literal has no digits", d.Characters)
}

type UnexpectedHashCharacter struct {
	Where source.Span
}

func (UnexpectedHashCharacter) isDiag()    {}
func (UnexpectedHashCharacter) Code() Code { return "E052" }
func (d UnexpectedHashCharacter) Message(b *MessageBuilder) {
	b.Error("unexpected '#'", d.Where)
}

type UnexpectedIdentifier struct {
	Where source.Span
}

func (UnexpectedIdentifier) isDiag()    {}
func (UnexpectedIdentifier) Code() Code { return "E053" }
func (d UnexpectedIdentifier) Message(b *MessageBuilder) {
	b.Error("unexpected identifier", d.Where)
}

type UnexpectedIdentifierInExpression struct {
	Unexpected source.Ident
}

func (UnexpectedIdentifierInExpression) isDiag()    {}
func (UnexpectedIdentifierInExpression) Code() Code { return "E147" }
func (d UnexpectedIdentifierInExpression) Message(b *MessageBuilder) {
	b.Error("unexpected identifier in expression; missing operator before", d.Unexpected)
}

// UnexpectedToken is a catch-all. Prefer a more specific diagnostic
// where one exists.
type UnexpectedToken struct {
	Token source.Span
}

func (UnexpectedToken) isDiag()    {}
func (UnexpectedToken) Code() Code { return "E054" }
func (d UnexpectedToken) Message(b *MessageBuilder) {
	b.Error("unexpected token", d.Token)
}

type UnexpectedTokenAfterExport struct {
	UnexpectedToken source.Span
}

func (UnexpectedTokenAfterExport) isDiag()    {}
func (UnexpectedTokenAfterExport) Code() Code { return "E112" }
func (d UnexpectedTokenAfterExport) Message(b *MessageBuilder) {
	b.Error("unexpected token in export; expected 'export default ...' or 'export {{name}' or 'export * from ...' or 'export class' or 'export function' or 'export let'", d.UnexpectedToken)
}

type UnexpectedTokenInVariableDeclaration struct {
	UnexpectedToken source.Span
}

func (UnexpectedTokenInVariableDeclaration) isDiag()    {}
func (UnexpectedTokenInVariableDeclaration) Code() Code { return "E114" }
func (d UnexpectedTokenInVariableDeclaration) Message(b *MessageBuilder) {
	b.Error("unexpected token in variable declaration; expected variable name", d.UnexpectedToken)
}

type UnmatchedIndexingBracket struct {
	LeftSquare source.Span
}

func (UnmatchedIndexingBracket) isDiag()    {}
func (UnmatchedIndexingBracket) Code() Code { return "E055" }
func (d UnmatchedIndexingBracket) Message(b *MessageBuilder) {
	b.Error("unmatched indexing bracket", d.LeftSquare)
}

type UnmatchedParenthesis struct {
	Where source.Span
}

func (UnmatchedParenthesis) isDiag()    {}
func (UnmatchedParenthesis) Code() Code { return "E056" }
func (d UnmatchedParenthesis) Message(b *MessageBuilder) {
	b.Error("unmatched parenthesis", d.Where)
}

type UnmatchedRightCurly struct {
	RightCurly source.Span
}

func (UnmatchedRightCurly) isDiag()    {}
func (UnmatchedRightCurly) Code() Code { return "E143" }
func (d UnmatchedRightCurly) Message(b *MessageBuilder) {
	b.Error("unmatched '}'", d.RightCurly)
}

type UseOfUndeclaredVariable struct {
	Name source.Ident
}

func (UseOfUndeclaredVariable) isDiag()    {}
func (UseOfUndeclaredVariable) Code() Code { return "E057" }
func (d UseOfUndeclaredVariable) Message(b *MessageBuilder) {
	b.Warning("use of undeclared variable: {0}", d.Name)
}

type VariableUsedBeforeDeclaration struct {
	Use         source.Ident
	Declaration source.Ident
}

func (VariableUsedBeforeDeclaration) isDiag()    {}
func (VariableUsedBeforeDeclaration) Code() Code { return "E058" }
func (d VariableUsedBeforeDeclaration) Message(b *MessageBuilder) {
	b.Error("variable used before declaration: {0}", d.Use).
		Note("variable declared here", d.Declaration)
}

type InvalidBreak struct {
	BreakStatement source.Span
}

func (InvalidBreak) isDiag()    {}
func (InvalidBreak) Code() Code { return "E200" }
func (d InvalidBreak) Message(b *MessageBuilder) {
	b.Error("break can only be used inside of a loop or switch", d.BreakStatement)
}

type InvalidContinue struct {
	ContinueStatement source.Span
}

func (InvalidContinue) isDiag()    {}
func (InvalidContinue) Code() Code { return "E201" }
func (d InvalidContinue) Message(b *MessageBuilder) {
	b.Error("continue can only be used inside of a loop", d.ContinueStatement)
}
