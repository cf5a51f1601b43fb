//go:build cgo

package jsdoc

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	javascript "github.com/smacker/go-tree-sitter/javascript"
)

const (
	commentNodeType             = "comment"
	exportStatementNodeType     = "export_statement"
	functionDeclarationNodeType = "function_declaration"
	generatorDeclarationType    = "generator_function_declaration"
	classDeclarationNodeType    = "class_declaration"
	classNodeType               = "class"
	lexicalDeclarationNodeType  = "lexical_declaration"
	variableDeclarationNodeType = "variable_declaration"
	variableDeclaratorNodeType  = "variable_declarator"
	expressionStatementNodeType = "expression_statement"
	assignmentNodeType          = "assignment_expression"
	memberExpressionNodeType    = "member_expression"
	identifierNodeType          = "identifier"
	methodDefinitionNodeType    = "method_definition"
	fieldDefinitionNodeType     = "field_definition"
	pairNodeType                = "pair"

	nameField        = "name"
	valueField       = "value"
	declarationField = "declaration"
	leftField        = "left"
	rightField       = "right"
	objectField      = "object"
	propertyField    = "property"
	keyField         = "key"

	documentationCommentPrefix = "/**"
	emptyCommentText           = "/**/"
)

var callableNodeTypes = map[string]struct{}{
	"function":            {},
	"function_expression": {},
	"arrow_function":      {},
	"generator_function":  {},
}

// extractBlocks parses source with the tree-sitter JavaScript grammar and pairs every
// documentation comment with the syntax node that immediately follows it.
func extractBlocks(source []byte) ([]rawBlock, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	tree, parseError := parser.ParseCtx(context.Background(), nil, source)
	if parseError != nil {
		return nil, fmt.Errorf("parse javascript: %w", parseError)
	}
	defer tree.Close()

	var blocks []rawBlock
	collectCommentBlocks(tree.RootNode(), source, &blocks)
	return blocks, nil
}

func collectCommentBlocks(node *sitter.Node, source []byte, blocks *[]rawBlock) {
	if node == nil {
		return
	}
	if node.Type() == commentNodeType {
		commentText := node.Content(source)
		if strings.HasPrefix(commentText, documentationCommentPrefix) && commentText != emptyCommentText {
			*blocks = append(*blocks, newTreeBlock(node, commentText, source))
		}
		return
	}
	for childIndex := 0; childIndex < int(node.ChildCount()); childIndex++ {
		collectCommentBlocks(node.Child(childIndex), source, blocks)
	}
}

func newTreeBlock(commentNode *sitter.Node, commentText string, source []byte) rawBlock {
	block := rawBlock{
		text: commentText,
		line: int(commentNode.StartPoint().Row) + 1,
	}
	codeNode := commentNode.NextNamedSibling()
	if codeNode == nil || codeNode.Type() == commentNodeType {
		return block
	}
	block.code = strings.TrimSpace(codeNode.Content(source))
	block.context = classifyNode(codeNode, source)
	if block.context == nil {
		block.context = contextFromCode(block.code)
	}
	return block
}

func classifyNode(node *sitter.Node, source []byte) *Context {
	switch node.Type() {
	case exportStatementNodeType:
		if declarationNode := node.ChildByFieldName(declarationField); declarationNode != nil {
			return classifyNode(declarationNode, source)
		}
		return nil
	case functionDeclarationNodeType, generatorDeclarationType:
		name := fieldText(node, nameField, source)
		return &Context{Type: ContextFunction, Name: name, String: name + callSuffix}
	case classDeclarationNodeType:
		name := fieldText(node, nameField, source)
		return &Context{Type: ContextClass, Name: name, String: name}
	case lexicalDeclarationNodeType, variableDeclarationNodeType:
		return classifyDeclarator(firstNamedChildOfType(node, variableDeclaratorNodeType), source)
	case expressionStatementNodeType:
		expressionNode := node.NamedChild(0)
		if expressionNode != nil && expressionNode.Type() == assignmentNodeType {
			return classifyAssignment(expressionNode, source)
		}
		return nil
	case methodDefinitionNodeType:
		name := fieldText(node, nameField, source)
		constructor := enclosingClassName(node, source)
		if constructor == "" {
			return &Context{Type: ContextMethod, Name: name, String: name + callSuffix}
		}
		return newPrototypeContext(ContextMethod, constructor, name, "")
	case fieldDefinitionNodeType:
		name := fieldText(node, propertyField, source)
		constructor := enclosingClassName(node, source)
		return &Context{Type: ContextProperty, Name: name, Constructor: constructor, Value: fieldText(node, valueField, source), String: name}
	case pairNodeType:
		name := strings.Trim(fieldText(node, keyField, source), `"'`)
		return &Context{Type: ContextProperty, Name: name, Value: fieldText(node, valueField, source), String: name}
	}
	return nil
}

func classifyDeclarator(declaratorNode *sitter.Node, source []byte) *Context {
	if declaratorNode == nil {
		return nil
	}
	name := fieldText(declaratorNode, nameField, source)
	valueNode := declaratorNode.ChildByFieldName(valueField)
	switch {
	case isCallable(valueNode):
		return &Context{Type: ContextFunction, Name: name, String: name + callSuffix}
	case valueNode != nil && valueNode.Type() == classNodeType:
		return &Context{Type: ContextClass, Name: name, String: name}
	}
	value := ""
	if valueNode != nil {
		value = valueNode.Content(source)
	}
	return &Context{Type: ContextDeclaration, Name: name, Value: value, String: name}
}

func classifyAssignment(assignmentNode *sitter.Node, source []byte) *Context {
	leftNode := assignmentNode.ChildByFieldName(leftField)
	rightNode := assignmentNode.ChildByFieldName(rightField)
	if leftNode == nil {
		return nil
	}
	callable := isCallable(rightNode)
	value := ""
	if rightNode != nil && !callable {
		value = rightNode.Content(source)
	}
	switch leftNode.Type() {
	case identifierNodeType:
		name := leftNode.Content(source)
		if callable {
			return &Context{Type: ContextFunction, Name: name, String: name + callSuffix}
		}
		return &Context{Type: ContextDeclaration, Name: name, Value: value, String: name}
	case memberExpressionNodeType:
		objectNode := leftNode.ChildByFieldName(objectField)
		name := fieldText(leftNode, propertyField, source)
		if objectNode == nil {
			return nil
		}
		contextType := ContextProperty
		if callable {
			contextType = ContextMethod
		}
		if objectNode.Type() == memberExpressionNodeType && fieldText(objectNode, propertyField, source) == prototypeSegment {
			return newPrototypeContext(contextType, fieldText(objectNode, objectField, source), name, value)
		}
		return newReceiverContext(contextType, objectNode.Content(source), name, value)
	}
	return nil
}

func isCallable(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	_, callable := callableNodeTypes[node.Type()]
	return callable
}

func fieldText(node *sitter.Node, field string, source []byte) string {
	fieldNode := node.ChildByFieldName(field)
	if fieldNode == nil {
		return ""
	}
	return strings.TrimSpace(fieldNode.Content(source))
}

func firstNamedChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for childIndex := 0; childIndex < int(node.NamedChildCount()); childIndex++ {
		child := node.NamedChild(childIndex)
		if child != nil && child.Type() == nodeType {
			return child
		}
	}
	return nil
}

func enclosingClassName(node *sitter.Node, source []byte) string {
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		if parent.Type() == classDeclarationNodeType || parent.Type() == classNodeType {
			return fieldText(parent, nameField, source)
		}
	}
	return ""
}
