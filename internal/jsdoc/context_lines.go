package jsdoc

import (
	"regexp"
	"strings"
)

const (
	prototypeSegment   = "prototype"
	qualifiedSeparator = "."
	callSuffix         = "()"
	lineCommentPrefix  = "//"
)

const callableInitializer = `(?:async\s+)?(?:function\b|(?:\([^)]*\)|[\w$]+)\s*=>)`

var (
	classStatementExpression     = regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?class\s+([\w$]+)`)
	functionStatementExpression  = regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*([\w$]+)\s*\(`)
	functionExpressionExpression = regexp.MustCompile(`^\s*(?:export\s+)?(?:var|let|const)\s+([\w$]+)\s*=\s*` + callableInitializer)
	prototypeMethodExpression    = regexp.MustCompile(`^\s*([\w$.]+)\.prototype\.([\w$]+)\s*=\s*` + callableInitializer)
	prototypePropertyExpression  = regexp.MustCompile(`^\s*([\w$.]+)\.prototype\.([\w$]+)\s*=\s*([^\n;]+)`)
	methodExpression             = regexp.MustCompile(`^\s*([\w$.]+)\.([\w$]+)\s*=\s*` + callableInitializer)
	propertyExpression           = regexp.MustCompile(`^\s*([\w$.]+)\.([\w$]+)\s*=\s*([^\n;]+)`)
	declarationExpression        = regexp.MustCompile(`^\s*(?:export\s+)?(?:var|let|const)\s+([\w$]+)\s*=?\s*([^\n;]*)`)
)

// contextFromCode classifies the first line of code that follows a comment block.
// It returns nil when no line of code follows or the line is not a recognized declaration.
func contextFromCode(code string) *Context {
	for _, line := range strings.Split(code, "\n") {
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, lineCommentPrefix) {
			continue
		}
		return contextFromLine(trimmedLine)
	}
	return nil
}

func contextFromLine(line string) *Context {
	if match := classStatementExpression.FindStringSubmatch(line); match != nil {
		return &Context{Type: ContextClass, Name: match[1], String: match[1]}
	}
	if match := functionStatementExpression.FindStringSubmatch(line); match != nil {
		return &Context{Type: ContextFunction, Name: match[1], String: match[1] + callSuffix}
	}
	if match := functionExpressionExpression.FindStringSubmatch(line); match != nil {
		return &Context{Type: ContextFunction, Name: match[1], String: match[1] + callSuffix}
	}
	if match := prototypeMethodExpression.FindStringSubmatch(line); match != nil {
		return newPrototypeContext(ContextMethod, match[1], match[2], "")
	}
	if match := prototypePropertyExpression.FindStringSubmatch(line); match != nil {
		return newPrototypeContext(ContextProperty, match[1], match[2], strings.TrimSpace(match[3]))
	}
	if match := methodExpression.FindStringSubmatch(line); match != nil {
		return newReceiverContext(ContextMethod, match[1], match[2], "")
	}
	if match := propertyExpression.FindStringSubmatch(line); match != nil {
		return newReceiverContext(ContextProperty, match[1], match[2], strings.TrimSpace(match[3]))
	}
	if match := declarationExpression.FindStringSubmatch(line); match != nil {
		return &Context{Type: ContextDeclaration, Name: match[1], Value: strings.TrimSpace(match[2]), String: match[1]}
	}
	return nil
}

func newPrototypeContext(contextType string, constructor string, name string, value string) *Context {
	qualifiedName := constructor + qualifiedSeparator + prototypeSegment + qualifiedSeparator + name
	if contextType == ContextMethod {
		qualifiedName += callSuffix
	}
	return &Context{Type: contextType, Name: name, Constructor: constructor, Value: value, String: qualifiedName}
}

func newReceiverContext(contextType string, receiver string, name string, value string) *Context {
	qualifiedName := receiver + qualifiedSeparator + name
	if contextType == ContextMethod {
		qualifiedName += callSuffix
	}
	return &Context{Type: contextType, Name: name, Receiver: receiver, Value: value, String: qualifiedName}
}
