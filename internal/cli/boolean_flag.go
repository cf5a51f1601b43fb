package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	booleanFlagTypeName    = "bool"
	booleanFlagTrueLiteral = "true"
	booleanFlagSeparator   = "--"
	booleanFlagAssignment  = "="
	invalidBooleanFormat   = "invalid boolean value %q for --%s; accepted values: true, false, yes, no, on, off, 1, 0"
)

var booleanFlagLiterals = map[string]bool{
	"true":  true,
	"t":     true,
	"1":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"false": false,
	"f":     false,
	"0":     false,
	"no":    false,
	"n":     false,
	"off":   false,
}

func parseBooleanLiteral(input string) (bool, bool) {
	parsed, known := booleanFlagLiterals[strings.ToLower(strings.TrimSpace(input))]
	return parsed, known
}

// booleanFlagValue is a pflag.Value accepting yes/no style literals in addition to true/false.
type booleanFlagValue struct {
	target *bool
	name   string
}

func (value *booleanFlagValue) Set(input string) error {
	if strings.TrimSpace(input) == "" {
		input = booleanFlagTrueLiteral
	}
	parsed, known := parseBooleanLiteral(input)
	if !known {
		return fmt.Errorf(invalidBooleanFormat, input, value.name)
	}
	*value.target = parsed
	return nil
}

func (value *booleanFlagValue) String() string {
	if value.target == nil {
		return strconv.FormatBool(false)
	}
	return strconv.FormatBool(*value.target)
}

func (value *booleanFlagValue) Type() string {
	return booleanFlagTypeName
}

// registerBooleanFlag adds a boolean flag that may be given bare, with "=value", or followed by a literal.
func registerBooleanFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	*target = defaultValue
	flagSet.Var(&booleanFlagValue{target: target, name: name}, name, usage)
	registered := flagSet.Lookup(name)
	registered.DefValue = strconv.FormatBool(defaultValue)
	registered.NoOptDefVal = booleanFlagTrueLiteral
}

// normalizeBooleanFlagArguments rewrites "--flag literal" into "--flag=literal" for boolean flags
// anywhere in the command tree, so the literal is not taken as a positional path.
func normalizeBooleanFlagArguments(command *cobra.Command, arguments []string) []string {
	booleanFlags := map[string]struct{}{}
	collectBooleanFlagNames(command, booleanFlags)

	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		argument := arguments[index]
		if argument == booleanFlagSeparator {
			return append(normalized, arguments[index:]...)
		}
		flagName, isLongFlag := strings.CutPrefix(argument, booleanFlagSeparator)
		_, isBoolean := booleanFlags[flagName]
		if isLongFlag && isBoolean && !strings.Contains(flagName, booleanFlagAssignment) && index+1 < len(arguments) {
			if _, known := parseBooleanLiteral(arguments[index+1]); known {
				normalized = append(normalized, argument+booleanFlagAssignment+arguments[index+1])
				index++
				continue
			}
		}
		normalized = append(normalized, argument)
	}
	return normalized
}

func collectBooleanFlagNames(command *cobra.Command, names map[string]struct{}) {
	visit := func(flag *pflag.Flag) {
		if flag.Value.Type() == booleanFlagTypeName {
			names[flag.Name] = struct{}{}
		}
	}
	command.PersistentFlags().VisitAll(visit)
	command.Flags().VisitAll(visit)
	for _, child := range command.Commands() {
		collectBooleanFlagNames(child, names)
	}
}
