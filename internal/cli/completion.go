package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsFunc    bool     // true if values come from the function list (dynamic)
	BashGroup string   // flags with same non-empty BashGroup share a bash case entry
}

// flagRegistry is the central list of all CLI flags for completion generation.
// The order fixes the completion output for each shell.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Help: "Show version information"},
	{Short: "f", Help: "Function to evaluate", IsFunc: true, ValueName: "function"},
	{Short: "z", Help: "Evaluation point as re,im", ValueName: "point"},
	{Long: "table", Help: "Tabulate over a logarithmic grid"},
	{Long: "selftest", Help: "Run the built-in reference vector suite"},
	{Long: "bench", Help: "Run the evaluation timing loop"},
	{Long: "repl", Help: "Start an interactive read-eval loop"},
	{Long: "serve", Help: "Start the HTTP evaluation service"},
	{Long: "explore", Help: "Start the complex-plane explorer"},
	{Long: "from", Help: "Grid start as a decade exponent", Values: []string{"-300", "-15", "-5", "0"}, ValueName: "exponent", BashGroup: "exponent"},
	{Long: "to", Help: "Grid end as a decade exponent", Values: []string{"0", "5", "15", "300"}, ValueName: "exponent", BashGroup: "exponent"},
	{Long: "points", Help: "Number of grid points per sign", Values: []string{"21", "61", "121", "201"}, ValueName: "count"},
	{Long: "negative", Help: "Mirror the grid onto the negative axis"},
	{Long: "r6", Help: "Subdivide decades at the Renard R6 points"},
	{Long: "workers", Help: "Sweep worker count", Values: []string{"1", "2", "4", "8", "16"}, ValueName: "count"},
	{Long: "bench-n", Help: "Evaluations per bench run", Values: []string{"1000000", "10000000", "100000000"}, ValueName: "count"},
	{Long: "http", Help: "Listen address for the HTTP service", ValueName: "address"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration"},
	{Long: "output", Help: "Table output file path", IsFile: true, ValueName: "file"},
	{Long: "log-format", Help: "Log output format", Values: []string{"console", "json"}, ValueName: "format"},
	{Short: "v", Help: "Info-level logging"},
	{Long: "vv", Help: "Debug-level logging"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// bashGroupValues defines the completion values used in bash for grouped flags.
// Flags sharing the same BashGroup use these values in the bash case statement.
var bashGroupValues = map[string][]string{
	"exponent": {"-300", "-15", "-5", "0", "5", "15", "300"},
}

// zshHelpOverrides provides shell-specific help text overrides for zsh.
// Some flags have slightly different descriptions in zsh's _arguments format.
var zshHelpOverrides = map[string]string{
	"z":  "Evaluation point re,im",
	"to": "Grid end as decade exponent",
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//   - functions: List of evaluable function names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, functions []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, functions)
	case "zsh":
		return generateZshCompletion(out, functions)
	case "fish":
		return generateFishCompletion(out, functions)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, functions)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// formatFuncList joins function names with space separators.
func formatFuncList(functions []string) string {
	return strings.Join(functions, " ")
}

// flagKey returns the identifier used for lookups: Long name if present, else Short.
func flagKey(f FlagCompletion) string {
	if f.Long != "" {
		return f.Long
	}
	return f.Short
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, functions []string) error {
	// Build opts string from registry
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	// Build case entries from registry.
	// Order: function, completion, file, remaining value flags, groups.
	type caseEntry struct {
		patterns []string
		body     string
	}
	bashCaseEntry := func(f FlagCompletion) caseEntry {
		return caseEntry{
			patterns: []string{"--" + f.Long},
			body:     fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " ")),
		}
	}
	var orderedCases []caseEntry

	// 1. Function flags
	for _, f := range flagRegistry {
		if f.IsFunc {
			orderedCases = append(orderedCases, caseEntry{
				patterns: []string{"-" + f.Short},
				body:     `COMPREPLY=( $(compgen -W "${functions}" -- "${cur}") )`,
			})
		}
	}

	// 2. Completion flag (static values, comes before file entries)
	for _, f := range flagRegistry {
		if f.Long == "completion" && len(f.Values) > 0 {
			orderedCases = append(orderedCases, bashCaseEntry(f))
		}
	}

	// 3. File completion flags
	var filePatterns []string
	for _, f := range flagRegistry {
		if f.IsFile {
			if f.Long != "" {
				filePatterns = append(filePatterns, "--"+f.Long)
			}
			if f.Short != "" {
				filePatterns = append(filePatterns, "-"+f.Short)
			}
		}
	}
	if len(filePatterns) > 0 {
		orderedCases = append(orderedCases, caseEntry{
			patterns: filePatterns,
			body: `# File/directory completion
            COMPREPLY=( $(compgen -f -- "${cur}") )`,
		})
	}

	// 4. Remaining flags with static values (non-func, non-file, non-grouped, non-completion)
	for _, f := range flagRegistry {
		if !f.IsFunc && !f.IsFile && f.BashGroup == "" && f.Long != "completion" && len(f.Values) > 0 {
			orderedCases = append(orderedCases, bashCaseEntry(f))
		}
	}

	// 5. Grouped flags (exponent group)
	seenGroups := map[string]bool{}
	for _, f := range flagRegistry {
		if f.BashGroup != "" && !seenGroups[f.BashGroup] {
			seenGroups[f.BashGroup] = true
			var patterns []string
			for _, gf := range flagRegistry {
				if gf.BashGroup == f.BashGroup {
					patterns = append(patterns, "--"+gf.Long)
				}
			}
			vals := bashGroupValues[f.BashGroup]
			orderedCases = append(orderedCases, caseEntry{
				patterns: patterns,
				body:     fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(vals, " ")),
			})
		}
	}

	// Format case entries
	var caseBody strings.Builder
	for _, c := range orderedCases {
		caseBody.WriteString("        ")
		caseBody.WriteString(strings.Join(c.patterns, "|"))
		caseBody.WriteString(")\n")
		caseBody.WriteString("            ")
		caseBody.WriteString(c.body)
		caseBody.WriteString("\n            return 0\n            ;;\n")
	}

	funcList := formatFuncList(functions)

	script := fmt.Sprintf(`# Bash completion script for cerf
# Add this to your ~/.bashrc or ~/.bash_completion

_cerf_completions() {
    local cur prev opts functions
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    # Evaluable functions
    functions="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _cerf_completions cerf
`, strings.Join(opts, " "), funcList, caseBody.String())

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, functions []string) error {
	// Build _arguments entries from registry
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	funcList := formatFuncList(functions)

	script := fmt.Sprintf(`#compdef cerf

# Zsh completion script for cerf
# Add this to your ~/.zshrc or place in $fpath

_cerf() {
    local -a functions
    functions=(%s)

    _arguments -s \
%s
}

_cerf "$@"
`, funcList, strings.Join(args, " \\\n"))

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshHelp returns the help text for a flag in zsh, using an override if available.
func zshHelp(f FlagCompletion) string {
	key := flagKey(f)
	if override, ok := zshHelpOverrides[key]; ok {
		return override
	}
	return f.Help
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	help := zshHelp(f)

	// Build the value suffix
	valueSuffix := ""
	if f.IsFile {
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	} else if f.IsFunc {
		valueSuffix = fmt.Sprintf(":%s:($functions)", f.ValueName)
	} else if len(f.Values) > 0 {
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	} else if f.ValueName != "" {
		// Value-taking flag with no suggestions (e.g., -z)
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		// Has both short and long form
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, help, valueSuffix)
	}
	// Short only
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, functions []string) error {
	var lines []string

	lines = append(lines, "# Fish completion script for cerf")
	lines = append(lines, "# Add this to ~/.config/fish/completions/cerf.fish")
	lines = append(lines, "")
	lines = append(lines, "# Disable file completion by default")
	lines = append(lines, "complete -c cerf -f")
	lines = append(lines, "")

	// Group flags into sections for comments.
	type section struct {
		comment string
		flags   []FlagCompletion
	}

	sections := []section{
		{comment: "# Help and version", flags: filterFlags("help", "version")},
		{comment: "# Evaluation", flags: filterFlags("f_short", "z_short")},
		{comment: "# Modes", flags: filterFlags("table", "selftest", "bench", "repl", "serve", "explore")},
		{comment: "# Grid options", flags: filterFlags("from", "to", "points", "negative", "r6", "workers", "bench-n")},
		{comment: "# Output and runtime", flags: filterFlags("http", "timeout", "output", "log-format", "v_short", "vv")},
		{comment: "# Completion", flags: filterFlags("completion")},
	}

	funcList := formatFuncList(functions)

	for _, sec := range sections {
		lines = append(lines, sec.comment)
		for _, f := range sec.flags {
			lines = append(lines, fishCompleteLine(f, funcList))
		}
		lines = append(lines, "")
	}

	script := strings.Join(lines, "\n")

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// filterFlags returns flags from the registry matching the given identifiers.
// An identifier is a Long name, or "X_short" to match a flag by Short name only.
func filterFlags(ids ...string) []FlagCompletion {
	var result []FlagCompletion
	for _, id := range ids {
		if strings.HasSuffix(id, "_short") {
			short := strings.TrimSuffix(id, "_short")
			for _, f := range flagRegistry {
				if f.Short == short && f.Long == "" {
					result = append(result, f)
					break
				}
			}
		} else {
			for _, f := range flagRegistry {
				if f.Long == id {
					result = append(result, f)
					break
				}
			}
		}
	}
	return result
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, funcList string) string {
	var parts []string
	parts = append(parts, "complete -c cerf")

	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	if f.Long != "" {
		parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	}

	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	if f.IsFile {
		parts = append(parts, "-rF")
	} else if f.IsFunc {
		parts = append(parts, fmt.Sprintf("-xa '%s'", funcList))
	} else if len(f.Values) > 0 {
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	} else if f.ValueName != "" {
		// Takes a value but no suggestions (e.g., -z)
		parts = append(parts, "-x")
	}

	return strings.Join(parts, " ")
}

// generatePowerShellCompletion generates a PowerShell completion script.
func generatePowerShellCompletion(out io.Writer, functions []string) error {
	// Build $options entries from registry
	var optionEntries []string
	for _, f := range flagRegistry {
		if f.Short != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '-%s'; Description = '%s' }", f.Short, f.Help))
		}
		if f.Long != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '--%s'; Description = '%s' }", f.Long, f.Help))
		}
	}

	// Build context-aware switch entries.
	// Only the function flag and non-grouped flags with static values get
	// context-aware completion.
	var switchEntries []string

	psSwitchEntry := func(name string, f FlagCompletion) string {
		var quotedVals []string
		for _, v := range f.Values {
			quotedVals = append(quotedVals, fmt.Sprintf("'%s'", v))
		}
		return fmt.Sprintf(`        '%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, name, strings.Join(quotedVals, ", "))
	}

	// Function flag first
	for _, f := range flagRegistry {
		if f.IsFunc {
			switchEntries = append(switchEntries, fmt.Sprintf(`        '-%s' {
            $cerfFunctions | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Short))
		}
	}

	// Remaining value flags in registry order
	for _, f := range flagRegistry {
		if !f.IsFunc && !f.IsFile && f.BashGroup == "" && len(f.Values) > 0 {
			switchEntries = append(switchEntries, psSwitchEntry("--"+f.Long, f))
		}
	}

	// Format function list for PowerShell
	psFuncList := ""
	for i, fn := range functions {
		if i > 0 {
			psFuncList += ", "
		}
		psFuncList += fmt.Sprintf("'%s'", fn)
	}

	script := fmt.Sprintf(`# PowerShell completion script for cerf
# Add this to your $PROFILE

$cerfFunctions = @(%s)

Register-ArgumentCompleter -CommandName 'cerf' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $lastElement = if ($elements.Count -gt 1) { $elements[-1].ToString() } else { '' }
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    # Context-aware completions
    switch ($prevElement) {
%s
    }

    # Default: show options
    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, psFuncList, strings.Join(optionEntries, "\n"), strings.Join(switchEntries, "\n"))

	_, err := fmt.Fprint(out, script)
	return err
}
